// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import "animdocs/internal/models"

var animationExamples = []models.Example{
	{
		ID:            "1",
		Title:         "Simple Fade Animation",
		Description:   "This example demonstrates a basic fade-in and fade-out effect on an element. Ideal for smooth appearances and disappearances.",
		AnimationType: models.AnimationFade,
		Language:      "javascript",
		Code: `
import { motion } from 'framer-motion';

// ...
<motion.div
  initial={{ opacity: 0 }}
  animate={{ opacity: 1 }}
  exit={{ opacity: 0 }}
  transition={{ duration: 0.7 }}
>
  Fade Example
</motion.div>
`,
	},
	{
		ID:            "2",
		Title:         "Dynamic Slide Transition",
		Description:   "Watch an element slide into view from the side. This uses a spring-like transition for a more natural feel.",
		AnimationType: models.AnimationSlide,
		Language:      "javascript",
		Code: `
import { motion } from 'framer-motion';

// ...
<motion.div
  initial={{ x: "-100vw", opacity: 0 }}
  animate={{ x: 0, opacity: 1 }}
  transition={{ type: "spring", stiffness: 80, damping: 15 }}
>
  Slide Example
</motion.div>
`,
	},
	{
		ID:            "3",
		Title:         "Scale & Rotate Effect",
		Description:   "An engaging animation where an element scales up and rotates. Useful for highlighting interactive elements.",
		AnimationType: models.AnimationScale,
		Language:      "javascript",
		Code: `
import { motion } from 'framer-motion';

// ...
<motion.div
  initial={{ scale: 0.5, rotate: -45 }}
  animate={{ scale: 1, rotate: 0 }}
  transition={{ duration: 0.6, ease: "easeOut" }}
>
  Scale & Rotate
</motion.div>
`,
	},
	{
		ID:            "4",
		Title:         "Keyframe Sequence Animation",
		Description:   "A more complex animation showing movement through multiple points using keyframes.",
		AnimationType: models.AnimationSlide,
		Language:      "javascript",
		Code: `
import { motion } from 'framer-motion';

// ...
<motion.div
  animate={{
    x: [0, 100, 0, -100, 0],
    y: [0, 50, 100, 50, 0],
    rotate: [0, 90, 180, 270, 360],
  }}
  transition={{
    duration: 5,
    ease: "easeInOut",
    repeat: Infinity,
    repeatType: "loop"
  }}
>
  Keyframes
</motion.div>
`,
	},
}
