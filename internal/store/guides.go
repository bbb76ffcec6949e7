// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import "animdocs/internal/models"

var guideCategories = []models.GuideCategory{
	{Slug: "getting-started", Name: "Getting Started"},
	{Slug: "core-concepts", Name: "Core Concepts"},
	{Slug: "how-to-guides", Name: "How-to Guides"},
	{Slug: "advanced-techniques", Name: "Advanced Techniques"},
	{Slug: "best-practices", Name: "Best Practices"},
	{Slug: "integration", Name: "Integration"},
}

var guides = []models.Guide{
	{
		Slug:        "introduction",
		Title:       "Introduction to the Animation System",
		Description: "A beginner-friendly guide to understand the basics and get started with our animation library. Covers setup, first animation, and core principles.",
		Category:    "getting-started",
		Body: "# Introduction to the Animation System\n\n" +
			"Install the package and create your first player:\n\n" +
			"```typescript\nimport { AnimationPlayer } from 'animlib';\n\n" +
			"const player = new AnimationPlayer(el, [{ opacity: 0 }, { opacity: 1 }], 500);\nplayer.play();\n```\n\n" +
			"Every animation is a set of **keyframes**, a **duration**, and an optional **easing** function.\n",
	},
	{
		Slug:        "keyframes",
		Title:       "Mastering Keyframe Animations",
		Description: "Learn how to create complex and expressive animations using keyframes, custom timing functions, and animation properties.",
		Category:    "core-concepts",
		Body: "# Mastering Keyframe Animations\n\n" +
			"Keyframes describe the state of an element at points in time. Offsets run from `0` to `1`.\n\n" +
			"| Offset | Transform |\n|---|---|\n| 0 | `translateX(0)` |\n| 0.5 | `translateX(100px)` |\n| 1 | `translateX(0)` |\n\n" +
			"```typescript\nnew AnimationPlayer(el, [\n  { transform: 'translateX(0)' },\n  { transform: 'translateX(100px)', offset: 0.5 },\n  { transform: 'translateX(0)' },\n], 1200).play();\n```\n",
	},
	{
		Slug:        "easing-functions",
		Title:       "Understanding Easing Functions",
		Description: "Explore different easing functions (linear, ease-in, ease-out, cubic-bezier) and how they impact the feel and realism of your animations. Includes examples.",
		Category:    "core-concepts",
		Body: "# Understanding Easing Functions\n\n" +
			"Easing maps elapsed time to progress. `linear` keeps a constant speed while `easeInOutQuad` starts and ends gently.\n\n" +
			"```typescript\nimport { EasingFunctions } from 'animlib';\n\nconst eased = EasingFunctions.easeInOutQuad(0.25); // 0.125\n```\n\n" +
			"See the [EasingFunctions reference](/a-p-i-detail?entity=EasingFunctions) for the full list.\n",
	},
	{
		Slug:        "performance",
		Title:       "Performance Best Practices for Smooth Animations",
		Description: "Optimize your animations for smooth performance across all devices and browsers. Learn about hardware acceleration, debouncing, and efficient state management.",
		Category:    "best-practices",
		Body: "# Performance Best Practices\n\n" +
			"- Animate `transform` and `opacity`; they can run on the compositor.\n" +
			"- Avoid layout-triggering properties such as `width` and `top`.\n" +
			"- Batch DOM reads before writes.\n",
	},
	{
		Slug:        "react-integration",
		Title:       "Integrating Animations with React Components",
		Description: "Step-by-step tutorial on how to seamlessly integrate the animation library with your React components using hooks and lifecycle methods.",
		Category:    "integration",
		Body: "# Integrating with React\n\n" +
			"Create the player in an effect and cancel it on cleanup:\n\n" +
			"```tsx\nuseEffect(() => {\n  const player = new AnimationPlayer(ref.current!, frames, 400);\n  player.play();\n  return () => player.cancel();\n}, []);\n```\n",
	},
	{
		Slug:        "timeline-control",
		Title:       "Advanced Timeline Control and Sequencing",
		Description: "Deep dive into timeline management for creating sophisticated animation sequences, synchronizing multiple animations, and controlling playback.",
		Category:    "advanced-techniques",
		Body: "# Advanced Timeline Control\n\n" +
			"A `Timeline` chains players with relative offsets:\n\n" +
			"```typescript\nconst tl = new Timeline({ easing: 'ease-out' });\ntl.add(fadeIn).add(slideUp, '-=200');\ntl.seek(0);\n```\n",
	},
	{
		Slug:        "state-driven-animations",
		Title:       "State-Driven Animations",
		Description: "Learn how to create animations that react to application state changes, making your UI more dynamic and responsive.",
		Category:    "how-to-guides",
		Body: "# State-Driven Animations\n\n" +
			"Derive the target keyframe from state and let the player interpolate from the current value.\n",
	},
	{
		Slug:        "debugging",
		Title:       "Debugging Animations Effectively",
		Description: "Tips and techniques for troubleshooting common animation issues, using browser developer tools, and logging animation states.",
		Category:    "how-to-guides",
		Body: "# Debugging Animations\n\n" +
			"1. Slow everything down with `player.playbackRate = 0.1`.\n" +
			"2. Log `player.playState` on every frame.\n" +
			"3. Use the browser's animation inspector to scrub the timeline.\n",
	},
}
