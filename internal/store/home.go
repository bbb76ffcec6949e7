// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import "animdocs/internal/models"

var features = []models.Feature{
	{Icon: "rocket", Title: "Blazing Fast Performance", Description: "Optimized for speed, ensuring smooth animations even in complex UIs and interactions."},
	{Icon: "palette", Title: "Expressive & Flexible API", Description: "Fine-grained control with an intuitive API for keyframes, timelines, physics, and more."},
	{Icon: "code", Title: "Developer Friendly", Description: "Easy to integrate and use, with comprehensive documentation, guides, and examples."},
}

var highlights = []models.Highlight{
	{Title: "New Guide: Mastering Easing Functions", Description: "Deep dive into various easing techniques for natural motion.", Link: "/guides-listing", LinkLabel: "Read Guide"},
	{Title: "Example: Complex UI Transitions", Description: "Showcase of advanced transition animations between views.", Link: "/examples-gallery", LinkLabel: "View Example"},
	{Title: "API Update: Enhanced Timeline Controls", Description: "Discover new features for orchestrating complex animation sequences.", Link: "/a-p-i-detail", LinkLabel: "Explore API"},
	{Title: "Community Spotlight: Amazing Creations", Description: "See what developers are building with our animation library.", Link: "/examples-gallery", LinkLabel: "See More"},
}
