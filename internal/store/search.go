// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import "animdocs/internal/models"

var searchRecords = []models.Record{
	{
		ID:      "guide1",
		Type:    models.RecordTypeGuide,
		Title:   "Understanding Easing in Animations",
		Snippet: "Explore the core concepts of easing functions and how they bring animations to life with natural, smooth transitions...",
		Link:    "/guides-listing/easing-functions",
	},
	{
		ID:      "api1",
		Type:    models.RecordTypeAPIMember,
		Title:   "easeInOutQuad",
		Snippet: "A quadratic easing function that accelerates and decelerates.",
		Link:    memberLink("EasingFunctions", "easeInOutQuad"),
		Member: &models.APIMember{
			Name:        "easeInOutQuad",
			MemberType:  models.MemberTypeFunction,
			Signature:   "(t: number): number",
			Description: "Provides a quadratic easing in and out. Ideal for smooth starts and stops.",
			DocLink:     memberLink("EasingFunctions", "easeInOutQuad"),
		},
	},
	{
		ID:      "example1",
		Type:    models.RecordTypeExample,
		Title:   "Carousel with Custom Easing",
		Snippet: "See a practical example of implementing custom easing functions in a carousel component for unique slide transitions.",
		Link:    "/examples-gallery#carousel-easing",
	},
	{
		ID:      "guide2",
		Type:    models.RecordTypeGuide,
		Title:   "Mastering Keyframe Animations",
		Snippet: "Learn how to create complex animations using keyframes, defining multiple states over time for precise control.",
		Link:    "/guides-listing/keyframes",
	},
	{
		ID:      "api2",
		Type:    models.RecordTypeAPIMember,
		Title:   "AnimationController",
		Snippet: "The main class for controlling animation playback, state, and lifecycle.",
		Link:    "/a-p-i-detail?entity=AnimationPlayer",
		Member: &models.APIMember{
			Name:        "AnimationController",
			MemberType:  models.MemberTypeClass,
			Description: "Manages animation sequences, allowing for play, pause, stop, and seeking operations. Essential for orchestrating animations.",
			DocLink:     "/a-p-i-detail?entity=AnimationPlayer",
		},
	},
	{
		ID:      "example2",
		Type:    models.RecordTypeExample,
		Title:   "Dynamic List Item Entrance Animations",
		Snippet: "An example showcasing how to animate list items as they enter the view, using various easing and staggering techniques.",
		Link:    "/examples-gallery#list-entrance",
	},
	{
		ID:      "api3",
		Type:    models.RecordTypeAPI,
		Title:   "Timeline",
		Snippet: "Sequences several players with relative offsets and controls them as a group.",
		Link:    "/a-p-i-detail?entity=Timeline",
	},
}
