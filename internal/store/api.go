// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import "animdocs/internal/models"

func memberLink(entity, member string) string {
	return "/a-p-i-detail?entity=" + entity + "&member=" + member
}

var apiEntities = []models.APIEntity{
	{
		Name:        "AnimationPlayer",
		Description: "The AnimationPlayer class is the core of the animation system. It provides fine-grained control over animation playback, allowing you to start, pause, resume, seek, and cancel animations. It operates on a timeline and can manage multiple keyframes and easing functions.",
		ConstructorParams: []models.Param{
			{Name: "targetElement", Type: "HTMLElement", Description: "The DOM element to be animated."},
			{Name: "keyframes", Type: "Keyframe[] | PropertyIndexedKeyframes", Description: "An array of keyframes or a keyframe object defining the animation states."},
			{Name: "options?", Type: "number | KeyframeAnimationOptions", Description: "Optional. Animation duration in milliseconds or a comprehensive options object (e.g., duration, easing, iterations)."},
		},
		Properties: []models.APIMember{
			{Name: "currentTime", MemberType: models.MemberTypeProperty, Signature: "currentTime: number | null", Description: "Gets or sets the current time of the animation in milliseconds. Setting it to null makes the animation timeless.", DocLink: memberLink("AnimationPlayer", "currentTime")},
			{Name: "duration", MemberType: models.MemberTypeProperty, Signature: "duration: number", Description: "Returns the read-only duration of the animation in milliseconds, as computed by the timing function.", DocLink: memberLink("AnimationPlayer", "duration")},
			{Name: "playState", MemberType: models.MemberTypeProperty, Signature: "playState: AnimationPlayState", Description: "Indicates the current playback state ('idle', 'running', 'paused', 'finished').", DocLink: memberLink("AnimationPlayer", "playState"), Deprecated: true},
			{Name: "playbackRate", MemberType: models.MemberTypeProperty, Signature: "playbackRate: number", Description: "Gets or sets the playback rate of the animation. Default is 1 (normal speed).", DocLink: memberLink("AnimationPlayer", "playbackRate")},
		},
		Methods: []models.APIMember{
			{Name: "play", MemberType: models.MemberTypeMethod, Signature: "play(): void", Description: "Starts or resumes playback of the animation from its current time.", DocLink: memberLink("AnimationPlayer", "play")},
			{Name: "pause", MemberType: models.MemberTypeMethod, Signature: "pause(): void", Description: "Pauses the animation at its current time.", DocLink: memberLink("AnimationPlayer", "pause")},
			{Name: "finish", MemberType: models.MemberTypeMethod, Signature: "finish(): void", Description: "Advances the animation to its end state and marks it as 'finished'.", DocLink: memberLink("AnimationPlayer", "finish")},
			{Name: "cancel", MemberType: models.MemberTypeMethod, Signature: "cancel(): void", Description: "Cancels the animation, removing its effects and setting its state to 'idle'.", DocLink: memberLink("AnimationPlayer", "cancel")},
			{Name: "reverse", MemberType: models.MemberTypeMethod, Signature: "reverse(): void", Description: "Reverses the playback direction of the animation. If playing forward, it will play backward, and vice-versa.", DocLink: memberLink("AnimationPlayer", "reverse")},
		},
		UsageExamples: []models.CodeSample{
			{
				Title:    "Creating and Playing an Animation",
				Language: "typescript",
				Code: `const element = document.getElementById('myElement');
if (element) {
  const player = new AnimationPlayer(
    element,
    [
      { transform: 'translateX(0px) rotate(0deg)', opacity: 1 },
      { transform: 'translateX(200px) rotate(180deg)', opacity: 0.5 }
    ],
    { duration: 2000, easing: 'ease-in-out', iterations: Infinity, direction: 'alternate' }
  );
  player.play();
}`,
			},
			{
				Title:    "Playback Control",
				Language: "typescript",
				Code: `// Assuming 'player' is an AnimationPlayer instance
const pauseButton = document.getElementById('pauseBtn');
const playButton = document.getElementById('playBtn');

pauseButton?.addEventListener('click', () => player.pause());
playButton?.addEventListener('click', () => player.play());

// Change speed
// player.playbackRate = 2; // Double speed
// player.playbackRate = 0.5; // Half speed
`,
			},
		},
		RelatedLinks: []models.Link{
			{Text: "Comprehensive Keyframes Guide", Href: "/guides-listing/keyframes"},
			{Text: "Understanding Easing Functions", Href: "/a-p-i-detail?entity=EasingFunctions"},
			{Text: "Sequencing with Timeline", Href: "/a-p-i-detail?entity=Timeline"},
		},
	},
	{
		Name:        "EasingFunctions",
		Description: "Provides a collection of common easing functions for use in animations.",
		Methods: []models.APIMember{
			{Name: "linear", MemberType: models.MemberTypeFunction, Signature: "linear(t: number): number", Description: "Constant speed from start to finish. Returns t unchanged.", DocLink: memberLink("EasingFunctions", "linear")},
			{Name: "easeInQuad", MemberType: models.MemberTypeFunction, Signature: "easeInQuad(t: number): number", Description: "Quadratic easing that starts slowly and accelerates.", DocLink: memberLink("EasingFunctions", "easeInQuad")},
			{Name: "easeOutQuad", MemberType: models.MemberTypeFunction, Signature: "easeOutQuad(t: number): number", Description: "Quadratic easing that starts quickly and decelerates.", DocLink: memberLink("EasingFunctions", "easeOutQuad")},
			{Name: "easeInOutQuad", MemberType: models.MemberTypeFunction, Signature: "easeInOutQuad(t: number): number", Description: "Provides a quadratic easing in and out. Ideal for smooth starts and stops.", DocLink: memberLink("EasingFunctions", "easeInOutQuad")},
			{Name: "cubicBezier", MemberType: models.MemberTypeFunction, Signature: "cubicBezier(x1: number, y1: number, x2: number, y2: number): (t: number) => number", Description: "Builds a custom easing curve from two control points, matching the CSS cubic-bezier() timing function.", DocLink: memberLink("EasingFunctions", "cubicBezier")},
		},
	},
	{
		Name:        "Timeline",
		Description: "A Timeline sequences several AnimationPlayer instances, offsetting their start times and controlling them as a group.",
		ConstructorParams: []models.Param{
			{Name: "options?", Type: "TimelineOptions", Description: "Optional. Default duration and easing applied to every animation added to the timeline."},
		},
		Properties: []models.APIMember{
			{Name: "duration", MemberType: models.MemberTypeProperty, Signature: "duration: number", Description: "Total length of the timeline in milliseconds, including offsets.", DocLink: memberLink("Timeline", "duration")},
		},
		Methods: []models.APIMember{
			{Name: "add", MemberType: models.MemberTypeMethod, Signature: "add(player: AnimationPlayer, offset?: number | string): Timeline", Description: "Appends a player to the timeline. Offsets may be absolute milliseconds or relative strings such as '-=200'.", DocLink: memberLink("Timeline", "add")},
			{Name: "seek", MemberType: models.MemberTypeMethod, Signature: "seek(time: number): void", Description: "Moves every player in the timeline to the given time.", DocLink: memberLink("Timeline", "seek")},
		},
		RelatedLinks: []models.Link{
			{Text: "Advanced Timeline Control and Sequencing", Href: "/guides-listing/timeline-control"},
		},
	},
}
