// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"strings"
	"unicode"
)

// GuideCategory groups guides in the listing sidebar.
type GuideCategory struct {
	Slug string
	Name string
}

// Guide is a long-form tutorial. Body holds Markdown source.
type Guide struct {
	Slug        string
	Title       string
	Description string
	Category    string
	Body        string
}

// DocLink returns the guide's detail page path.
func (g Guide) DocLink() string {
	return "/guides-listing/" + g.Slug
}

// AsMember presents the guide as a member card, the way the listing shows it.
func (g Guide) AsMember() APIMember {
	return APIMember{
		Name:        g.Title,
		MemberType:  MemberTypeTypeAlias,
		Description: g.Description,
		DocLink:     g.DocLink(),
	}
}

// AnimationType selects the motion played by an interactive demo.
type AnimationType string

const (
	AnimationFade  AnimationType = "fade"
	AnimationSlide AnimationType = "slide"
	AnimationScale AnimationType = "scale"
)

// Label returns the capitalized type, e.g. "Slide".
func (a AnimationType) Label() string {
	if a == "" {
		return titleCase(string(AnimationSlide))
	}
	return titleCase(string(a))
}

// Example is one entry in the examples gallery.
type Example struct {
	ID            string
	Title         string
	Description   string
	AnimationType AnimationType
	Language      string
	Code          string
}

// FileName is the title with all whitespace removed plus a .tsx extension,
// e.g. "Simple Fade Animation" becomes "SimpleFadeAnimation.tsx".
func (e Example) FileName() string {
	var b strings.Builder
	for _, r := range e.Title {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	b.WriteString(".tsx")
	return b.String()
}

// Feature is a homepage selling point.
type Feature struct {
	Icon        string
	Title       string
	Description string
}

// Highlight is a card in the homepage "What's New" carousel.
type Highlight struct {
	Title       string
	Description string
	Link        string
	LinkLabel   string
}
