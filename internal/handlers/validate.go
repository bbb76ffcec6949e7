// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"unicode/utf8"

	"animdocs/internal/slug"
)

// Limits for query and path parameters. Anything longer is treated as absent.
const (
	maxNameLen = 100 // entity, member, tab, category
	maxSlugLen = 120
)

// nameParam trims a query value and drops it when it is over-long.
func nameParam(raw string) string {
	raw = strings.TrimSpace(raw)
	if utf8.RuneCountInString(raw) > maxNameLen {
		return ""
	}
	return raw
}

// validSlug reports whether s is already in canonical slug form.
func validSlug(s string) bool {
	if s == "" || len(s) > maxSlugLen {
		return false
	}
	return slug.Generate(s) == s
}
