// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package search filters documentation records by a free-text query.
//
// Matching is a case-insensitive substring test against a record's title,
// snippet, and member name. There is no ranking or tokenization. An empty
// query matches nothing rather than everything.
package search

import (
	"strings"
	"unicode/utf8"

	"animdocs/internal/models"
)

// MaxQueryLen caps the query length in runes. Longer queries are truncated.
const MaxQueryLen = 200

// Normalize trims surrounding whitespace and truncates the query to
// MaxQueryLen runes. It does not change case.
func Normalize(q string) string {
	q = strings.TrimSpace(q)
	if utf8.RuneCountInString(q) <= MaxQueryLen {
		return q
	}
	runes := []rune(q)
	return strings.TrimSpace(string(runes[:MaxQueryLen]))
}

// Match reports whether the record matches the query. An empty query never
// matches.
func Match(r models.Record, query string) bool {
	if query == "" {
		return false
	}
	return matchLower(r, strings.ToLower(query))
}

func matchLower(r models.Record, q string) bool {
	if strings.Contains(strings.ToLower(r.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Snippet), q) {
		return true
	}
	if name := r.MemberName(); name != "" && strings.Contains(strings.ToLower(name), q) {
		return true
	}
	return false
}

// Filter returns the records matching query in their original order. The
// query is normalized first, so surrounding whitespace is never significant;
// if nothing is left the result is empty.
func Filter(records []models.Record, query string) []models.Record {
	query = Normalize(query)
	if query == "" {
		return nil
	}
	q := strings.ToLower(query)

	var out []models.Record
	for _, r := range records {
		if matchLower(r, q) {
			out = append(out, r)
		}
	}
	return out
}
