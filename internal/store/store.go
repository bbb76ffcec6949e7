// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store serves the documentation content. All records are Go
// literals defined in this package; nothing is loaded from disk or a
// database, and nothing is ever written back.
package store

import (
	"slices"

	"animdocs/internal/models"
)

// DefaultEntity is the API entity shown when none (or an unknown one) is requested.
const DefaultEntity = "AnimationPlayer"

// DocsStore provides read-only access to the site content. It is safe for
// concurrent use because nothing in it changes after New returns.
type DocsStore struct {
	entities    map[string]models.APIEntity
	entityOrder []string
	guides      []models.Guide
	categories  []models.GuideCategory
	examples    []models.Example
	records     []models.Record
	features    []models.Feature
	highlights  []models.Highlight
}

// New creates a DocsStore over the built-in content.
func New() *DocsStore {
	s := &DocsStore{
		entities:   make(map[string]models.APIEntity, len(apiEntities)),
		guides:     guides,
		categories: guideCategories,
		examples:   animationExamples,
		records:    searchRecords,
		features:   features,
		highlights: highlights,
	}
	for _, e := range apiEntities {
		s.entities[e.Name] = e
		s.entityOrder = append(s.entityOrder, e.Name)
	}
	return s
}

// Entity returns the API entity with the exact given name.
func (s *DocsStore) Entity(name string) (models.APIEntity, bool) {
	e, ok := s.entities[name]
	return e, ok
}

// EntityOrDefault returns the named entity, falling back silently to
// DefaultEntity when the name is empty or unknown.
func (s *DocsStore) EntityOrDefault(name string) models.APIEntity {
	if e, ok := s.entities[name]; ok {
		return e
	}
	return s.entities[DefaultEntity]
}

// EntityNames lists documented entities in reference order.
func (s *DocsStore) EntityNames() []string {
	return slices.Clone(s.entityOrder)
}

// Guides returns every guide in listing order.
func (s *DocsStore) Guides() []models.Guide {
	return slices.Clone(s.guides)
}

// GuidesByCategory returns the guides in the given category. The boolean is
// false when the category is unknown, in which case all guides are returned.
func (s *DocsStore) GuidesByCategory(category string) ([]models.Guide, bool) {
	if _, ok := s.Category(category); !ok {
		return s.Guides(), false
	}
	var out []models.Guide
	for _, g := range s.guides {
		if g.Category == category {
			out = append(out, g)
		}
	}
	return out, true
}

// Category looks up a guide category by slug.
func (s *DocsStore) Category(slug string) (models.GuideCategory, bool) {
	for _, c := range s.categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return models.GuideCategory{}, false
}

// Categories returns the guide categories in sidebar order.
func (s *DocsStore) Categories() []models.GuideCategory {
	return slices.Clone(s.categories)
}

// FindGuide retrieves a guide by slug.
func (s *DocsStore) FindGuide(slug string) (models.Guide, bool) {
	for _, g := range s.guides {
		if g.Slug == slug {
			return g, true
		}
	}
	return models.Guide{}, false
}

// Examples returns the gallery examples in display order.
func (s *DocsStore) Examples() []models.Example {
	return slices.Clone(s.examples)
}

// SearchRecords returns the records the search page filters over.
func (s *DocsStore) SearchRecords() []models.Record {
	return slices.Clone(s.records)
}

// Features returns the homepage feature cards.
func (s *DocsStore) Features() []models.Feature {
	return slices.Clone(s.features)
}

// Highlights returns the homepage "What's New" cards.
func (s *DocsStore) Highlights() []models.Highlight {
	return slices.Clone(s.highlights)
}
