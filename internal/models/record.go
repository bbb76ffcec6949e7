// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the display records rendered by the documentation
// site. Every value is created once at package load and never mutated.
package models

// RecordType classifies a search record. It only drives icon and badge
// selection in the result list.
type RecordType string

const (
	RecordTypeGuide     RecordType = "guide"
	RecordTypeAPI       RecordType = "api"
	RecordTypeExample   RecordType = "example"
	RecordTypeAPIMember RecordType = "api-member"
)

// Icon returns the icon name used for a result of this type.
func (t RecordType) Icon() string {
	switch t {
	case RecordTypeGuide:
		return "file-text"
	case RecordTypeAPIMember, RecordTypeAPI:
		return "code"
	case RecordTypeExample:
		return "box"
	default:
		return "file-text"
	}
}

// Label returns the human-readable type name shown under a result title.
func (t RecordType) Label() string {
	switch t {
	case RecordTypeAPI:
		return "API"
	case RecordTypeAPIMember:
		return "API Member"
	default:
		return titleCase(string(t))
	}
}

// Record is a single searchable entry: a guide, an API member, or an example.
type Record struct {
	ID      string
	Type    RecordType
	Title   string
	Snippet string
	Link    string

	// Member is set for api-member records and carries the secondary name
	// field that search also matches against.
	Member *APIMember
}

// MemberName returns the secondary name field, or "" when the record has none.
func (r Record) MemberName() string {
	if r.Member == nil {
		return ""
	}
	return r.Member.Name
}

// IsAPIMember reports whether the record renders as an API member card.
func (r Record) IsAPIMember() bool {
	return r.Type == RecordTypeAPIMember && r.Member != nil
}
