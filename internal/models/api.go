// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MemberType is the kind of API member shown in a member card badge.
type MemberType string

const (
	MemberTypeMethod    MemberType = "method"
	MemberTypeProperty  MemberType = "property"
	MemberTypeClass     MemberType = "class"
	MemberTypeFunction  MemberType = "function"
	MemberTypeInterface MemberType = "interface"
	MemberTypeEnum      MemberType = "enum"
	MemberTypeConst     MemberType = "const"
	MemberTypeTypeAlias MemberType = "type-alias"
)

// Label returns the badge text, e.g. "type-alias" becomes "Type Alias".
func (m MemberType) Label() string {
	return titleCase(strings.ReplaceAll(string(m), "-", " "))
}

// APIMember describes one property, method, or top-level symbol.
type APIMember struct {
	Name        string
	MemberType  MemberType
	Signature   string
	Description string
	DocLink     string
	Deprecated  bool
}

// Param is a constructor parameter.
type Param struct {
	Name        string
	Type        string
	Description string
}

// CodeSample is a titled snippet of source code.
type CodeSample struct {
	Title    string
	Language string
	Code     string
}

// Link is a labelled navigation target.
type Link struct {
	Text string
	Href string
}

// APIEntity is a documented class or module on the API reference page.
type APIEntity struct {
	Name              string
	Description       string
	ConstructorParams []Param
	Properties        []APIMember
	Methods           []APIMember
	UsageExamples     []CodeSample
	RelatedLinks      []Link
}

// HasConstructor reports whether the entity documents constructor parameters.
func (e APIEntity) HasConstructor() bool { return len(e.ConstructorParams) > 0 }

// HasProperties reports whether the entity has any properties.
func (e APIEntity) HasProperties() bool { return len(e.Properties) > 0 }

// HasMethods reports whether the entity has any methods.
func (e APIEntity) HasMethods() bool { return len(e.Methods) > 0 }

// HasExamples reports whether the entity has usage examples.
func (e APIEntity) HasExamples() bool { return len(e.UsageExamples) > 0 }

// HasRelated reports whether the entity links to related documentation.
func (e APIEntity) HasRelated() bool { return len(e.RelatedLinks) > 0 }

// titleCase upper-cases the first letter of every word.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
