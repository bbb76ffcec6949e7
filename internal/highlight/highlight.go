// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package highlight renders source code as syntax-highlighted HTML with
// chroma. Output uses CSS classes rather than inline styles, so one
// stylesheet (see CSS) covers both code blocks and guide markdown.
package highlight

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// StyleName is the chroma style used for every code sample.
const StyleName = "monokai"

// FormatOptions are shared with the markdown renderer.
var FormatOptions = []chromahtml.Option{
	chromahtml.WithClasses(true),
	chromahtml.TabWidth(2),
}

var formatter = chromahtml.New(FormatOptions...)

// lexerFor resolves a language name, falling back to plain text.
func lexerFor(language string) chroma.Lexer {
	l := lexers.Get(strings.ToLower(strings.TrimSpace(language)))
	if l == nil {
		l = lexers.Fallback
	}
	return chroma.Coalesce(l)
}

// Code returns code as highlighted HTML wrapped in <pre class="chroma">.
func Code(language, code string) (template.HTML, error) {
	it, err := lexerFor(language).Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("tokenise %s: %w", language, err)
	}
	var buf bytes.Buffer
	if err := formatter.Format(&buf, styles.Get(StyleName), it); err != nil {
		return "", fmt.Errorf("format %s: %w", language, err)
	}
	return template.HTML(buf.String()), nil
}

// MustCode is Code for templates. On error the code is returned escaped and
// unhighlighted inside a plain <pre>.
func MustCode(language, code string) template.HTML {
	h, err := Code(language, code)
	if err != nil {
		return template.HTML(`<pre class="chroma"><code>` + template.HTMLEscapeString(code) + `</code></pre>`)
	}
	return h
}

// CSS writes the stylesheet for the highlighted markup.
func CSS(w io.Writer) error {
	return formatter.WriteCSS(w, styles.Get(StyleName))
}
