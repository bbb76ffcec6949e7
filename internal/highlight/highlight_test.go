// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package highlight

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeUsesClasses(t *testing.T) {
	out, err := Code("javascript", `const player = new AnimationPlayer(el);`)
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, `class="chroma"`)
	assert.Contains(t, html, "AnimationPlayer")
	assert.NotContains(t, html, "style=", "classes only, no inline styles")
}

func TestCodeEscapesMarkup(t *testing.T) {
	out, err := Code("javascript", `el.innerHTML = "<script>alert(1)</script>";`)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<script>")
}

func TestCodeUnknownLanguageFallsBack(t *testing.T) {
	out, err := Code("no-such-language", "plain <text>")
	require.NoError(t, err)
	assert.Contains(t, string(out), "plain &lt;text&gt;")
}

func TestMustCode(t *testing.T) {
	out := MustCode("", "x & y")
	assert.True(t, strings.Contains(string(out), "x &amp; y"))
}

func TestCSS(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CSS(&buf))
	assert.Contains(t, buf.String(), ".chroma")
}
