// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package web provides the embedded static assets (CSS, JS) for the
// documentation site, served at /static/. The Content-Security-Policy only
// allows same-origin scripts, so every behavior lives in these files.
package web

import "embed"

// StaticFS embeds the web/static/ directory tree. The syntax highlighting
// stylesheet is not here; the router generates it from the chroma style.
//
//go:embed all:static
var StaticFS embed.FS
