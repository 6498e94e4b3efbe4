// Package web provides embedded static assets for the public site: the
// stylesheet and the client-side blog filter/sort script.
package web

import "embed"

// StaticFS embeds the web/static/ directory tree, served at /static/ and
// copied verbatim into the output directory on publish.
//
//go:embed all:static
var StaticFS embed.FS
