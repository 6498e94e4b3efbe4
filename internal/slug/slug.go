// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug derives URL path segments from post titles and filenames.
package slug

import (
	"regexp"
	"strings"
)

var (
	// nonAlphanumeric matches anything that isn't a lowercase letter,
	// digit, space, or hyphen.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Goal Seeking, Part 2!" → "goal-seeking-part-2"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// FromFilename strips the extension and an optional "YYYY-MM-DD-" date
// prefix from a markdown filename before slugifying, so
// "2026-02-03-bond-valuation.md" and "Bond Valuation.md" both produce
// usable slugs.
func FromFilename(name string) string {
	base := name
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	base = datePrefix.ReplaceAllString(base, "")
	if s := Generate(base); s != "" {
		return s
	}
	return "untitled"
}

var datePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-`)
