// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Layout selects which page template renders a content record. The set is
// closed: unknown values fall back to LayoutPost when rendering.
type Layout string

const (
	LayoutAbout   Layout = "about"
	LayoutPost    Layout = "post"
	LayoutProject Layout = "project"
	LayoutSharing Layout = "sharing"
)

// KnownLayout reports whether l is one of the recognized layout variants.
func KnownLayout(l Layout) bool {
	switch l {
	case LayoutAbout, LayoutPost, LayoutProject, LayoutSharing:
		return true
	}
	return false
}

// Content is one addressable unit of site content: a blog post, the about
// page, a project write-up. The markdown body is rendered at serve time;
// Date drives the blog listing order and the month sidebar.
type Content struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Date     time.Time `json:"date"`
	Tags     []string  `json:"tags,omitempty"`
	Path     string    `json:"path"`
	Layout   Layout    `json:"layout"`
	Metadata Metadata  `json:"metadata,omitempty"`

	// SourcePath is the markdown file this record was ingested from,
	// relative to the content root. Unique per record.
	SourcePath string    `json:"source_path"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// IsPost reports whether the record belongs on the blog listing.
func (c *Content) IsPost() bool {
	return c.Layout == LayoutPost
}

// HasDate reports whether the record carries a resolvable publication date.
// Records ingested from files with a missing or malformed date front matter
// field have a zero Date.
func (c *Content) HasDate() bool {
	return !c.Date.IsZero()
}

// DisplayTitle returns the metadata title override when present, otherwise
// the record's own title.
func (c *Content) DisplayTitle() string {
	return c.Metadata.StringOr("title", c.Title)
}
