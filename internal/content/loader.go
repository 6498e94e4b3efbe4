// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content ingests markdown files into content records: it walks
// the content directory, parses front matter, derives routes, and syncs
// the result into the store. A watcher keeps the store current while the
// server runs.
package content

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"inkwell/internal/frontmatter"
	"inkwell/internal/models"
	"inkwell/internal/slug"
)

// Loader reads markdown files under a content root and turns them into
// content records.
type Loader struct {
	root string
}

// NewLoader creates a Loader rooted at dir. The directory must exist.
func NewLoader(dir string) (*Loader, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("content: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("content: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content: root is not a directory: %s", abs)
	}
	return &Loader{root: abs}, nil
}

// Root returns the absolute content root path.
func (l *Loader) Root() string { return l.root }

// LoadAll walks the content root and parses every markdown file. A file
// that cannot be read is logged and skipped — one broken file must not
// abort ingestion of the rest.
func (l *Loader) LoadAll() ([]models.Content, error) {
	var records []models.Content

	err := filepath.WalkDir(l.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isMarkdown(path) {
			return nil
		}

		rel, err := filepath.Rel(l.root, path)
		if err != nil {
			return err
		}

		c, err := l.LoadFile(rel)
		if err != nil {
			slog.Warn("content: skipping unreadable file", "file", rel, "error", err)
			return nil
		}
		records = append(records, *c)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("content: walk: %w", err)
	}
	return records, nil
}

// LoadFile parses one markdown file (path relative to the root) into a
// content record.
func (l *Loader) LoadFile(rel string) (*models.Content, error) {
	data, err := os.ReadFile(filepath.Join(l.root, rel))
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", rel, err)
	}

	fm := frontmatter.Parse(data)

	layout := fm.Layout
	if !models.KnownLayout(layout) {
		if layout != "" {
			slog.Warn("content: unknown layout, using post", "file", rel, "layout", layout)
		}
		layout = models.LayoutPost
	}

	title := fm.Title
	if title == "" {
		title = strings.ReplaceAll(slug.FromFilename(filepath.Base(rel)), "-", " ")
	}

	c := &models.Content{
		Title:      title,
		Body:       fm.Body,
		Date:       fm.Date,
		Tags:       fm.Tags,
		Layout:     layout,
		Metadata:   fm.Metadata,
		SourcePath: filepath.ToSlash(rel),
	}
	c.Path = routeFor(c, fm.Path)
	return c, nil
}

// routeFor derives the public route for a record: the front matter path
// override when set, otherwise a layout-specific prefix plus the slug of
// the source filename.
func routeFor(c *models.Content, override string) string {
	if override != "" {
		if !strings.HasPrefix(override, "/") {
			override = "/" + override
		}
		return override
	}

	s := slug.FromFilename(filepath.Base(c.SourcePath))
	switch c.Layout {
	case models.LayoutPost:
		return "/blog/" + s
	case models.LayoutProject:
		return "/projects/" + s
	case models.LayoutSharing:
		return "/sharing/" + s
	case models.LayoutAbout:
		return "/about"
	}
	return "/" + s
}

// isMarkdown reports whether the path names a markdown source file.
func isMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}
