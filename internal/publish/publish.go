// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package publish exports the whole site as static HTML: one
// directory-per-route with an index.html, plus the embedded static
// assets. The output can be served by any plain file server.
package publish

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"inkwell/internal/models"
	"inkwell/internal/site"
	"inkwell/web"
)

// Publisher writes rendered pages to an output directory.
type Publisher struct {
	renderer *site.Renderer
	outDir   string
}

// New creates a Publisher targeting outDir.
func New(renderer *site.Renderer, outDir string) *Publisher {
	return &Publisher{renderer: renderer, outDir: outDir}
}

// Run renders every route from the given records and copies static
// assets. A record that fails to render is logged and skipped so one
// broken page never aborts a publish.
func (p *Publisher) Run(records []models.Content) error {
	var posts, projects, sharing []models.Content
	for _, c := range records {
		switch c.Layout {
		case models.LayoutPost:
			posts = append(posts, c)
		case models.LayoutProject:
			projects = append(projects, c)
		case models.LayoutSharing:
			sharing = append(sharing, c)
		}
	}

	// Index pages.
	indexHTML, err := p.renderer.BlogIndex(posts)
	if err != nil {
		return fmt.Errorf("publish blog index: %w", err)
	}
	for _, route := range []string{"/", "/blog"} {
		if err := p.writeRoute(route, indexHTML); err != nil {
			return err
		}
	}

	projectsHTML, err := p.renderer.List("Projects", projects)
	if err != nil {
		return fmt.Errorf("publish projects: %w", err)
	}
	if err := p.writeRoute("/projects", projectsHTML); err != nil {
		return err
	}

	sharingHTML, err := p.renderer.List("Sharing", sharing)
	if err != nil {
		return fmt.Errorf("publish sharing: %w", err)
	}
	if err := p.writeRoute("/sharing", sharingHTML); err != nil {
		return err
	}

	// One page per record.
	published := 0
	for i := range records {
		c := &records[i]
		html, err := p.renderer.Page(c)
		if err != nil {
			slog.Warn("publish: skipping page", "route", c.Path, "error", err)
			continue
		}
		if err := p.writeRoute(c.Path, html); err != nil {
			return err
		}
		published++
	}

	if err := p.copyStatic(); err != nil {
		return err
	}

	slog.Info("site published", "pages", published, "out", p.outDir)
	return nil
}

// writeRoute stores rendered HTML at outDir/<route>/index.html.
func (p *Publisher) writeRoute(route string, html []byte) error {
	rel := strings.Trim(route, "/")
	dir := filepath.Join(p.outDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("publish mkdir %s: %w", dir, err)
	}
	target := filepath.Join(dir, "index.html")
	if err := os.WriteFile(target, html, 0o644); err != nil {
		return fmt.Errorf("publish write %s: %w", target, err)
	}
	return nil
}

// copyStatic mirrors the embedded static assets into outDir/static.
func (p *Publisher) copyStatic() error {
	return fs.WalkDir(web.StaticFS, "static", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(p.outDir, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(web.StaticFS, path)
		if err != nil {
			return fmt.Errorf("publish read asset %s: %w", path, err)
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("publish write asset %s: %w", target, err)
		}
		return nil
	})
}
