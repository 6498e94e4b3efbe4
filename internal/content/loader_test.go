package content

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"inkwell/internal/models"
)

// writeFile creates a file under dir, making parent directories as needed.
func writeFile(t *testing.T, dir, rel, body string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

func TestNewLoader_RejectsMissingRoot(t *testing.T) {
	if _, err := NewLoader(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestLoadFile_Post(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "posts/2026-02-03-bond-valuation.md", `---
title: Bond Valuation
date: "2026-02-03 14:05"
tags:
  - bonds
layout: post
series: business-math
---
Coupons and principal.
`)

	l, err := NewLoader(dir)
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}

	c, err := l.LoadFile("posts/2026-02-03-bond-valuation.md")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if c.Title != "Bond Valuation" {
		t.Errorf("Title = %q", c.Title)
	}
	if c.Path != "/blog/bond-valuation" {
		t.Errorf("Path = %q, want /blog/bond-valuation", c.Path)
	}
	if !c.Date.Equal(time.Date(2026, 2, 3, 14, 5, 0, 0, time.UTC)) {
		t.Errorf("Date = %v", c.Date)
	}
	if c.Layout != models.LayoutPost {
		t.Errorf("Layout = %q", c.Layout)
	}
	if c.SourcePath != "posts/2026-02-03-bond-valuation.md" {
		t.Errorf("SourcePath = %q", c.SourcePath)
	}
	if got := c.Metadata.StringOr("series", ""); got != "business-math" {
		t.Errorf("metadata series = %q", got)
	}
}

// TestLoadFile_Defaults verifies layout, title, and route fallbacks for a
// bare markdown file with no front matter.
func TestLoadFile_Defaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Some Notes.md", "plain body, no heading\n")

	l, _ := NewLoader(dir)
	c, err := l.LoadFile("Some Notes.md")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if c.Layout != models.LayoutPost {
		t.Errorf("default Layout = %q, want post", c.Layout)
	}
	if c.Path != "/blog/some-notes" {
		t.Errorf("Path = %q", c.Path)
	}
	if c.Title != "some notes" {
		t.Errorf("fallback Title = %q", c.Title)
	}
	if !c.Date.IsZero() {
		t.Errorf("Date = %v, want zero", c.Date)
	}
}

// TestLoadFile_Routes covers the layout-specific route prefixes and the
// front matter override.
func TestLoadFile_Routes(t *testing.T) {
	tests := []struct {
		name string
		rel  string
		src  string
		want string
	}{
		{
			name: "about page",
			rel:  "about.md",
			src:  "---\nlayout: about\n---\nHi.\n",
			want: "/about",
		},
		{
			name: "project",
			rel:  "projects/business-math.md",
			src:  "---\nlayout: project\n---\nA library.\n",
			want: "/projects/business-math",
		},
		{
			name: "sharing",
			rel:  "sharing/links.md",
			src:  "---\nlayout: sharing\n---\nLinks.\n",
			want: "/sharing/links",
		},
		{
			name: "explicit path override",
			rel:  "misc/anything.md",
			src:  "---\nlayout: post\npath: /blog/custom-route\n---\nBody.\n",
			want: "/blog/custom-route",
		},
		{
			name: "override gains leading slash",
			rel:  "misc/other.md",
			src:  "---\npath: blog/relative\n---\nBody.\n",
			want: "/blog/relative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, tt.rel, tt.src)
			l, _ := NewLoader(dir)

			c, err := l.LoadFile(tt.rel)
			if err != nil {
				t.Fatalf("LoadFile: %v", err)
			}
			if c.Path != tt.want {
				t.Errorf("Path = %q, want %q", c.Path, tt.want)
			}
		})
	}
}

// TestLoadFile_UnknownLayoutFallsBack verifies the closed layout set is
// enforced at ingestion.
func TestLoadFile_UnknownLayoutFallsBack(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "weird.md", "---\nlayout: gallery\n---\nBody.\n")

	l, _ := NewLoader(dir)
	c, err := l.LoadFile("weird.md")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.Layout != models.LayoutPost {
		t.Errorf("Layout = %q, want post fallback", c.Layout)
	}
}

// TestLoadAll walks nested directories, picks up only markdown, and keeps
// going past unreadable entries.
func TestLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "posts/a.md", "---\ntitle: A\n---\nbody\n")
	writeFile(t, dir, "posts/2026/b.markdown", "---\ntitle: B\n---\nbody\n")
	writeFile(t, dir, "notes.txt", "not markdown")
	writeFile(t, dir, "image.png", "binary-ish")

	l, _ := NewLoader(dir)
	records, err := l.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2: %+v", len(records), records)
	}
	titles := map[string]bool{}
	for _, r := range records {
		titles[r.Title] = true
	}
	if !titles["A"] || !titles["B"] {
		t.Errorf("unexpected titles: %v", titles)
	}
}

func TestLoadAll_EmptyDir(t *testing.T) {
	l, _ := NewLoader(t.TempDir())
	records, err := l.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("records = %+v, want none", records)
	}
}
