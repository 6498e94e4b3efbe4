package frontmatter

import (
	"reflect"
	"testing"
	"time"

	"inkwell/internal/models"
)

func TestParse_FullFrontmatter(t *testing.T) {
	input := []byte(`---
title: Bond Valuation Basics
date: 2026-02-03 14:05
tags:
  - bonds
  - swift
layout: post
series: business-math
draft: false
---
# Bond Valuation Basics

Present value of coupons plus principal.
`)
	r := Parse(input)

	if r.Title != "Bond Valuation Basics" {
		t.Errorf("Title = %q", r.Title)
	}
	want := time.Date(2026, 2, 3, 14, 5, 0, 0, time.UTC)
	if !r.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", r.Date, want)
	}
	if !reflect.DeepEqual(r.Tags, []string{"bonds", "swift"}) {
		t.Errorf("Tags = %v", r.Tags)
	}
	if r.Layout != models.LayoutPost {
		t.Errorf("Layout = %q", r.Layout)
	}
	if got := r.Metadata.StringOr("series", ""); got != "business-math" {
		t.Errorf("metadata series = %q", got)
	}
	if got := r.Metadata.BoolOr("draft", true); got != false {
		t.Errorf("metadata draft = %v", got)
	}
	if r.Body == "" || r.Body[0] != '#' {
		t.Errorf("Body = %q", r.Body)
	}
}

func TestParse_NoFrontmatter(t *testing.T) {
	input := []byte("# Just a heading\nSome text.\n")
	r := Parse(input)
	if r.Body != "# Just a heading\nSome text.\n" {
		t.Errorf("Body = %q", r.Body)
	}
	if r.Title != "Just a heading" {
		t.Errorf("Title fallback = %q", r.Title)
	}
	if !r.Date.IsZero() {
		t.Errorf("Date = %v, want zero", r.Date)
	}
}

func TestParse_InvalidYAMLFallsBackToBody(t *testing.T) {
	input := []byte("---\n: invalid: yaml: {{{\n---\nBody text\n")
	r := Parse(input)
	if r.Metadata != nil {
		t.Errorf("Metadata = %v, want nil on invalid yaml", r.Metadata)
	}
	if r.Body == "" {
		t.Error("Body should not be empty")
	}
}

func TestParse_UnclosedFrontmatter(t *testing.T) {
	input := []byte("---\ntitle: Dangling\nno closing delimiter\n")
	r := Parse(input)
	// Everything is body when the closing delimiter is missing.
	if r.Title == "Dangling" {
		t.Error("unclosed front matter should not be parsed as fields")
	}
}

// TestParse_DateFormats runs the accepted date shapes plus the malformed
// case that must yield a zero time rather than an error.
func TestParse_DateFormats(t *testing.T) {
	tests := []struct {
		name string
		line string
		want time.Time
	}{
		{
			name: "date only",
			line: `date: "2026-02-03"`,
			want: time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "date and time",
			line: `date: "2026-02-03 09:30"`,
			want: time.Date(2026, 2, 3, 9, 30, 0, 0, time.UTC),
		},
		{
			name: "rfc3339",
			line: `date: "2026-02-03T09:30:00Z"`,
			want: time.Date(2026, 2, 3, 9, 30, 0, 0, time.UTC),
		},
		{
			name: "malformed yields zero",
			line: `date: "third of February"`,
			want: time.Time{},
		},
		{
			name: "wrong type yields zero",
			line: `date: [2026, 2, 3]`,
			want: time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := []byte("---\n" + tt.line + "\n---\nbody\n")
			r := Parse(input)
			if !r.Date.Equal(tt.want) {
				t.Errorf("Date = %v, want %v", r.Date, tt.want)
			}
		})
	}
}

func TestParse_TagsSkipNonStrings(t *testing.T) {
	input := []byte("---\ntags:\n  - go\n  - 42\n  - \"  \"\n  - blog\n---\nbody\n")
	r := Parse(input)
	if !reflect.DeepEqual(r.Tags, []string{"go", "blog"}) {
		t.Errorf("Tags = %v, want [go blog]", r.Tags)
	}
}

func TestParse_UnknownScalarLandsInMetadata(t *testing.T) {
	input := []byte("---\nestimated_minutes: 7\nsources:\n  - a\n  - b\n---\nbody\n")
	r := Parse(input)
	if got := r.Metadata.NumberOr("estimated_minutes", 0); got != 7 {
		t.Errorf("metadata estimated_minutes = %v", got)
	}
	if got := r.Metadata.StringsOr("sources", nil); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("metadata sources = %v", got)
	}
}
