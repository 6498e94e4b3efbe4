package models

import (
	"testing"
	"time"
)

// TestKnownLayout verifies the closed layout set: the four recognized
// variants and nothing else.
func TestKnownLayout(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
		want   bool
	}{
		{name: "about", layout: LayoutAbout, want: true},
		{name: "post", layout: LayoutPost, want: true},
		{name: "project", layout: LayoutProject, want: true},
		{name: "sharing", layout: LayoutSharing, want: true},
		{name: "empty", layout: Layout(""), want: false},
		{name: "unknown", layout: Layout("gallery"), want: false},
		{name: "uppercase POST", layout: Layout("POST"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KnownLayout(tt.layout); got != tt.want {
				t.Errorf("KnownLayout(%q) = %v, want %v", tt.layout, got, tt.want)
			}
		})
	}
}

// TestContentIsPost verifies that only the post layout lands on the blog
// listing.
func TestContentIsPost(t *testing.T) {
	if !(&Content{Layout: LayoutPost}).IsPost() {
		t.Error("post layout should be a post")
	}
	if (&Content{Layout: LayoutAbout}).IsPost() {
		t.Error("about layout should not be a post")
	}
}

// TestContentHasDate verifies zero-date detection for records ingested
// from files with missing or malformed dates.
func TestContentHasDate(t *testing.T) {
	c := &Content{}
	if c.HasDate() {
		t.Error("zero date should report HasDate() = false")
	}
	c.Date = time.Date(2026, 2, 3, 10, 30, 0, 0, time.UTC)
	if !c.HasDate() {
		t.Error("set date should report HasDate() = true")
	}
}

// TestContentDisplayTitle verifies the metadata title override falls back
// to the raw title field when absent or of the wrong kind.
func TestContentDisplayTitle(t *testing.T) {
	tests := []struct {
		name string
		c    Content
		want string
	}{
		{
			name: "no metadata",
			c:    Content{Title: "Raw Title"},
			want: "Raw Title",
		},
		{
			name: "override present",
			c: Content{
				Title:    "Raw Title",
				Metadata: Metadata{"title": String("Pretty Title")},
			},
			want: "Pretty Title",
		},
		{
			name: "override wrong kind falls back",
			c: Content{
				Title:    "Raw Title",
				Metadata: Metadata{"title": Number(7)},
			},
			want: "Raw Title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.DisplayTitle(); got != tt.want {
				t.Errorf("DisplayTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}
