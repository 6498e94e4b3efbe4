// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package listing builds the blog index data: the sorted post entries with
// their filter attributes, the distinct tag set for the dropdown, and the
// per-month buckets for the sidebar. Everything here is a pure, single-pass
// transform over the in-memory content collection — run once per render,
// no retained state.
package listing

import (
	"sort"
	"strings"

	"inkwell/internal/models"
)

// Entry is the render-ready projection of one content record on the blog
// index page. The three attribute fields land in data-date, data-month, and
// data-tags, which the client-side filter/sort script matches against.
type Entry struct {
	Record *models.Content

	Title          string
	Path           string
	DisplayDate    string
	AttributeDate  string
	MonthKey       string
	TagsAttribute  string
	ReadingMinutes int
}

// Build produces one Entry per record, sorted by date descending — newest
// first is the initial order; the client-side toggle may reverse it after
// load. Records with an unresolvable date are never dropped: they sink to
// the end of the listing (treated as oldest) with empty date attributes.
func Build(records []models.Content) []Entry {
	sorted := make([]*models.Content, len(records))
	for i := range records {
		sorted[i] = &records[i]
	}
	// Stable so equal-dated posts keep their input order across renders.
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.HasDate() != b.HasDate() {
			return a.HasDate()
		}
		return a.Date.After(b.Date)
	})

	entries := make([]Entry, 0, len(sorted))
	for _, r := range sorted {
		e := Entry{
			Record:         r,
			Title:          r.DisplayTitle(),
			Path:           r.Path,
			TagsAttribute:  strings.Join(r.Tags, ","),
			ReadingMinutes: ReadingMinutes(r.Body),
		}
		if r.HasDate() {
			e.DisplayDate = DisplayDate(r.Date)
			e.AttributeDate = AttributeDate(r.Date)
			e.MonthKey = MonthKey(r.Date)
		}
		entries = append(entries, e)
	}
	return entries
}
