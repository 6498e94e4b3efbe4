// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package listing

import (
	"sort"

	"inkwell/internal/models"
)

// Tags returns the distinct tag strings across all records, sorted
// ascending for stable display in the filter dropdown. Records without
// tags contribute nothing; an empty input yields an empty slice.
func Tags(records []models.Content) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range records {
		for _, tag := range r.Tags {
			if tag == "" {
				continue
			}
			if _, dup := seen[tag]; dup {
				continue
			}
			seen[tag] = struct{}{}
			out = append(out, tag)
		}
	}
	sort.Strings(out)
	return out
}
