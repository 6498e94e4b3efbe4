// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package listing

import (
	"sort"

	"inkwell/internal/models"
)

// MonthBucket is one month's worth of posts for the sidebar: the "YYYY-MM"
// key, a display label, and the post count. Derived per render, never
// persisted.
type MonthBucket struct {
	Key   string
	Label string
	Count int
}

// GroupByMonth buckets records by calendar month, returning a sparse
// mapping from "YYYY-MM" key to count. Months without records never appear
// as keys. Records whose date cannot be resolved (zero Date) are skipped
// silently — a single malformed record must not take the listing down, it
// just stays out of the sidebar counts.
func GroupByMonth(records []models.Content) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		if !r.HasDate() {
			continue
		}
		counts[MonthKey(r.Date)]++
	}
	return counts
}

// SortedMonths converts a GroupByMonth mapping into sidebar buckets ordered
// by key descending, most recent month first. "YYYY-MM" keys sort
// chronologically as plain strings.
func SortedMonths(counts map[string]int) []MonthBucket {
	buckets := make([]MonthBucket, 0, len(counts))
	for key, count := range counts {
		buckets = append(buckets, MonthBucket{
			Key:   key,
			Label: MonthLabel(key),
			Count: count,
		})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Key > buckets[j].Key
	})
	return buckets
}
