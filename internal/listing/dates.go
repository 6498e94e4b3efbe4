// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package listing

import "time"

// Reference layouts for the three date projections used on the blog index.
// All three are derived from the same time.Time, so the display string, the
// sortable attribute, and the month key can never drift apart for a record.
const (
	displayLayout   = "Jan 2, 2006"
	attributeLayout = "2006-01-02 15:04"
	monthKeyLayout  = "2006-01"
)

// DisplayDate formats a date for human display, e.g. "Feb 3, 2026".
// No time component.
func DisplayDate(t time.Time) string {
	return t.Format(displayLayout)
}

// AttributeDate formats a date as the machine-sortable "YYYY-MM-DD HH:mm"
// string embedded in data-date attributes.
func AttributeDate(t time.Time) string {
	return t.Format(attributeLayout)
}

// MonthKey formats a date as the "YYYY-MM" bucket key used by the month
// sidebar. Always equal to the first seven characters of AttributeDate for
// the same value.
func MonthKey(t time.Time) string {
	return t.Format(monthKeyLayout)
}

// MonthLabel formats a month key's date as "February 2026" for sidebar
// display. Returns the key unchanged when it does not parse.
func MonthLabel(key string) string {
	t, err := time.Parse(monthKeyLayout, key)
	if err != nil {
		return key
	}
	return t.Format("January 2006")
}
