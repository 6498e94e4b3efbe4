package listing

import (
	"strings"
	"testing"
	"time"
)

// TestDateProjections checks the three projections of a single date value
// against their fixed formats.
func TestDateProjections(t *testing.T) {
	d := time.Date(2026, 2, 3, 14, 5, 0, 0, time.UTC)

	if got := DisplayDate(d); got != "Feb 3, 2026" {
		t.Errorf("DisplayDate = %q, want %q", got, "Feb 3, 2026")
	}
	if got := AttributeDate(d); got != "2026-02-03 14:05" {
		t.Errorf("AttributeDate = %q, want %q", got, "2026-02-03 14:05")
	}
	if got := MonthKey(d); got != "2026-02" {
		t.Errorf("MonthKey = %q, want %q", got, "2026-02")
	}
}

// TestMonthKeyAgreesWithAttributeDate verifies the no-drift property: for
// any date, the month key equals the first seven characters of the
// attribute date.
func TestMonthKeyAgreesWithAttributeDate(t *testing.T) {
	dates := []time.Time{
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC),
		time.Date(1999, 7, 4, 12, 0, 0, 0, time.UTC),
		time.Date(2031, 10, 9, 8, 7, 6, 0, time.UTC),
	}
	for _, d := range dates {
		attr := AttributeDate(d)
		if MonthKey(d) != attr[:7] {
			t.Errorf("date %v: MonthKey %q != AttributeDate[:7] %q", d, MonthKey(d), attr[:7])
		}
	}
}

// TestDisplayDateHasNoTimeComponent guards against the display format
// accidentally picking up hours or minutes.
func TestDisplayDateHasNoTimeComponent(t *testing.T) {
	d := time.Date(2026, 2, 3, 23, 59, 0, 0, time.UTC)
	if got := DisplayDate(d); strings.Contains(got, "23") || strings.Contains(got, "59") {
		t.Errorf("DisplayDate leaked a time component: %q", got)
	}
}

// TestMonthLabel covers both a valid key and the passthrough fallback for
// a malformed one.
func TestMonthLabel(t *testing.T) {
	if got := MonthLabel("2026-02"); got != "February 2026" {
		t.Errorf("MonthLabel(2026-02) = %q", got)
	}
	if got := MonthLabel("not-a-key"); got != "not-a-key" {
		t.Errorf("MonthLabel passthrough = %q", got)
	}
}
