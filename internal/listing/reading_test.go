package listing

import (
	"strings"
	"testing"
)

// TestReadingMinutes checks the word-count estimate: count ÷ 200 rounded
// up, at least one minute for any non-empty body.
func TestReadingMinutes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "empty body", body: "", want: 0},
		{name: "whitespace only", body: "  \n\t  ", want: 0},
		{name: "single word", body: "hello", want: 1},
		{name: "under one minute", body: strings.Repeat("word ", 199), want: 1},
		{name: "exactly one minute", body: strings.Repeat("word ", 200), want: 1},
		{name: "just over one minute", body: strings.Repeat("word ", 201), want: 2},
		{name: "several minutes", body: strings.Repeat("word ", 1000), want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReadingMinutes(tt.body); got != tt.want {
				t.Errorf("ReadingMinutes() = %d, want %d", got, tt.want)
			}
		})
	}
}
