// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package frontmatter splits YAML front matter from markdown source and
// maps the recognized fields (title, date, tags, layout, path) onto a
// content record. Unrecognized scalar fields land in the metadata bag.
package frontmatter

import (
	"bytes"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"inkwell/internal/models"
)

// Result holds the parsed pieces of one markdown file.
type Result struct {
	Title    string
	Date     time.Time
	Tags     []string
	Layout   models.Layout
	Path     string
	Metadata models.Metadata
	Body     string
}

// dateLayouts are accepted front matter date formats, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
}

// Parse extracts front matter and body from raw markdown bytes. Files
// without front matter, or with YAML that does not parse, yield a Result
// with only Body and a best-effort title — ingestion never fails on a
// single malformed post.
func Parse(data []byte) *Result {
	fields, body := split(data)

	r := &Result{Body: body}

	for key, raw := range fields {
		switch key {
		case "title":
			if s, ok := raw.(string); ok {
				r.Title = s
			}
		case "date":
			r.Date = parseDate(raw)
		case "tags":
			r.Tags = stringList(raw)
		case "layout":
			if s, ok := raw.(string); ok {
				r.Layout = models.Layout(strings.ToLower(strings.TrimSpace(s)))
			}
		case "path":
			if s, ok := raw.(string); ok {
				r.Path = s
			}
		default:
			if v, ok := models.FromAny(raw); ok {
				if r.Metadata == nil {
					r.Metadata = models.Metadata{}
				}
				r.Metadata[key] = v
			}
		}
	}

	if r.Title == "" {
		r.Title = firstHeading(body)
	}

	return r
}

// split separates the YAML block between leading --- delimiters from the
// body. No front matter, no closing delimiter, or invalid YAML all mean
// the whole input is body.
func split(data []byte) (map[string]any, string) {
	const delim = "---"
	trimmed := bytes.TrimLeft(data, "\n\r")

	if !bytes.HasPrefix(trimmed, []byte(delim)) {
		return nil, string(data)
	}

	rest := trimmed[len(delim):]
	idx := bytes.Index(rest, []byte("\n"+delim))
	if idx < 0 {
		return nil, string(data)
	}

	yamlBlock := rest[:idx]
	body := strings.TrimLeft(string(rest[idx+1+len(delim):]), "\n\r")

	var fields map[string]any
	if err := yaml.Unmarshal(yamlBlock, &fields); err != nil {
		return nil, string(data)
	}
	return fields, body
}

// parseDate resolves the front matter date field. yaml.v3 hands dates in
// several shapes depending on quoting: a time.Time for bare timestamps, a
// string otherwise. Unresolvable values come back as the zero time.
func parseDate(raw any) time.Time {
	switch v := raw.(type) {
	case time.Time:
		return v
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}

// stringList coerces a yaml sequence into a []string, skipping non-string
// items and blank entries.
func stringList(raw any) []string {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// firstHeading returns the first H1 heading text, or empty string.
func firstHeading(body string) string {
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(trimmed[2:])
		}
	}
	return ""
}
