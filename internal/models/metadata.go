// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"fmt"
)

// MetaKind identifies which variant a MetaValue holds.
type MetaKind int

const (
	MetaString MetaKind = iota
	MetaNumber
	MetaBool
	MetaStrings
)

// MetaValue is one typed metadata value: a string, a number, a bool, or a
// list of strings. Accessors fail closed — a kind mismatch yields the
// caller's default, never a panic.
type MetaValue struct {
	kind MetaKind
	s    string
	n    float64
	b    bool
	list []string
}

// String returns a MetaValue holding a string.
func String(s string) MetaValue { return MetaValue{kind: MetaString, s: s} }

// Number returns a MetaValue holding a number.
func Number(n float64) MetaValue { return MetaValue{kind: MetaNumber, n: n} }

// Bool returns a MetaValue holding a boolean.
func Bool(b bool) MetaValue { return MetaValue{kind: MetaBool, b: b} }

// Strings returns a MetaValue holding a list of strings.
func Strings(list []string) MetaValue { return MetaValue{kind: MetaStrings, list: list} }

// Kind returns the variant held by the value.
func (v MetaValue) Kind() MetaKind { return v.kind }

// MarshalJSON encodes the underlying variant directly, so metadata stored
// as JSONB round-trips without a wrapper object.
func (v MetaValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case MetaNumber:
		return json.Marshal(v.n)
	case MetaBool:
		return json.Marshal(v.b)
	case MetaStrings:
		return json.Marshal(v.list)
	default:
		return json.Marshal(v.s)
	}
}

// UnmarshalJSON decodes a scalar or string list into the matching variant.
func (v *MetaValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	mv, ok := FromAny(raw)
	if !ok {
		return fmt.Errorf("metadata: unsupported value %s", data)
	}
	*v = mv
	return nil
}

// FromAny converts a dynamically-typed value (as produced by yaml or json
// decoding) into a MetaValue. Returns false for unsupported shapes such as
// nested maps.
func FromAny(raw any) (MetaValue, bool) {
	switch t := raw.(type) {
	case string:
		return String(t), true
	case bool:
		return Bool(t), true
	case int:
		return Number(float64(t)), true
	case int64:
		return Number(float64(t)), true
	case float64:
		return Number(t), true
	case []any:
		list := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return MetaValue{}, false
			}
			list = append(list, s)
		}
		return Strings(list), true
	}
	return MetaValue{}, false
}

// Metadata is the per-record metadata bag: free-form keys with typed values
// (title override, series name, draft flag, and so on).
type Metadata map[string]MetaValue

// StringOr returns the string stored at key, or def when the key is absent
// or holds a different kind.
func (m Metadata) StringOr(key, def string) string {
	v, ok := m[key]
	if !ok || v.kind != MetaString {
		return def
	}
	return v.s
}

// NumberOr returns the number stored at key, or def on absence or mismatch.
func (m Metadata) NumberOr(key string, def float64) float64 {
	v, ok := m[key]
	if !ok || v.kind != MetaNumber {
		return def
	}
	return v.n
}

// BoolOr returns the bool stored at key, or def on absence or mismatch.
func (m Metadata) BoolOr(key string, def bool) bool {
	v, ok := m[key]
	if !ok || v.kind != MetaBool {
		return def
	}
	return v.b
}

// StringsOr returns the string list stored at key, or def on absence or
// mismatch.
func (m Metadata) StringsOr(key string, def []string) []string {
	v, ok := m[key]
	if !ok || v.kind != MetaStrings {
		return def
	}
	return v.list
}
