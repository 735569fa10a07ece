// Package coerce converts loosely-typed report values into strings and
// integers with explicit defaults. Every extractor funnels raw attribute
// and text values through these helpers so that missing or garbage input
// degrades to a known default instead of leaking zero-ish surprises.
package coerce

import (
	"strconv"
	"strings"
)

// Str returns s trimmed, or def when s is empty or whitespace.
func Str(s, def string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	return s
}

// Int parses s as a base-10 integer, returning def when s is empty or
// not numeric.
func Int(s string, def int64) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return def
	}
	return v
}

// NonNeg parses s like Int but additionally clamps negative values to def.
// Revisions and sizes are never negative in a well-formed report.
func NonNeg(s string, def int64) int64 {
	v := Int(s, def)
	if v < 0 {
		return def
	}
	return v
}
