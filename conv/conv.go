// Package conv provides lenient numeric coercion helpers for values arriving
// from dynamic payloads, plus the paging arithmetic the host application
// pairs them with.
package conv

import (
	"math"

	"github.com/viant/toolbox"
)

// PositiveInts coerces each entry (string or number) to a number and keeps
// only positive integral values, preserving order.  Entries that fail to
// coerce, or that are zero, negative or fractional, are dropped silently.
func PositiveInts(values []interface{}) []int {
	out := make([]int, 0, len(values))
	for _, value := range values {
		f := toolbox.AsFloat(value)
		if f > 0 && f == math.Trunc(f) {
			out = append(out, int(f))
		}
	}
	return out
}

// PageCount returns the number of pages needed to show total items at
// perPage items per page.  Non-positive arguments yield 0.
func PageCount(perPage, total int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}
