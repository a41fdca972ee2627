// Package sliceutil holds small generic slice helpers shared across the kit.
package sliceutil

import "slices"

// AppendUnique appends item to the slice behind items unless an equal
// element is already present.
func AppendUnique[T comparable](items *[]T, item T) {
	if slices.Contains(*items, item) {
		return
	}
	*items = append(*items, item)
}
