package transform

// Merge combines source into target and returns the result.
//
// nil acts as the neutral element: merging with a nil side returns the other
// side unchanged.  When either side is a non-container, or the two sides are
// containers of different shapes, source wins outright.  Two sequences merge
// by concatenation (target elements first).  Two mappings merge key-wise:
// every key present in source is merged recursively into target, keys present
// only in target are left untouched, and the mutated target is returned.  A
// typed-nil target mapping cannot be written into and is replaced with a
// fresh mapping.
//
// Merge writes into target but never into source.  Callers sharing a target
// across goroutines must synchronise; self-referential inputs are not
// guarded against and recurse without bound.
func Merge(target, source interface{}) interface{} {
	if target == nil {
		return source
	}
	if source == nil {
		return target
	}
	targetKind, sourceKind := KindOf(target), KindOf(source)
	switch {
	case targetKind == KindSequence && sourceKind == KindSequence:
		t, s := target.([]interface{}), source.([]interface{})
		out := make([]interface{}, 0, len(t)+len(s))
		out = append(out, t...)
		return append(out, s...)
	case targetKind == KindMapping && sourceKind == KindMapping:
		t, s := target.(map[string]interface{}), source.(map[string]interface{})
		if t == nil {
			t = make(map[string]interface{}, len(s))
		}
		for key, value := range s {
			t[key] = Merge(t[key], value)
		}
		return t
	default:
		return source
	}
}

// MergedCopy behaves like Merge but aliases neither argument: both sides are
// deep cloned before merging, so the result can be mutated freely without
// affecting target or source.
func MergedCopy(target, source interface{}) interface{} {
	return Merge(Clone(target, true), Clone(source, true))
}
