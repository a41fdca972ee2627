package transform

// Clone copies value without mutating it.  Scalars and nil are returned
// unchanged.  Sequences always yield a fresh container whose elements are
// themselves passed through Clone with the same deep flag, so one level of
// sequence element is copied regardless of deep.  Mappings yield a fresh map
// whose values are cloned recursively when deep is true and shared by
// reference when deep is false.
//
// For container inputs the result is never the same instance as the input.
func Clone(value interface{}, deep bool) interface{} {
	switch KindOf(value) {
	case KindSequence:
		seq := value.([]interface{})
		out := make([]interface{}, len(seq))
		for i, item := range seq {
			out[i] = Clone(item, deep)
		}
		return out
	case KindMapping:
		mapping := value.(map[string]interface{})
		out := make(map[string]interface{}, len(mapping))
		for key, item := range mapping {
			if deep {
				out[key] = Clone(item, true)
				continue
			}
			out[key] = item
		}
		return out
	default:
		return value
	}
}

// NewObject returns a mapping the caller owns: a shallow copy when value is
// a mapping, a fresh empty mapping for anything else (including nil).
func NewObject(value interface{}) map[string]interface{} {
	if KindOf(value) == KindMapping {
		return Clone(value, false).(map[string]interface{})
	}
	return map[string]interface{}{}
}
