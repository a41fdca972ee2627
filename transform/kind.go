package transform

// Kind classifies a dynamic value into the closed set of shapes the package
// operates on.
type Kind int

const (
	// KindNull is the untyped nil, used as the absent sentinel by Merge.
	KindNull Kind = iota
	// KindScalar covers everything that is not a container: numbers,
	// strings, booleans and any opaque value the caller passes through.
	KindScalar
	// KindSequence is an ordered []interface{} container.
	KindSequence
	// KindMapping is a keyed map[string]interface{} container.
	KindMapping
)

// KindOf returns the shape of v.  It is the only place in the package that
// inspects a value's dynamic type; Clone and Merge dispatch on its result.
func KindOf(v interface{}) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case map[string]interface{}:
		return KindMapping
	case []interface{}:
		return KindSequence
	default:
		return KindScalar
	}
}

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	}
	return "unknown"
}
