// Package transform implements shape-preserving operations over dynamic
// values as produced by generic decoders (JSON, YAML): cloning, merging and
// mapping normalisation.  A value is one of four shapes - null, scalar,
// sequence or mapping - classified once by KindOf; every operation pattern
// matches on the resulting Kind rather than re-inspecting raw types.
//
// All functions are safe for concurrent use as long as callers do not share
// a Merge target between goroutines; Merge mutates its target argument.
package transform
