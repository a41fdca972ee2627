package web

import "strings"

// MergeHeaders returns a fresh header map combining headers with
// headersToMerge.  All keys are lowercased so that case variants collapse
// onto a single entry, and headersToMerge wins on collision.  Either
// argument may be nil.
func MergeHeaders(headers, headersToMerge map[string]string) map[string]string {
	out := make(map[string]string, len(headers)+len(headersToMerge))
	for key, value := range headers {
		out[strings.ToLower(key)] = value
	}
	for key, value := range headersToMerge {
		out[strings.ToLower(key)] = value
	}
	return out
}
