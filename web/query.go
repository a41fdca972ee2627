package web

import (
	"net/url"
	"sort"
	"strings"

	"github.com/viant/toolbox"
)

// Stringify serialises entries into an URL-encoded query string.  A mapping
// is serialised with its keys sorted so that output is deterministic; a list
// of [key, value] pairs keeps the caller's order.  Keys and values are
// percent-encoded; values are coerced to strings.  Nil or unsupported input
// yields the empty string.
func Stringify(entries interface{}) string {
	switch typed := entries.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(typed))
		for key := range typed {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, key := range keys {
			parts = append(parts, encodePair(key, typed[key]))
		}
		return strings.Join(parts, "&")
	case [][]interface{}:
		parts := make([]string, 0, len(typed))
		for _, pair := range typed {
			if len(pair) < 2 {
				continue
			}
			parts = append(parts, encodePair(toolbox.AsString(pair[0]), pair[1]))
		}
		return strings.Join(parts, "&")
	}
	return ""
}

func encodePair(key string, value interface{}) string {
	return url.QueryEscape(key) + "=" + url.QueryEscape(toolbox.AsString(value))
}
