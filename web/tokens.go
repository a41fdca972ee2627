package web

import (
	"bytes"

	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

// Token codes
const (
	whitespaceCode = iota
	callbackCode
	openParenCode
	closeParenCode
	payloadCode
)

// Token definitions
var (
	whitespaceToken = parsly.NewToken(whitespaceCode, "Whitespace", matcher.NewWhiteSpace())
	callbackToken   = parsly.NewToken(callbackCode, "Callback", &callbackMatcher{})
	openParenToken  = parsly.NewToken(openParenCode, "(", matcher.NewByte('('))
	closeParenToken = parsly.NewToken(closeParenCode, ")", matcher.NewByte(')'))
	payloadToken    = parsly.NewToken(payloadCode, "Payload", &payloadMatcher{})
)

// callbackMatcher matches a JSONP callback name: an identifier that may be
// dotted (window.cb) and may contain '$', as produced by common client
// libraries.
type callbackMatcher struct{}

func (m *callbackMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize

	if pos >= size {
		return 0
	}
	if !isCallbackStart(input[pos]) {
		return 0
	}
	matched := 1
	for i := pos + 1; i < size; i++ {
		c := input[i]
		if isCallbackStart(c) || (c >= '0' && c <= '9') || c == '.' {
			matched++
			continue
		}
		break
	}
	return matched
}

func isCallbackStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' || c == '$'
}

// payloadMatcher consumes everything up to the envelope's closing
// parenthesis, which is the last ')' in the input.  Scanning from the end
// keeps parentheses inside the payload (embedded in JSON strings) intact.
type payloadMatcher struct{}

func (m *payloadMatcher) Match(cursor *parsly.Cursor) int {
	end := bytes.LastIndexByte(cursor.Input, ')')
	if end <= cursor.Pos {
		return 0
	}
	return end - cursor.Pos
}
