package web

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/viant/parsly"
)

// ParseJSONP unwraps a JSONP response of the form callback(payload) - with
// optional surrounding whitespace and any run of trailing semicolons - and
// decodes the payload into a dynamic value (map[string]interface{},
// []interface{} or scalar).  A malformed envelope or payload yields an error
// with no partial result.
func ParseJSONP(jsonp string) (interface{}, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(jsonp), "; \t\r\n")

	cursor := parsly.NewCursor("", []byte(trimmed), 0)

	matched := cursor.MatchAfterOptional(whitespaceToken, callbackToken)
	if matched.Code != callbackToken.Code {
		return nil, cursor.NewError(callbackToken)
	}

	matched = cursor.MatchAfterOptional(whitespaceToken, openParenToken)
	if matched.Code != openParenToken.Code {
		return nil, cursor.NewError(openParenToken)
	}

	matched = cursor.MatchOne(payloadToken)
	if matched.Code != payloadToken.Code {
		return nil, cursor.NewError(payloadToken)
	}
	payload := matched.Text(cursor)

	matched = cursor.MatchOne(closeParenToken)
	if matched.Code != closeParenToken.Code {
		return nil, cursor.NewError(closeParenToken)
	}
	if cursor.Pos != cursor.InputSize {
		return nil, fmt.Errorf("unexpected trailing content at position %d", cursor.Pos)
	}

	var value interface{}
	if err := json.Unmarshal([]byte(payload), &value); err != nil {
		return nil, fmt.Errorf("invalid jsonp payload: %w", err)
	}
	return value, nil
}
