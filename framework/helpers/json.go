package helpers

import (
	"encoding/json"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
)

// AsJSON is a shortcut for json.Marshal that ignores the error.
func AsJSON(value interface{}) []byte {
	ret, _ := json.Marshal(value)
	return ret
}

// AsJSONString calls json.Marshal and returns the result as a string.
func AsJSONString(value interface{}) string { return string(AsJSON(value)) }

// AsJSONValue converts any serializable value to an ldvalue.Value.
func AsJSONValue(value interface{}) ldvalue.Value { return ldvalue.Parse(AsJSON(value)) }

// CanonicalizedJSONString reformats a JSON value so that object properties are alphabetized,
// which keeps failure output stable between runs.
func CanonicalizedJSONString(value ldvalue.Value) string {
	// encoding/json writes map keys in sorted order.
	return string(AsJSON(value.AsArbitraryValue()))
}

// TruncatedString shortens s to at most maxLength characters for use in log lines.
func TruncatedString(s string, maxLength int) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	return string(runes[:maxLength]) + "..."
}
