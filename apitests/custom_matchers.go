package apitests

import (
	"github.com/toolshop-qa/api-test-harness/framework/harness"
	"github.com/toolshop-qa/api-test-harness/framework/softassert"

	m "github.com/launchdarkly/go-test-helpers/v2/matchers"
)

// The functions in this file are for convenient use of the matchers API with responses. For
// more information, see matchers.Transform.

func StatusCode() m.MatcherTransform {
	return m.Transform(
		"status code",
		func(value interface{}) (interface{}, error) {
			return value.(harness.Response).StatusCode, nil
		}).
		EnsureInputValueType(harness.Response{})
}

// ResponseProperty transforms a response into the string form of the JSON value at a gjson
// path, or "" if there is none.
func ResponseProperty(path string) m.MatcherTransform {
	return m.Transform(
		"response property "+path,
		func(value interface{}) (interface{}, error) {
			return value.(harness.Response).Get(path).String(), nil
		}).
		EnsureInputValueType(harness.Response{})
}

// FirstValidationMessage transforms a response into the first message listed for a field in
// a validation error body such as {"name": ["The name field is required."]}.
func FirstValidationMessage(field string) m.MatcherTransform {
	return m.Transform(
		"first validation message for "+field,
		func(value interface{}) (interface{}, error) {
			return value.(harness.Response).Get(softassert.EscapeKey(field) + ".0").String(), nil
		}).
		EnsureInputValueType(harness.Response{})
}

// StatusIn matches a status code that is any of the given values.
func StatusIn(statuses ...int) m.Matcher {
	matchers := make([]m.Matcher, 0, len(statuses))
	for _, s := range statuses {
		matchers = append(matchers, m.Equal(s))
	}
	return StatusCode().Should(m.AnyOf(matchers...))
}
