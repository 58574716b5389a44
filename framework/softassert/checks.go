package softassert

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
	m "github.com/launchdarkly/go-test-helpers/v2/matchers"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"

	"github.com/toolshop-qa/api-test-harness/framework/helpers"
)

func detail(expected, actual string) string {
	return "expected: " + expected + "\nactual: " + actual
}

// Equal checks that actual equals expected. ldvalue.Value operands are compared as JSON.
func (a *Assertions) Equal(description string, expected, actual interface{}) bool {
	passed := equal(expected, actual)
	return a.Record(description, passed, detail(describe(expected), describe(actual)))
}

// NotEqual checks that actual is anything other than unexpected.
func (a *Assertions) NotEqual(description string, unexpected, actual interface{}) bool {
	passed := !equal(unexpected, actual)
	return a.Record(description, passed, detail("anything but "+describe(unexpected), describe(actual)))
}

func equal(expected, actual interface{}) bool {
	if ev, ok := expected.(ldvalue.Value); ok {
		if av, ok := actual.(ldvalue.Value); ok {
			return ev.Equal(av)
		}
	}
	return assert.ObjectsAreEqual(expected, actual)
}

// Kind checks that a JSON value has one of the given types. The value can be a gjson.Result,
// an ldvalue.Value, or raw JSON bytes or text; a gjson.Result for a missing property fails every
// kind.
func (a *Assertions) Kind(description string, value interface{}, kinds ...Kind) bool {
	result := asGJSON(value)
	actualKinds := KindsOf(result)
	passed := false
	for _, k := range kinds {
		if helpers.SliceContains(k, actualKinds) {
			passed = true
			break
		}
	}
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, string(k))
	}
	actual := string(describeKind(result))
	if result.Exists() {
		actual += " " + helpers.TruncatedString(result.Raw, 80)
	}
	return a.Record(description, passed, detail(strings.Join(names, " or "), actual))
}

// HasKey checks that a JSON object has the named property, even if its value is null.
func (a *Assertions) HasKey(description string, object interface{}, key string) bool {
	result := asGJSON(object)
	passed := result.IsObject() && result.Get(EscapeKey(key)).Exists()
	return a.Record(description, passed,
		detail(fmt.Sprintf("object with property %q", key), helpers.TruncatedString(describeJSON(result), 200)))
}

// NotHasKey checks that a JSON value is not an object with the named property.
func (a *Assertions) NotHasKey(description string, object interface{}, key string) bool {
	result := asGJSON(object)
	passed := !(result.IsObject() && result.Get(EscapeKey(key)).Exists())
	return a.Record(description, passed,
		detail(fmt.Sprintf("no property %q", key), helpers.TruncatedString(describeJSON(result), 200)))
}

// HeaderEqual checks the value of a response header. Multiple values are joined with ", ".
func (a *Assertions) HeaderEqual(description string, header http.Header, name, expected string) bool {
	actual := strings.Join(header.Values(name), ", ")
	return a.Record(description, actual == expected, detail(fmt.Sprintf("%q", expected), fmt.Sprintf("%q", actual)))
}

// HeaderOneOf checks that a response header has one of the allowed values.
func (a *Assertions) HeaderOneOf(description string, header http.Header, name string, allowed ...string) bool {
	actual := strings.Join(header.Values(name), ", ")
	quoted := make([]string, 0, len(allowed))
	for _, v := range allowed {
		quoted = append(quoted, fmt.Sprintf("%q", v))
	}
	return a.Record(description, helpers.SliceContains(actual, allowed),
		detail("one of "+strings.Join(quoted, ", "), fmt.Sprintf("%q", actual)))
}

// HeaderAbsent checks that a response header is not present at all.
func (a *Assertions) HeaderAbsent(description string, header http.Header, name string) bool {
	values := header.Values(name)
	return a.Record(description, len(values) == 0,
		detail(fmt.Sprintf("no %s header", name), fmt.Sprintf("%q", strings.Join(values, ", "))))
}

// AtMost checks that a duration does not exceed a bound.
func (a *Assertions) AtMost(description string, actual, bound time.Duration) bool {
	return a.Record(description, actual <= bound, detail("at most "+bound.String(), actual.String()))
}

// LessOrEqual checks that a number does not exceed a bound.
func (a *Assertions) LessOrEqual(description string, actual, bound float64) bool {
	return a.Record(description, actual <= bound, detail(fmt.Sprintf("<= %v", bound), fmt.Sprintf("%v", actual)))
}

// Contains checks that a string contains a substring, or a slice, array or map contains an
// element, as defined by assert.Contains.
func (a *Assertions) Contains(description string, container, element interface{}) bool {
	return a.testify(description, func(t assert.TestingT) bool {
		return assert.Contains(t, container, element)
	})
}

// NotContains is the inverse of Contains.
func (a *Assertions) NotContains(description string, container, element interface{}) bool {
	return a.testify(description, func(t assert.TestingT) bool {
		return assert.NotContains(t, container, element)
	})
}

// Sorted checks that a list of strings is in ascending order.
func (a *Assertions) Sorted(description string, values []string) bool {
	i := helpers.FirstUnsorted(values)
	if i < 0 {
		return a.Record(description, true, "")
	}
	return a.Record(description, false,
		detail("ascending order", fmt.Sprintf("%q came before %q at index %d", values[i-1], values[i], i)))
}

// JSONEqual checks that two JSON documents are equal regardless of property order. Each
// operand can be a string or []byte of JSON, an ldvalue.Value, or any value that can be
// marshaled to JSON. An operand that is not well-formed JSON always fails the check.
func (a *Assertions) JSONEqual(description string, expected, actual interface{}) bool {
	ev, eok := toJSONValue(expected)
	av, aok := toJSONValue(actual)
	return a.Record(description, eok && aok && ev.Equal(av),
		detail(describeJSONOperand(expected, ev, eok), describeJSONOperand(actual, av, aok)))
}

func describeJSONOperand(original interface{}, value ldvalue.Value, valid bool) string {
	if !valid {
		return "malformed JSON " + helpers.TruncatedString(describe(original), 200)
	}
	return helpers.CanonicalizedJSONString(value)
}

// True checks a condition that has no better-suited check. The description should say what
// was expected.
func (a *Assertions) True(description string, condition bool) bool {
	return a.Record(description, condition, detail("true", "false"))
}

// That applies a matcher from the go-test-helpers matchers package.
func (a *Assertions) That(description string, value interface{}, matcher m.Matcher) bool {
	var recorder helpers.TestRecorder
	passed := m.In(&recorder).Assert(value, matcher)
	return a.Record(description, passed, strings.Join(recorder.Errors, "\n"))
}

func (a *Assertions) testify(description string, check func(assert.TestingT) bool) bool {
	var recorder helpers.TestRecorder
	passed := check(&recorder)
	messages := make([]string, 0, len(recorder.Errors))
	for _, e := range recorder.Errors {
		messages = append(messages, helpers.StripTestifyTrace(e))
	}
	return a.Record(description, passed, strings.Join(messages, "\n"))
}

// toJSONValue returns false if v is raw JSON text that does not parse.
func toJSONValue(v interface{}) (ldvalue.Value, bool) {
	switch tv := v.(type) {
	case ldvalue.Value:
		return tv, true
	case string:
		return ldvalue.Parse([]byte(tv)), gjson.Valid(tv)
	case []byte:
		return ldvalue.Parse(tv), gjson.ValidBytes(tv)
	case gjson.Result:
		return ldvalue.Parse([]byte(tv.Raw)), tv.Exists() && gjson.Valid(tv.Raw)
	default:
		return helpers.AsJSONValue(v), true
	}
}

func describeJSON(result gjson.Result) string {
	if !result.Exists() {
		return "nothing"
	}
	return result.Raw
}

func describe(v interface{}) string {
	switch tv := v.(type) {
	case nil:
		return "nil"
	case string:
		return fmt.Sprintf("%q", tv)
	case []byte:
		return fmt.Sprintf("%q", string(tv))
	case ldvalue.Value:
		return tv.JSONString()
	case gjson.Result:
		return describeJSON(tv)
	case fmt.Stringer:
		return tv.String()
	case map[string]interface{}, []interface{}, map[string][]string:
		return helpers.AsJSONString(tv)
	default:
		return fmt.Sprintf("%v", tv)
	}
}
