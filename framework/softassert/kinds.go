package softassert

import (
	"strings"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
	"github.com/tidwall/gjson"
)

// Kind is a JSON type used in schema checks.
type Kind string

const (
	Object Kind = "object"
	Array  Kind = "array"
	String Kind = "string"
	Bool   Kind = "bool"
	Null   Kind = "null"
	// Number matches any JSON number.
	Number Kind = "number"
	// Int matches a number written without a fraction or exponent.
	Int Kind = "int"
	// Float matches a number written with a fraction or exponent, such as 12.50.
	Float Kind = "float"

	missing Kind = "missing"
)

// KindsOf returns every Kind that the value satisfies. A number satisfies both Number and
// either Int or Float. A value that does not exist satisfies nothing.
func KindsOf(value gjson.Result) []Kind {
	if !value.Exists() {
		return nil
	}
	switch value.Type {
	case gjson.Null:
		return []Kind{Null}
	case gjson.True, gjson.False:
		return []Kind{Bool}
	case gjson.String:
		return []Kind{String}
	case gjson.Number:
		if strings.ContainsAny(value.Raw, ".eE") {
			return []Kind{Number, Float}
		}
		return []Kind{Number, Int}
	default:
		if value.IsArray() {
			return []Kind{Array}
		}
		return []Kind{Object}
	}
}

func describeKind(value gjson.Result) Kind {
	kinds := KindsOf(value)
	if len(kinds) == 0 {
		return missing
	}
	return kinds[len(kinds)-1]
}

func asGJSON(value interface{}) gjson.Result {
	switch v := value.(type) {
	case gjson.Result:
		return v
	case ldvalue.Value:
		return gjson.Parse(v.JSONString())
	case []byte:
		return gjson.ParseBytes(v)
	case string:
		return gjson.Parse(v)
	default:
		return gjson.Result{}
	}
}

var gjsonPathEscaper = strings.NewReplacer( //nolint:gochecknoglobals
	`\`, `\\`, `.`, `\.`, `*`, `\*`, `?`, `\?`, `|`, `\|`, `#`, `\#`, `@`, `\@`, `!`, `\!`,
)

// EscapeKey makes a property name safe to use as a single gjson path component.
func EscapeKey(key string) string {
	return gjsonPathEscaper.Replace(key)
}
