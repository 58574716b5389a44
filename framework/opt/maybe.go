package opt

import (
	"encoding/json"
	"fmt"
)

// Maybe is an optional value. It is used for settings where "not set" differs from the zero
// value, such as a per-request timeout override.
type Maybe[V any] struct {
	defined bool
	value   V
}

// Some returns a Maybe that has a defined value.
func Some[V any](value V) Maybe[V] {
	return Maybe[V]{defined: true, value: value}
}

// None returns a Maybe with no value.
func None[V any]() Maybe[V] { return Maybe[V]{} }

// SomeIf returns Some(value) if condition is true, or None otherwise.
func SomeIf[V any](condition bool, value V) Maybe[V] {
	if condition {
		return Some(value)
	}
	return None[V]()
}

func (m Maybe[V]) IsDefined() bool { return m.defined }

// Value returns the value, or the zero value of V if undefined.
func (m Maybe[V]) Value() V { return m.value }

func (m Maybe[V]) OrElse(valueIfUndefined V) V {
	if m.defined {
		return m.value
	}
	return valueIfUndefined
}

// String returns "[none]" for an undefined value.
func (m Maybe[V]) String() string {
	if !m.defined {
		return "[none]"
	}
	var v interface{} = m.value
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", m.value)
}

// MarshalJSON writes the value, or null if undefined.
func (m Maybe[V]) MarshalJSON() ([]byte, error) {
	if m.defined {
		return json.Marshal(m.value)
	}
	return []byte("null"), nil
}

// UnmarshalJSON treats a JSON null as None.
func (m *Maybe[V]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*m = None[V]()
		return nil
	}
	var value V
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*m = Some(value)
	return nil
}
