// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/value.go
// Summary: Tagged variant used by the generic property bridge.

package core

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ValueKind tags the payload of a Value.
type ValueKind int

const (
	KindInvalid ValueKind = iota
	KindInt
	KindBool
	KindString
)

func (k ValueKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	default:
		return "invalid"
	}
}

// Value is a property value exchanged through PropertyHolder.
// The zero Value is invalid.
type Value struct {
	kind ValueKind
	i    int64
	s    string
}

func IntValue(i int64) Value     { return Value{kind: KindInt, i: i} }
func StringValue(s string) Value { return Value{kind: KindString, s: s} }

func BoolValue(b bool) Value {
	v := Value{kind: KindBool}
	if b {
		v.i = 1
	}
	return v
}

// Kind returns the payload tag.
func (v Value) Kind() ValueKind { return v.kind }

// Int returns the value as an integer. Bools convert to 0/1 and numeric
// strings are parsed.
func (v Value) Int() (int64, error) {
	switch v.kind {
	case KindInt, KindBool:
		return v.i, nil
	case KindString:
		n, err := strconv.ParseInt(v.s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("value %q is not an integer: %w", v.s, ErrInvalidArgument)
		}
		return n, nil
	}
	return 0, fmt.Errorf("%s value has no integer form: %w", v.kind, ErrInvalidArgument)
}

// Bool returns the value as a boolean. Integers are true when non-zero.
func (v Value) Bool() (bool, error) {
	switch v.kind {
	case KindInt, KindBool:
		return v.i != 0, nil
	case KindString:
		b, err := strconv.ParseBool(v.s)
		if err != nil {
			return false, fmt.Errorf("value %q is not a boolean: %w", v.s, ErrInvalidArgument)
		}
		return b, nil
	}
	return false, fmt.Errorf("%s value has no boolean form: %w", v.kind, ErrInvalidArgument)
}

// String renders the payload for display and persistence.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindBool:
		return strconv.FormatBool(v.i != 0)
	case KindString:
		return v.s
	}
	return "<invalid>"
}

// ValueOf converts a decoded config value (JSON or YAML) into a Value.
func ValueOf(raw interface{}) (Value, error) {
	switch x := raw.(type) {
	case Value:
		return x, nil
	case bool:
		return BoolValue(x), nil
	case int:
		return IntValue(int64(x)), nil
	case int64:
		return IntValue(x), nil
	case uint16:
		return IntValue(int64(x)), nil
	case float64:
		if x != float64(int64(x)) {
			return Value{}, fmt.Errorf("value %v is not integral: %w", x, ErrInvalidArgument)
		}
		return IntValue(int64(x)), nil
	case json.Number:
		n, err := x.Int64()
		if err != nil {
			return Value{}, fmt.Errorf("value %s: %w", x, ErrInvalidArgument)
		}
		return IntValue(n), nil
	case string:
		return StringValue(x), nil
	}
	return Value{}, fmt.Errorf("unsupported value type %T: %w", raw, ErrInvalidArgument)
}

// ParseValue rebuilds a Value from its kind name and String form, as
// written by persistence layers.
func ParseValue(kind, text string) (Value, error) {
	switch kind {
	case KindInt.String():
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("int value %q: %w", text, ErrInvalidArgument)
		}
		return IntValue(n), nil
	case KindBool.String():
		b, err := strconv.ParseBool(text)
		if err != nil {
			return Value{}, fmt.Errorf("bool value %q: %w", text, ErrInvalidArgument)
		}
		return BoolValue(b), nil
	case KindString.String():
		return StringValue(text), nil
	}
	return Value{}, fmt.Errorf("unknown value kind %q: %w", kind, ErrInvalidArgument)
}
