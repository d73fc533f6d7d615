package domain

import (
	"fmt"
	"strconv"
)

// ValueKind tags the concrete type held by a Value.
type ValueKind uint8

const (
	// KindNone marks a cleared optional field (no price, no supplier).
	KindNone ValueKind = iota
	KindString
	KindNumber
	KindBool
)

// String returns the persisted name of the kind.
func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	default:
		return "none"
	}
}

// ParseValueKind is the inverse of ValueKind.String.
func ParseValueKind(s string) (ValueKind, error) {
	switch s {
	case "none", "":
		return KindNone, nil
	case "string":
		return KindString, nil
	case "number":
		return KindNumber, nil
	case "bool":
		return KindBool, nil
	}
	return KindNone, fmt.Errorf("unknown value kind %q", s)
}

// Value is the old/new value of a single field change.
// It holds exactly one of string, number or bool, or nothing.
type Value struct {
	kind ValueKind
	str  string
	num  float64
	flag bool
}

// NoValue returns the empty Value.
func NoValue() Value { return Value{} }

// StringValue wraps a string.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// NumberValue wraps a number.
func NumberValue(n float64) Value { return Value{kind: KindNumber, num: n} }

// BoolValue wraps a boolean.
func BoolValue(b bool) Value { return Value{kind: KindBool, flag: b} }

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) IsNone() bool { return v.kind == KindNone }

func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

func (v Value) AsNumber() (float64, bool) { return v.num, v.kind == KindNumber }

// Equal reports strict equality: values of different kinds are never equal.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindNumber:
		return v.num == other.num
	case KindBool:
		return v.flag == other.flag
	default:
		return true
	}
}

// String renders the value for change summaries.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.flag)
	default:
		return "none"
	}
}

// Encode returns the (kind, raw) pair used by persistence adapters.
func (v Value) Encode() (kind string, raw string) {
	if v.kind == KindNone {
		return v.kind.String(), ""
	}
	return v.kind.String(), v.String()
}

// DecodeValue rebuilds a Value from its persisted (kind, raw) pair.
func DecodeValue(kind, raw string) (Value, error) {
	k, err := ParseValueKind(kind)
	if err != nil {
		return Value{}, err
	}
	switch k {
	case KindString:
		return StringValue(raw), nil
	case KindNumber:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, fmt.Errorf("decode number value %q: %w", raw, err)
		}
		return NumberValue(n), nil
	case KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return Value{}, fmt.Errorf("decode bool value %q: %w", raw, err)
		}
		return BoolValue(b), nil
	default:
		return NoValue(), nil
	}
}

// Interface returns the plain Go value (nil, string, float64 or bool).
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num
	case KindBool:
		return v.flag
	default:
		return nil
	}
}

// ValueOf converts a plain Go value decoded from JSON into a Value.
func ValueOf(x interface{}) (Value, error) {
	switch t := x.(type) {
	case nil:
		return NoValue(), nil
	case string:
		return StringValue(t), nil
	case float64:
		return NumberValue(t), nil
	case float32:
		return NumberValue(float64(t)), nil
	case int:
		return NumberValue(float64(t)), nil
	case int64:
		return NumberValue(float64(t)), nil
	case bool:
		return BoolValue(t), nil
	}
	return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedValue, x)
}
