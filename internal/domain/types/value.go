package types

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Kind tags the dynamic type held by a Value.
type Kind uint8

const (
	KindString Kind = iota + 1
	KindInt
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "invalid"
	}
}

// Value is a record field value: a UTF-8 string, an integer or a float.
// The zero Value is invalid. Numbers decoded from JSON keep their source
// text so they re-encode unchanged.
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
	raw  string
}

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Int returns an integer Value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating-point Value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

func (v Value) Kind() Kind    { return v.kind }
func (v Value) IsValid() bool { return v.kind != 0 }

// Str returns the string held by v and whether v is a string.
func (v Value) Str() (string, bool) { return v.s, v.kind == KindString }

// Float64 returns the numeric value of v as a float64. Strings report false.
func (v Value) Float64() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// Text renders v as a plain string: strings verbatim, integers in base 10,
// floats in the shortest decimal form without an exponent.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return FormatDecimal(v.f)
	default:
		return ""
	}
}

// FormatDecimal renders f as plain decimal digits, never scientific notation.
func FormatDecimal(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Equal reports whether v and o hold the same kind and value. Floats compare
// by bit pattern, so NaN equals itself and 0 differs from -0. Source text of
// decoded numbers is ignored.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.s == o.s
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return math.Float64bits(v.f) == math.Float64bits(o.f)
	default:
		return true
	}
}

func (v Value) GoString() string {
	switch v.kind {
	case KindString:
		return fmt.Sprintf("types.String(%q)", v.s)
	case KindInt:
		return fmt.Sprintf("types.Int(%d)", v.i)
	case KindFloat:
		return fmt.Sprintf("types.Float(%s)", FormatDecimal(v.f))
	default:
		return "types.Value{}"
	}
}

// MarshalJSON encodes strings as JSON strings and numbers as JSON numbers.
// Decoded numbers are written back as they were read.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.raw != "" {
		return []byte(v.raw), nil
	}
	switch v.kind {
	case KindString:
		return json.Marshal(v.s)
	case KindInt:
		return []byte(strconv.FormatInt(v.i, 10)), nil
	case KindFloat:
		return json.Marshal(v.f)
	default:
		return nil, fmt.Errorf("marshal invalid value")
	}
}
