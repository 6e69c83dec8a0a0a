package rules

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/samber/mo"
)

// Kind identifies the dynamic type carried by a Value.
type Kind int

const (
	KindMissing Kind = iota
	KindNull
	KindString
	KindNumber
	KindBool
	KindOther
)

var kindNames = map[Kind]string{
	KindMissing: "missing",
	KindNull:    "null",
	KindString:  "string",
	KindNumber:  "number",
	KindBool:    "bool",
	KindOther:   "other",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a checked variant for inputs whose type is only known at runtime,
// such as fields of a JSON body or command line arguments.
// The zero Value is Missing.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
}

// Missing returns a Value for an absent input.
func Missing() Value { return Value{kind: KindMissing} }

// Null returns a Value for an explicit null.
func Null() Value { return Value{kind: KindNull} }

// String returns a Value holding s.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number returns a Value holding f.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Bool returns a Value holding b.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Kind reports the dynamic type of v.
func (v Value) Kind() Kind { return v.kind }

// Str returns the string held by v, if v is a String.
func (v Value) Str() mo.Option[string] {
	if v.kind != KindString {
		return mo.None[string]()
	}
	return mo.Some(v.str)
}

// Num returns the number held by v, if v is a Number.
func (v Value) Num() mo.Option[float64] {
	if v.kind != KindNumber {
		return mo.None[float64]()
	}
	return mo.Some(v.num)
}

func (v Value) String() string {
	switch v.kind {
	case KindString:
		return strconv.Quote(v.str)
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return v.kind.String()
	}
}

// ParseJSONField reads the field at the given key path of a JSON document
// into a Value. An absent field yields Missing, not an error.
func ParseJSONField(data []byte, keys ...string) (Value, error) {
	raw, dataType, _, err := jsonparser.Get(data, keys...)
	if err != nil {
		if errors.Is(err, jsonparser.KeyPathNotFoundError) {
			return Missing(), nil
		}
		return Value{}, fmt.Errorf("failed to read field %q: %w", strings.Join(keys, "."), err)
	}

	switch dataType {
	case jsonparser.Null:
		return Null(), nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(raw)
		if err != nil {
			return Value{}, fmt.Errorf("failed to parse string field %q: %w", strings.Join(keys, "."), err)
		}
		return String(s), nil
	case jsonparser.Number:
		f, err := jsonparser.ParseFloat(raw)
		if err != nil {
			return Value{}, fmt.Errorf("failed to parse number field %q: %w", strings.Join(keys, "."), err)
		}
		return Number(f), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(raw)
		if err != nil {
			return Value{}, fmt.Errorf("failed to parse boolean field %q: %w", strings.Join(keys, "."), err)
		}
		return Bool(b), nil
	default:
		return Value{kind: KindOther}, nil
	}
}

// Infer classifies a bare textual token such as a command line argument.
// Anything strconv.ParseFloat accepts becomes a Number, "null" becomes Null,
// "true" and "false" become Bool, and everything else is kept as a String.
func Infer(s string) Value {
	switch s {
	case "null":
		return Null()
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Number(f)
	}
	return String(s)
}
