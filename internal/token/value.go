package token

import (
	"strconv"
)

// ValueKind tags the decoded payload of a literal token.
type ValueKind uint8

const (
	ValueNone ValueKind = iota
	ValueInteger
	ValueFloat
	ValueBytes
)

func (k ValueKind) String() string {
	switch k {
	case ValueInteger:
		return "integer"
	case ValueFloat:
		return "float"
	case ValueBytes:
		return "bytes"
	default:
		return "none"
	}
}

// Value is the decoded literal payload. Strings decode to raw bytes because
// Lua strings are byte-oriented and escapes may produce invalid UTF-8.
type Value struct {
	Kind  ValueKind
	Int   int64
	Float float64
	Bytes []byte
}

func IntValue(v int64) Value     { return Value{Kind: ValueInteger, Int: v} }
func FloatValue(v float64) Value { return Value{Kind: ValueFloat, Float: v} }
func BytesValue(b []byte) Value  { return Value{Kind: ValueBytes, Bytes: b} }

func (v Value) IsNone() bool { return v.Kind == ValueNone }

// String renders the value for dumps: integers and floats in Lua's
// %.14g style, byte strings Go-quoted.
func (v Value) String() string {
	switch v.Kind {
	case ValueInteger:
		return strconv.FormatInt(v.Int, 10)
	case ValueFloat:
		s := strconv.FormatFloat(v.Float, 'g', 14, 64)
		if isIntegral(s) {
			s += ".0"
		}
		return s
	case ValueBytes:
		return strconv.Quote(string(v.Bytes))
	default:
		return "<none>"
	}
}

func isIntegral(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '.', 'e', 'E', 'n', 'N', 'i', 'I':
			return false
		}
	}
	return true
}
