// Package value implements the dynamically-shaped datum that conform
// definitions validate against: a tagged sum of scalar, sequence, and keyed
// shapes, polymorphic the way the engine it serves needs to be — callers
// inspect only the capability a given leaf requires (kind, size, key lookup,
// iteration), never a concrete Go type.
package value

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind identifies which variant of the tagged sum a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindText
	KindTime
	KindBytes
	KindSeq
	KindMap
	KindCustom
)

// String returns the name used in error-template arguments (e.g. "Integer").
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Nil"
	case KindBool:
		return "Boolean"
	case KindInt:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindText:
		return "String"
	case KindTime:
		return "Time"
	case KindBytes:
		return "Bytes"
	case KindSeq:
		return "Sequence"
	case KindMap:
		return "Mapping"
	case KindCustom:
		return "Custom"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Value is the engine's internal representation of an input or output datum.
//
// The zero Value is KindNull. Values are immutable after construction;
// Seq and Map holders are never mutated in place by the engine, only
// replaced (see Clone).
type Value struct {
	kind       Kind
	b          bool
	i          int64
	f          float64
	s          string
	t          time.Time
	by         []byte
	seq        []Value
	m          *Map
	customType string
	custom     any
}

// Null returns the null sentinel value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int wraps a signed integer.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float wraps a floating-point number.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Text wraps a string.
func Text(s string) Value { return Value{kind: KindText, s: s} }

// Time wraps a timestamp.
func Time(t time.Time) Value { return Value{kind: KindTime, t: t} }

// Bytes wraps a raw byte string.
func Bytes(b []byte) Value {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Value{kind: KindBytes, by: cp}
}

// Seq wraps an ordered, finite sequence of values.
func Seq(items ...Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: KindSeq, seq: cp}
}

// FromMap wraps a keyed mapping.
func FromMap(m *Map) Value {
	if m == nil {
		m = NewMap()
	}
	return Value{kind: KindMap, m: m}
}

// Custom wraps an opaque user-defined value tagged with a nominal type name,
// for Type/CoercibleType leaves that need nominal (not structural) matching.
func Custom(typeName string, v any) Value {
	return Value{kind: KindCustom, customType: typeName, custom: v}
}

// Kind returns the variant this Value holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null sentinel.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean payload, or (false, false) if v is not KindBool.
func (v Value) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// Int returns the integer payload, or (0, false) if v is not KindInt.
func (v Value) Int() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.i, true
}

// Float returns the float payload, or (0, false) if v is not KindFloat.
func (v Value) Float() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return v.f, true
}

// Text returns the string payload, or ("", false) if v is not KindText.
func (v Value) Text() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.s, true
}

// Time returns the timestamp payload, or (zero, false) if v is not KindTime.
func (v Value) Time() (time.Time, bool) {
	if v.kind != KindTime {
		return time.Time{}, false
	}
	return v.t, true
}

// Bytes returns a copy of the byte payload, or (nil, false) if v is not KindBytes.
func (v Value) Bytes() ([]byte, bool) {
	if v.kind != KindBytes {
		return nil, false
	}
	cp := make([]byte, len(v.by))
	copy(cp, v.by)
	return cp, true
}

// Seq returns a copy of the sequence payload, or (nil, false) if v is not KindSeq.
func (v Value) Seq() ([]Value, bool) {
	if v.kind != KindSeq {
		return nil, false
	}
	cp := make([]Value, len(v.seq))
	copy(cp, v.seq)
	return cp, true
}

// Map returns the mapping payload, or (nil, false) if v is not KindMap.
//
// The returned *Map is shared; callers must not mutate it in place. Use
// Map.Clone to get a private copy before mutating.
func (v Value) Map() (*Map, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	return v.m, true
}

// Custom returns the nominal type name and opaque payload, or ("", nil,
// false) if v is not KindCustom.
func (v Value) Custom() (string, any, bool) {
	if v.kind != KindCustom {
		return "", nil, false
	}
	return v.customType, v.custom, true
}

// Len reports the size of a sequence, mapping, string, or byte string, and
// whether v has a well-defined size at all. Used by the MinSize/MaxSize
// predefined leaves.
func (v Value) Len() (int, bool) {
	switch v.kind {
	case KindSeq:
		return len(v.seq), true
	case KindMap:
		return v.m.Len(), true
	case KindText:
		return len([]rune(v.s)), true
	case KindBytes:
		return len(v.by), true
	default:
		return 0, false
	}
}

// String renders v for use in error-template arguments and debug output,
// e.g. Int(5).String() == "5", Text("hi").String() == `"hi"`.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindText:
		return strconv.Quote(v.s)
	case KindTime:
		return v.t.Format(time.RFC3339)
	case KindBytes:
		return fmt.Sprintf("bytes(%d)", len(v.by))
	case KindSeq:
		parts := make([]string, len(v.seq))
		for i, item := range v.seq {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindMap:
		return v.m.String()
	case KindCustom:
		return fmt.Sprintf("%s(%v)", v.customType, v.custom)
	default:
		return "?"
	}
}

// Clone returns a deep copy of v: nested sequences, maps and byte strings
// are copied, so the result shares no mutable structure with v.
func (v Value) Clone() Value {
	switch v.kind {
	case KindBytes:
		cp := make([]byte, len(v.by))
		copy(cp, v.by)
		v.by = cp
		return v
	case KindSeq:
		cp := make([]Value, len(v.seq))
		for i, item := range v.seq {
			cp[i] = item.Clone()
		}
		v.seq = cp
		return v
	case KindMap:
		v.m = v.m.Clone()
		return v
	default:
		return v
	}
}

// Equal reports whether v and other represent the same value, used by the
// Equal and Enum leaves. Maps compare by key/value equality regardless of
// insertion order; sequences compare element-wise in order.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindText:
		return v.s == other.s
	case KindTime:
		return v.t.Equal(other.t)
	case KindBytes:
		return string(v.by) == string(other.by)
	case KindSeq:
		if len(v.seq) != len(other.seq) {
			return false
		}
		for i := range v.seq {
			if !v.seq[i].Equal(other.seq[i]) {
				return false
			}
		}
		return true
	case KindMap:
		return v.m.Equal(other.m)
	case KindCustom:
		return v.customType == other.customType && safeEqual(v.custom, other.custom)
	default:
		return false
	}
}

// safeEqual compares two opaque custom payloads without panicking when
// either holds a dynamically uncomparable type (slice, map, func).
func safeEqual(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = fmt.Sprintf("%#v", a) == fmt.Sprintf("%#v", b)
		}
	}()
	return a == b
}
