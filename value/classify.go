package value

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"
)

// Registry allows custom Go types to be recognized as KindCustom with a
// stable nominal name during classification, the way a caller-supplied
// type map lets Type/CoercibleType recognize application-defined types
// without the engine knowing about them structurally.
type Registry struct {
	// NameOf returns the nominal type name for a reflect.Type, or ("",
	// false) if the type is not recognized. Checked after built-in
	// detection, so it never shadows Null/Bool/Int/Float/Text/Time/Bytes.
	NameOf func(reflect.Type) (string, bool)
}

// Classify normalizes an arbitrary Go value into the engine's Value sum,
// using only built-in type detection.
func Classify(v any) Value {
	return ClassifyWithRegistry(Registry{}, v)
}

// ClassifyWithRegistry normalizes v into the engine's Value sum, consulting
// reg for nominal recognition of custom types.
//
// Already-built Value and *Map inputs pass through unchanged (classification
// is idempotent). Pointers are dereferenced; a nil pointer classifies as
// Null. []any and map[string]any (the shapes encoding/json produces)
// recursively classify into Seq and Map with textual keys.
func ClassifyWithRegistry(reg Registry, v any) Value {
	switch x := v.(type) {
	case Value:
		return x
	case *Map:
		return FromMap(x)
	case nil:
		return Null()
	case bool:
		return Bool(x)
	case string:
		return Text(x)
	case time.Time:
		return Time(x)
	case []byte:
		return Bytes(x)
	case json.Number:
		return classifyJSONNumber(x)
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return Int(int64(x))
	case uint8:
		return Int(int64(x))
	case uint16:
		return Int(int64(x))
	case uint32:
		return Int(int64(x))
	case uint64:
		return Int(int64(x))
	case []any:
		items := make([]Value, len(x))
		for i, item := range x {
			items[i] = ClassifyWithRegistry(reg, item)
		}
		return Seq(items...)
	case map[string]any:
		m := NewMap()
		for k, val := range x {
			m.Set(Txt(k), ClassifyWithRegistry(reg, val))
		}
		return m.asValue()
	}

	return classifyReflect(reg, v)
}

// classifyJSONNumber mirrors encoding/json's lexical ambiguity: a literal
// with no fractional part classifies as Int, otherwise Float.
func classifyJSONNumber(n json.Number) Value {
	if i, err := n.Int64(); err == nil {
		return Int(i)
	}
	if f, err := n.Float64(); err == nil {
		return Float(f)
	}
	return Text(n.String())
}

func classifyReflect(reg Registry, v any) Value {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Null()
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return Null()
	}

	if reg.NameOf != nil {
		if name, ok := reg.NameOf(rv.Type()); ok {
			return Custom(name, rv.Interface())
		}
	}

	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.String:
		return Text(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Int(int64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float())
	case reflect.Slice, reflect.Array:
		n := rv.Len()
		items := make([]Value, n)
		for i := range n {
			items[i] = ClassifyWithRegistry(reg, rv.Index(i).Interface())
		}
		return Seq(items...)
	case reflect.Map:
		m := NewMap()
		for _, key := range rv.MapKeys() {
			m.Set(Txt(toMapKeyString(key)), ClassifyWithRegistry(reg, rv.MapIndex(key).Interface()))
		}
		return m.asValue()
	default:
		return Custom(rv.Type().String(), v)
	}
}

func toMapKeyString(rv reflect.Value) string {
	if rv.Kind() == reflect.String {
		return rv.String()
	}
	return fmt.Sprint(rv.Interface())
}

// asValue wraps m as a Value for classify.go; it is unexported, so Map's
// public surface stays free of engine-internal helpers.
func (m *Map) asValue() Value {
	return FromMap(m)
}
