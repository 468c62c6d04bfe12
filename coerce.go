package conform

import (
	"strconv"
	"strings"

	"github.com/sigilpath/conform/value"
)

// coercePrimitive attempts the well-defined coercions spec.md §4.2 lists:
// integer, float, textual, boolean. Returns (zero, false) when v's kind has
// no defined coercion into kind.
func coercePrimitive(v Value, kind value.Kind) (Value, bool) {
	switch kind {
	case value.KindInt:
		return coerceToInt(v)
	case value.KindFloat:
		return coerceToFloat(v)
	case value.KindText:
		return coerceToText(v)
	case value.KindBool:
		return coerceToBool(v)
	default:
		return Value{}, false
	}
}

func coerceToInt(v Value) (Value, bool) {
	switch v.Kind() {
	case value.KindFloat:
		f, _ := v.Float()
		if f != float64(int64(f)) {
			return Value{}, false
		}
		return value.Int(int64(f)), true
	case value.KindText:
		s, _ := v.Text()
		i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return Value{}, false
		}
		return value.Int(i), true
	case value.KindBool:
		b, _ := v.Bool()
		if b {
			return value.Int(1), true
		}
		return value.Int(0), true
	default:
		return Value{}, false
	}
}

func coerceToFloat(v Value) (Value, bool) {
	switch v.Kind() {
	case value.KindInt:
		i, _ := v.Int()
		return value.Float(float64(i)), true
	case value.KindText:
		s, _ := v.Text()
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return Value{}, false
		}
		return value.Float(f), true
	default:
		return Value{}, false
	}
}

func coerceToText(v Value) (Value, bool) {
	switch v.Kind() {
	case value.KindInt:
		i, _ := v.Int()
		return value.Text(strconv.FormatInt(i, 10)), true
	case value.KindFloat:
		f, _ := v.Float()
		return value.Text(strconv.FormatFloat(f, 'g', -1, 64)), true
	case value.KindBool:
		b, _ := v.Bool()
		return value.Text(strconv.FormatBool(b)), true
	default:
		return Value{}, false
	}
}

func coerceToBool(v Value) (Value, bool) {
	switch v.Kind() {
	case value.KindText:
		s, _ := v.Text()
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true":
			return value.Bool(true), true
		case "false":
			return value.Bool(false), true
		default:
			return Value{}, false
		}
	case value.KindInt:
		i, _ := v.Int()
		switch i {
		case 0:
			return value.Bool(false), true
		case 1:
			return value.Bool(true), true
		default:
			return Value{}, false
		}
	default:
		return Value{}, false
	}
}
