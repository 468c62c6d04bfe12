package conform

import (
	"fmt"
	"regexp"

	"golang.org/x/text/unicode/norm"

	"github.com/sigilpath/conform/value"
)

// normalizedText returns v's text payload NFC-normalized, so that visually
// identical strings composed differently (e.g. "café" as é vs e + combining
// acute) conform identically under length and pattern checks.
func normalizedText(v Value) (string, bool) {
	s, ok := v.Text()
	if !ok {
		return "", false
	}
	return norm.NFC.String(s), true
}

// Regex builds a leaf that passes text values matching pattern (after NFC
// normalization), failing with regex_failed otherwise.
func Regex(pattern *regexp.Regexp) Definition {
	name := fmt.Sprintf("Regex(%s)", pattern.String())
	return leaf(name, KeyRegexFailed, func(v Value) bool {
		s, ok := normalizedText(v)
		return ok && pattern.MatchString(s)
	}, []any{pattern.String()})
}

// MaxSize builds a leaf that passes any value with a well-defined size
// (string, sequence, map, bytes) of at most n, failing with size_max
// otherwise. Text is NFC-normalized before measuring, counting runes.
func MaxSize(n int) Definition {
	name := fmt.Sprintf("MaxSize(%d)", n)
	return leaf(name, KeySizeMax, func(v Value) bool {
		size, ok := sizeOf(v)
		return ok && size <= n
	}, []any{n})
}

// MinSize builds a leaf that passes any value with a well-defined size of
// at least n, failing with size_min otherwise.
func MinSize(n int) Definition {
	name := fmt.Sprintf("MinSize(%d)", n)
	return leaf(name, KeySizeMin, func(v Value) bool {
		size, ok := sizeOf(v)
		return ok && size >= n
	}, []any{n})
}

func sizeOf(v Value) (int, bool) {
	if s, ok := normalizedText(v); ok {
		return len([]rune(s)), true
	}
	return v.Len()
}

// Empty is sugar for MaxSize(0).
func Empty() Definition { return MaxSize(0) }

// NonEmpty is sugar for MinSize(1).
func NonEmpty() Definition { return MinSize(1) }

// GreaterThan builds a leaf that passes numeric values strictly greater
// than n, failing with gt_failed otherwise.
func GreaterThan(n float64) Definition {
	return numericLeaf("GreaterThan", KeyGTFailed, n, func(f float64) bool { return f > n })
}

// LessThan builds a leaf that passes numeric values strictly less than n,
// failing with lt_failed otherwise.
func LessThan(n float64) Definition {
	return numericLeaf("LessThan", KeyLTFailed, n, func(f float64) bool { return f < n })
}

// GreaterThanOrEqual builds a leaf that passes numeric values >= n, failing
// with gte_failed otherwise.
func GreaterThanOrEqual(n float64) Definition {
	return numericLeaf("GreaterThanOrEqual", KeyGTEFailed, n, func(f float64) bool { return f >= n })
}

// LessThanOrEqual builds a leaf that passes numeric values <= n, failing
// with lte_failed otherwise.
func LessThanOrEqual(n float64) Definition {
	return numericLeaf("LessThanOrEqual", KeyLTEFailed, n, func(f float64) bool { return f <= n })
}

func numericLeaf(label string, key Key, n float64, ok func(float64) bool) Definition {
	name := fmt.Sprintf("%s(%v)", label, n)
	return leaf(name, key, func(v Value) bool {
		f, isNum := numericValue(v)
		return isNum && ok(f)
	}, []any{n})
}

func numericValue(v Value) (float64, bool) {
	switch v.Kind() {
	case value.KindInt:
		i, _ := v.Int()
		return float64(i), true
	case value.KindFloat:
		return v.Float()
	default:
		return 0, false
	}
}
