package conform

import "github.com/sigilpath/conform/pointer"

// nilableDef is Nilable (spec.md §4.8): passes null unchanged, otherwise
// delegates to the wrapped definition.
type nilableDef struct {
	inner Definition
}

// Nilable builds a definition that passes the null sentinel as-is, and for
// any other input delegates to inner, surfacing its errors unchanged.
func Nilable(inner Definition) Definition {
	return &nilableDef{inner: inner}
}

func (d *nilableDef) Name() string { return "Nilable(" + d.inner.Name() + ")" }

func (d *nilableDef) Conform(v Value) ConformResult {
	if v.IsNull() {
		return Pass(v)
	}
	return d.inner.Conform(v)
}

// Enum builds a leaf that passes iff the input equals (by Value.Equal) one
// of members, else fails with enum_failed and the member list as args.
func Enum(name string, members ...Value) Definition {
	return leaf(name, KeyEnumFailed, func(v Value) bool {
		for _, m := range members {
			if v.Equal(m) {
				return true
			}
		}
		return false
	}, toArgs(members))
}

// Equal builds a leaf that passes iff the input equals want.
func Equal(want Value) Definition {
	return leaf("Equal", KeyEqualFailed, func(v Value) bool {
		return v.Equal(want)
	}, []any{want})
}

// Nil is a leaf that passes iff the input is the null sentinel.
var Nil Definition = &nilDef{}

type nilDef struct{}

func (nilDef) Name() string { return "Nil" }

func (nilDef) Conform(v Value) ConformResult {
	if v.IsNull() {
		return Pass(v)
	}
	return Fail(newError(KeyNilFailed, pointer.Root()))
}

// Boolean is a leaf that passes iff the input is the true or false sentinel.
var Boolean Definition = &booleanDef{}

type booleanDef struct{}

func (booleanDef) Name() string { return "Boolean" }

func (booleanDef) Conform(v Value) ConformResult {
	if _, ok := v.Bool(); ok {
		return Pass(v)
	}
	return Fail(newError(KeyBooleanFailed, pointer.Root()))
}

// Default wraps inner so that a null input is replaced by defaultValue
// unchanged (never re-validated), the same "defaults are literal" behavior
// Keys.Optional gives absent fields, made available outside Keys
// (SPEC_FULL.md §5).
func Default(inner Definition, defaultValue Value) Definition {
	return &defaultDef{inner: inner, def: defaultValue}
}

type defaultDef struct {
	inner Definition
	def   Value
}

func (d *defaultDef) Name() string { return "Default(" + d.inner.Name() + ")" }

func (d *defaultDef) Conform(v Value) ConformResult {
	if v.IsNull() {
		return Pass(d.def)
	}
	return d.inner.Conform(v)
}

// Maybe is sugar for Or(name, Nil, inner): passes null or inner, using
// or_failed as its failure key rather than delegating through like Nilable
// (SPEC_FULL.md §5 — the gem has both forms with distinct error shapes).
func Maybe(name string, inner Definition) Definition {
	return MustOr(name, Nil, inner)
}

func toArgs(values []Value) []any {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}
