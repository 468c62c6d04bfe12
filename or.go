package conform

import "github.com/sigilpath/conform/pointer"

// orDef is the Or combinator (spec.md §4.4): left-to-right evaluation,
// returning the first child that passes. Unlike And, the input value is
// not threaded between alternatives — every child sees the original input.
type orDef struct {
	name     string
	children []Definition
}

// Or builds a definition that tries each child in order against the
// original input and returns the first Passed result. If every child
// fails, Or fails with or_failed, nested with the concatenation of every
// child's own errors in order.
//
// At least one child is required; Or(name) with no children is a
// ConfigError.
func Or(name string, children ...Definition) (Definition, error) {
	expanded, err := expandIncludes(children)
	if err != nil {
		return nil, err
	}
	if len(expanded) == 0 {
		return nil, configErrorf("Or", "%q: requires at least one child definition", name)
	}
	return &orDef{name: name, children: expanded}, nil
}

// MustOr is Or but panics on a ConfigError.
func MustOr(name string, children ...Definition) Definition {
	d, err := Or(name, children...)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *orDef) Name() string { return d.name }

func (d *orDef) Conform(v Value) ConformResult {
	var nested []ConformError
	for _, child := range d.children {
		res := child.Conform(v)
		if res.Passed() {
			return res
		}
		nested = append(nested, res.rawErrors()...)
	}
	return Fail(newSummaryError(KeyOrFailed, pointer.Root(), []any{d.name}, nested))
}
