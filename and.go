package conform

import "github.com/sigilpath/conform/pointer"

// andDef is the And combinator (spec.md §4.3): left-to-right threading,
// short-circuiting on the first child failure.
type andDef struct {
	name     string
	children []Definition
}

// And builds a definition that threads the input through each child in
// order: child i+1 conforms child i's output. Passes with the last child's
// output if every child passes; stops at the first failure and fails with
// and_failed, nested with that child's own errors.
//
// At least one child is required; And(name) with no children is a
// ConfigError.
func And(name string, children ...Definition) (Definition, error) {
	expanded, err := expandIncludes(children)
	if err != nil {
		return nil, err
	}
	if len(expanded) == 0 {
		return nil, configErrorf("And", "%q: requires at least one child definition", name)
	}
	return &andDef{name: name, children: expanded}, nil
}

// MustAnd is And but panics on a ConfigError.
func MustAnd(name string, children ...Definition) Definition {
	d, err := And(name, children...)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *andDef) Name() string { return d.name }

func (d *andDef) Conform(v Value) ConformResult {
	cur := v
	for _, child := range d.children {
		res := child.Conform(cur)
		if !res.Passed() {
			return Fail(newSummaryError(KeyAndFailed, pointer.Root(), []any{d.name}, res.rawErrors()))
		}
		cur = res.Value()
	}
	return Pass(cur)
}
