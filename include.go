package conform

// compositeDefinition is implemented by And and Or so Include can splice
// one combinator's children into another at build time (SPEC_FULL.md §5).
type compositeDefinition interface {
	compositeChildren() []Definition
}

func (d *andDef) compositeChildren() []Definition { return d.children }
func (d *orDef) compositeChildren() []Definition  { return d.children }

// includeMarker wraps a Definition so And/Or builders recognize it as an
// include directive rather than an ordinary child. It is expanded away by
// expandIncludes before any tree is built; Name and Conform only exist to
// satisfy Definition and must never be reached in a correctly built tree.
type includeMarker struct {
	inner Definition
}

func (m includeMarker) Name() string { return "Include(" + m.inner.Name() + ")" }

func (m includeMarker) Conform(Value) ConformResult {
	panic("conform: Include marker conformed directly; expandIncludes should have spliced it away")
}

// Include marks other for splicing into an enclosing And or Or: its own
// children are inlined in place, as if they had been passed directly,
// rather than other itself being conformed as a single nested child.
// other must itself be an And or Or definition.
func Include(other Definition) Definition {
	return includeMarker{inner: other}
}

// expandIncludes resolves every Include marker in children into the
// spliced-in grandchildren, in order, leaving ordinary children untouched.
func expandIncludes(children []Definition) ([]Definition, error) {
	out := make([]Definition, 0, len(children))
	for _, c := range children {
		marker, ok := c.(includeMarker)
		if !ok {
			out = append(out, c)
			continue
		}
		composite, ok := marker.inner.(compositeDefinition)
		if !ok {
			return nil, configErrorf("Include", "included definition %q is not an And or Or", marker.inner.Name())
		}
		out = append(out, composite.compositeChildren()...)
	}
	return out, nil
}
