package conform

import (
	"github.com/sigilpath/conform/pointer"
	"github.com/sigilpath/conform/value"
)

// eachDef is Each (spec.md §4.5): a homogeneous-sequence validator.
type eachDef struct {
	item Definition
}

// Each builds a definition requiring the input to be a finite ordered
// sequence (failing with not_a_sequence otherwise), then conforms every
// element independently against item. Every element is visited — Each does
// not short-circuit on the first failing element. On success the output is
// the sequence of transformed elements in original order; on any failure
// Each fails with a single each_failed summary whose nested list holds the
// errors each failing element's definition returned, each path prefixed
// with "/<index>". An element whose definition fails with several errors
// (e.g. a Keys item) contributes all of them, not one grouped error.
func Each(item Definition) (Definition, error) {
	if item == nil {
		return nil, configErrorf("Each", "item definition must not be nil")
	}
	return &eachDef{item: item}, nil
}

// MustEach is Each but panics on a ConfigError.
func MustEach(item Definition) Definition {
	d, err := Each(item)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *eachDef) Name() string { return "Each(" + d.item.Name() + ")" }

func (d *eachDef) Conform(v Value) ConformResult {
	seq, ok := v.Seq()
	if !ok {
		return Fail(newError(KeyNotASequence, pointer.Root(), v.Kind().String()))
	}

	out := make([]Value, len(seq))
	var nested []ConformError
	for i, item := range seq {
		res := d.item.Conform(item)
		if res.Passed() {
			out[i] = res.Value()
			continue
		}
		idxPath := pointer.Root().Index(i)
		for _, e := range res.rawErrors() {
			nested = append(nested, e.withPathPrefix(idxPath))
		}
	}

	if len(nested) > 0 {
		return Fail(newSummaryError(KeyEachFailed, pointer.Root(), nil, nested))
	}
	return Pass(value.Seq(out...))
}
