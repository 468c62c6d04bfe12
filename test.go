package conform

import "github.com/sigilpath/conform/pointer"

// Predicate reports whether v satisfies a Test leaf's condition.
type Predicate func(v Value) bool

// testDef is the Test leaf (spec.md §4.1): a named predicate over a value,
// failing with a template key on false. The size, regex, numeric, Enum and
// Equal leaves (MaxSize, Regex, GreaterThan, ...) are built on leaf, the
// same underlying node with caller-supplied template arguments instead of Test's default [name].
type testDef struct {
	name string
	key  Key
	args []any
	pred Predicate
}

// Test builds a leaf definition named name that passes v unchanged when
// predicate(v) is true, and otherwise fails with key and args [name].
func Test(name string, key Key, predicate Predicate) Definition {
	return leaf(name, key, predicate, []any{name})
}

// leaf is the shared constructor predefined.go's leaves use directly so
// they can supply their own template arguments (e.g. GreaterThan(5) fails
// with args [5], not [GreaterThan(5)]).
func leaf(name string, key Key, predicate Predicate, args []any) Definition {
	return &testDef{name: name, key: key, args: args, pred: predicate}
}

func (d *testDef) Name() string { return d.name }

func (d *testDef) Conform(v Value) ConformResult {
	if d.pred(v) {
		return Pass(v)
	}
	return Fail(newError(d.key, pointer.Root(), d.args...))
}
