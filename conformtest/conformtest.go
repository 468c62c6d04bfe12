// Package conformtest holds small value-builder and error-inspection helpers
// for tests, mirroring the teacher's lsp/testutil package: free functions
// operating on the public API, no test framework dependency of its own.
package conformtest

import (
	"github.com/sigilpath/conform"
	"github.com/sigilpath/conform/value"
)

// Record builds a textually-keyed mapping Value from alternating key/value
// pairs, e.g. Record("name", value.Text("ada"), "age", value.Int(36)).
// Panics if the arguments are malformed; intended for table-test literals,
// not production code.
func Record(pairs ...any) value.Value {
	if len(pairs)%2 != 0 {
		panic("conformtest: Record requires an even number of arguments")
	}
	m := value.NewMap()
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			panic("conformtest: Record keys must be strings")
		}
		v, ok := pairs[i+1].(value.Value)
		if !ok {
			panic("conformtest: Record values must be value.Value")
		}
		m.Set(value.Txt(name), v)
	}
	return value.FromMap(m)
}

// ErrorKeys returns the ordered list of message keys from a failed
// ConformResult's flattened errors, for concise assert.Equal comparisons
// against an expected key sequence.
func ErrorKeys(res conform.ConformResult) []conform.Key {
	errs := res.Errors()
	keys := make([]conform.Key, len(errs))
	for i, e := range errs {
		keys[i] = e.Key()
	}
	return keys
}

// ErrorPaths returns the ordered list of JSON-Pointer path strings from a
// failed ConformResult's flattened errors.
func ErrorPaths(res conform.ConformResult) []string {
	errs := res.Errors()
	paths := make([]string, len(errs))
	for i, e := range errs {
		paths[i] = e.Path().String()
	}
	return paths
}
