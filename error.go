package conform

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/sigilpath/conform/i18n"
	"github.com/sigilpath/conform/pointer"
)

// ConformError is a single validation failure: a stable message key,
// template arguments, a JSON-Pointer path relative to the value originally
// passed to Conform, and an optional ordered list of nested causes.
//
// ConformError is immutable after construction; Args and Nested return
// defensive copies.
type ConformError struct {
	key    Key
	args   []any
	path   pointer.Pointer
	nested []ConformError
}

func newError(key Key, path pointer.Pointer, args ...any) ConformError {
	return ConformError{key: key, path: path, args: args}
}

func newSummaryError(key Key, path pointer.Pointer, args []any, nested []ConformError) ConformError {
	return ConformError{key: key, path: path, args: args, nested: nested}
}

// Key returns the error's stable, i18n-lookup message key.
func (e ConformError) Key() Key { return e.key }

// Args returns a copy of the template arguments.
func (e ConformError) Args() []any {
	return append([]any(nil), e.args...)
}

// Path returns the JSON-Pointer path of the failing value, relative to the
// root value Conform was called with. The root path is pointer.Root().
func (e ConformError) Path() pointer.Pointer { return e.path }

// Nested returns a copy of the ordered sub-errors this error summarizes, or
// nil for a leaf error.
func (e ConformError) Nested() []ConformError {
	if len(e.nested) == 0 {
		return nil
	}
	return append([]ConformError(nil), e.nested...)
}

// Message renders the error without a translation table: the key name
// followed by its arguments, e.g. "type_error(String, Integer)".
func (e ConformError) Message() string {
	return i18n.Fallback(string(e.key), e.args)
}

// Translate renders the error's message using reg's template for the best
// match of tag, falling back to Message() when no translation exists.
func (e ConformError) Translate(reg *i18n.Registry, tag language.Tag) string {
	if reg == nil {
		return e.Message()
	}
	msg, _ := reg.Render(tag, string(e.key), e.args)
	return msg
}

// HierarchicalMessage renders this error's own message, followed by its
// nested causes' messages recursively delimited by "{ ... }", the
// error_message rendering spec.md §4.9 describes.
func (e ConformError) HierarchicalMessage() string {
	base := e.Message()
	if len(e.nested) == 0 {
		return base
	}
	parts := make([]string, len(e.nested))
	for i, n := range e.nested {
		parts[i] = n.HierarchicalMessage()
	}
	return base + " { " + strings.Join(parts, "; ") + " }"
}

// withPathPrefix returns a copy of e (and, recursively, its nested causes)
// with prefix joined in front of each path. Used by container nodes (Keys,
// Each) to re-base a child's errors under their own path fragment.
func (e ConformError) withPathPrefix(prefix pointer.Pointer) ConformError {
	clone := e
	clone.path = prefix.Join(e.path)
	if len(e.nested) > 0 {
		clone.nested = make([]ConformError, len(e.nested))
		for i, n := range e.nested {
			clone.nested[i] = n.withPathPrefix(prefix)
		}
	}
	return clone
}

// flattenErrors returns the preorder traversal of leaf errors (errors with
// no nested causes) beneath errs, the flat view ConformResult.Errors
// exposes. Summary errors (and_failed, or_failed, each_failed, key_failed)
// never themselves appear in the flattened list; only their eventual leaves
// do, each carrying its fully-qualified path.
func flattenErrors(errs []ConformError) []ConformError {
	var out []ConformError
	for _, e := range errs {
		if len(e.nested) == 0 {
			out = append(out, e)
			continue
		}
		out = append(out, flattenErrors(e.nested)...)
	}
	return out
}
