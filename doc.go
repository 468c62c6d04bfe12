// Package conform implements a composable data-structure validation and
// coercion engine. A Definition tree is built once from combinators (And,
// Or, Each, Keys, Nilable, Enum, Lambda) and predefined leaves, then used to
// Conform input values, producing either a coerced output value or a
// path-addressed ConformError report.
//
// Definitions are immutable after construction and safe for concurrent use:
// Conform allocates only result and error values, never mutating shared
// state. The subpackages pointer, value, and i18n hold the supporting JSON
// Pointer path model, the tagged input-value sum, and the translation
// registry respectively; this package never reads files or does I/O itself.
package conform
