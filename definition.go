package conform

import "fmt"

// Definition is the uniform contract every validator node implements:
// scalar leaves, Type/CoercibleType, the And/Or/Each/Keys combinators,
// Lambda, and the small Nilable/Enum/Equal/Nil/Boolean leaves.
//
// Implementations are immutable after construction and must not retain or
// mutate the Value passed to Conform, so Conform may be called concurrently
// from multiple goroutines against distinct inputs without coordination
// (spec.md §5).
type Definition interface {
	// Name returns the name used in error templates for this node (e.g. the
	// name passed to And/Or, or a leaf's description).
	Name() string

	// Conform validates (and possibly transforms) v, returning a Passed
	// result carrying the output value or a Failed result carrying one or
	// more ConformError.
	Conform(v Value) ConformResult
}

// ConfigError reports a programmer mistake detected when building a
// Definition tree: a duplicate key, a CoercibleType over a non-primitive
// type, a required field declared with a default, or an include collision.
// ConfigError is a distinct channel from ConformError — it is never
// returned from Conform, only from the builder functions themselves
// (spec.md §7).
type ConfigError struct {
	// Op names the builder call that failed (e.g. "CoercibleType", "Keys.Required").
	Op string
	// Msg describes the problem.
	Msg string
}

func (e *ConfigError) Error() string {
	return "conform: " + e.Op + ": " + e.Msg
}

func configErrorf(op, format string, args ...any) *ConfigError {
	return &ConfigError{Op: op, Msg: fmt.Sprintf(format, args...)}
}
