package conform

// Key is the stable, i18n-lookup identifier attached to a ConformError.
// Unlike the teacher's diag.Code, Key is not a closed set: Lambda blocks may
// call FailWith with an application-defined key via fail_with, so Key stays
// an open string type rather than an unexported struct guarded by a
// constructor.
type Key string

// Conform-error taxonomy, spec.md §7.
const (
	KeyTypeError     Key = "type_error"
	KeyCoercionError Key = "coercion_error"
	KeyAndFailed     Key = "and_failed"
	KeyOrFailed      Key = "or_failed"
	KeyEachFailed    Key = "each_failed"
	KeyMissingKey    Key = "missing_key"
	KeyUnexpectedKey Key = "unexpected_key"
	KeyNotAMapping   Key = "not_a_mapping"
	KeyNotASequence  Key = "not_a_sequence"
	KeyEnumFailed    Key = "enum_failed"
	KeyEqualFailed   Key = "equal_failed"
	KeyNilFailed     Key = "nil_failed"
	KeyBooleanFailed Key = "boolean_failed"
	KeySizeMin       Key = "size_min"
	KeySizeMax       Key = "size_max"
	KeyRegexFailed   Key = "regex_failed"
	KeyGTFailed      Key = "gt_failed"
	KeyLTFailed      Key = "lt_failed"
	KeyGTEFailed     Key = "gte_failed"
	KeyLTEFailed     Key = "lte_failed"
	KeyLambdaFailed  Key = "lambda_failed"

	// KeyKeyFailed wraps a field's child errors under a Keys node; not part
	// of spec.md's taxonomy table (which lists leaf-level keys) but needed
	// to carry the "/<key>" wrapper spec.md §4.6 step 4 describes.
	KeyKeyFailed Key = "key_failed"

	// KeyUUIDFailed is a supplemented predefined-leaf key (SPEC_FULL.md §5);
	// spec.md's taxonomy anticipates additions beyond its list via the same
	// "plus any custom key" clause that covers Lambda's fail_with.
	KeyUUIDFailed Key = "uuid_failed"
)
