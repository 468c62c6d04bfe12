package conform

import (
	"github.com/google/uuid"

	"github.com/sigilpath/conform/pointer"
	"github.com/sigilpath/conform/value"
)

// uuidDef is the UUID predefined leaf (SPEC_FULL.md §5): validates that a
// text value parses as a UUID and canonicalizes its textual form (lowercase
// with hyphens), the coercion path CoercibleType's primitive-only
// restriction leaves no room for.
type uuidDef struct{}

// UUID builds a leaf that passes text values parsing as a UUID, replacing
// the output with uuid.Parse's canonical string form, and fails with
// uuid_failed otherwise.
func UUID() Definition { return uuidDef{} }

func (uuidDef) Name() string { return "UUID" }

func (uuidDef) Conform(v Value) ConformResult {
	s, ok := v.Text()
	if !ok {
		return Fail(newError(KeyUUIDFailed, pointer.Root(), v.Kind().String()))
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return Fail(newError(KeyUUIDFailed, pointer.Root(), s))
	}
	return Pass(value.Text(id.String()))
}
