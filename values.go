package conform

import "github.com/sigilpath/conform/value"

// Value aliases value.Value so Definition signatures read as spec.md
// describes them (conform(value) -> ConformResult) without every caller
// importing the value subpackage directly for the common case.
type Value = value.Value

// ValueKey aliases value.Key, the distinct symbolic/textual map-key identity
// Keys field specs are declared against. Named to avoid colliding with this
// package's own Key (the i18n message-key type).
type ValueKey = value.Key
