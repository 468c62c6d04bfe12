package conform

import "github.com/sigilpath/conform/value"

// KeysOption configures a KeysBuilder declaratively, the same
// With*(...ValidatorOption)/applyOptions shape the teacher uses for
// Validator configuration (instance.ValidatorOption), offered alongside
// KeysBuilder's fluent methods for callers who prefer assembling a Keys
// definition from a single option slice (e.g. building it dynamically from
// a loop over a schema description).
type KeysOption func(*KeysBuilder)

// RequiredKey returns a KeysOption declaring a required field.
func RequiredKey(key value.Key, def Definition) KeysOption {
	return func(b *KeysBuilder) { b.Required(key, def) }
}

// OptionalKey returns a KeysOption declaring an optional field, with an
// optional literal default as in KeysBuilder.Optional.
func OptionalKey(key value.Key, def Definition, defaultValue ...Value) KeysOption {
	return func(b *KeysBuilder) { b.Optional(key, def, defaultValue...) }
}

// WithIgnoreExtraKeys returns a KeysOption setting the ignore_extra_keys
// option.
func WithIgnoreExtraKeys() KeysOption {
	return func(b *KeysBuilder) { b.IgnoreExtraKeys() }
}

// WithInclude returns a KeysOption splicing another Keys definition's field
// specs into this one.
func WithInclude(other Definition) KeysOption {
	return func(b *KeysBuilder) { b.Include(other) }
}

// NewKeysWith builds a Keys definition from a slice of KeysOption,
// equivalent to chaining the same calls on NewKeys()'s fluent builder.
func NewKeysWith(opts ...KeysOption) (Definition, error) {
	b := NewKeys()
	for _, opt := range opts {
		opt(b)
	}
	return b.Build()
}

// MustNewKeysWith is NewKeysWith but panics on a ConfigError.
func MustNewKeysWith(opts ...KeysOption) Definition {
	d, err := NewKeysWith(opts...)
	if err != nil {
		panic(err)
	}
	return d
}
