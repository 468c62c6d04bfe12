package conform

import (
	"github.com/sigilpath/conform/pointer"
	"github.com/sigilpath/conform/value"
)

// fieldSpec is spec.md's KeySpec: a single declared field of a Keys node.
type fieldSpec struct {
	key        value.Key
	def        Definition
	required   bool
	hasDefault bool
	defVal     Value
}

// keysDef is Keys (spec.md §4.6), the record validator: required/optional
// fields with defaults, an extra-key policy, and declaration-order output.
type keysDef struct {
	specs       []fieldSpec
	ignoreExtra bool
}

// KeysBuilder accumulates field specs, options, and includes for a Keys
// definition, mirroring the teacher's ValidatorOption/applyOptions
// functional-configuration pattern but as a fluent builder, since Keys
// specs (unlike options) must preserve declaration order and detect
// duplicates as they are added rather than at apply time.
//
// The zero KeysBuilder is not usable; construct one with NewKeys.
type KeysBuilder struct {
	specs       []fieldSpec
	seen        map[value.Key]bool
	ignoreExtra bool
	err         *ConfigError
}

// NewKeys returns an empty KeysBuilder.
func NewKeys() *KeysBuilder {
	return &KeysBuilder{seen: make(map[value.Key]bool)}
}

// Required declares a required field: conform fails with missing_key if key
// is absent from the input.
func (b *KeysBuilder) Required(key value.Key, def Definition) *KeysBuilder {
	b.addSpec(fieldSpec{key: key, def: def, required: true})
	return b
}

// Optional declares an optional field. With no default argument, an absent
// key is simply omitted from the output. With one default argument, an
// absent key emits that default unchanged (never re-validated) per
// spec.md's "defaults are literal" invariant. Passing more than one default
// is a ConfigError.
func (b *KeysBuilder) Optional(key value.Key, def Definition, defaultValue ...Value) *KeysBuilder {
	spec := fieldSpec{key: key, def: def}
	switch len(defaultValue) {
	case 0:
	case 1:
		spec.hasDefault = true
		spec.defVal = defaultValue[0]
	default:
		b.fail("Keys.Optional", "key %q: at most one default value may be given", key.Name)
		return b
	}
	b.addSpec(spec)
	return b
}

// IgnoreExtraKeys sets the ignore_extra_keys option (spec.md §4.6): extra
// input keys are silently dropped from the output instead of producing an
// unexpected_key error.
func (b *KeysBuilder) IgnoreExtraKeys() *KeysBuilder {
	b.ignoreExtra = true
	return b
}

// Include textually merges other's field specs into this builder, as if
// they had been declared inline (spec.md §4.6.1). A key declared by both
// this builder and other is a ConfigError.
func (b *KeysBuilder) Include(other Definition) *KeysBuilder {
	kd, ok := other.(*keysDef)
	if !ok {
		b.fail("Keys.Include", "included definition is not a Keys definition")
		return b
	}
	for _, spec := range kd.specs {
		b.addSpec(spec)
	}
	return b
}

func (b *KeysBuilder) addSpec(spec fieldSpec) {
	if b.seen[spec.key] {
		b.fail("Keys", "duplicate key %q", spec.key.Name)
		return
	}
	b.seen[spec.key] = true
	b.specs = append(b.specs, spec)
}

func (b *KeysBuilder) fail(op, format string, args ...any) {
	if b.err == nil {
		b.err = configErrorf(op, format, args...)
	}
}

// Build returns the assembled Keys Definition, or the first ConfigError
// encountered while declaring fields.
func (b *KeysBuilder) Build() (Definition, error) {
	if b.err != nil {
		return nil, b.err
	}
	return &keysDef{specs: append([]fieldSpec(nil), b.specs...), ignoreExtra: b.ignoreExtra}, nil
}

// MustBuild is Build but panics on a ConfigError.
func (b *KeysBuilder) MustBuild() Definition {
	d, err := b.Build()
	if err != nil {
		panic(err)
	}
	return d
}

func (d *keysDef) Name() string { return "Keys" }

// Keys returns d's declared field keys in declaration order (exported for the
// value-object collaborator contract, spec.md §6, to synthesize per-key
// accessors from).
func (d *keysDef) Keys() []value.Key {
	out := make([]value.Key, len(d.specs))
	for i, s := range d.specs {
		out[i] = s.key
	}
	return out
}

func (d *keysDef) Conform(v Value) ConformResult {
	m, ok := v.Map()
	if !ok {
		return Fail(newError(KeyNotAMapping, pointer.Root(), v.Kind().String()))
	}

	declared := make(map[value.Key]bool, len(d.specs))
	for _, s := range d.specs {
		declared[s.key] = true
	}

	var errs []ConformError
	if !d.ignoreExtra {
		for _, k := range m.Keys() {
			if !declared[k] {
				errs = append(errs, newError(KeyUnexpectedKey, pointer.Root().Key(k.Name), k.Name))
			}
		}
	}

	out := value.NewMap()
	for _, s := range d.specs {
		keyPath := pointer.Root().Key(s.key.Name)
		input, present := m.Get(s.key)
		switch {
		case present:
			res := s.def.Conform(input)
			if res.Passed() {
				out.Set(s.key, res.Value())
				continue
			}
			nested := make([]ConformError, 0, len(res.rawErrors()))
			for _, e := range res.rawErrors() {
				nested = append(nested, e.withPathPrefix(keyPath))
			}
			errs = append(errs, newSummaryError(KeyKeyFailed, keyPath, []any{s.key.Name}, nested))
		case s.required:
			errs = append(errs, newError(KeyMissingKey, keyPath, s.key.Name))
		case s.hasDefault:
			out.Set(s.key, s.defVal)
		}
	}

	if len(errs) > 0 {
		return Fail(errs...)
	}
	return Pass(value.FromMap(out))
}
