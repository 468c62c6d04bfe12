package conform

import (
	"github.com/sigilpath/conform/pointer"
	"github.com/sigilpath/conform/value"
)

// TypeID names a runtime type Type/CoercibleType check against: one of the
// built-in Kinds for structural matching, or a nominal name for KindCustom
// matching (see value.Registry).
type TypeID struct {
	kind value.Kind
	name string
}

// Predefined TypeIDs for the built-in Value kinds.
var (
	StringType  = TypeID{kind: value.KindText, name: "String"}
	IntegerType = TypeID{kind: value.KindInt, name: "Integer"}
	FloatType   = TypeID{kind: value.KindFloat, name: "Float"}
	BooleanType = TypeID{kind: value.KindBool, name: "Boolean"}
	TimeType    = TypeID{kind: value.KindTime, name: "Time"}
	BytesType   = TypeID{kind: value.KindBytes, name: "Bytes"}
	SeqType     = TypeID{kind: value.KindSeq, name: "Sequence"}
	MapType     = TypeID{kind: value.KindMap, name: "Mapping"}
)

// CustomType names a nominal application-defined type, matched against
// Values produced via value.Custom or value.ClassifyWithRegistry.
func CustomType(name string) TypeID {
	return TypeID{kind: value.KindCustom, name: name}
}

// Name returns the type's display name, as used in type_error/coercion_error
// template arguments.
func (t TypeID) Name() string { return t.name }

func (t TypeID) matches(v Value) bool {
	if t.kind == value.KindCustom {
		name, _, ok := v.Custom()
		return ok && name == t.name
	}
	return v.Kind() == t.kind
}

// typeDef is the Type leaf (spec.md §4.2): Passed(v) iff v has runtime type
// t, else Failed with type_error.
type typeDef struct {
	t TypeID
}

// Type builds a leaf that passes v unchanged iff v has runtime type t
// (exact match for built-in kinds, nominal match for CustomType).
func Type(t TypeID) Definition {
	return &typeDef{t: t}
}

func (d *typeDef) Name() string { return d.t.name }

func (d *typeDef) Conform(v Value) ConformResult {
	if d.t.matches(v) {
		return Pass(v)
	}
	return Fail(newError(KeyTypeError, pointer.Root(), d.t.name, v.Kind().String()))
}

// coercibleTypeDef is CoercibleType (spec.md §4.2): passes v as-is if it
// already has type t, otherwise attempts a well-defined primitive coercion.
type coercibleTypeDef struct {
	t TypeID
}

// CoercibleType builds a leaf that passes v unchanged if it already has
// type t, otherwise attempts a primitive coercion (integer, float, textual,
// boolean) and passes the coerced value, failing with coercion_error if no
// coercion is defined.
//
// t must be one of IntegerType, FloatType, StringType, or BooleanType.
// Non-primitive types are a build-time configuration error, not a runtime
// one, per spec.md §4.2.
func CoercibleType(t TypeID) (Definition, error) {
	switch t.kind {
	case value.KindInt, value.KindFloat, value.KindText, value.KindBool:
		return &coercibleTypeDef{t: t}, nil
	default:
		return nil, configErrorf("CoercibleType", "%s is not a primitive type and cannot be coerced", t.name)
	}
}

// MustCoercibleType is CoercibleType but panics on a ConfigError, for
// package-init-time schema construction.
func MustCoercibleType(t TypeID) Definition {
	d, err := CoercibleType(t)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *coercibleTypeDef) Name() string { return d.t.name }

func (d *coercibleTypeDef) Conform(v Value) ConformResult {
	if d.t.matches(v) {
		return Pass(v)
	}
	coerced, ok := coercePrimitive(v, d.t.kind)
	if !ok {
		return Fail(newError(KeyCoercionError, pointer.Root(), d.t.name, v.Kind().String()))
	}
	return Pass(coerced)
}
