package typeinfo

import (
	"fmt"
	"go/types"

	"github.com/panda131456/enumn"
)

// Type describes a type information. It holds information of [types.Type] that
// is necessary from the enumn's perspective.
type Type struct {
	T types.Type

	Basic     *types.Basic
	Struct    *types.Struct
	Interface *types.Interface
	Pointer   *types.Pointer
	Named     *types.Named
	Alias     *types.Alias

	Elem *Type
}

func (t Type) Type() types.Type { return t.T }
func (t Type) String() string   { return t.T.String() }

func (t Type) IsBasic() bool     { return t.Basic != nil }
func (t Type) IsStruct() bool    { return t.Struct != nil }
func (t Type) IsInterface() bool { return t.Interface != nil }
func (t Type) IsPointer() bool   { return t.Pointer != nil }
func (t Type) IsNamed() bool     { return t.Named != nil }
func (t Type) IsAlias() bool     { return t.Alias != nil }

// IsInteger reports whether the underlying type is an integer type.
func (t Type) IsInteger() bool {
	return t.IsBasic() && t.Basic.Info()&types.IsInteger != 0
}

// TypeOf inspects the given type and returns a new [Type].
func TypeOf(t types.Type) Type {
	if alias, ok := t.(*types.Alias); ok {
		info := TypeOf(types.Unalias(alias))
		info.T = t
		info.Alias = alias
		return info
	}

	switch tt := t.(type) {
	case *types.Struct:
		return Type{T: t, Struct: tt}
	case *types.Interface:
		return Type{T: t, Interface: tt}
	case *types.Pointer:
		elem := TypeOf(tt.Elem())
		return Type{T: t, Pointer: tt, Elem: &elem}
	case *types.Named:
		info := TypeOf(tt.Underlying())
		info.T = t
		info.Named = tt
		return info
	case *types.Basic:
		return Type{T: t, Basic: tt}
	case *types.Array, *types.Slice, *types.Map, *types.Chan, *types.Signature, *types.TypeParam:
		return Type{T: t}
	}
	panic(fmt.Errorf("unknown type: %T", t))
}

// DeclKind classifies a named type as an enum declaration would. Integer types
// and interfaces are sum types; structs are product types. An alias is never an
// enum because its members would belong to the aliased type.
func (t Type) DeclKind() enumn.Kind {
	switch {
	case t.IsAlias():
		return enumn.KindOther
	case t.IsInteger(), t.IsInterface():
		return enumn.KindEnum
	case t.IsStruct():
		return enumn.KindStruct
	default:
		return enumn.KindOther
	}
}

// Payload tells whether values of a union member type carry data. An empty
// struct carries nothing; a struct with fields carries named fields; any other
// type carries a single positional value.
func (t Type) Payload() enumn.PayloadKind {
	t = t.Deref()
	switch {
	case t.IsStruct() && t.Struct.NumFields() == 0:
		return enumn.Unit
	case t.IsStruct():
		return enumn.NamedFields
	default:
		return enumn.PositionalFields
	}
}

// ReprName returns the name of the underlying integer type, such as "uint8".
// It returns false if the type is not an integer type.
func (t Type) ReprName() (string, bool) {
	if !t.IsInteger() {
		return "", false
	}
	return t.Basic.Name(), true
}

// Deref returns the element type if the type is a pointer. For type of *X, it
// returns type of X. If the type is not a pointer, it returns the type itself.
func (t Type) Deref() Type {
	if t.IsPointer() {
		return (*t.Elem).Deref()
	}
	return t
}

// IsGeneric reports whether the type has type parameters without type
// arguments.
func (t Type) IsGeneric() bool {
	return t.IsNamed() && t.Named.TypeParams().Len() != 0 && t.Named.TypeArgs().Len() == 0
}
