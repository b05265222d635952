// Package enumn derives integer-to-member conversions for enumerated types.
//
// Given the declaration of an enum whose members carry no data, enumn computes
// the discriminant of every member and describes a total function n that maps
// an integer back to the matching member, or reports no match:
//
//	decl := enumn.Declaration{
//		Name: "Status",
//		Kind: enumn.KindEnum,
//		Tags: []enumn.Tag{{Name: "Success"}, {Name: "Failure"}},
//	}
//	conv, err := enumn.Derive(decl)
//	// conv.Lookup(enumn.Int(1)) => "Failure", true
//	// conv.Lookup(enumn.Int(2)) => "", false
//
// Members are numbered like the compiler numbers them: the first member
// without an explicit value is 0 and every other member without one is the
// previous member's value plus one.
//
// The command enumn generates the Go rendition of n for Go enums marked with
// an "//enumn:derive" directive:
//
//	//enumn:derive
//	type Status uint8
//
//	const (
//		Success Status = iota
//		Failure
//	)
//
//	// generated:
//	func StatusN(value uint8) (Status, bool) {
//		switch value {
//		case 0:
//			return Success, true
//		case 1:
//			return Failure, true
//		}
//		return 0, false
//	}
//
// Derive is pure and holds no state, so it may be called concurrently.
package enumn

import "go/token"

// Kind classifies the type a [Declaration] describes. Only [KindEnum]
// declarations can be converted.
type Kind int

const (
	// KindEnum is a sum type whose members are tags.
	KindEnum Kind = iota
	// KindStruct is a product type.
	KindStruct
	// KindUnion is an untagged union.
	KindUnion
	// KindOther is any other type.
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindEnum:
		return "enum"
	case KindStruct:
		return "struct"
	case KindUnion:
		return "union"
	default:
		return "non-enum type"
	}
}

// PayloadKind tells whether a tag carries data.
type PayloadKind int

const (
	// Unit tags carry no data.
	Unit PayloadKind = iota
	// NamedFields tags carry a record of named fields.
	NamedFields
	// PositionalFields tags carry a tuple of values.
	PositionalFields
)

func (k PayloadKind) String() string {
	switch k {
	case Unit:
		return "unit"
	case NamedFields:
		return "named"
	case PositionalFields:
		return "positional"
	default:
		return "unknown"
	}
}

// Declaration describes an enumerated type as the host parsed it. Enumn only
// reads it.
type Declaration struct {
	Name string
	Kind Kind

	// Tags in declaration order. The order determines default discriminants.
	Tags []Tag

	// Repr is the representation annotation, such as "u8". It is considered
	// only if HasRepr is true.
	Repr    string
	HasRepr bool

	// Pos locates the declaration in the host's file set. It may be
	// token.NoPos.
	Pos token.Pos
}

// Tag is a member of an enum.
type Tag struct {
	Name    string
	Payload PayloadKind

	// Value is the explicit discriminant or nil.
	Value *Value

	Pos token.Pos
}

// Derive runs the whole pipeline for decl: validation, representation
// resolution, discriminant calculation and generation. If decl is not
// eligible, it returns an [*Error] and no conversion.
func Derive(decl Declaration) (*Conversion, error) {
	if err := Validate(decl); err != nil {
		return nil, err
	}

	repr := ResolveRepr(decl.Repr, decl.HasRepr)
	table := Discriminants(decl.Tags, repr)
	return Generate(decl.Name, repr, table), nil
}
