package enumn

import "math/big"

// Repr is the integer representation shared by all discriminants of an enum.
type Repr int

const (
	// Generic accepts any integer input convertible to int64. It is used when
	// an enum has no recognized representation annotation.
	Generic Repr = iota
	U8
	U16
	U32
	U64
	U128
	Usize
	I8
	I16
	I32
	I64
	I128
	Isize
)

var reprNames = [...]string{
	Generic: "generic",
	U8:      "u8",
	U16:     "u16",
	U32:     "u32",
	U64:     "u64",
	U128:    "u128",
	Usize:   "usize",
	I8:      "i8",
	I16:     "i16",
	I32:     "i32",
	I64:     "i64",
	I128:    "i128",
	Isize:   "isize",
}

var goTypes = [...]string{
	U8:    "uint8",
	U16:   "uint16",
	U32:   "uint32",
	U64:   "uint64",
	Usize: "uint",
	I8:    "int8",
	I16:   "int16",
	I32:   "int32",
	I64:   "int64",
	Isize: "int",
}

// reprByName maps recognized annotations to representations. Both the short
// names and the Go spellings of the integer types are recognized.
var reprByName = map[string]Repr{
	"u8": U8, "u16": U16, "u32": U32, "u64": U64, "u128": U128, "usize": Usize,
	"i8": I8, "i16": I16, "i32": I32, "i64": I64, "i128": I128, "isize": Isize,

	"uint8": U8, "byte": U8, "uint16": U16, "uint32": U32, "uint64": U64,
	"uint": Usize, "uintptr": Usize,
	"int8": I8, "int16": I16, "int32": I32, "rune": I32, "int64": I64,
	"int": Isize,
}

// ResolveRepr decides the representation of an enum from its optional
// annotation. An absent or unrecognized annotation resolves to [Generic]. It
// never fails.
func ResolveRepr(annotation string, present bool) Repr {
	if !present {
		return Generic
	}
	if r, ok := reprByName[annotation]; ok {
		return r
	}
	return Generic
}

// String returns the short name of r, such as "u8".
func (r Repr) String() string {
	if r < 0 || int(r) >= len(reprNames) {
		return "Repr(?)"
	}
	return reprNames[r]
}

// GoType returns the name of the Go integer type for r. It is empty for
// [Generic] and the 128-bit representations which have no Go counterpart.
func (r Repr) GoType() string {
	if r < 0 || int(r) >= len(goTypes) {
		return ""
	}
	return goTypes[r]
}

// Bits returns the width of r. Pointer-sized representations are 64 bits wide
// and [Generic] normalizes to 64 bits.
func (r Repr) Bits() uint {
	switch r {
	case U8, I8:
		return 8
	case U16, I16:
		return 16
	case U32, I32:
		return 32
	case U128, I128:
		return 128
	default:
		return 64
	}
}

// Signed reports whether r is a signed representation. [Generic] is signed.
func (r Repr) Signed() bool {
	switch r {
	case U8, U16, U32, U64, U128, Usize:
		return false
	}
	return true
}

// Wrap narrows v into r with two's complement truncation.
func (r Repr) Wrap(v Value) Value {
	bits := r.Bits()
	mod := new(big.Int).Lsh(big.NewInt(1), bits)

	n := new(big.Int).Mod(v.big(), mod) // Euclidean, so 0 <= n < mod
	if r.Signed() {
		half := new(big.Int).Rsh(mod, 1)
		if n.Cmp(half) >= 0 {
			n.Sub(n, mod)
		}
	}
	return Value{n}
}

// Contains reports whether v is representable in r without wrapping.
func (r Repr) Contains(v Value) bool {
	return r.Wrap(v).Equal(v)
}
