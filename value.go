package enumn

import (
	"fmt"
	"math/big"
)

// Value is an immutable integer of arbitrary precision. Discriminants of 64
// and 128-bit representations do not fit in int64, so every discriminant is
// carried as a Value. The zero Value is 0.
type Value struct{ n *big.Int }

// Int returns a Value for i.
func Int(i int64) Value { return Value{big.NewInt(i)} }

// Uint returns a Value for u.
func Uint(u uint64) Value { return Value{new(big.Int).SetUint64(u)} }

// BigInt returns a Value holding a copy of b.
func BigInt(b *big.Int) Value {
	if b == nil {
		return Value{}
	}
	return Value{new(big.Int).Set(b)}
}

// ParseValue parses a decimal integer literal. A "0x", "0o" or "0b" prefix and
// "_" separators are accepted as in Go source.
func ParseValue(s string) (Value, error) {
	n, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return Value{}, fmt.Errorf("invalid integer %q", s)
	}
	return Value{n}, nil
}

func (v Value) big() *big.Int {
	if v.n == nil {
		return new(big.Int)
	}
	return v.n
}

// Big returns a copy of v as a [big.Int].
func (v Value) Big() *big.Int { return new(big.Int).Set(v.big()) }

// Cmp compares v and w. It returns -1, 0 or +1.
func (v Value) Cmp(w Value) int { return v.big().Cmp(w.big()) }

// Equal reports whether v and w are the same integer.
func (v Value) Equal(w Value) bool { return v.Cmp(w) == 0 }

// Inc returns v + 1.
func (v Value) Inc() Value {
	return Value{new(big.Int).Add(v.big(), big.NewInt(1))}
}

// Int64 returns v as int64. ok is false if v does not fit.
func (v Value) Int64() (i int64, ok bool) {
	b := v.big()
	if !b.IsInt64() {
		return 0, false
	}
	return b.Int64(), true
}

// String returns the decimal form of v.
func (v Value) String() string { return v.big().String() }
