package enumn_test

import (
	"errors"
	"fmt"
	"go/token"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panda131456/enumn"
)

func unitTags(names ...string) []enumn.Tag {
	tags := make([]enumn.Tag, len(names))
	for i, name := range names {
		tags[i] = enumn.Tag{Name: name}
	}
	return tags
}

func explicit(v int64) *enumn.Value {
	val := enumn.Int(v)
	return &val
}

func lookup(t *testing.T, conv *enumn.Conversion, v int64) string {
	t.Helper()
	tag, ok := conv.Lookup(enumn.Int(v))
	if !ok {
		return "<none>"
	}
	return tag
}

func TestDeriveDefaultNumbering(t *testing.T) {
	names := []string{"A", "B", "C", "D", "E"}
	conv, err := enumn.Derive(enumn.Declaration{Name: "Letter", Tags: unitTags(names...)})
	require.NoError(t, err)

	for i, name := range names {
		assert.Equal(t, name, lookup(t, conv, int64(i)))
	}
	assert.Equal(t, "<none>", lookup(t, conv, int64(len(names))))
	assert.Equal(t, "<none>", lookup(t, conv, -1))
	assert.Equal(t, "<none>", lookup(t, conv, math.MaxInt64))
}

func TestDeriveExplicitResumesCounting(t *testing.T) {
	tags := unitTags("A", "B", "C", "D")
	tags[1].Value = explicit(7)

	conv, err := enumn.Derive(enumn.Declaration{Name: "E", Tags: tags})
	require.NoError(t, err)

	assert.Equal(t, "A", lookup(t, conv, 0))
	assert.Equal(t, "B", lookup(t, conv, 7))
	assert.Equal(t, "C", lookup(t, conv, 8))
	assert.Equal(t, "D", lookup(t, conv, 9))
	assert.Equal(t, "<none>", lookup(t, conv, 1))
	assert.Equal(t, "<none>", lookup(t, conv, 2))
}

func TestDeriveRoundTrip(t *testing.T) {
	tags := unitTags("Zero", "Neg", "NegNext", "Big", "BigNext", "Back")
	tags[1].Value = explicit(-3)
	tags[3].Value = explicit(1000)
	tags[5].Value = explicit(1)

	decl := enumn.Declaration{Name: "Mixed", Tags: tags, Repr: "i32", HasRepr: true}
	conv, err := enumn.Derive(decl)
	require.NoError(t, err)

	table := enumn.Discriminants(decl.Tags, enumn.I32)
	require.Equal(t, len(tags), table.Len())

	seen := make(map[string]bool)
	for name, v := range table.All() {
		tag, ok := conv.Lookup(v)
		require.True(t, ok, "no tag for %s", v)
		assert.Equal(t, name, tag)
		assert.False(t, seen[v.String()], "duplicate discriminant %s", v)
		seen[v.String()] = true
	}
}

func TestDeriveGenericDefault(t *testing.T) {
	conv, err := enumn.Derive(enumn.Declaration{Name: "AB", Tags: unitTags("A", "B")})
	require.NoError(t, err)

	assert.Equal(t, enumn.Generic, conv.Repr)
	assert.Equal(t, "A", lookup(t, conv, 0))
	assert.Equal(t, "B", lookup(t, conv, 1))
	assert.Equal(t, "<none>", lookup(t, conv, 2))
	assert.Equal(t, "<none>", lookup(t, conv, -1))

	// Not convertible into int64
	_, ok := conv.Lookup(enumn.Uint(math.MaxUint64))
	assert.False(t, ok)
}

func TestDeriveReprOverride(t *testing.T) {
	tags := unitTags("Low", "High")
	tags[0].Value = explicit(10)

	conv, err := enumn.Derive(enumn.Declaration{Name: "Level", Tags: tags, Repr: "u8", HasRepr: true})
	require.NoError(t, err)

	assert.Equal(t, enumn.U8, conv.Repr)
	assert.Equal(t, "uint8", conv.Repr.GoType())
	assert.Equal(t, "Low", lookup(t, conv, 10))
	assert.Equal(t, "High", lookup(t, conv, 11))
	assert.Equal(t, "<none>", lookup(t, conv, 9))
}

func TestDeriveUnrecognizedReprFallsBack(t *testing.T) {
	conv, err := enumn.Derive(enumn.Declaration{Name: "C", Tags: unitTags("A"), Repr: "C", HasRepr: true})
	require.NoError(t, err)
	assert.Equal(t, enumn.Generic, conv.Repr)
}

func TestDeriveRejectsPayloads(t *testing.T) {
	tags := []enumn.Tag{
		{Name: "Empty", Pos: 1},
		{Name: "Circle", Payload: enumn.NamedFields, Pos: 2},
		{Name: "Pair", Payload: enumn.PositionalFields, Pos: 3},
	}
	conv, err := enumn.Derive(enumn.Declaration{Name: "Shape", Tags: tags})
	assert.Nil(t, conv)
	require.Error(t, err)
	assert.ErrorIs(t, err, enumn.ErrUnsupportedPayload)
	assert.NotErrorIs(t, err, enumn.ErrWrongInputKind)

	var e *enumn.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "Shape", e.Type)
	assert.Equal(t, []enumn.Diagnostic{
		{Pos: 2, Message: "variant Circle with data is not supported"},
		{Pos: 3, Message: "variant Pair with data is not supported"},
	}, e.Diagnostics)
	assert.Equal(t, "variant Circle with data is not supported\nvariant Pair with data is not supported", err.Error())
}

func TestDeriveRejectsWrongKind(t *testing.T) {
	for _, kind := range []enumn.Kind{enumn.KindStruct, enumn.KindUnion, enumn.KindOther} {
		t.Run(kind.String(), func(t *testing.T) {
			decl := enumn.Declaration{Name: "Point", Kind: kind, Pos: token.Pos(5), Tags: unitTags("X")}
			conv, err := enumn.Derive(decl)
			assert.Nil(t, conv)
			require.ErrorIs(t, err, enumn.ErrWrongInputKind)

			var e *enumn.Error
			require.True(t, errors.As(err, &e))
			require.Len(t, e.Diagnostics, 1)
			assert.Equal(t, token.Pos(5), e.Diagnostics[0].Pos)
			assert.Equal(t, fmt.Sprintf("input must be an enum; Point is a %s", kind), e.Diagnostics[0].Message)
		})
	}
}

func TestDeriveEmpty(t *testing.T) {
	conv, err := enumn.Derive(enumn.Declaration{Name: "Never"})
	require.NoError(t, err)
	assert.Empty(t, conv.Cases)
	assert.Equal(t, "<none>", lookup(t, conv, 0))
}

func TestDeriveDeterministic(t *testing.T) {
	tags := unitTags("A", "B", "C")
	tags[2].Value = explicit(-1)
	decl := enumn.Declaration{Name: "D", Tags: tags, Repr: "i8", HasRepr: true}

	a, err := enumn.Derive(decl)
	require.NoError(t, err)
	b, err := enumn.Derive(decl)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, enumn.FuncName, a.Func)
	assert.Equal(t, "D", a.Type)
	assert.Equal(t, []string{"A", "B", "C"}, []string{a.Cases[0].Tag, a.Cases[1].Tag, a.Cases[2].Tag})
}
