package declfile_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/panda131456/enumn"
	"github.com/panda131456/enumn/internal/declfile"
)

func derive(t *testing.T, src string) ([]*enumn.Conversion, error) {
	t.Helper()
	doc, err := declfile.Read("enums.yaml", []byte(src))
	require.NoError(t, err)
	return doc.Derive()
}

func TestDerive(t *testing.T) {
	convs, err := derive(t, `
enums:
  - name: Level
    repr: u8
    tags:
      - name: Low
        value: 10
      - name: High
  - name: AB
    tags:
      - name: A
      - name: B
`)
	require.NoError(t, err)
	require.Len(t, convs, 2)

	level := convs[0]
	assert.Equal(t, "Level", level.Type)
	assert.Equal(t, enumn.U8, level.Repr)
	tag, ok := level.Lookup(enumn.Int(11))
	assert.True(t, ok)
	assert.Equal(t, "High", tag)
	_, ok = level.Lookup(enumn.Int(9))
	assert.False(t, ok)

	ab := convs[1]
	assert.Equal(t, enumn.Generic, ab.Repr)
	tag, ok = ab.Lookup(enumn.Int(0))
	assert.True(t, ok)
	assert.Equal(t, "A", tag)
}

func TestDeriveEmptyDocument(t *testing.T) {
	convs, err := derive(t, "")
	require.NoError(t, err)
	assert.Empty(t, convs)
}

func TestReadRejectsUnknownFields(t *testing.T) {
	_, err := declfile.Read("enums.yaml", []byte(`
enums:
  - name: Level
    represent: u8
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field represent not found")
}

func TestReadValidates(t *testing.T) {
	_, err := declfile.Read("enums.yaml", []byte(`
enums:
  - kind: record
    tags:
      - payload: tuple
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enums[0].name: required")
	assert.Contains(t, err.Error(), `enums[0].kind: "record" is not one of enum struct union other`)
	assert.Contains(t, err.Error(), "enums[0].tags[0].name: required")
	assert.Contains(t, err.Error(), `enums[0].tags[0].payload: "tuple" is not one of unit named positional`)
}

func TestDerivePositionsDiagnostics(t *testing.T) {
	_, err := derive(t, `enums:
  - name: Shape
    tags:
      - name: Empty
      - name: Circle
        payload: named
      - name: Pair
        payload: positional
`)
	require.Error(t, err)
	assert.ErrorIs(t, err, enumn.ErrUnsupportedPayload)
	assert.Equal(t,
		"enums.yaml:5:15: variant Circle with data is not supported\n"+
			"enums.yaml:7:15: variant Pair with data is not supported",
		err.Error())
}

func TestDeriveWrongKind(t *testing.T) {
	_, err := derive(t, `enums:
  - name: Point
    kind: struct
`)
	require.Error(t, err)
	assert.ErrorIs(t, err, enumn.ErrWrongInputKind)
	assert.Equal(t, "enums.yaml:2:11: input must be an enum; Point is a struct", err.Error())
}

func TestDeriveRejectsBadTags(t *testing.T) {
	_, err := derive(t, `enums:
  - name: E
    tags:
      - name: A
      - name: A
      - name: B
        value: ten
`)
	require.Error(t, err)
	assert.Equal(t,
		"enums.yaml:5:15: duplicate tag A of E; first declared at enums.yaml:4:15\n"+
			`enums.yaml:7:16: tag B of E: invalid integer "ten"`,
		err.Error())
}

func TestWritePlans(t *testing.T) {
	convs, err := derive(t, `
enums:
  - name: Wide
    repr: u128
    tags:
      - name: Max
        value: -1
      - name: Wrapped
  - name: Signed
    repr: i8
    tags:
      - name: Neg
        value: -2
      - name: Next
`)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, declfile.WritePlans(&buf, convs))
	assert.Contains(t, buf.String(), "value: 340282366920938463463374607431768211455\n")

	var plans []struct {
		Type  string `yaml:"type"`
		Func  string `yaml:"func"`
		Repr  string `yaml:"repr"`
		Cases []struct {
			Value string `yaml:"value"`
			Tag   string `yaml:"tag"`
		} `yaml:"cases"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &plans))
	require.Len(t, plans, 2)

	assert.Equal(t, "Wide", plans[0].Type)
	assert.Equal(t, "n", plans[0].Func)
	assert.Equal(t, "u128", plans[0].Repr)
	require.Len(t, plans[0].Cases, 2)
	assert.Equal(t, "340282366920938463463374607431768211455", plans[0].Cases[0].Value)
	assert.Equal(t, "Max", plans[0].Cases[0].Tag)
	assert.Equal(t, "0", plans[0].Cases[1].Value)

	assert.Equal(t, "i8", plans[1].Repr)
	assert.Equal(t, "-2", plans[1].Cases[0].Value)
	assert.Equal(t, "-1", plans[1].Cases[1].Value)
}
