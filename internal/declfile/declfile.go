// Package declfile reads enum declarations from YAML for hosts which are not
// Go packages, and writes the derived conversions back as a YAML plan.
//
//	enums:
//	  - name: Status
//	    repr: u8
//	    tags:
//	      - name: Low
//	        value: 10
//	      - name: High
package declfile

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/panda131456/enumn"
	"github.com/panda131456/enumn/internal/codefmt"
)

// Document is a parsed declaration file.
type Document struct {
	Enums []Enum `yaml:"enums" validate:"dive"`

	fset *token.FileSet
	file *token.File
}

// Enum declares one type.
type Enum struct {
	Name Scalar  `yaml:"name" validate:"required"`
	Kind Scalar  `yaml:"kind" validate:"omitempty,oneof=enum struct union other"`
	Repr *Scalar `yaml:"repr"`
	Tags []Tag   `yaml:"tags" validate:"dive"`
}

// Tag declares one member of an enum.
type Tag struct {
	Name    Scalar  `yaml:"name" validate:"required"`
	Value   *Scalar `yaml:"value"`
	Payload Scalar  `yaml:"payload" validate:"omitempty,oneof=unit named positional"`
}

// Scalar is a YAML scalar remembering where it was written.
type Scalar struct {
	Value  string
	Line   int
	Column int
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Scalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: want a scalar", node.Line)
	}
	s.Value, s.Line, s.Column = node.Value, node.Line, node.Column
	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		return field.Interface().(Scalar).Value
	}, Scalar{})
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
		return name
	})
	return v
}

// Read parses and validates a declaration file. Unknown fields are rejected.
func Read(filename string, data []byte) (*Document, error) {
	var doc Document
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	if err := validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", filename, validationError(err))
	}

	doc.fset = token.NewFileSet()
	doc.file = doc.fset.AddFile(filename, -1, len(data))
	doc.file.SetLinesForContent(data)
	return &doc, nil
}

// validationError lists the failed fields by their paths in the document.
func validationError(err error) error {
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return err
	}

	messages := make([]string, 0, len(valErrs))
	for _, fe := range valErrs {
		path := fe.Namespace()
		if _, rest, ok := strings.Cut(path, "."); ok {
			path = rest
		}

		switch fe.Tag() {
		case "required":
			messages = append(messages, path+": required")
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s: %q is not one of %s", path, fe.Value(), fe.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s: failed %s validation", path, fe.Tag()))
		}
	}
	return errors.New(strings.Join(messages, "; "))
}

// Fset returns the file set holding the positions of the document.
func (d *Document) Fset() *token.FileSet { return d.fset }

// pos converts the location of s into a [token.Pos] of the document.
func (d *Document) pos(s Scalar) token.Pos {
	if s.Line < 1 || s.Line > d.file.LineCount() {
		return token.NoPos
	}
	return d.file.LineStart(s.Line) + token.Pos(s.Column-1)
}

var kinds = map[string]enumn.Kind{
	"":       enumn.KindEnum,
	"enum":   enumn.KindEnum,
	"struct": enumn.KindStruct,
	"union":  enumn.KindUnion,
	"other":  enumn.KindOther,
}

var payloads = map[string]enumn.PayloadKind{
	"":           enumn.Unit,
	"unit":       enumn.Unit,
	"named":      enumn.NamedFields,
	"positional": enumn.PositionalFields,
}

// Declarations converts the document into enum declarations. Tag names must be
// unique within an enum, and explicit values must be integers.
func (d *Document) Declarations() ([]enumn.Declaration, error) {
	f := codefmt.Formatter{Fset: d.fset}

	var (
		decls []enumn.Declaration
		errs  error
	)
	for _, e := range d.Enums {
		decl := enumn.Declaration{
			Name: e.Name.Value,
			Kind: kinds[e.Kind.Value],
			Pos:  d.pos(e.Name),
		}
		if e.Repr != nil {
			decl.Repr = e.Repr.Value
			decl.HasRepr = true
		}

		seen := make(map[string]token.Pos)
		for _, t := range e.Tags {
			pos := d.pos(t.Name)
			if prev, ok := seen[t.Name.Value]; ok {
				errs = errors.Join(errs, f.Errorf(codefmt.Pos(pos), "duplicate tag %s of %s; first declared at %b", t.Name.Value, e.Name.Value, prev))
				continue
			}
			seen[t.Name.Value] = pos

			tag := enumn.Tag{
				Name:    t.Name.Value,
				Payload: payloads[t.Payload.Value],
				Pos:     pos,
			}
			if t.Value != nil {
				v, err := enumn.ParseValue(t.Value.Value)
				if err != nil {
					errs = errors.Join(errs, f.Errorf(codefmt.Pos(d.pos(*t.Value)), "tag %s of %s: %s", t.Name.Value, e.Name.Value, err.Error()))
					continue
				}
				tag.Value = &v
			}
			decl.Tags = append(decl.Tags, tag)
		}
		decls = append(decls, decl)
	}
	return decls, errs
}

// Derive derives the conversion of every declared enum. All errors are
// collected and positioned in the document.
func (d *Document) Derive() ([]*enumn.Conversion, error) {
	decls, errs := d.Declarations()
	if errs != nil {
		return nil, errs
	}

	f := codefmt.Formatter{Fset: d.fset}
	var convs []*enumn.Conversion
	for _, decl := range decls {
		conv, err := enumn.Derive(decl)
		if err != nil {
			errs = errors.Join(errs, f.Diagnostics(err))
			continue
		}
		convs = append(convs, conv)
	}
	if errs != nil {
		return nil, errs
	}
	return convs, nil
}
