package enumngen

import (
	"bytes"
	"errors"
	"go/token"

	"golang.org/x/tools/go/packages"

	"github.com/panda131456/enumn"
	"github.com/panda131456/enumn/internal/codefmt"
	"github.com/panda131456/enumn/internal/enumngen/emit"
	"github.com/panda131456/enumn/internal/enumngen/parse"
)

// Enumn generates conversion functions for the target package. Call [Build]
// and then [Generate] to get the generated code. All potential errors are
// returned by [Build]. Once [Build] succeeds, [Generate] never fails.
type Enumn struct {
	p   *parse.Parser
	fmt codefmt.Formatter
	ns  codefmt.NS
	buf *bytes.Buffer
	w   *codefmt.Writer

	reqs  []parse.Request
	convs []*enumn.Conversion
}

// New creates a new [Enumn] for the given package. If the package does not
// satisfy the requirements, an error is returned. The package must have its
// Syntax, Types and TypesInfo. And it must not have any errors.
func New(pkg *packages.Package) (*Enumn, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	return &Enumn{
		p:   parser,
		fmt: codefmt.New(pkg),
		ns:  codefmt.NewNS(pkg.Types.Scope()),
		buf: &buf,
		w:   codefmt.NewWriter(&buf, pkg),
	}, nil
}

// Build parses the marked declarations and derives their conversions. All
// potential errors are returned by this method. It must be called before
// [Generate].
func (e *Enumn) Build() error {
	reqs, errs := e.p.ParseRequests()

	for _, req := range reqs {
		conv, err := enumn.Derive(req.Decl)
		if err != nil {
			errs = errors.Join(errs, e.fmt.Diagnostics(err))
			continue
		}
		if err := e.checkEmittable(req, conv); err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		e.reqs = append(e.reqs, req)
		e.convs = append(e.convs, conv)
	}

	if errs != nil {
		e.reqs, e.convs = nil, nil
	}
	return errs
}

// checkEmittable reports conversions which cannot be expressed as a Go switch:
// 128-bit representations and discriminants assigned to more than one tag.
func (e *Enumn) checkEmittable(req parse.Request, conv *enumn.Conversion) error {
	if conv.Repr != enumn.Generic && conv.Repr.GoType() == "" {
		return e.fmt.Errorf(req, "representation %s of %s has no Go integer type", conv.Repr, req.Type.Name())
	}

	positions := make(map[string]token.Pos, len(req.Decl.Tags))
	for _, tag := range req.Decl.Tags {
		positions[tag.Name] = tag.Pos
	}

	var errs error
	first := make(map[string]string)
	for _, cs := range conv.Cases {
		pos := positions[cs.Tag]
		key := cs.Value.String()
		if prev, ok := first[key]; ok {
			errs = errors.Join(errs, e.fmt.Errorf(codefmt.Pos(pos), "discriminant %s of %s is already assigned to %s", cs.Value, cs.Tag, prev))
			continue
		}
		first[key] = cs.Tag
	}
	return errs
}

// FuncNames returns the names of the functions to generate. It must be called
// after [Build] succeeds.
func (e *Enumn) FuncNames() []string {
	names := make([]string, len(e.reqs))
	for i, req := range e.reqs {
		names[i] = req.FuncName()
	}
	return names
}

// Generate generates conversion code for the package. It returns nil if the
// package has no marked declaration. It must be called after [Build]
// succeeds.
func (e *Enumn) Generate() []byte {
	if len(e.convs) == 0 {
		return nil
	}

	// Function names are package-level. Reserve all of them before allocating
	// local names.
	for _, req := range e.reqs {
		e.ns.Reserve(req.FuncName())
	}

	for i, conv := range e.convs {
		w := e.w.WithNS(e.ns.Clone())
		emit.Func(w, e.reqs[i], conv)
		e.w.Printf("\n")
	}
	return emit.File(e.p.Pkg().Name, Version, e.buf.Bytes())
}
