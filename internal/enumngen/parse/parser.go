package parse

import (
	"cmp"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/panda131456/enumn"
	"github.com/panda131456/enumn/internal/codefmt"
	"github.com/panda131456/enumn/internal/typeinfo"
)

// Generator is the import path recorded in generated files.
const Generator = "github.com/panda131456/enumn"

// IsGenerated reports whether the file was generated by enumn. Generated
// files are ignored when looking for directives and name conflicts.
func IsGenerated(file *ast.File) bool {
	if !ast.IsGenerated(file) {
		return false
	}
	for _, group := range file.Comments {
		for _, comment := range group.List {
			if strings.HasPrefix(comment.Text, "// Code generated by "+Generator) {
				return true
			}
		}
	}
	return false
}

// Parser parses an AST of the underlying package to collect enumn requests.
type Parser struct{ pkg *packages.Package }

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser].
func New(pkg *packages.Package) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.PkgPath == "" {
		return nil, fmt.Errorf("need pkg path")
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("need pkg types")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}
	if pkg.TypesInfo == nil {
		return nil, fmt.Errorf("need pkg types info")
	}
	return &Parser{pkg: pkg}, nil
}

// Request is a type declaration marked with "//enumn:derive".
type Request struct {
	// Decl is the declaration handed to [enumn.Derive].
	Decl enumn.Declaration

	// Type is the marked type.
	Type *types.TypeName

	// Exprs holds the Go expression producing each tag, by tag name.
	Exprs map[string]string

	// Zero is the Go expression of the zero value of Type.
	Zero string
}

// FuncName returns the name of the generated conversion function, such as
// "StatusN" for Status.
func (r Request) FuncName() string {
	return r.Type.Name() + strings.ToUpper(enumn.FuncName)
}

func (r Request) Pos() token.Pos { return r.Type.Pos() }

// ParseRequests finds all type declarations marked with "//enumn:derive" and
// describes them as enum declarations. Requests are ordered by their
// positions. It collects all errors instead of stopping at the first error.
func (p *Parser) ParseRequests() ([]Request, error) {
	var (
		reqs []Request
		errs error
	)

	docs := p.typeDocs()
	for _, file := range p.files() {
		for _, decl := range file.Decls {
			errs = errors.Join(errs, p.validatePlacement(decl))

			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			for _, spec := range gen.Specs {
				spec := spec.(*ast.TypeSpec)
				d, ok := findDirective(docs[spec.Name.Pos()], deriveDirective)
				if !ok {
					continue
				}

				req, err := p.parseRequest(spec, d, docs)
				if err != nil {
					errs = errors.Join(errs, err)
					continue
				}
				reqs = append(reqs, req)
			}
		}
	}

	slices.SortFunc(reqs, func(a, b Request) int {
		return cmp.Compare(a.Pos(), b.Pos())
	})
	return reqs, errs
}

func (p *Parser) parseRequest(spec *ast.TypeSpec, d directive, docs docIndex) (Request, error) {
	tn, ok := p.pkg.TypesInfo.Defs[spec.Name].(*types.TypeName)
	if !ok {
		return Request{}, codefmt.Errorf(p, spec.Name, "cannot resolve type %s", spec.Name.Name)
	}

	opts, err := parseDeriveOptions(d.args)
	if err != nil {
		return Request{}, codefmt.Errorf(p, codefmt.Pos(d.pos), "%s", err.Error())
	}

	t := typeinfo.TypeOf(tn.Type())
	if t.IsGeneric() {
		return Request{}, codefmt.Errorf(p, tn, "generic type %s is not supported", tn.Name())
	}

	kind := t.DeclKind()
	if tn.IsAlias() {
		// Members of an alias belong to the aliased type.
		kind = enumn.KindOther
	}

	req := Request{
		Decl: enumn.Declaration{
			Name: tn.Name(),
			Kind: kind,
			Pos:  tn.Pos(),
		},
		Type:  tn,
		Exprs: make(map[string]string),
	}

	if req.Decl.Kind == enumn.KindEnum {
		switch {
		case t.IsInteger():
			err = p.parseConstEnum(&req, t)
		case t.IsInterface():
			err = p.parseUnion(&req, t, docs)
		}
		if err != nil {
			return Request{}, err
		}
	}

	if opts.repr != "" {
		req.Decl.Repr = opts.repr
		req.Decl.HasRepr = true
	}

	if err := p.checkConflict(req); err != nil {
		return Request{}, err
	}
	return req, nil
}

// checkConflict reports an error if the name of the function to generate is
// already declared by hand.
func (p *Parser) checkConflict(req Request) error {
	obj := p.pkg.Types.Scope().Lookup(req.FuncName())
	if obj == nil || p.isGeneratedPos(obj.Pos()) {
		return nil
	}
	return codefmt.Errorf(p, req.Type, "cannot generate %s for %s: already declared at %b", req.FuncName(), req.Type.Name(), obj)
}

// files returns the files which are not generated by enumn.
func (p *Parser) files() []*ast.File {
	var files []*ast.File
	for _, file := range p.pkg.Syntax {
		if !IsGenerated(file) {
			files = append(files, file)
		}
	}
	return files
}

func (p *Parser) isGeneratedPos(pos token.Pos) bool {
	for _, file := range p.pkg.Syntax {
		if file.FileStart <= pos && pos <= file.FileEnd {
			return IsGenerated(file)
		}
	}
	return false
}

// docIndex maps the position of a type name to the doc comment of the type.
type docIndex map[token.Pos]*ast.CommentGroup

// typeDocs indexes the doc comments of type declarations. A type declared
// without parentheses is documented by its declaration.
func (p *Parser) typeDocs() docIndex {
	docs := make(docIndex)
	for _, file := range p.files() {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}
			for _, spec := range gen.Specs {
				spec := spec.(*ast.TypeSpec)
				doc := spec.Doc
				if doc == nil && !gen.Lparen.IsValid() {
					doc = gen.Doc
				}
				docs[spec.Name.Pos()] = doc
			}
		}
	}
	return docs
}

// validatePlacement reports "//enumn:derive" directives outside type
// declarations.
func (p *Parser) validatePlacement(decl ast.Decl) error {
	var doc *ast.CommentGroup
	switch decl := decl.(type) {
	case *ast.FuncDecl:
		doc = decl.Doc
	case *ast.GenDecl:
		if decl.Tok == token.TYPE {
			return nil
		}
		doc = decl.Doc
		if d, ok := findDirective(doc, deriveDirective); ok {
			return codefmt.Errorf(p, codefmt.Pos(d.pos), "//%s must annotate a type declaration", deriveDirective)
		}
		for _, spec := range decl.Specs {
			if vs, ok := spec.(*ast.ValueSpec); ok {
				if d, ok := findDirective(vs.Doc, deriveDirective); ok {
					return codefmt.Errorf(p, codefmt.Pos(d.pos), "//%s must annotate a type declaration", deriveDirective)
				}
			}
		}
		return nil
	}
	if d, ok := findDirective(doc, deriveDirective); ok {
		return codefmt.Errorf(p, codefmt.Pos(d.pos), "//%s must annotate a type declaration", deriveDirective)
	}
	return nil
}
