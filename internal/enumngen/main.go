package enumngen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/panda131456/enumn/internal/codefmt"
	"github.com/panda131456/enumn/internal/enumngen/parse"
)

var Version string

// DefaultOutFile is the name of the generated file in each package.
const DefaultOutFile = "enumn_gen.go"

// Main is the main entry point for enumn. It is used by the command-line tool
// directly.
//
// ctx is the context for loading packages. If the loading is too slow, ctx can
// cancel the operation. wd is the path of the working directory. env is the
// environment variables to use when running the tool. tags is the build tags to
// use when loading packages. tests indicates whether to include test files.
// outFile is the name of the output file to generate in each package. And
// patterns are the package patterns to process.
//
// It returns a map of output file paths to their contents. Packages without
// any marked declaration produce no output. If any error occurs, it returns a
// non-nil error.
func Main(ctx context.Context, wd string, env []string, tags string, tests bool, outFile string, patterns []string) (map[string][]byte, error) {
	pkgs, err := load(ctx, wd, env, tags, tests, patterns)
	if err != nil {
		return nil, err
	}

	outs := make(map[string][]byte)
	funcs := make(map[string]bool)
	var errs error

	for _, pkg := range pkgs {
		if len(pkg.GoFiles) == 0 {
			continue
		}

		e, err := New(pkg)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		if err := e.Build(); err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		for _, name := range e.FuncNames() {
			funcs[name] = true
		}

		code := e.Generate()
		if len(code) == 0 {
			continue
		}

		outDir := filepath.Dir(pkg.GoFiles[0])
		if rel, err := filepath.Rel(wd, outDir); err == nil {
			outDir = rel
		}
		out := filepath.Join(outDir, outFile)
		outs[out] = code
	}

	// Type errors are reported only now, when it is known which of them the
	// generated code resolves.
	for _, pkg := range pkgs {
		for _, err := range pkg.Errors {
			if err.Kind == packages.TypeError && refersTo(err.Msg, funcs) {
				continue
			}
			errs = errors.Join(errs, relError(wd, err))
		}
	}
	if errs != nil {
		// errs already contains comprehensive error messages. So we don't need
		// to attach another error message.
		return nil, reorderErrors(errs)
	}

	return outs, nil
}

// load loads packages.
func load(ctx context.Context, wd string, env []string, tags string, tests bool, patterns []string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode:      packages.NeedDeps | packages.NeedFiles | packages.NeedImports | packages.NeedName | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Context:   ctx,
		Dir:       wd,
		Env:       env,
		Tests:     tests,
		ParseFile: parseFile,
	}
	if tags != "" {
		cfg.BuildFlags = []string{"-tags=" + tags}
	}

	// Load the packages based on the provided patterns.
	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found: %v", patterns)
	}

	// Check for errors in the loaded packages. Type errors are left to Main:
	// code calling a conversion function does not compile until the function
	// is generated.
	var errs error
	for _, pkg := range pkgs {
		for _, err := range pkg.Errors {
			if err.Kind != packages.TypeError {
				errs = errors.Join(errs, relError(wd, err))
			}
		}
	}
	if errs != nil {
		return nil, errs
	}

	return pkgs, nil
}

// relError rewrites the position of err relative to wd.
func relError(wd string, err packages.Error) error {
	if err.Pos == "" {
		return errors.New(err.Msg)
	}

	path, rowcol, _ := strings.Cut(err.Pos, ":")
	if rel, relErr := filepath.Rel(wd, path); relErr == nil {
		err.Pos = rel + ":" + rowcol
	}
	return err
}

// reUndefined matches type errors of references to missing identifiers, such
// as "undefined: StatusN" or "undefined: enums.StatusN".
var reUndefined = regexp.MustCompile(`^undefined: (?:\w+\.)?(\w+)$`)

// refersTo reports whether msg is a type error about a reference to one of
// funcs which are about to be generated.
func refersTo(msg string, funcs map[string]bool) bool {
	m := reUndefined.FindStringSubmatch(msg)
	return m != nil && funcs[m[1]]
}

// generatedPrefix starts every file generated by enumn.
var generatedPrefix = []byte("// Code generated by " + parse.Generator)

// parseFile parses Go files for loading. A file generated by enumn is parsed
// up to its package clause only, so that its stale declarations neither break
// type checking nor conflict with the code about to replace it.
func parseFile(fset *token.FileSet, filename string, src []byte) (*ast.File, error) {
	mode := parser.AllErrors | parser.ParseComments
	if bytes.HasPrefix(src, generatedPrefix) {
		mode |= parser.PackageClauseOnly
	}
	return parser.ParseFile(fset, filename, src, mode)
}

func reorderErrors(errs error) error {
	if errs == nil {
		return nil
	}

	list := codefmt.Flatten(errs)

	// Sort errors by message
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Error() < list[j].Error()
	})
	return errors.Join(list...)
}
