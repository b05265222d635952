// Package enumnanalysis reports invalid //enumn:derive declarations through
// the Go analysis protocol, so that editors and linters show them in place.
package enumnanalysis

import (
	"errors"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/panda131456/enumn/internal/codefmt"
	"github.com/panda131456/enumn/internal/enumngen"
)

// Analyzer validates the usage of enumn in the package.
var Analyzer = &analysis.Analyzer{
	Name: "enumn",
	Doc:  "linter for //enumn:derive declarations",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}

	e, err := enumngen.New(pkg)
	if err != nil {
		return nil, err
	}

	if err := e.Build(); err != nil {
		for _, err := range codefmt.Flatten(err) {
			var codeErr *codefmt.CodeError
			if !errors.As(err, &codeErr) {
				return nil, err
			}
			pass.Report(analysis.Diagnostic{
				Pos:     codeErr.Pos(),
				Message: codeErr.Unwrap().Error(),
			})
		}
	}

	return nil, nil
}
