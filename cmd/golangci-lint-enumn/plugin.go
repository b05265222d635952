// golangcilintenumn package provides a plugin for golangci-lint to integrate
// the enumn analyzer. To build a custom golangci-lint binary with this plugin,
// use the following command at this package's directory:
//
//	golangci-lint custom
//
// The resulting golangci-lint-enumn binary reports invalid //enumn:derive
// declarations along with the other linters.
package golangcilintenumn

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/panda131456/enumn/pkg/enumnanalysis"
)

func init() {
	register.Plugin("enumn", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return EnumnLinter{}, nil
}

type EnumnLinter struct{}

func (EnumnLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{enumnanalysis.Analyzer}, nil
}

// GetLoadMode requests type information. Integer enums are discovered through
// their constants.
func (EnumnLinter) GetLoadMode() string {
	return register.LoadModeTypesInfo
}
