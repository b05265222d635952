package parse

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"
)

const (
	// deriveDirective marks a type to generate a conversion for.
	//
	//	//enumn:derive
	//	//enumn:derive repr=u8
	deriveDirective = "enumn:derive"

	// valueDirective sets the explicit discriminant of a union member.
	//
	//	//enumn:value 10
	valueDirective = "enumn:value"
)

// directive is a "//enumn:..." comment line.
type directive struct {
	args string
	pos  token.Pos
}

// findDirective finds the named directive in a comment group. Directives have
// no space after "//", like "//go:generate".
func findDirective(doc *ast.CommentGroup, name string) (directive, bool) {
	if doc == nil {
		return directive{}, false
	}
	for _, comment := range doc.List {
		text, ok := strings.CutPrefix(comment.Text, "//"+name)
		if !ok {
			continue
		}
		if text != "" && text[0] != ' ' && text[0] != '\t' {
			// "//enumn:derived" is not "//enumn:derive"
			continue
		}
		return directive{args: strings.TrimSpace(text), pos: comment.Slash}, true
	}
	return directive{}, false
}

type deriveOptions struct {
	repr string
}

// parseDeriveOptions parses space-separated key=value options of
// "//enumn:derive".
func parseDeriveOptions(args string) (deriveOptions, error) {
	var opts deriveOptions
	for _, field := range strings.Fields(args) {
		key, value, ok := strings.Cut(field, "=")
		if !ok || value == "" {
			return opts, fmt.Errorf("invalid //%s option %q; want key=value", deriveDirective, field)
		}
		switch key {
		case "repr":
			opts.repr = value
		default:
			return opts, fmt.Errorf("unknown //%s option %q", deriveDirective, key)
		}
	}
	return opts, nil
}
