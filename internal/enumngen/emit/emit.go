// Package emit renders conversions as Go source code.
package emit

import (
	"bytes"
	"fmt"
	"go/format"

	"github.com/panda131456/enumn"
	"github.com/panda131456/enumn/internal/codefmt"
	"github.com/panda131456/enumn/internal/enumngen/parse"
)

// genericConstraint is the type set of the input of a conversion without a
// representation. Every type in it converts to int64 without loss.
const genericConstraint = "~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32"

// Header returns the comment which marks generated files.
func Header(version string) string {
	suffix := ""
	if version != "" {
		suffix = "@" + version
	}
	return fmt.Sprintf("// Code generated by %s%s. DO NOT EDIT.", parse.Generator, suffix)
}

// Func writes the conversion function of conv for req. Local identifiers are
// allocated from the namespace of w, so it should reserve every name of the
// package. conv.Repr must have a Go type unless it is [enumn.Generic].
//
//	func StatusN(value uint8) (Status, bool) {
//		switch value {
//		case 1:
//			return Active, true
//		}
//		return 0, false
//	}
func Func(w *codefmt.Writer, req parse.Request, conv *enumn.Conversion) {
	name := req.FuncName()
	typ := req.Type.Name()

	w.Reserve(name)
	w.Reserve(typ)
	for _, cs := range conv.Cases {
		w.Reserve(cs.Tag)
	}
	value := w.Name("value")

	w.Printf("// %s returns the %s member with the given value, if any.\n", name, typ)
	if conv.Repr == enumn.Generic {
		tparam := w.Name("V")
		w.Printf("func %s[%s %s](%s %s) (%s, bool) {\n", name, tparam, genericConstraint, value, tparam, typ)
	} else {
		goType := conv.Repr.GoType()
		if goType == "" {
			panic(fmt.Sprintf("no Go type for representation %s", conv.Repr))
		}
		w.Printf("func %s(%s %s) (%s, bool) {\n", name, value, goType, typ)
	}

	if len(conv.Cases) != 0 {
		if conv.Repr == enumn.Generic {
			w.Printf("\tswitch int64(%s) {\n", value)
		} else {
			w.Printf("\tswitch %s {\n", value)
		}
		for _, cs := range conv.Cases {
			expr, ok := req.Exprs[cs.Tag]
			if !ok {
				panic(fmt.Sprintf("no expression for %s.%s", typ, cs.Tag))
			}
			w.Printf("\tcase %s:\n", cs.Value)
			w.Printf("\t\treturn %s, true\n", expr)
		}
		w.Printf("\t}\n")
	}

	w.Printf("\treturn %s, false\n", req.Zero)
	w.Printf("}\n")
}

// File frames the generated function code as a Go source file of the named
// package. The code is formatted by gofmt if it is valid.
func File(pkgName, version string, body []byte) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n\n", Header(version))
	fmt.Fprintf(&buf, "package %s\n\n", pkgName)
	buf.Write(body)

	code := buf.Bytes()
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}
