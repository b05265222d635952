package codefmt

import (
	"errors"
	"fmt"
	"go/token"

	"github.com/panda131456/enumn"
)

// CodeError indicates where the error occurred in user's source code.
type CodeError struct {
	err  error
	pos  token.Pos
	fset *token.FileSet
}

// Unwrap returns the underlying error.
func (e CodeError) Unwrap() error { return e.err }

// Pos returns the position where the error occurred. It may be invalid.
func (e CodeError) Pos() token.Pos { return e.pos }

// Error implements the error interface. If pos is valid, the position is
// prepended to the error message.
func (e CodeError) Error() string {
	if e.err == nil {
		return ""
	}

	if !e.pos.IsValid() || e.fset == nil {
		return e.err.Error()
	}

	return fmt.Sprintf("%s: %s", FormatPosition(e.fset.Position(e.pos)), e.err.Error())
}

// Errorf formats an error message. The error will indicate the position in the
// source code if the position is valid.
func (f Formatter) Errorf(poser Poser, format string, args ...any) error {
	// Prevent wrapping error in args
	for _, arg := range args {
		if _, ok := arg.(error); ok {
			panic("CodeError cannot wrap error")
		}
	}

	var pos token.Pos
	if poser != nil {
		pos = poser.Pos()
	}

	args = f.wrapPrintfArgs(args)
	err := fmt.Errorf(format, args...)
	return &CodeError{err, pos, f.Fset}
}

// Diagnostics converts every diagnostic of a rejected declaration into a
// [CodeError]. Each of them still matches the kind of the rejection with
// [errors.Is]. Other errors are returned as is.
func (f Formatter) Diagnostics(err error) error {
	var derr *enumn.Error
	if !errors.As(err, &derr) {
		return err
	}

	var errs error
	for _, d := range derr.Diagnostics {
		errs = errors.Join(errs, &CodeError{kindError{d.Message, derr.Kind}, d.Pos, f.Fset})
	}
	return errs
}

// kindError is a diagnostic message classified by a sentinel error.
type kindError struct {
	msg  string
	kind error
}

func (e kindError) Error() string        { return e.msg }
func (e kindError) Is(target error) bool { return target == e.kind }

// Flatten unrolls errors joined by [errors.Join] into a flat list, keeping
// their order.
func Flatten(err error) []error {
	if err == nil {
		return nil
	}

	// errors.Join collapses errors with a single error having Unwrap()
	// []error method.
	if u, ok := err.(interface{ Unwrap() []error }); ok {
		var list []error
		for _, err := range u.Unwrap() {
			list = append(list, Flatten(err)...)
		}
		return list
	}
	return []error{err}
}
