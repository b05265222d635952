package enumn

import (
	"errors"
	"go/token"
	"strings"
)

var (
	// ErrWrongInputKind indicates that the declaration is not an enum.
	ErrWrongInputKind = errors.New("wrong input kind")

	// ErrUnsupportedPayload indicates that some tags carry data.
	ErrUnsupportedPayload = errors.New("unsupported variant payload")
)

// Diagnostic is a message attributed to a position in the host's source.
type Diagnostic struct {
	Pos     token.Pos
	Message string
}

// Error is returned when a declaration cannot be converted. It holds every
// diagnostic found, not just the first one.
type Error struct {
	// Kind is either [ErrWrongInputKind] or [ErrUnsupportedPayload].
	Kind error

	// Type is the name of the rejected declaration.
	Type string

	Diagnostics []Diagnostic
}

// Error joins the diagnostic messages with newlines.
func (e *Error) Error() string {
	msgs := make([]string, len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		msgs[i] = d.Message
	}
	return strings.Join(msgs, "\n")
}

// Is reports whether target is the kind of e.
func (e *Error) Is(target error) bool { return target == e.Kind }
