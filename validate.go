package enumn

import "fmt"

// Validate checks that decl is an enum whose tags carry no data. It reports one
// diagnostic per offending tag.
func Validate(decl Declaration) error {
	if decl.Kind != KindEnum {
		return &Error{
			Kind: ErrWrongInputKind,
			Type: decl.Name,
			Diagnostics: []Diagnostic{{
				Pos:     decl.Pos,
				Message: fmt.Sprintf("input must be an enum; %s is a %s", decl.Name, decl.Kind),
			}},
		}
	}

	var diags []Diagnostic
	for _, tag := range decl.Tags {
		if tag.Payload != Unit {
			diags = append(diags, Diagnostic{
				Pos:     tag.Pos,
				Message: fmt.Sprintf("variant %s with data is not supported", tag.Name),
			})
		}
	}
	if len(diags) != 0 {
		return &Error{Kind: ErrUnsupportedPayload, Type: decl.Name, Diagnostics: diags}
	}
	return nil
}
