package enumn

// FuncName is the name of the conversion function.
const FuncName = "n"

// Conversion describes the function n of one enum: it takes an integer of the
// representation and returns the tag whose discriminant equals it, or no tag.
type Conversion struct {
	// Type is the name of the enum. n returns values of this type.
	Type string

	// Func is always [FuncName].
	Func string

	Repr Repr

	// Cases is the dispatch table in declaration order. Every other input maps
	// to no tag.
	Cases []Case
}

// Case is an entry of the dispatch table.
type Case struct {
	Value Value
	Tag   string
}

// Generate builds the conversion of the enum typ from its discriminant table.
func Generate(typ string, repr Repr, table *Table) *Conversion {
	conv := &Conversion{
		Type:  typ,
		Func:  FuncName,
		Repr:  repr,
		Cases: make([]Case, 0, table.Len()),
	}
	for name, v := range table.All() {
		conv.Cases = append(conv.Cases, Case{Value: v, Tag: name})
	}
	return conv
}

// Lookup evaluates n for value. In [Generic] mode, a value that cannot be
// converted into int64 matches nothing.
func (c *Conversion) Lookup(value Value) (string, bool) {
	if c.Repr == Generic {
		if _, ok := value.Int64(); !ok {
			return "", false
		}
	}
	for _, cs := range c.Cases {
		if cs.Value.Equal(value) {
			return cs.Tag, true
		}
	}
	return "", false
}
