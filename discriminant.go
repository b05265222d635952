package enumn

import (
	"iter"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Table maps tag names to their discriminants. It iterates in declaration
// order.
type Table struct {
	m *linkedhashmap.Map // string -> Value
}

// Discriminants computes the discriminant of every tag under repr. A tag with
// an explicit value takes it; any other tag takes the previous tag's value plus
// one, or 0 if it is the first. Values are narrowed into repr without
// overflow checks.
//
// Tag names are expected to be distinct. A repeated name keeps the position of
// its first occurrence and the discriminant of its last one, so the table then
// holds fewer entries than tags. Later tags still count from the repeated tag.
//
// The tags must have been validated by [Validate].
func Discriminants(tags []Tag, repr Repr) *Table {
	t := &Table{m: linkedhashmap.New()}

	var prev *Value
	for _, tag := range tags {
		var v Value
		switch {
		case tag.Value != nil:
			v = *tag.Value
		case prev != nil:
			v = prev.Inc()
		default:
			v = Int(0)
		}
		v = repr.Wrap(v)

		t.m.Put(tag.Name, v)
		prev = &v
	}
	return t
}

// Get returns the discriminant of the named tag.
func (t *Table) Get(name string) (Value, bool) {
	v, ok := t.m.Get(name)
	if !ok {
		return Value{}, false
	}
	return v.(Value), true
}

// Len returns the number of tags.
func (t *Table) Len() int { return t.m.Size() }

// All yields tag names and discriminants in declaration order.
func (t *Table) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		it := t.m.Iterator()
		for it.Next() {
			if !yield(it.Key().(string), it.Value().(Value)) {
				return
			}
		}
	}
}
