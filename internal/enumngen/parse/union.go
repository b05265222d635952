package parse

import (
	"cmp"
	"errors"
	"go/types"
	"slices"

	"github.com/panda131456/enumn"
	"github.com/panda131456/enumn/internal/codefmt"
	"github.com/panda131456/enumn/internal/typeinfo"
)

// parseUnion fills the tags of an interface union from the named types in the
// package implementing it, in source order. A member implemented only by its
// pointer type is produced by address.
//
//	//enumn:derive
//	type Event interface{ isEvent() }
//
//	type Open struct{}
//	//enumn:value 10
//	type Close struct{}
func (p *Parser) parseUnion(req *Request, t typeinfo.Type, docs docIndex) error {
	var members []*types.TypeName
	scope := p.pkg.Types.Scope()
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || tn.IsAlias() || tn == req.Type {
			continue
		}
		mt := typeinfo.TypeOf(tn.Type())
		if mt.IsInterface() || mt.IsGeneric() {
			continue
		}
		if !types.Implements(tn.Type(), t.Interface) && !types.Implements(types.NewPointer(tn.Type()), t.Interface) {
			continue
		}
		members = append(members, tn)
	}
	slices.SortFunc(members, func(a, b *types.TypeName) int {
		return cmp.Compare(a.Pos(), b.Pos())
	})

	var errs error
	for _, tn := range members {
		tag := enumn.Tag{
			Name:    tn.Name(),
			Payload: typeinfo.TypeOf(tn.Type()).Payload(),
			Pos:     tn.Pos(),
		}

		if d, ok := findDirective(docs[tn.Pos()], valueDirective); ok {
			v, err := enumn.ParseValue(d.args)
			if err != nil {
				errs = errors.Join(errs, codefmt.Errorf(p, codefmt.Pos(d.pos), "invalid //%s: %s", valueDirective, err.Error()))
				continue
			}
			tag.Value = &v
		}

		req.Decl.Tags = append(req.Decl.Tags, tag)
		if types.Implements(tn.Type(), t.Interface) {
			req.Exprs[tn.Name()] = tn.Name() + "{}"
		} else {
			req.Exprs[tn.Name()] = "&" + tn.Name() + "{}"
		}
	}

	req.Zero = "nil"
	return errs
}
