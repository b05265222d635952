package parse

import (
	"cmp"
	"go/constant"
	"go/types"
	"math/big"
	"slices"

	"github.com/panda131456/enumn"
	"github.com/panda131456/enumn/internal/typeinfo"
)

// parseConstEnum fills the tags of an integer enum from the package-level
// constants of exactly that type, in source order. The type checker has already
// evaluated every constant, so each tag gets its constant value as an explicit
// discriminant. A constant repeating an earlier value is an alias and is
// skipped.
func (p *Parser) parseConstEnum(req *Request, t typeinfo.Type) error {
	var consts []*types.Const
	scope := p.pkg.Types.Scope()
	for _, name := range scope.Names() {
		con, ok := scope.Lookup(name).(*types.Const)
		if !ok || !types.Identical(con.Type(), t.Type()) {
			continue
		}
		if p.isGeneratedPos(con.Pos()) {
			continue
		}
		consts = append(consts, con)
	}
	slices.SortFunc(consts, func(a, b *types.Const) int {
		return cmp.Compare(a.Pos(), b.Pos())
	})

	seen := make(map[string]bool)
	for _, con := range consts {
		v, ok := constValue(con.Val())
		if !ok {
			continue
		}
		if seen[v.String()] {
			continue
		}
		seen[v.String()] = true

		req.Decl.Tags = append(req.Decl.Tags, enumn.Tag{
			Name:    con.Name(),
			Payload: enumn.Unit,
			Value:   &v,
			Pos:     con.Pos(),
		})
		req.Exprs[con.Name()] = con.Name()
	}

	name, _ := t.ReprName()
	req.Decl.Repr = name
	req.Decl.HasRepr = true
	req.Zero = "0"
	return nil
}

// constValue converts an integer constant into an [enumn.Value].
func constValue(cv constant.Value) (enumn.Value, bool) {
	cv = constant.ToInt(cv)
	if cv.Kind() != constant.Int {
		return enumn.Value{}, false
	}
	switch v := constant.Val(cv).(type) {
	case int64:
		return enumn.Int(v), true
	case *big.Int:
		return enumn.BigInt(v), true
	}
	return enumn.Value{}, false
}
