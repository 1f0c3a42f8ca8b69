package occurrence

import (
	"fmt"

	"github.com/nominal-types/eqcore/prop"
	"github.com/nominal-types/eqcore/syntax"
	"github.com/nominal-types/eqcore/types"
)

// extractPattern walks pat, rooted at obj, and returns the proposition
// a successful match against obj implies, plus an alias map recording
// which pattern variables bind to which sub-object. A bare wildcard or variable pattern carries no type
// information of its own — PatVar only records the alias — since the
// variable's type comes from whatever obj is already known to be.
func extractPattern(pat syntax.Pattern, obj prop.Obj, gen *FreshGen) (prop.Prop, prop.AMap) {
	switch v := pat.(type) {
	case syntax.PatWildcard:
		return prop.UnknownProp{}, prop.AMap{}

	case syntax.PatVar:
		return prop.UnknownProp{}, prop.AMap{v.Name: obj}

	case syntax.PatAtom:
		return prop.PosProp{Object: obj, Type: types.AtomLit{Value: v.Value}}, prop.AMap{}

	case syntax.PatInt:
		return prop.PosProp{Object: obj, Type: types.Number{}}, prop.AMap{}

	case syntax.PatTuple:
		n := len(v.Elems)
		shape := make([]types.Type, n)
		for i := range shape {
			shape[i] = types.Dynamic{}
		}
		conjuncts := []prop.Prop{prop.PosProp{Object: obj, Type: types.Tuple{Elems: shape}}}
		aliases := prop.AMap{}
		for i, sub := range v.Elems {
			childObj := prop.FieldObj{Field: prop.TupleField{Index: i, Arity: n}, Base: obj}
			p, a := extractPattern(sub, childObj, gen)
			conjuncts = append(conjuncts, p)
			mergeAMap(aliases, a)
		}
		return prop.And(conjuncts...), aliases

	case syntax.PatRecord:
		conjuncts := []prop.Prop{prop.PosProp{Object: obj, Type: types.Record{Module: v.Module, Name: v.Name}}}
		aliases := prop.AMap{}
		for _, f := range v.Fields {
			childObj := prop.FieldObj{Field: prop.RecordField{Name: f.Name, RecordName: v.Name}, Base: obj}
			p, a := extractPattern(f.Pattern, childObj, gen)
			conjuncts = append(conjuncts, p)
			mergeAMap(aliases, a)
		}
		if v.Generic != nil {
			p, a := extractPattern(v.Generic, obj, gen)
			conjuncts = append(conjuncts, p)
			mergeAMap(aliases, a)
		}
		return prop.And(conjuncts...), aliases

	case syntax.PatMatch:
		p1, a1 := extractPattern(v.Left, obj, gen)
		p2, a2 := extractPattern(v.Right, obj, gen)
		aliases := prop.AMap{}
		mergeAMap(aliases, a1)
		mergeAMap(aliases, a2)
		return prop.And(p1, p2), aliases

	default:
		panic(fmt.Sprintf("occurrence: unreachable pattern variant in extractPattern: %T", pat))
	}
}

func mergeAMap(dst, src prop.AMap) {
	for k, v := range src {
		dst[k] = v
	}
}
