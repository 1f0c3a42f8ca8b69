package occurrence

import (
	"fmt"

	"github.com/nominal-types/eqcore/prop"
	"github.com/nominal-types/eqcore/syntax"
	"github.com/nominal-types/eqcore/types"
)

// testProps translates a single guard expression into the proposition
// it establishes about the variable(s) it tests. Guards this engine
// does not model reduce to Unknown rather than erroring — occurrence
// typing is sound-but-incomplete by design: missing information just
// means no narrowing happens.
func testProps(g syntax.Guard) prop.Prop {
	switch v := g.(type) {
	case syntax.IsType:
		t, ok := guardKindType(v.Kind)
		if !ok {
			return prop.UnknownProp{}
		}
		return prop.PosProp{Object: prop.VarObj{Name: v.Var}, Type: t}

	case syntax.IsFunctionArity:
		args := make([]types.Type, v.Arity)
		for i := range args {
			args[i] = types.Any{}
		}
		fun := types.Fun{Args: args, Result: types.Any{}}
		return prop.PosProp{Object: prop.VarObj{Name: v.Var}, Type: fun}

	case syntax.IsRecordTest:
		return prop.PosProp{Object: prop.VarObj{Name: v.Var}, Type: types.Record{Name: v.RecordName}}

	case syntax.CompareEq:
		p := prop.Prop(prop.PosProp{Object: prop.VarObj{Name: v.Var}, Type: types.AtomLit{Value: v.Atom}})
		if v.Negated {
			return prop.Not(p)
		}
		return p

	case syntax.Not:
		return prop.Not(testProps(v.Guard))

	case syntax.AndGuard:
		parts := make([]prop.Prop, len(v.Guards))
		for i, sub := range v.Guards {
			parts[i] = testProps(sub)
		}
		return prop.And(parts...)

	case syntax.OrGuard:
		parts := make([]prop.Prop, len(v.Guards))
		for i, sub := range v.Guards {
			parts[i] = testProps(sub)
		}
		return prop.Or(parts...)

	default:
		panic(fmt.Sprintf("occurrence: unreachable guard variant in testProps: %T", g))
	}
}

// guardKindType maps a built-in type-test guard to the Type it asserts.
// is_list/1 and is_number/1 have no single algebra variant, so they map
// to the canonical union of the variants Erlang's definition covers.
func guardKindType(k syntax.GuardKind) (types.Type, bool) {
	switch k {
	case syntax.GuardIsAtom:
		return types.Atom{}, true
	case syntax.GuardIsBinary:
		return types.Binary{}, true
	case syntax.GuardIsFloat:
		return types.Float{}, true
	case syntax.GuardIsFunction:
		return types.AnyFun{}, true
	case syntax.GuardIsInteger:
		return types.Number{}, true
	case syntax.GuardIsList:
		return types.NewUnion([]types.Type{types.Nil{}, types.List{Elem: types.Any{}}}), true
	case syntax.GuardIsMap:
		return types.DictMap{Key: types.Any{}, Value: types.Any{}}, true
	case syntax.GuardIsNumber:
		return types.NewUnion([]types.Type{types.Number{}, types.Float{}}), true
	case syntax.GuardIsPid:
		return types.Pid{}, true
	case syntax.GuardIsPort:
		return types.Port{}, true
	case syntax.GuardIsReference:
		return types.Reference{}, true
	case syntax.GuardIsTuple:
		return types.AnyTuple{}, true
	default:
		return nil, false
	}
}

// combineGuards reduces a clause's guard-alternative list — each entry
// one conjunctive guard sequence, the whole list an OR of them, per
// Erlang's `;`-separated guard sequences — to a single Prop.
func combineGuards(alternatives []syntax.Guard) prop.Prop {
	if len(alternatives) == 0 {
		return prop.UnknownProp{}
	}
	parts := make([]prop.Prop, len(alternatives))
	for i, g := range alternatives {
		parts[i] = testProps(g)
	}
	return prop.Or(parts...)
}
