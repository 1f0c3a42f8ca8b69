package occurrence

import (
	"github.com/nominal-types/eqcore/subtype"
	"github.com/nominal-types/eqcore/types"
)

// Overlap is the tri-state result of an overlap test: two types
// definitely share inhabitants, definitely share none, or the engine
// cannot tell. An Unknown result must be treated
// conservatively — never narrow a type away on the strength of an
// overlap test that returned Unknown.
type Overlap int

const (
	OverlapUnknown Overlap = iota
	OverlapYes
	OverlapNo
)

// overlapTypes decides Overlap(t1, t2): sound but deliberately
// incomplete, the same trade the occurrence engine makes as a
// whole. Two types overlap for certain whenever either is a subtype of
// the other; they definitely don't when their head shapes are
// observably disjoint (different record names, different tuple arity,
// different atom literals, ...); everything else reports Unknown.
func overlapTypes(reg types.Registry, cfg types.Context, t1, t2 types.Type) Overlap {
	if subtype.SubType(reg, cfg, t1, t2) || subtype.SubType(reg, cfg, t2, t1) {
		return OverlapYes
	}
	if headDisjoint(t1, t2) {
		return OverlapNo
	}
	return OverlapUnknown
}

func headDisjoint(t1, t2 types.Type) bool {
	if a, ok := t1.(types.AtomLit); ok {
		if b, ok2 := t2.(types.AtomLit); ok2 {
			return a.Value != b.Value
		}
	}
	if a, ok := t1.(types.Tuple); ok {
		if b, ok2 := t2.(types.Tuple); ok2 {
			return len(a.Elems) != len(b.Elems)
		}
	}
	recA, recAOk := recordIdentity(t1)
	recB, recBOk := recordIdentity(t2)
	if recAOk && recBOk {
		return recA != recB
	}

	c1, ok1 := typeCategory(t1)
	c2, ok2 := typeCategory(t2)
	if !ok1 || !ok2 {
		return false
	}
	return c1 != c2
}

func recordIdentity(t types.Type) (string, bool) {
	switch v := t.(type) {
	case types.Record:
		return v.Module + ":" + v.Name, true
	case types.RefinedRecord:
		return v.Record.Module + ":" + v.Record.Name, true
	default:
		return "", false
	}
}

// typeCategory buckets a type into a coarse shape family. Types whose
// family can't be pinned down statically (Dynamic, Any, None, Union,
// Opaque, Remote, Var) report ok=false, so headDisjoint never calls two
// such types disjoint just because their Go variant differs.
func typeCategory(t types.Type) (string, bool) {
	switch t.(type) {
	case types.Atom, types.AtomLit:
		return "atom", true
	case types.Number:
		return "number", true
	case types.Float:
		return "float", true
	case types.Pid:
		return "pid", true
	case types.Port:
		return "port", true
	case types.Reference:
		return "reference", true
	case types.Binary:
		return "binary", true
	case types.AnyTuple, types.Tuple, types.Record, types.RefinedRecord:
		return "tuple", true
	case types.Nil, types.List:
		return "list", true
	case types.AnyFun, types.Fun:
		return "fun", true
	case types.DictMap:
		return "dict", true
	case types.ShapeMap:
		return "shape", true
	default:
		return "", false
	}
}

// restrict narrows cur to reflect a successful positive test against
// asserted: the type of a value known to be both cur and asserted.
func restrict(reg types.Registry, cfg types.Context, cur, asserted types.Type) types.Type {
	if subtype.SubType(reg, cfg, cur, asserted) {
		return cur
	}
	if subtype.SubType(reg, cfg, asserted, cur) {
		return asserted
	}
	if u, ok := cur.(types.Union); ok {
		var kept []types.Type
		for _, m := range u.Elems {
			switch overlapTypes(reg, cfg, m, asserted) {
			case OverlapNo:
				// m is eliminated by the positive test.
			case OverlapYes:
				kept = append(kept, restrict(reg, cfg, m, asserted))
			default:
				kept = append(kept, m)
			}
		}
		return types.NewUnion(kept)
	}
	if overlapTypes(reg, cfg, cur, asserted) == OverlapNo {
		return types.None{}
	}
	return cur
}

// remove narrows cur to reflect a successful negative test against
// denied: the type of a value known to be cur but not denied.
func remove(reg types.Registry, cfg types.Context, cur, denied types.Type) types.Type {
	if subtype.SubType(reg, cfg, cur, denied) {
		return types.None{}
	}
	if u, ok := cur.(types.Union); ok {
		var kept []types.Type
		for _, m := range u.Elems {
			if subtype.SubType(reg, cfg, m, denied) {
				continue
			}
			kept = append(kept, remove(reg, cfg, m, denied))
		}
		return types.NewUnion(kept)
	}
	return cur
}
