// Package subtype decides the subtyping relation over the
// type algebra of the types package: SubType, Eqv, Join, and the
// dynamic/static split predicates. It follows the same
// boolean-decision-procedure shape (a tagged-variant switch; inputs
// it has no rule for are answered false rather than panicking) rewired onto a richer
// algebra than a flat Boolean equation — a subtyping lattice with
// unions, records, and a gradual Dynamic type instead of True/False/Var.
package subtype

import (
	"fmt"

	"github.com/rjNemo/underscore"

	"github.com/nominal-types/eqcore/types"
)

// pairKey is the hashable structural key used as a memo-set entry:
// a pair of Fingerprints, so that SubType terminates on arbitrary
// recursive Remote aliases by assuming any pair it recurs into a second
// time (co-inductive closure).
type pairKey struct {
	a, b string
}

// SubType decides t1 <: t2. It is total and terminating: every
// recursive call either shrinks the type syntactically or adds a new
// pair to a per-call seen set, which is finite over the types reachable
// from t1/t2 via alias expansion bounded by reg.
func SubType(reg types.Registry, cfg types.Context, t1, t2 types.Type) bool {
	return subType(reg, cfg, t1, t2, map[pairKey]bool{})
}

func subType(reg types.Registry, cfg types.Context, t1, t2 types.Type, seen map[pairKey]bool) bool {
	key := pairKey{types.Fingerprint(t1), types.Fingerprint(t2)}

	// Rule 1: co-inductive assumption.
	if seen[key] {
		return true
	}
	// Rule 2: structural equality.
	if types.Equal(t1, t2) {
		return true
	}
	// Rule 3: top.
	if _, ok := t2.(types.Any); ok {
		return true
	}
	// Rule 4: bottom.
	if _, ok := t1.(types.None); ok {
		return true
	}
	// Rule 5: Dynamic is both top and bottom.
	if _, ok := t1.(types.Dynamic); ok {
		return true
	}
	if _, ok := t2.(types.Dynamic); ok {
		return true
	}

	nextSeen := withPair(seen, key)

	// Rule 6: alias expansion, either side.
	if r, ok := t1.(types.Remote); ok {
		body, found := reg.GetTypeDeclBody(r.ID, r.Args)
		if !found {
			return false
		}
		return subType(reg, cfg, body, t2, nextSeen)
	}
	if r, ok := t2.(types.Remote); ok {
		body, found := reg.GetTypeDeclBody(r.ID, r.Args)
		if !found {
			return false
		}
		return subType(reg, cfg, t1, body, nextSeen)
	}

	// Rule 7: opaque is invariant in its arguments and only ever a
	// subtype of the same opaque id.
	if o1, ok := t1.(types.Opaque); ok {
		o2, ok2 := t2.(types.Opaque)
		if !ok2 || o1.ID != o2.ID || len(o1.Args) != len(o2.Args) {
			return false
		}
		for i := range o1.Args {
			if !subType(reg, cfg, o1.Args[i], o2.Args[i], seen) || !subType(reg, cfg, o2.Args[i], o1.Args[i], seen) {
				return false
			}
		}
		return true
	}

	// Rule 8: union on the left, universally.
	if u1, ok := t1.(types.Union); ok {
		return underscore.All(u1.Elems, func(e types.Type) bool { return subType(reg, cfg, e, t2, seen) })
	}

	// Rules 9 & 10: t2 a union. Rule 9 distributes a union nested inside
	// one of t1's own tuple components across the whole tuple before
	// rule 10's generic existential check runs as the terminal fallback
	// for this shape.
	if u2, ok := t2.(types.Union); ok {
		if tup1, ok2 := t1.(types.Tuple); ok2 {
			if result, handled := subtypeTupleDistribute(reg, cfg, tup1, t2, seen); handled {
				return result
			}
		}
		return underscore.Any(u2.Elems, func(e types.Type) bool { return subType(reg, cfg, t1, e, seen) })
	}

	// Rule 11: literal/primitive inclusions.
	if ok, handled := literalInclusions(reg, cfg, t1, t2, seen); handled {
		return ok
	}

	// Rules 12 & 13: record/tuple bridging and record refinement.
	if ok, handled := recordRules(reg, cfg, t1, t2, seen); handled {
		return ok
	}

	// Rule 14 (gradual only) & rule 15 (unconditional Fun<:AnyFun).
	if ok, handled := funAndAnyShapes(reg, cfg, t1, t2, seen); handled {
		return ok
	}

	// Rule 16: tuple componentwise covariance.
	if tup1, ok := t1.(types.Tuple); ok {
		if tup2, ok2 := t2.(types.Tuple); ok2 {
			return subtypeTupleComponentwise(reg, cfg, tup1, tup2, seen)
		}
	}

	// Rule 17: function subtyping.
	if f1, ok := t1.(types.Fun); ok {
		if f2, ok2 := t2.(types.Fun); ok2 {
			return subtypeFun(reg, cfg, f1, f2, seen)
		}
	}

	// Rule 18: dict maps, covariant in both positions.
	if d1, ok := t1.(types.DictMap); ok {
		if d2, ok2 := t2.(types.DictMap); ok2 {
			return subType(reg, cfg, d1.Key, d2.Key, seen) && subType(reg, cfg, d1.Value, d2.Value, seen)
		}
	}

	// Rule 19: shape <: dict.
	if s1, ok := t1.(types.ShapeMap); ok {
		if d2, ok2 := t2.(types.DictMap); ok2 {
			return shapeSubtypeOfDict(reg, cfg, s1, d2, seen)
		}
	}

	// Rule 20: shape <: shape.
	if s1, ok := t1.(types.ShapeMap); ok {
		if s2, ok2 := t2.(types.ShapeMap); ok2 {
			return shapeSubtypeOfShape(reg, cfg, s1, s2, seen)
		}
	}

	// Rule 21: dict <: shape, only when fully dynamic.
	if d1, ok := t1.(types.DictMap); ok {
		if s2, ok2 := t2.(types.ShapeMap); ok2 {
			_ = s2
			return HasDynamic(d1.Key) && HasDynamic(d1.Value)
		}
	}

	// Rule 22: otherwise false.
	return false
}

func withPair(seen map[pairKey]bool, key pairKey) map[pairKey]bool {
	next := make(map[pairKey]bool, len(seen)+1)
	for k, v := range seen {
		next[k] = v
	}
	next[key] = true
	return next
}

func literalInclusions(reg types.Registry, cfg types.Context, t1, t2 types.Type, seen map[pairKey]bool) (bool, bool) {
	if _, ok := t1.(types.AtomLit); ok {
		if _, ok2 := t2.(types.Atom); ok2 {
			return true, true
		}
	}
	switch t1.(type) {
	case types.Tuple, types.Record, types.RefinedRecord:
		if _, ok2 := t2.(types.AnyTuple); ok2 {
			return true, true
		}
	}
	if _, ok := t1.(types.Nil); ok {
		if _, ok2 := t2.(types.List); ok2 {
			return true, true
		}
	}
	if l1, ok := t1.(types.List); ok {
		if _, ok2 := t2.(types.Nil); ok2 {
			return subType(reg, cfg, l1.Elem, types.None{}, seen), true
		}
	}
	if l1, ok := t1.(types.List); ok {
		if l2, ok2 := t2.(types.List); ok2 {
			return subType(reg, cfg, l1.Elem, l2.Elem, seen), true
		}
	}
	return false, false
}

// recordAsTuple converts a record (or refined record) into its
// tagged-tuple equivalent: (AtomLit(name), f1, ..., fn)
// with fields in declaration order, refined fields substituted where
// present.
func recordAsTuple(reg types.Registry, rec types.Record, overrides []types.FieldOverride) (types.Tuple, bool) {
	decl, ok := reg.GetRecord(rec.Module, rec.Name)
	if !ok {
		return types.Tuple{}, false
	}
	elems := make([]types.Type, 0, len(decl.Fields)+1)
	elems = append(elems, types.AtomLit{Value: rec.Name})
	for _, f := range decl.Fields {
		ft := f.Type
		for _, o := range overrides {
			if o.Name == f.Name {
				ft = o.Type
				break
			}
		}
		elems = append(elems, ft)
	}
	return types.Tuple{Elems: elems}, true
}

func recordRules(reg types.Registry, cfg types.Context, t1, t2 types.Type, seen map[pairKey]bool) (bool, bool) {
	r1, r1ok := asRecordish(t1)
	r2, r2ok := asRecordish(t2)

	// Rule 13: both sides record-ish, same underlying record.
	if r1ok && r2ok {
		if r1.base.Name != r2.base.Name || r1.base.Module != r2.base.Module {
			return false, true
		}
		switch {
		case !r1.refined && !r2.refined:
			return true, true
		case r1.refined && !r2.refined:
			// RefinedRecord <: Record always holds (narrowing a field
			// only shrinks it).
			return true, true
		case !r1.refined && r2.refined:
			// Record <: RefinedRecord iff for each refined field the
			// declared type is a subtype of the refinement.
			decl, ok := reg.GetRecord(r1.base.Module, r1.base.Name)
			if !ok {
				return false, true
			}
			for _, ov := range r2.overrides {
				fd, ok2 := decl.Field(ov.Name)
				if !ok2 {
					return false, true
				}
				if !subType(reg, cfg, fd.Type, ov.Type, seen) {
					return false, true
				}
			}
			return true, true
		default:
			// RefinedRecord <: RefinedRecord (same base): each
			// right-hand refined field type must be a supertype of
			// the corresponding left-hand type, falling back to the
			// declared field type when the left omits that field.
			decl, ok := reg.GetRecord(r1.base.Module, r1.base.Name)
			if !ok {
				return false, true
			}
			for _, rov := range r2.overrides {
				var leftType types.Type
				if lov, found := findOverride(r1.overrides, rov.Name); found {
					leftType = lov.Type
				} else if fd, found2 := decl.Field(rov.Name); found2 {
					leftType = fd.Type
				} else {
					return false, true
				}
				if !subType(reg, cfg, leftType, rov.Type, seen) {
					return false, true
				}
			}
			return true, true
		}
	}

	// Rule 12: mixed record/tuple bridging.
	if r1ok {
		if _, ok := t2.(types.Tuple); ok {
			asTuple, ok2 := recordAsTuple(reg, r1.base, r1.overrides)
			if !ok2 {
				return false, true
			}
			return subType(reg, cfg, asTuple, t2, seen), true
		}
	}
	if r2ok {
		if _, ok := t1.(types.Tuple); ok {
			asTuple, ok2 := recordAsTuple(reg, r2.base, r2.overrides)
			if !ok2 {
				return false, true
			}
			return subType(reg, cfg, t1, asTuple, seen), true
		}
	}

	return false, false
}

type recordish struct {
	base      types.Record
	refined   bool
	overrides []types.FieldOverride
}

func asRecordish(t types.Type) (recordish, bool) {
	switch v := t.(type) {
	case types.Record:
		return recordish{base: v}, true
	case types.RefinedRecord:
		return recordish{base: v.Record, refined: true, overrides: v.Fields}, true
	default:
		return recordish{}, false
	}
}

func findOverride(overrides []types.FieldOverride, name string) (types.FieldOverride, bool) {
	for _, o := range overrides {
		if o.Name == name {
			return o, true
		}
	}
	return types.FieldOverride{}, false
}

func funAndAnyShapes(reg types.Registry, cfg types.Context, t1, t2 types.Type, seen map[pairKey]bool) (bool, bool) {
	if _, ok := t1.(types.AnyTuple); ok {
		switch t2.(type) {
		case types.Tuple, types.Record, types.RefinedRecord:
			return cfg.GradualTyping, true
		}
	}
	if f1, ok := t1.(types.Fun); ok {
		if _, ok2 := t2.(types.AnyFun); ok2 {
			if cfg.GradualTyping {
				return true, true
			}
			return underscore.All(f1.Args, func(a types.Type) bool { return subType(reg, cfg, types.Any{}, a, seen) }), true
		}
	}
	if _, ok := t1.(types.AnyFun); ok {
		if _, ok2 := t2.(types.Fun); ok2 {
			return cfg.GradualTyping, true
		}
	}
	return false, false
}

// unionComponent looks through Remote expansion to see whether t is, at
// its head, a Union — the form rule 9's distribution needs to find
// inside a tuple component. A self-referential alias that never
// resolves to a Union is reported not-found rather than looped forever.
func unionComponent(reg types.Registry, t types.Type, seen map[string]bool) (types.Union, bool) {
	switch v := t.(type) {
	case types.Union:
		return v, true
	case types.Remote:
		fp := types.Fingerprint(v)
		if seen[fp] {
			return types.Union{}, false
		}
		body, ok := reg.GetTypeDeclBody(v.ID, v.Args)
		if !ok {
			return types.Union{}, false
		}
		next := make(map[string]bool, len(seen)+1)
		for k := range seen {
			next[k] = true
		}
		next[fp] = true
		return unionComponent(reg, body, next)
	default:
		return types.Union{}, false
	}
}

// subtypeTupleDistribute implements the distribution law (A|B, C) <: T
// ⇔ (A,C)<:T ∧ (B,C)<:T: it finds the first component of tup that is
// (or expands through Remote to) a Union, builds one substitute tuple
// per alternative of that union at that component, and requires every
// substitute tuple to satisfy t2. handled is false when tup has no
// union-shaped component at all, so the caller can fall back to a
// different rule for this case.
func subtypeTupleDistribute(reg types.Registry, cfg types.Context, tup types.Tuple, t2 types.Type, seen map[pairKey]bool) (result bool, handled bool) {
	for i, e := range tup.Elems {
		union, ok := unionComponent(reg, e, map[string]bool{})
		if !ok {
			continue
		}
		for _, alt := range union.Elems {
			elems := make([]types.Type, len(tup.Elems))
			copy(elems, tup.Elems)
			elems[i] = alt
			if !subType(reg, cfg, types.Tuple{Elems: elems}, t2, seen) {
				return false, true
			}
		}
		return true, true
	}
	return false, false
}

func subtypeTupleComponentwise(reg types.Registry, cfg types.Context, t1, t2 types.Tuple, seen map[pairKey]bool) bool {
	if len(t1.Elems) != len(t2.Elems) {
		return false
	}
	for i := range t1.Elems {
		if !subType(reg, cfg, t1.Elems[i], t2.Elems[i], seen) {
			return false
		}
	}
	return true
}

// subtypeFun decides Fun(F1,a1,r1) <: Fun(F2,a2,r2): equal arity, bound
// tyvars renamed to a common set, covariant return, contravariant
// arguments.
func subtypeFun(reg types.Registry, cfg types.Context, f1, f2 types.Fun, seen map[pairKey]bool) bool {
	if len(f1.Args) != len(f2.Args) {
		return false
	}
	c1 := conformForalls(f1)
	c2 := conformForalls(f2)
	if !subType(reg, cfg, c1.Result, c2.Result, seen) {
		return false
	}
	for i := range c1.Args {
		// contravariant
		if !subType(reg, cfg, c2.Args[i], c1.Args[i], seen) {
			return false
		}
	}
	return true
}

// conformForalls renames a Fun's bound type variables to a positional
// canonical name, so two Funs with differently-named (but structurally
// equivalent) bound variables compare equal.
func conformForalls(f types.Fun) types.Fun {
	sub := make(map[string]types.Type, len(f.Forall))
	canon := make([]string, len(f.Forall))
	for i, name := range f.Forall {
		cname := fmt.Sprintf("#forall%d", i)
		sub[name] = types.Var{Name: cname}
		canon[i] = cname
	}
	args := make([]types.Type, len(f.Args))
	for i, a := range f.Args {
		args[i] = types.Substitute(a, sub)
	}
	return types.Fun{Forall: canon, Args: args, Result: types.Substitute(f.Result, sub)}
}

func shapeSubtypeOfDict(reg types.Registry, cfg types.Context, s types.ShapeMap, d types.DictMap, seen map[pairKey]bool) bool {
	keyTypes := make([]types.Type, len(s.Props))
	valTypes := make([]types.Type, len(s.Props))
	for i, p := range s.Props {
		keyTypes[i] = types.AtomLit{Value: p.Key}
		valTypes[i] = p.Value
	}
	joinedKey := JoinAll(keyTypes)
	joinedVal := JoinAll(valTypes)
	return subType(reg, cfg, joinedKey, d.Key, seen) && subType(reg, cfg, joinedVal, d.Value, seen)
}

// shapeSubtypeOfShape decides s1 <: s2 by width-and-depth map
// subtyping: keys(s1) must be a subset of keys(s2), every key s2
// requires must be present and required in s1, and every key both
// shapes carry must have a narrower-or-equal type in s1. s1 may omit
// keys that s2 marks optional, but may not carry a key s2 never
// mentions.
func shapeSubtypeOfShape(reg types.Registry, cfg types.Context, s1, s2 types.ShapeMap, seen map[pairKey]bool) bool {
	for _, p1 := range s1.Props {
		if _, ok := s2.Prop(p1.Key); !ok {
			return false
		}
	}
	for _, p2 := range s2.Props {
		p1, ok := s1.Prop(p2.Key)
		if !ok {
			if p2.Required {
				return false
			}
			continue
		}
		if p2.Required && !p1.Required {
			return false
		}
		if !subType(reg, cfg, p1.Value, p2.Value, seen) {
			return false
		}
	}
	return true
}
