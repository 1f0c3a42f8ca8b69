package subtype

import "github.com/nominal-types/eqcore/types"

// Eqv reports semantic equivalence: t1 <: t2 and t2 <: t1. Two types
// can be Eqv without being types.Equal — e.g. a Union rebuilt in a
// different element order is types.Equal by construction, but a
// Record and its recordAsTuple expansion are Eqv without ever being
// structurally Equal.
func Eqv(reg types.Registry, cfg types.Context, t1, t2 types.Type) bool {
	return SubType(reg, cfg, t1, t2) && SubType(reg, cfg, t2, t1)
}

// IsDynamicType reports whether t is exactly Dynamic.
func IsDynamicType(t types.Type) bool {
	_, ok := t.(types.Dynamic)
	return ok
}

// IsNoneType reports whether t denotes the bottom type, looking through
// unions (true iff every alternative is itself None-type) and Remote
// aliases (expanded via reg). A recursive alias that never bottoms out
// is reported false rather than looping forever; Opaque is never
// None-type regardless of its arguments.
func IsNoneType(reg types.Registry, t types.Type) bool {
	return isNoneType(reg, t, map[string]bool{})
}

func isNoneType(reg types.Registry, t types.Type, seen map[string]bool) bool {
	switch v := t.(type) {
	case types.None:
		return true
	case types.Union:
		for _, e := range v.Elems {
			if !isNoneType(reg, e, seen) {
				return false
			}
		}
		return len(v.Elems) > 0
	case types.Remote:
		fp := types.Fingerprint(v)
		if seen[fp] {
			return false
		}
		body, ok := reg.GetTypeDeclBody(v.ID, v.Args)
		if !ok {
			return false
		}
		next := make(map[string]bool, len(seen)+1)
		for k := range seen {
			next[k] = true
		}
		next[fp] = true
		return isNoneType(reg, body, next)
	default:
		return false
	}
}

// IsAnyType reports whether t denotes the top type, looking through
// unions (true iff any alternative is itself Any-type, since Any
// absorbs every other union member) and Remote aliases (expanded via
// reg). A recursive alias that never resolves to Any is reported
// false; Opaque is never Any-type regardless of its arguments.
func IsAnyType(reg types.Registry, t types.Type) bool {
	return isAnyType(reg, t, map[string]bool{})
}

func isAnyType(reg types.Registry, t types.Type, seen map[string]bool) bool {
	switch v := t.(type) {
	case types.Any:
		return true
	case types.Union:
		for _, e := range v.Elems {
			if isAnyType(reg, e, seen) {
				return true
			}
		}
		return false
	case types.Remote:
		fp := types.Fingerprint(v)
		if seen[fp] {
			return false
		}
		body, ok := reg.GetTypeDeclBody(v.ID, v.Args)
		if !ok {
			return false
		}
		next := make(map[string]bool, len(seen)+1)
		for k := range seen {
			next[k] = true
		}
		next[fp] = true
		return isAnyType(reg, body, next)
	default:
		return false
	}
}

// HasDynamic reports whether Dynamic occurs anywhere in t's structure,
// used by rule 21 (dict <: shape only when fully dynamic) and by
// gradual-mode callers that want to know whether a type still carries
// unchecked structure.
func HasDynamic(t types.Type) bool {
	switch v := t.(type) {
	case types.Dynamic:
		return true
	case types.Tuple:
		for _, e := range v.Elems {
			if HasDynamic(e) {
				return true
			}
		}
		return false
	case types.List:
		return HasDynamic(v.Elem)
	case types.Fun:
		for _, a := range v.Args {
			if HasDynamic(a) {
				return true
			}
		}
		return HasDynamic(v.Result)
	case types.RefinedRecord:
		for _, f := range v.Fields {
			if HasDynamic(f.Type) {
				return true
			}
		}
		return false
	case types.DictMap:
		return HasDynamic(v.Key) || HasDynamic(v.Value)
	case types.ShapeMap:
		for _, p := range v.Props {
			if HasDynamic(p.Value) {
				return true
			}
		}
		return false
	case types.Union:
		for _, e := range v.Elems {
			if HasDynamic(e) {
				return true
			}
		}
		return false
	case types.Opaque:
		for _, a := range v.Args {
			if HasDynamic(a) {
				return true
			}
		}
		return false
	case types.Remote:
		for _, a := range v.Args {
			if HasDynamic(a) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Static reports whether t contains no Dynamic anywhere; the negation
// of HasDynamic, named separately because callers read better asking
// "is this fully static" than "does this lack dynamic".
func Static(t types.Type) bool {
	return !HasDynamic(t)
}

// Join computes the least upper bound of t1 and t2 under the lattice
// SubType induces: their canonical union.
// Join does not attempt to find a tighter common supertype than a
// union — that is sound but deliberately not minimal.
func Join(t1, t2 types.Type) types.Type {
	return types.NewUnion([]types.Type{t1, t2})
}

// JoinAll folds Join over ts, returning None for an empty slice (the
// identity element: None <: anything, so Joining nothing changes
// nothing already accumulated).
func JoinAll(ts []types.Type) types.Type {
	return types.NewUnion(ts)
}

