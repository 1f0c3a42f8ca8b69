package types

// Substitute replaces every Var named in sub with its mapped
// replacement type, recursing through every compound variant. The
// subtyping engine uses it to rename a Fun's bound type variables to a
// common canonical set before comparing two function types (see
// conformForalls), and a Registry can use it to substitute an alias's
// arguments for its formal parameters.
func Substitute(t Type, sub map[string]Type) Type {
	switch v := t.(type) {
	case Var:
		if r, ok := sub[v.Name]; ok {
			return r
		}
		return v
	case Tuple:
		next := make([]Type, len(v.Elems))
		for i, e := range v.Elems {
			next[i] = Substitute(e, sub)
		}
		return Tuple{Elems: next}
	case List:
		return List{Elem: Substitute(v.Elem, sub)}
	case Fun:
		// A Fun's own Forall names shadow any outer substitution for
		// those names: strip them from sub before recursing.
		inner := sub
		for _, n := range v.Forall {
			if _, shadowed := sub[n]; shadowed {
				inner = withoutKeys(sub, v.Forall)
				break
			}
		}
		args := make([]Type, len(v.Args))
		for i, a := range v.Args {
			args[i] = Substitute(a, inner)
		}
		return Fun{Forall: v.Forall, Args: args, Result: Substitute(v.Result, inner)}
	case RefinedRecord:
		fields := make([]FieldOverride, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = FieldOverride{Name: f.Name, Type: Substitute(f.Type, sub)}
		}
		return RefinedRecord{Record: v.Record, Fields: fields}
	case DictMap:
		return DictMap{Key: Substitute(v.Key, sub), Value: Substitute(v.Value, sub)}
	case ShapeMap:
		props := make([]ShapeProp, len(v.Props))
		for i, p := range v.Props {
			props[i] = ShapeProp{Key: p.Key, Required: p.Required, Value: Substitute(p.Value, sub)}
		}
		return ShapeMap{Props: props}
	case Union:
		next := make([]Type, len(v.Elems))
		for i, e := range v.Elems {
			next[i] = Substitute(e, sub)
		}
		return NewUnion(next)
	case Opaque:
		args := make([]Type, len(v.Args))
		for i, a := range v.Args {
			args[i] = Substitute(a, sub)
		}
		return Opaque{ID: v.ID, Args: args}
	case Remote:
		args := make([]Type, len(v.Args))
		for i, a := range v.Args {
			args[i] = Substitute(a, sub)
		}
		return Remote{ID: v.ID, Args: args}
	default:
		// Any, None, Dynamic, Atom, AtomLit, Number, Float, Pid, Port,
		// Reference, Binary, AnyTuple, Nil, AnyFun, Record have no
		// subcomponents to substitute into.
		return t
	}
}

func withoutKeys(sub map[string]Type, keys []string) map[string]Type {
	next := make(map[string]Type, len(sub))
	for k, v := range sub {
		next[k] = v
	}
	for _, k := range keys {
		delete(next, k)
	}
	return next
}
