package occurrence

import (
	"fmt"

	"github.com/nominal-types/eqcore/prop"
	"github.com/nominal-types/eqcore/types"
)

// decomposeObj splits obj into its root variable name and the ordered
// (root-to-leaf) chain of Field steps beyond it.
func decomposeObj(obj prop.Obj) (string, []prop.Field) {
	var reversed []prop.Field
	cur := obj
	for {
		switch v := cur.(type) {
		case prop.VarObj:
			steps := make([]prop.Field, len(reversed))
			for i, s := range reversed {
				steps[len(reversed)-1-i] = s
			}
			return v.Name, steps
		case prop.FieldObj:
			reversed = append(reversed, v.Field)
			cur = v.Base
		default:
			panic(fmt.Sprintf("occurrence: unreachable obj variant in decomposeObj: %T", cur))
		}
	}
}

// typePathRef resolves obj's current type from env by walking its field
// chain. It returns ok=false when the root variable is
// unbound, or when some step along the chain cannot be statically
// resolved against the type found at that point (e.g. a record field
// lookup that fails because the record is unknown to the registry —
// callers outside this package should not see that happen for
// well-formed input, but extractPattern's synthetic objects can
// legitimately outrun what env currently knows).
func typePathRef(env types.Env, obj prop.Obj, reg types.Registry) (types.Type, bool) {
	root, steps := decomposeObj(obj)
	t, ok := env.Lookup(root)
	if !ok {
		return nil, false
	}
	return typeAtPath(t, steps, reg)
}

func typeAtPath(t types.Type, steps []prop.Field, reg types.Registry) (types.Type, bool) {
	if len(steps) == 0 {
		return t, true
	}
	step, rest := steps[0], steps[1:]

	switch v := t.(type) {
	case types.Dynamic:
		return types.Dynamic{}, true

	case types.Union:
		var alts []types.Type
		for _, e := range v.Elems {
			if sub, ok := typeAtPath(e, steps, reg); ok {
				alts = append(alts, sub)
			}
			_ = rest
		}
		if len(alts) == 0 {
			return nil, false
		}
		return types.NewUnion(alts), true

	case types.Tuple:
		tf, ok := step.(prop.TupleField)
		if !ok || tf.Index >= len(v.Elems) {
			return nil, false
		}
		return typeAtPath(v.Elems[tf.Index], rest, reg)

	case types.Record:
		rf, ok := step.(prop.RecordField)
		if !ok {
			return nil, false
		}
		decl, ok := reg.GetRecord(v.Module, v.Name)
		if !ok {
			return nil, false
		}
		fd, ok := decl.Field(rf.Name)
		if !ok {
			return nil, false
		}
		return typeAtPath(fd.Type, rest, reg)

	case types.RefinedRecord:
		rf, ok := step.(prop.RecordField)
		if !ok {
			return nil, false
		}
		if ft, ok := v.Override(rf.Name); ok {
			return typeAtPath(ft, rest, reg)
		}
		decl, ok := reg.GetRecord(v.Record.Module, v.Record.Name)
		if !ok {
			return nil, false
		}
		fd, ok := decl.Field(rf.Name)
		if !ok {
			return nil, false
		}
		return typeAtPath(fd.Type, rest, reg)

	default:
		return nil, false
	}
}

// setAtPath rebuilds t with transform applied to the type found at the
// end of steps, distributing through unions so that narrowing one
// union member never loses information about the others (union
// distribution happens before any other step is applied). A step that cannot be resolved
// against t's current shape leaves t unchanged at that point — the
// path simply does not apply there.
func setAtPath(t types.Type, steps []prop.Field, transform func(types.Type) types.Type, reg types.Registry) types.Type {
	if len(steps) == 0 {
		return transform(t)
	}
	step, rest := steps[0], steps[1:]

	switch v := t.(type) {
	case types.Dynamic:
		return v

	case types.Union:
		next := make([]types.Type, len(v.Elems))
		for i, e := range v.Elems {
			next[i] = setAtPath(e, steps, transform, reg)
		}
		return types.NewUnion(next)

	case types.Tuple:
		tf, ok := step.(prop.TupleField)
		if !ok || tf.Index >= len(v.Elems) {
			return v
		}
		elems := make([]types.Type, len(v.Elems))
		copy(elems, v.Elems)
		elems[tf.Index] = setAtPath(elems[tf.Index], rest, transform, reg)
		if _, isNone := elems[tf.Index].(types.None); isNone {
			return types.None{}
		}
		return types.Tuple{Elems: elems}

	case types.Record:
		rf, ok := step.(prop.RecordField)
		if !ok {
			return v
		}
		decl, ok := reg.GetRecord(v.Module, v.Name)
		if !ok {
			return v
		}
		fd, ok := decl.Field(rf.Name)
		if !ok {
			return v
		}
		newFieldType := setAtPath(fd.Type, rest, transform, reg)
		return types.RefinedRecord{Record: v}.WithOverride(rf.Name, newFieldType)

	case types.RefinedRecord:
		rf, ok := step.(prop.RecordField)
		if !ok {
			return v
		}
		var curFieldType types.Type
		if ft, ok := v.Override(rf.Name); ok {
			curFieldType = ft
		} else {
			decl, ok := reg.GetRecord(v.Record.Module, v.Record.Name)
			if !ok {
				return v
			}
			fd, ok := decl.Field(rf.Name)
			if !ok {
				return v
			}
			curFieldType = fd.Type
		}
		newFieldType := setAtPath(curFieldType, rest, transform, reg)
		return v.WithOverride(rf.Name, newFieldType)

	default:
		return v
	}
}
