// Package prop implements the occurrence typing engine's proposition
// algebra: objects (symbolic paths into a scrutinee),
// fields, and propositions built from them, plus their reduction to
// disjunctive normal form. It follows the same tagged-variant-over-an-
// algebra shape a boolean-equation package would use, generalized from a
// flat boolean equation to propositions about paths and types.
package prop

import (
	"fmt"
	"strings"

	"github.com/nominal-types/eqcore/types"
)

// Field is one step of a path from a root variable into a compound
// value: either a tuple position or a record field.
type Field interface {
	fmt.Stringer
	isField()
}

// TupleField selects position Index (0-based) of an Arity-element
// tuple.
type TupleField struct {
	Index int
	Arity int
}

func (TupleField) isField() {}
func (f TupleField) String() string {
	return fmt.Sprintf("elem(%d/%d)", f.Index, f.Arity)
}

// RecordField selects field Name of a value known to be record
// RecordName.
type RecordField struct {
	Name       string
	RecordName string
}

func (RecordField) isField() {}
func (f RecordField) String() string {
	return fmt.Sprintf("%s.%s", f.RecordName, f.Name)
}

// Obj is a symbolic path rooted at a program variable: either the
// variable itself, or one more Field step from a smaller Obj.
type Obj interface {
	fmt.Stringer
	isObj()
}

// VarObj is a path that is just a bare variable.
type VarObj struct {
	Name string
}

func (VarObj) isObj()          {}
func (v VarObj) String() string { return v.Name }

// FieldObj is a path one Field step beyond Base.
type FieldObj struct {
	Field Field
	Base  Obj
}

func (FieldObj) isObj() {}
func (f FieldObj) String() string {
	return f.Base.String() + "." + f.Field.String()
}

// AMap ("alias map") records which Objs are reachable under which
// pattern-bound alias names, used by the occurrence engine's pattern
// extraction to rewrite nested-pattern aliases back onto
// the root scrutinee's path.
type AMap map[string]Obj

// Prop is a proposition about the runtime type of an Obj, built from
// the same AND/OR/NOT shape a boolean-equation type would use, plus an
// Unknown that marks "no information extracted" (e.g. from
// a guard occurrence typing does not understand).
type Prop interface {
	fmt.Stringer
	isProp()
}

// UnknownProp carries no information; it DNF-reduces to a single empty
// cube — it contributes nothing, and leaves the environment unchanged.
type UnknownProp struct{}

func (UnknownProp) isProp()        {}
func (UnknownProp) String() string { return "unknown" }

// PosProp asserts that Object's runtime type is a subtype of Type.
type PosProp struct {
	Object Obj
	Type   types.Type
}

func (PosProp) isProp() {}
func (p PosProp) String() string {
	return fmt.Sprintf("(is %s %s)", p.Object, p.Type)
}

// NegProp asserts that Object's runtime type is NOT a subtype of Type.
type NegProp struct {
	Object Obj
	Type   types.Type
}

func (NegProp) isProp() {}
func (p NegProp) String() string {
	return fmt.Sprintf("(! is %s %s)", p.Object, p.Type)
}

// AndProp is the conjunction of its Props.
type AndProp struct {
	Props []Prop
}

func (AndProp) isProp() {}
func (a AndProp) String() string {
	parts := make([]string, len(a.Props))
	for i, p := range a.Props {
		parts[i] = p.String()
	}
	return "(and " + strings.Join(parts, " ") + ")"
}

// OrProp is the disjunction of its Props.
type OrProp struct {
	Props []Prop
}

func (OrProp) isProp() {}
func (o OrProp) String() string {
	parts := make([]string, len(o.Props))
	for i, p := range o.Props {
		parts[i] = p.String()
	}
	return "(or " + strings.Join(parts, " ") + ")"
}

// Not builds the negation of p by De Morgan expansion rather than by
// wrapping in a NotProp variant, keeping the algebra closed over just
// Pos/Neg/And/Or/Unknown.
func Not(p Prop) Prop {
	switch v := p.(type) {
	case UnknownProp:
		return v
	case PosProp:
		return NegProp{Object: v.Object, Type: v.Type}
	case NegProp:
		return PosProp{Object: v.Object, Type: v.Type}
	case AndProp:
		negated := make([]Prop, len(v.Props))
		for i, sub := range v.Props {
			negated[i] = Not(sub)
		}
		return OrProp{Props: negated}
	case OrProp:
		negated := make([]Prop, len(v.Props))
		for i, sub := range v.Props {
			negated[i] = Not(sub)
		}
		return AndProp{Props: negated}
	default:
		panic(fmt.Sprintf("prop: unreachable prop variant in Not: %T", p))
	}
}

// And builds a flattened conjunction of ps, dropping any contained
// UnknownProp (an Unknown conjunct adds nothing).
func And(ps ...Prop) Prop {
	flat := make([]Prop, 0, len(ps))
	for _, p := range ps {
		if and, ok := p.(AndProp); ok {
			flat = append(flat, and.Props...)
			continue
		}
		if _, ok := p.(UnknownProp); ok {
			continue
		}
		flat = append(flat, p)
	}
	if len(flat) == 0 {
		return UnknownProp{}
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return AndProp{Props: flat}
}

// Or builds a flattened disjunction of ps.
func Or(ps ...Prop) Prop {
	flat := make([]Prop, 0, len(ps))
	for _, p := range ps {
		if or, ok := p.(OrProp); ok {
			flat = append(flat, or.Props...)
			continue
		}
		flat = append(flat, p)
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return OrProp{Props: flat}
}
