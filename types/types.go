// Package types defines the closed algebraic type of the gradual type
// system and the read-only registry contract external
// collaborators (the AST loader) use to answer questions about
// record and remote-alias declarations.
package types

import (
	"fmt"
	"sort"
	"strings"
)

// Type is the closed algebraic variant of the type system. It is implemented
// only by the types in this file; a type switch over Type is expected to
// be exhaustive, with a panicking default arm for well-formed inputs.
type Type interface {
	fmt.Stringer
	isType()
}

// Any is the top type.
type Any struct{}

func (Any) isType()        {}
func (Any) String() string { return "any()" }

// None is the bottom type.
type None struct{}

func (None) isType()        {}
func (None) String() string { return "none()" }

// Dynamic is the gradual type: simultaneously top and bottom. It never
// appears inside an Opaque or Remote body, since it is not part of the
// surface language.
type Dynamic struct{}

func (Dynamic) isType()        {}
func (Dynamic) String() string { return "dynamic()" }

// Atom is the type of any atom literal.
type Atom struct{}

func (Atom) isType()        {}
func (Atom) String() string { return "atom()" }

// AtomLit is a specific atom literal, e.g. 'ok' or 'error'.
type AtomLit struct {
	Value string
}

func (AtomLit) isType()          {}
func (a AtomLit) String() string { return "'" + a.Value + "'" }

// Number is the type of integers.
type Number struct{}

func (Number) isType()        {}
func (Number) String() string { return "number()" }

// Float is the type of floating point values.
type Float struct{}

func (Float) isType()        {}
func (Float) String() string { return "float()" }

// Pid is the type of process identifiers.
type Pid struct{}

func (Pid) isType()        {}
func (Pid) String() string { return "pid()" }

// Port is the type of ports.
type Port struct{}

func (Port) isType()        {}
func (Port) String() string { return "port()" }

// Reference is the type of references.
type Reference struct{}

func (Reference) isType()        {}
func (Reference) String() string { return "reference()" }

// Binary is the type of binaries.
type Binary struct{}

func (Binary) isType()        {}
func (Binary) String() string { return "binary()" }

// AnyTuple is the type of any tuple, of any arity.
type AnyTuple struct{}

func (AnyTuple) isType()        {}
func (AnyTuple) String() string { return "tuple()" }

// Tuple is a fixed-arity tuple type.
type Tuple struct {
	Elems []Type
}

func (Tuple) isType() {}
func (t Tuple) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Nil is the empty list type; Nil <: List(_) always.
type Nil struct{}

func (Nil) isType()        {}
func (Nil) String() string { return "[]" }

// List is a homogeneous list type with the given element type.
type List struct {
	Elem Type
}

func (List) isType()          {}
func (l List) String() string { return "[" + l.Elem.String() + "]" }

// AnyFun is the type of any function, of any arity.
type AnyFun struct{}

func (AnyFun) isType()        {}
func (AnyFun) String() string { return "fun()" }

// Fun is an arity-fixed function type, optionally universally quantified
// over a list of bound type variables.
type Fun struct {
	Forall []string
	Args   []Type
	Result Type
}

func (Fun) isType() {}
func (f Fun) String() string {
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = a.String()
	}
	pre := ""
	if len(f.Forall) > 0 {
		pre = "forall " + strings.Join(f.Forall, ", ") + ". "
	}
	return fmt.Sprintf("%sfun((%s) -> %s)", pre, strings.Join(parts, ", "), f.Result.String())
}

// Record is a nominal reference to a record declaration. Module is the
// module the record was declared in; it is empty when the record is
// resolved relative to the "current" checking unit (e.g. a bare
// is_record/2 guard, which names no module).
type Record struct {
	Module string
	Name   string
}

func (Record) isType() {}
func (r Record) String() string {
	if r.Module == "" {
		return "#" + r.Name + "{}"
	}
	return r.Module + ":#" + r.Name + "{}"
}

// FieldOverride is one entry of a RefinedRecord's narrowed fields.
type FieldOverride struct {
	Name string
	Type Type
}

// RefinedRecord is a record whose chosen fields have been narrowed to
// subtypes of their declared types. Fields is kept sorted by Name so that
// two RefinedRecord values with the same overrides compare equal
// structurally regardless of construction order.
type RefinedRecord struct {
	Record Record
	Fields []FieldOverride
}

func (RefinedRecord) isType() {}
func (r RefinedRecord) String() string {
	parts := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		parts[i] = f.Name + " :: " + f.Type.String()
	}
	return r.Record.Module + "#" + r.Record.Name + "{" + strings.Join(parts, ", ") + "}"
}

// Override returns the overridden type for the named field, if the
// refinement narrows it.
func (r RefinedRecord) Override(name string) (Type, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Type, true
		}
	}
	return nil, false
}

// WithOverride returns a copy of r with field name narrowed to t,
// replacing any existing override of the same name.
func (r RefinedRecord) WithOverride(name string, t Type) RefinedRecord {
	next := make([]FieldOverride, 0, len(r.Fields)+1)
	replaced := false
	for _, f := range r.Fields {
		if f.Name == name {
			next = append(next, FieldOverride{name, t})
			replaced = true
		} else {
			next = append(next, f)
		}
	}
	if !replaced {
		next = append(next, FieldOverride{name, t})
	}
	sort.Slice(next, func(i, j int) bool { return next[i].Name < next[j].Name })
	return RefinedRecord{Record: r.Record, Fields: next}
}

// DictMap is a map type with uniform key and value types.
type DictMap struct {
	Key   Type
	Value Type
}

func (DictMap) isType() {}
func (d DictMap) String() string {
	return fmt.Sprintf("#{%s => %s}", d.Key.String(), d.Value.String())
}

// ShapeProp is one field of a ShapeMap.
type ShapeProp struct {
	Key      string
	Required bool
	Value    Type
}

// ShapeMap is a shape with required and optional atom-keyed fields.
// Props is kept sorted by Key for canonical comparison.
type ShapeMap struct {
	Props []ShapeProp
}

func (ShapeMap) isType() {}
func (s ShapeMap) String() string {
	parts := make([]string, len(s.Props))
	for i, p := range s.Props {
		sep := ":="
		if !p.Required {
			sep = "=>"
		}
		parts[i] = fmt.Sprintf("%s %s %s", p.Key, sep, p.Value.String())
	}
	return "#{" + strings.Join(parts, ", ") + "}"
}

// Prop looks up a named shape property.
func (s ShapeMap) Prop(key string) (ShapeProp, bool) {
	for _, p := range s.Props {
		if p.Key == key {
			return p, true
		}
	}
	return ShapeProp{}, false
}

// Union is a canonical, flattened set of alternative types. Construct
// with NewUnion rather than directly, to preserve the set invariant:
// order-insensitive, duplicates collapsed, empty ≡ None.
type Union struct {
	Elems []Type
}

func (Union) isType() {}
func (u Union) String() string {
	parts := make([]string, len(u.Elems))
	for i, e := range u.Elems {
		parts[i] = e.String()
	}
	return strings.Join(parts, " | ")
}

// RemoteID names a remote type alias.
type RemoteID struct {
	Module string
	Name   string
	Arity  int
}

func (id RemoteID) String() string {
	return fmt.Sprintf("%s:%s/%d", id.Module, id.Name, id.Arity)
}

// Remote is a named alias type; its body is fetched from the Registry on
// demand and is not stored inline.
type Remote struct {
	ID   RemoteID
	Args []Type
}

func (Remote) isType() {}
func (r Remote) String() string {
	parts := make([]string, len(r.Args))
	for i, a := range r.Args {
		parts[i] = a.String()
	}
	return r.ID.String() + "(" + strings.Join(parts, ", ") + ")"
}

// OpaqueID names a nominal abstract type.
type OpaqueID struct {
	Module string
	Name   string
	Arity  int
}

func (id OpaqueID) String() string {
	return fmt.Sprintf("%s:%s/%d", id.Module, id.Name, id.Arity)
}

// Opaque is a nominal abstract type whose body is intentionally hidden
// from subtyping decisions.
type Opaque struct {
	ID   OpaqueID
	Args []Type
}

func (Opaque) isType() {}
func (o Opaque) String() string {
	parts := make([]string, len(o.Args))
	for i, a := range o.Args {
		parts[i] = a.String()
	}
	return o.ID.String() + "(" + strings.Join(parts, ", ") + ")"
}

// Var is a bound type variable, e.g. one of a Fun's Forall names.
type Var struct {
	Name string
}

func (Var) isType()        {}
func (v Var) String() string { return v.Name }
