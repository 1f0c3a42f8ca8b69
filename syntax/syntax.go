// Package syntax defines the minimal pattern, guard, and clause
// vocabulary the occurrence typing engine reads: just enough of a pattern-match surface to drive
// pattern-props extraction and guard testing, without modeling the
// full expression AST, which is out of scope for this module and is
// expected to be supplied, in its full form, by the caller's own
// front end.
package syntax

import (
	"fmt"

	"github.com/nominal-types/eqcore/types"
)

// Pattern is a match pattern, as it would appear on the left of a
// clause head or the left of a `=` match expression.
type Pattern interface {
	fmt.Stringer
	isPattern()
}

// PatWildcard matches anything and binds nothing.
type PatWildcard struct{}

func (PatWildcard) isPattern()        {}
func (PatWildcard) String() string { return "_" }

// PatVar binds Name to whatever the pattern matches.
type PatVar struct {
	Name string
}

func (PatVar) isPattern()          {}
func (p PatVar) String() string { return p.Name }

// PatAtom matches the literal atom Value.
type PatAtom struct {
	Value string
}

func (PatAtom) isPattern()        {}
func (p PatAtom) String() string { return "'" + p.Value + "'" }

// PatInt matches the literal integer Value.
type PatInt struct {
	Value int64
}

func (PatInt) isPattern() {}
func (p PatInt) String() string {
	return fmt.Sprintf("%d", p.Value)
}

// PatTuple matches a fixed-arity tuple, elementwise.
type PatTuple struct {
	Elems []Pattern
}

func (PatTuple) isPattern() {}
func (p PatTuple) String() string {
	return fmt.Sprintf("{tuple/%d}", len(p.Elems))
}

// PatRecordField is one field pattern within a PatRecord.
type PatRecordField struct {
	Name    string
	Pattern Pattern
}

// PatRecord matches a record of the named Module/Name, binding each
// listed field to its sub-pattern; unlisted fields are unconstrained.
// Generic, when non-nil, is the sub-pattern this whole record pattern
// is nested under via `=` (e.g. `V = #person{}`), used by pattern-props
// extraction's alias tracking.
type PatRecord struct {
	Module  string
	Name    string
	Fields  []PatRecordField
	Generic Pattern
}

func (PatRecord) isPattern() {}
func (p PatRecord) String() string {
	return "#" + p.Name + "{...}"
}

// PatMatch is an alias pattern `Left = Right`: both sub-patterns must
// match the same value, and any variables either binds are bound.
type PatMatch struct {
	Left  Pattern
	Right Pattern
}

func (PatMatch) isPattern() {}
func (p PatMatch) String() string {
	return p.Left.String() + " = " + p.Right.String()
}

// GuardKind discriminates the built-in guard predicates occurrence
// typing understands; any guard call not covered
// by a GuardKind reduces to Unknown information, not a compile error.
type GuardKind int

const (
	// GuardUnknown marks a guard occurrence typing does not model.
	GuardUnknown GuardKind = iota
	GuardIsAtom
	GuardIsBinary
	GuardIsFloat
	GuardIsFunction
	GuardIsInteger
	GuardIsList
	GuardIsMap
	GuardIsNumber
	GuardIsPid
	GuardIsPort
	GuardIsReference
	GuardIsTuple
)

// Guard is a boolean-valued guard expression appearing in a clause's
// guard sequence or an if-clause.
type Guard interface {
	fmt.Stringer
	isGuard()
}

// IsType is a unary type-test guard call, e.g. `is_atom(V)`.
type IsType struct {
	Kind GuardKind
	Var  string
}

func (IsType) isGuard() {}
func (g IsType) String() string {
	return fmt.Sprintf("is_type(%d, %s)", g.Kind, g.Var)
}

// IsFunctionArity is `is_function(V, Arity)`.
type IsFunctionArity struct {
	Var   string
	Arity int
}

func (IsFunctionArity) isGuard() {}
func (g IsFunctionArity) String() string {
	return fmt.Sprintf("is_function(%s, %d)", g.Var, g.Arity)
}

// IsRecordTest is `is_record(V, Name)` or `is_record(V, Name, Arity)`.
type IsRecordTest struct {
	Var        string
	RecordName string
}

func (IsRecordTest) isGuard() {}
func (g IsRecordTest) String() string {
	return fmt.Sprintf("is_record(%s, %s)", g.Var, g.RecordName)
}

// CompareEq is `V == atom` or `V =/= atom` (Negated), the guard shape
// occurrence typing narrows atom-literal unions with.
type CompareEq struct {
	Var     string
	Atom    string
	Negated bool
}

func (CompareEq) isGuard() {}
func (g CompareEq) String() string {
	op := "=="
	if g.Negated {
		op = "=/="
	}
	return fmt.Sprintf("%s %s '%s'", g.Var, op, g.Atom)
}

// Not negates a guard.
type Not struct {
	Guard Guard
}

func (Not) isGuard()          {}
func (g Not) String() string { return "not " + g.Guard.String() }

// AndGuard is a comma-separated guard sequence — Erlang's
// guard sequence is itself a disjunction of comma-separated
// conjunctions, so this models one conjunctive clause of it.
type AndGuard struct {
	Guards []Guard
}

func (AndGuard) isGuard() {}
func (g AndGuard) String() string {
	return fmt.Sprintf("and(%d guards)", len(g.Guards))
}

// OrGuard is a disjunction of guards (Erlang's `;` between guard
// sequences).
type OrGuard struct {
	Guards []Guard
}

func (OrGuard) isGuard() {}
func (g OrGuard) String() string {
	return fmt.Sprintf("or(%d guards)", len(g.Guards))
}

// Clause is one function clause: a list of argument patterns plus a
// disjunction of guard sequences (each Guards[i] is one conjunctive
// alternative).
type Clause struct {
	Patterns []Pattern
	Guards   []Guard
}

// IfClause is one branch of an `if` expression: no patterns, just a
// guard sequence.
type IfClause struct {
	Guards []Guard
}

// CaseSubject describes the scrutinee of a `case` expression as the
// elaborator has already classified it, since resolving whether an
// arbitrary expression "is literally a variable" requires the full
// expression AST this module does not model. Type is always supplied
// — it is the scrutinee's already-computed static type, independent of
// whether that scrutinee has a stable name. Ok is false when the
// scrutinee is some other expression, in which case Name is ignored
// and occurrence typing narrows pattern-bound variables only, not the
// scrutinee's own identity across clauses.
type CaseSubject struct {
	Name string
	Type types.Type
	Ok   bool
}
