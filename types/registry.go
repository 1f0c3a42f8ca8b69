package types

// FieldDecl is one declared field of a record: its declared type and
// whether the record declaration gives it a default value.
type FieldDecl struct {
	Name           string
	Type           Type
	DefaultPresent bool
}

// RecordDecl is the external collaborator's view of a record
// declaration: fields in declaration order, since the
// Record-as-tuple equivalence and RefinedRecord both
// depend on that order.
type RecordDecl struct {
	Fields []FieldDecl
}

// Field looks up a declared field by name.
func (d RecordDecl) Field(name string) (FieldDecl, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDecl{}, false
}

// Registry is the read-only, external contract the subtyping and
// occurrence engines consume for alias expansion and record lookup.
// It is provided by the AST loader / on-disk form storage,
// which is out of scope for this module; internal/fixtures
// supplies a small static implementation for tests and the demo CLI.
//
// Registry must be total in the sense that it never panics; an unknown
// id or record simply reports ok=false, and callers treat that as
// subtyping involving an unknown record being false — the caller is
// expected to have surfaced a separate diagnostic elsewhere.
type Registry interface {
	// GetTypeDeclBody returns the alias body for remoteID with args
	// substituted for the alias's formal parameters.
	GetTypeDeclBody(remoteID RemoteID, args []Type) (Type, bool)
	// GetRecord returns the declaration of the named record in module.
	// An empty module means "resolve in the current checking unit",
	// consistent with Record{Module: ""} (an is_record/2
	// guard that names no module).
	GetRecord(module, name string) (RecordDecl, bool)
}

// Context carries the two global configuration flags that must be
// passed explicitly rather than read from
// process-wide state, to keep the engines pure and testable.
type Context struct {
	// GradualTyping enables the gradual-mode subtyping inclusions
	// that let AnyTuple/AnyFun widen into concrete shapes, and is the
	// first condition occurrence.Eqwater checks before activating
	// refinement for a clause list at all.
	GradualTyping bool
	// UnlimitedRefinement lifts occurrence.Eqwater's 7-clause size
	// threshold, and separately lifts the DNF-cube expansion cap
	// applied once refinement is already active.
	UnlimitedRefinement bool
}
