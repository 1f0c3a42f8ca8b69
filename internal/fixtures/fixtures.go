// Package fixtures is a small, static in-memory implementation of
// types.Registry, used by package tests and the eqcore CLI demo. It is
// not part of the public API: real deployments plug in a registry
// backed by the project's own AST/form storage, which is
// out of scope for this module. The shape — a map of declarations
// keyed by name, looked up on demand — is the same pattern any small
// in-memory lookup table for named declarations follows.
package fixtures

import "github.com/nominal-types/eqcore/types"

// Static is a Registry backed by two maps, filled in through
// RegisterRecord and RegisterAlias after NewStatic.
type Static struct {
	records map[string]types.RecordDecl
	aliases map[string]aliasEntry
}

type aliasEntry struct {
	params []string
	body   types.Type
}

// NewStatic builds an empty Static registry ready for RegisterRecord
// and RegisterAlias calls.
func NewStatic() *Static {
	return &Static{
		records: map[string]types.RecordDecl{},
		aliases: map[string]aliasEntry{},
	}
}

// RegisterRecord adds a record declaration resolvable under module
// (use "" for the current-checking-unit default) and name.
func (s *Static) RegisterRecord(module, name string, decl types.RecordDecl) {
	s.records[recordKey(module, name)] = decl
}

// RegisterAlias adds a remote type alias. params names the alias's
// formal type parameters in declaration order; body may reference them
// as types.Var.
func (s *Static) RegisterAlias(id types.RemoteID, params []string, body types.Type) {
	s.aliases[aliasKey(id)] = aliasEntry{params: params, body: body}
}

// GetRecord implements types.Registry.
func (s *Static) GetRecord(module, name string) (types.RecordDecl, bool) {
	decl, ok := s.records[recordKey(module, name)]
	if ok {
		return decl, true
	}
	// When the caller names no module and no module-less entry exists,
	// fall back to a record of that name registered under any module,
	// mirroring is_record/2's module-less lookup.
	if module != "" {
		return types.RecordDecl{}, false
	}
	for key, d := range s.records {
		if recordKeyName(key) == name {
			return d, true
		}
	}
	return types.RecordDecl{}, false
}

// GetTypeDeclBody implements types.Registry: it substitutes args for
// the alias's formal parameters and returns the resulting body.
func (s *Static) GetTypeDeclBody(remoteID types.RemoteID, args []types.Type) (types.Type, bool) {
	entry, ok := s.aliases[aliasKey(remoteID)]
	if !ok {
		return nil, false
	}
	if len(entry.params) != len(args) {
		return nil, false
	}
	sub := make(map[string]types.Type, len(entry.params))
	for i, p := range entry.params {
		sub[p] = args[i]
	}
	return types.Substitute(entry.body, sub), true
}

func recordKey(module, name string) string { return module + "#" + name }

func recordKeyName(key string) string {
	for i := len(key) - 1; i >= 0; i-- {
		if key[i] == '#' {
			return key[i+1:]
		}
	}
	return key
}

func aliasKey(id types.RemoteID) string {
	return id.String()
}
