package types

import "golang.org/x/exp/maps"

// Env is the type environment: a mapping from variable name
// to Type. It is treated as immutable by convention — With returns a new
// Env, cloned with golang.org/x/exp/maps.Clone, rather than mutating
// the receiver.
type Env map[string]Type

// With returns a copy of e with name bound to t.
func (e Env) With(name string, t Type) Env {
	next := maps.Clone(e)
	if next == nil {
		next = Env{}
	}
	next[name] = t
	return next
}

// Clone returns a shallow copy of e.
func (e Env) Clone() Env {
	next := maps.Clone(e)
	if next == nil {
		next = Env{}
	}
	return next
}

// Lookup returns e[name] and whether it was present.
func (e Env) Lookup(name string) (Type, bool) {
	t, ok := e[name]
	return t, ok
}
