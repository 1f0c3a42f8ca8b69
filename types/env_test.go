package types_test

import (
	"testing"

	"github.com/nominal-types/eqcore/types"
)

func TestEnvWithDoesNotMutateReceiver(t *testing.T) {
	base := types.Env{"x": types.Number{}}
	next := base.With("y", types.Atom{})

	if _, ok := base.Lookup("y"); ok {
		t.Fatalf("With must not mutate the receiver")
	}
	if _, ok := next.Lookup("x"); !ok {
		t.Fatalf("With must preserve existing bindings")
	}
	if v, ok := next.Lookup("y"); !ok || !types.Equal(v, types.Atom{}) {
		t.Fatalf("With must add the new binding")
	}
}

func TestEnvWithOnNilEnv(t *testing.T) {
	var e types.Env
	next := e.With("x", types.Number{})
	if v, ok := next.Lookup("x"); !ok || !types.Equal(v, types.Number{}) {
		t.Fatalf("With on a nil Env should still work")
	}
}
