package types_test

import (
	"testing"

	"github.com/nominal-types/eqcore/types"
)

func TestSubstituteReplacesFreeVar(t *testing.T) {
	tv := types.Var{Name: "T"}
	sub := map[string]types.Type{"T": types.Number{}}
	got := types.Substitute(types.Tuple{Elems: []types.Type{tv, types.Atom{}}}, sub)
	want := types.Tuple{Elems: []types.Type{types.Number{}, types.Atom{}}}
	if !types.Equal(got, want) {
		t.Fatalf("Substitute(%v) = %v, want %v", tv, got, want)
	}
}

func TestSubstituteRespectsFunShadowing(t *testing.T) {
	// forall T. fun((T) -> T), substituting T should leave the Fun's own
	// bound T alone since it shadows the outer substitution.
	inner := types.Fun{Forall: []string{"T"}, Args: []types.Type{types.Var{Name: "T"}}, Result: types.Var{Name: "T"}}
	sub := map[string]types.Type{"T": types.Number{}}
	got := types.Substitute(inner, sub)
	if !types.Equal(got, inner) {
		t.Fatalf("Substitute should not touch a Fun's own shadowed bound variable: got %v, want %v", got, inner)
	}
}

func TestSubstituteEntersUnboundFunArgs(t *testing.T) {
	// forall U. fun((T) -> U) — T is free, U is bound; substituting T
	// should apply, substituting U should not.
	f := types.Fun{Forall: []string{"U"}, Args: []types.Type{types.Var{Name: "T"}}, Result: types.Var{Name: "U"}}
	sub := map[string]types.Type{"T": types.Atom{}, "U": types.Number{}}
	got := types.Substitute(f, sub).(types.Fun)
	if !types.Equal(got.Args[0], types.Atom{}) {
		t.Fatalf("free T should be substituted, got %v", got.Args[0])
	}
	if !types.Equal(got.Result, types.Var{Name: "U"}) {
		t.Fatalf("bound U should not be substituted, got %v", got.Result)
	}
}
