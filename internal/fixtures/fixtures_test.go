package fixtures_test

import (
	"testing"

	"github.com/nominal-types/eqcore/internal/fixtures"
	"github.com/nominal-types/eqcore/types"
)

func TestSampleResolvesPersonRecord(t *testing.T) {
	reg := fixtures.Sample()
	decl, ok := reg.GetRecord("", "person")
	if !ok {
		t.Fatalf("expected the person record to resolve")
	}
	if _, ok := decl.Field("age"); !ok {
		t.Errorf("expected person to declare an age field")
	}
	if _, ok := decl.Field("nonexistent"); ok {
		t.Errorf("did not expect a nonexistent field to resolve")
	}
}

func TestSampleExpandsParametricAlias(t *testing.T) {
	reg := fixtures.Sample()
	boxID := types.RemoteID{Module: "shapes", Name: "box", Arity: 1}
	body, ok := reg.GetTypeDeclBody(boxID, []types.Type{types.Number{}})
	if !ok {
		t.Fatalf("expected box/1 to resolve")
	}
	want := types.Tuple{Elems: []types.Type{types.AtomLit{Value: "box"}, types.Number{}}}
	if !types.Equal(body, want) {
		t.Errorf("box(number()) expansion = %v, want %v", body, want)
	}
}

func TestSampleUnknownAliasReportsNotFound(t *testing.T) {
	reg := fixtures.Sample()
	_, ok := reg.GetTypeDeclBody(types.RemoteID{Module: "shapes", Name: "nope", Arity: 0}, nil)
	if ok {
		t.Errorf("an unregistered alias should not resolve")
	}
}
