package eqcore

import (
	"testing"

	"github.com/nominal-types/eqcore/types"
)

func TestParseTypeAtomic(t *testing.T) {
	cases := map[string]types.Type{
		"any()":     types.Any{},
		"none":      types.None{},
		"atom()":    types.Atom{},
		"'ok'":      types.AtomLit{Value: "ok"},
		"number()":  types.Number{},
		"[]":        types.Nil{},
		"tuple()":   types.AnyTuple{},
	}
	for src, want := range cases {
		got, err := parseType(src)
		if err != nil {
			t.Fatalf("parseType(%q) error: %v", src, err)
		}
		if !types.Equal(got, want) {
			t.Errorf("parseType(%q) = %v, want %v", src, got, want)
		}
	}
}

func TestParseTypeCompound(t *testing.T) {
	got, err := parseType("{atom(), number()}")
	if err != nil {
		t.Fatalf("parseType error: %v", err)
	}
	want := types.Tuple{Elems: []types.Type{types.Atom{}, types.Number{}}}
	if !types.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	got2, err := parseType("'ok' | 'error'")
	if err != nil {
		t.Fatalf("parseType error: %v", err)
	}
	want2 := types.NewUnion([]types.Type{types.AtomLit{Value: "ok"}, types.AtomLit{Value: "error"}})
	if !types.Equal(got2, want2) {
		t.Errorf("got %v, want %v", got2, want2)
	}
}

func TestParseTypeList(t *testing.T) {
	got, err := parseType("[number()]")
	if err != nil {
		t.Fatalf("parseType error: %v", err)
	}
	want := types.List{Elem: types.Number{}}
	if !types.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
