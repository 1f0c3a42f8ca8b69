package types_test

import (
	"testing"

	"github.com/nominal-types/eqcore/types"
)

func TestNewUnionFlattensAndDedupsAndSorts(t *testing.T) {
	a := types.AtomLit{Value: "a"}
	b := types.AtomLit{Value: "b"}

	u1 := types.NewUnion([]types.Type{a, b})
	u2 := types.NewUnion([]types.Type{b, a})
	if !types.Equal(u1, u2) {
		t.Fatalf("construction order should not affect canonical form: %v vs %v", u1, u2)
	}

	nested := types.NewUnion([]types.Type{u1, b, types.None{}})
	if !types.Equal(nested, u1) {
		t.Fatalf("nested union should flatten, drop None, and dedup: got %v want %v", nested, u1)
	}
}

func TestNewUnionCollapsesEmptyAndSingleton(t *testing.T) {
	if _, ok := types.NewUnion(nil).(types.None); !ok {
		t.Fatalf("empty union should collapse to None")
	}
	if _, ok := types.NewUnion([]types.Type{types.None{}}).(types.None); !ok {
		t.Fatalf("union of only None should collapse to None")
	}
	single := types.NewUnion([]types.Type{types.Atom{}})
	if _, ok := single.(types.Atom); !ok {
		t.Fatalf("singleton union should collapse to its one element, got %v", single)
	}
}

func TestFingerprintStable(t *testing.T) {
	t1 := types.Tuple{Elems: []types.Type{types.Atom{}, types.Number{}}}
	t2 := types.Tuple{Elems: []types.Type{types.Atom{}, types.Number{}}}
	if types.Fingerprint(t1) != types.Fingerprint(t2) {
		t.Fatalf("equal structures should fingerprint identically")
	}
	t3 := types.Tuple{Elems: []types.Type{types.Number{}, types.Atom{}}}
	if types.Fingerprint(t1) == types.Fingerprint(t3) {
		t.Fatalf("element order within a tuple is significant and must not fingerprint equal")
	}
}

func TestNewShapeMapSortsProps(t *testing.T) {
	s1 := types.NewShapeMap([]types.ShapeProp{
		{Key: "b", Required: true, Value: types.Atom{}},
		{Key: "a", Required: true, Value: types.Number{}},
	})
	s2 := types.NewShapeMap([]types.ShapeProp{
		{Key: "a", Required: true, Value: types.Number{}},
		{Key: "b", Required: true, Value: types.Atom{}},
	})
	if !types.Equal(s1, s2) {
		t.Fatalf("shape map prop order should not affect canonical form")
	}
}
