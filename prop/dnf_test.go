package prop_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/nominal-types/eqcore/prop"
	"github.com/nominal-types/eqcore/types"
)

func TestToDNFUnknownIsOneEmptyCube(t *testing.T) {
	cubes := prop.ToDNF(prop.UnknownProp{})
	if diff := cmp.Diff([]prop.Cube{{}}, cubes, cmpOpts()...); diff != "" {
		t.Fatalf("Unknown should reduce to a single empty cube (-want +got):\n%s", diff)
	}
}

func TestToDNFOrProducesOneCubePerAlternative(t *testing.T) {
	a := prop.PosProp{Object: prop.VarObj{Name: "x"}, Type: types.Atom{}}
	b := prop.PosProp{Object: prop.VarObj{Name: "x"}, Type: types.Number{}}
	cubes := prop.ToDNF(prop.Or(a, b))
	if len(cubes) != 2 {
		t.Fatalf("Or(a, b) should reduce to 2 cubes, got %d", len(cubes))
	}
}

func TestToDNFAndDistributesOverOr(t *testing.T) {
	a := prop.PosProp{Object: prop.VarObj{Name: "x"}, Type: types.Atom{}}
	b := prop.PosProp{Object: prop.VarObj{Name: "y"}, Type: types.Number{}}
	c := prop.PosProp{Object: prop.VarObj{Name: "y"}, Type: types.Float{}}
	// and(a, or(b, c)) should distribute to two cubes: {a,b} and {a,c}.
	combined := prop.And(a, prop.Or(b, c))
	cubes := prop.ToDNF(combined)
	if len(cubes) != 2 {
		t.Fatalf("and(a, or(b, c)) should distribute into 2 cubes, got %d", len(cubes))
	}
	for _, cube := range cubes {
		if len(cube.Pos) != 2 {
			t.Errorf("each distributed cube should carry both the and'd literal and one or-branch, got %d positives", len(cube.Pos))
		}
	}
}

func TestNotDeMorgan(t *testing.T) {
	a := prop.PosProp{Object: prop.VarObj{Name: "x"}, Type: types.Atom{}}
	b := prop.PosProp{Object: prop.VarObj{Name: "y"}, Type: types.Number{}}
	notAnd := prop.Not(prop.And(a, b))
	or, ok := notAnd.(prop.OrProp)
	if !ok {
		t.Fatalf("Not(And(a, b)) should be an OrProp, got %T", notAnd)
	}
	if len(or.Props) != 2 {
		t.Fatalf("expected 2 negated operands, got %d", len(or.Props))
	}
	if _, ok := or.Props[0].(prop.NegProp); !ok {
		t.Errorf("Not(Pos) should be Neg, got %T", or.Props[0])
	}
}

func TestAndDropsUnknown(t *testing.T) {
	a := prop.PosProp{Object: prop.VarObj{Name: "x"}, Type: types.Atom{}}
	combined := prop.And(a, prop.UnknownProp{})
	if _, ok := combined.(prop.PosProp); !ok {
		t.Fatalf("And(a, Unknown) should simplify to just a, got %T", combined)
	}
}

func cmpOpts() []cmp.Option {
	return []cmp.Option{
		cmpopts.EquateEmpty(),
	}
}
