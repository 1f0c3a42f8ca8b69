package subtype_test

import (
	"testing"

	"github.com/nominal-types/eqcore/internal/fixtures"
	"github.com/nominal-types/eqcore/subtype"
	"github.com/nominal-types/eqcore/types"
)

func ctx(gradual bool) types.Context {
	return types.Context{GradualTyping: gradual}
}

func TestReflexivityAndTopBottom(t *testing.T) {
	reg := fixtures.Sample()
	ts := []types.Type{
		types.Atom{}, types.Number{}, types.AtomLit{Value: "ok"},
		types.Tuple{Elems: []types.Type{types.Atom{}, types.Number{}}},
	}
	for _, ty := range ts {
		if !subtype.SubType(reg, ctx(false), ty, ty) {
			t.Errorf("%v should be a subtype of itself", ty)
		}
		if !subtype.SubType(reg, ctx(false), ty, types.Any{}) {
			t.Errorf("%v should be a subtype of any()", ty)
		}
		if !subtype.SubType(reg, ctx(false), types.None{}, ty) {
			t.Errorf("none() should be a subtype of %v", ty)
		}
	}
}

func TestDynamicIsTopAndBottom(t *testing.T) {
	reg := fixtures.Sample()
	if !subtype.SubType(reg, ctx(false), types.Dynamic{}, types.Atom{}) {
		t.Errorf("dynamic() should be a subtype of atom()")
	}
	if !subtype.SubType(reg, ctx(false), types.Atom{}, types.Dynamic{}) {
		t.Errorf("atom() should be a subtype of dynamic()")
	}
}

func TestAtomLitIsSubtypeOfAtom(t *testing.T) {
	reg := fixtures.Sample()
	if !subtype.SubType(reg, ctx(false), types.AtomLit{Value: "ok"}, types.Atom{}) {
		t.Errorf("'ok' should be a subtype of atom()")
	}
	if subtype.SubType(reg, ctx(false), types.Atom{}, types.AtomLit{Value: "ok"}) {
		t.Errorf("atom() should not be a subtype of 'ok'")
	}
}

func TestUnionOnLeftIsUniversal(t *testing.T) {
	reg := fixtures.Sample()
	u := types.NewUnion([]types.Type{types.AtomLit{Value: "ok"}, types.AtomLit{Value: "error"}})
	if !subtype.SubType(reg, ctx(false), u, types.Atom{}) {
		t.Errorf("'ok' | 'error' should be a subtype of atom()")
	}
	if subtype.SubType(reg, ctx(false), u, types.Number{}) {
		t.Errorf("'ok' | 'error' should not be a subtype of number()")
	}
}

func TestUnionOnRightIsExistential(t *testing.T) {
	reg := fixtures.Sample()
	u := types.NewUnion([]types.Type{types.Atom{}, types.Number{}})
	if !subtype.SubType(reg, ctx(false), types.AtomLit{Value: "ok"}, u) {
		t.Errorf("'ok' should be a subtype of atom() | number()")
	}
	if subtype.SubType(reg, ctx(false), types.Binary{}, u) {
		t.Errorf("binary() should not be a subtype of atom() | number()")
	}
}

func TestTupleComponentwiseCovariance(t *testing.T) {
	reg := fixtures.Sample()
	t1 := types.Tuple{Elems: []types.Type{types.AtomLit{Value: "ok"}, types.Number{}}}
	t2 := types.Tuple{Elems: []types.Type{types.Atom{}, types.Number{}}}
	if !subtype.SubType(reg, ctx(false), t1, t2) {
		t.Errorf("{'ok', number()} should be a subtype of {atom(), number()}")
	}
	t3 := types.Tuple{Elems: []types.Type{types.Atom{}, types.Number{}, types.Atom{}}}
	if subtype.SubType(reg, ctx(false), t2, t3) {
		t.Errorf("tuples of different arity should never be subtypes of each other")
	}
}

func TestFunctionContravariantArgsCovariantResult(t *testing.T) {
	reg := fixtures.Sample()
	f1 := types.Fun{Args: []types.Type{types.Atom{}}, Result: types.AtomLit{Value: "ok"}}
	f2 := types.Fun{Args: []types.Type{types.AtomLit{Value: "ok"}}, Result: types.Atom{}}
	if !subtype.SubType(reg, ctx(false), f1, f2) {
		t.Errorf("fun((atom())->'ok') should be a subtype of fun(('ok')->atom()) by contra/covariance")
	}
	if subtype.SubType(reg, ctx(false), f2, f1) {
		t.Errorf("the reverse direction should not hold")
	}
}

func TestRecordAsTupleBridging(t *testing.T) {
	reg := fixtures.Sample()
	person := types.Record{Name: "person"}
	asTuple := types.Tuple{Elems: []types.Type{
		types.AtomLit{Value: "person"},
		types.Binary{},
		types.Number{},
		types.NewUnion([]types.Type{types.Atom{}, types.Nil{}}),
	}}
	if !subtype.Eqv(reg, ctx(false), person, asTuple) {
		t.Errorf("#person{} should be equivalent to its recordAsTuple expansion")
	}
}

func TestRefinedRecordNarrowsAndWidens(t *testing.T) {
	reg := fixtures.Sample()
	person := types.Record{Name: "person"}
	refined := types.RefinedRecord{Record: person, Fields: []types.FieldOverride{
		{Name: "pet", Type: types.AtomLit{Value: "cat"}},
	}}
	if !subtype.SubType(reg, ctx(false), refined, person) {
		t.Errorf("a refined record should always be a subtype of its unrefined record")
	}
	if subtype.SubType(reg, ctx(false), person, refined) {
		t.Errorf("the unrefined record should not be a subtype of a narrower refinement")
	}
}

func TestRecursiveAliasTerminates(t *testing.T) {
	reg := fixtures.Sample()
	jsonTree := types.Remote{ID: types.RemoteID{Module: "shapes", Name: "json_tree", Arity: 0}}
	if !subtype.SubType(reg, ctx(false), jsonTree, jsonTree) {
		t.Errorf("a recursive alias should be a subtype of itself without looping forever")
	}
	nested := types.List{Elem: jsonTree}
	if !subtype.SubType(reg, ctx(false), nested, jsonTree) {
		t.Errorf("[json_tree()] should be a subtype of json_tree() (it is one of its union arms)")
	}
}

func TestMutuallyRecursiveAliasesTerminate(t *testing.T) {
	reg := fixtures.Sample()
	evenList := types.Remote{ID: types.RemoteID{Module: "shapes", Name: "even_list", Arity: 0}}
	if !subtype.SubType(reg, ctx(false), evenList, evenList) {
		t.Errorf("mutually recursive aliases should terminate and compare reflexively")
	}
}

func TestParametricAliasSubstitutesArgs(t *testing.T) {
	reg := fixtures.Sample()
	boxID := types.RemoteID{Module: "shapes", Name: "box", Arity: 1}
	boxOfOk := types.Remote{ID: boxID, Args: []types.Type{types.AtomLit{Value: "ok"}}}
	boxOfAtom := types.Remote{ID: boxID, Args: []types.Type{types.Atom{}}}
	if !subtype.SubType(reg, ctx(false), boxOfOk, boxOfAtom) {
		t.Errorf("box('ok') should be a subtype of box(atom()) since box/1 is covariant in its argument")
	}
}

func TestGradualWideningGatedByContext(t *testing.T) {
	reg := fixtures.Sample()
	concrete := types.Tuple{Elems: []types.Type{types.Atom{}}}
	if !subtype.SubType(reg, ctx(true), types.AnyTuple{}, concrete) {
		t.Errorf("tuple() should widen into a concrete tuple shape under gradual typing")
	}
	if subtype.SubType(reg, ctx(false), types.AnyTuple{}, concrete) {
		t.Errorf("tuple() should not widen into a concrete tuple shape without gradual typing")
	}
}

func TestShapeSubtypeOfShapeRequiredFields(t *testing.T) {
	reg := fixtures.Sample()
	wide := types.NewShapeMap([]types.ShapeProp{
		{Key: "a", Required: true, Value: types.Atom{}},
	}).(types.ShapeMap)
	extraKey := types.NewShapeMap([]types.ShapeProp{
		{Key: "a", Required: true, Value: types.AtomLit{Value: "ok"}},
		{Key: "b", Required: false, Value: types.Number{}},
	}).(types.ShapeMap)
	// extraKey names a key ("b") that wide never mentions, so keys(extraKey)
	// is not a subset of keys(wide): neither direction holds.
	if subtype.SubType(reg, ctx(false), extraKey, wide) {
		t.Errorf("a shape naming a key the other shape doesn't mention should not be a subtype of it")
	}
	if subtype.SubType(reg, ctx(false), wide, extraKey) {
		t.Errorf("the wider shape should not be a subtype of the narrower one, which requires more precision on 'a' and names an extra key")
	}

	sameKeys := types.NewShapeMap([]types.ShapeProp{
		{Key: "a", Required: true, Value: types.AtomLit{Value: "ok"}},
	}).(types.ShapeMap)
	if !subtype.SubType(reg, ctx(false), sameKeys, wide) {
		t.Errorf("a shape with the same keys and a narrower required field should be a subtype of the wider shape")
	}
	if subtype.SubType(reg, ctx(false), wide, sameKeys) {
		t.Errorf("the wider shape should not be a subtype of the narrower one, which requires more precision on 'a'")
	}
}

func TestShapeSubtypeOfDict(t *testing.T) {
	reg := fixtures.Sample()
	shape := types.NewShapeMap([]types.ShapeProp{
		{Key: "a", Required: true, Value: types.Number{}},
		{Key: "b", Required: true, Value: types.Atom{}},
	}).(types.ShapeMap)
	dict := types.DictMap{Key: types.Atom{}, Value: types.NewUnion([]types.Type{types.Number{}, types.Atom{}})}
	if !subtype.SubType(reg, ctx(false), shape, dict) {
		t.Errorf("a shape should be a subtype of a dict whose key/value types cover all its props")
	}
}

func TestEqvIsNotStructuralEquality(t *testing.T) {
	reg := fixtures.Sample()
	person := types.Record{Name: "person"}
	asTuple := types.Tuple{Elems: []types.Type{
		types.AtomLit{Value: "person"}, types.Binary{}, types.Number{},
		types.NewUnion([]types.Type{types.Atom{}, types.Nil{}}),
	}}
	if types.Equal(person, asTuple) {
		t.Fatalf("a record and its tuple expansion should never be structurally Equal")
	}
	if !subtype.Eqv(reg, ctx(false), person, asTuple) {
		t.Fatalf("but they should be Eqv")
	}
}

func TestHasDynamic(t *testing.T) {
	if subtype.HasDynamic(types.Atom{}) {
		t.Errorf("atom() has no dynamic")
	}
	nested := types.Tuple{Elems: []types.Type{types.Atom{}, types.Dynamic{}}}
	if !subtype.HasDynamic(nested) {
		t.Errorf("a tuple containing dynamic() should report HasDynamic")
	}
	if subtype.Static(nested) {
		t.Errorf("Static should be the negation of HasDynamic")
	}
}

// TestTupleUnionDistribution exercises testable property #7: a union
// nested inside one tuple component distributes across the whole
// tuple, so (A|B, C) <: (A,C)|(B,C) even though neither tuple
// alternative on the right matches (A|B, C) as a whole componentwise.
func TestTupleUnionDistribution(t *testing.T) {
	reg := fixtures.Sample()
	a := types.AtomLit{Value: "a"}
	b := types.AtomLit{Value: "b"}
	t1 := types.Tuple{Elems: []types.Type{types.NewUnion([]types.Type{a, b}), types.Number{}}}
	t2 := types.NewUnion([]types.Type{
		types.Tuple{Elems: []types.Type{a, types.Number{}}},
		types.Tuple{Elems: []types.Type{b, types.Number{}}},
	})
	if !subtype.SubType(reg, ctx(false), t1, t2) {
		t.Errorf("(a|b, number()) should be a subtype of (a,number())|(b,number()) via union distribution")
	}

	// A mismatched second component breaks the distribution: neither
	// alternative's second component matches.
	bad := types.NewUnion([]types.Type{
		types.Tuple{Elems: []types.Type{a, types.Atom{}}},
		types.Tuple{Elems: []types.Type{b, types.Atom{}}},
	})
	if subtype.SubType(reg, ctx(false), t1, bad) {
		t.Errorf("(a|b, number()) should not be a subtype of (a,atom())|(b,atom())")
	}
}

func TestIsNoneTypeThroughUnionAndRemote(t *testing.T) {
	reg := fixtures.NewStatic()
	emptyID := types.RemoteID{Module: "shapes", Name: "empty", Arity: 0}
	reg.RegisterAlias(emptyID, nil, types.None{})
	remoteEmpty := types.Remote{ID: emptyID}

	if !subtype.IsNoneType(reg, types.None{}) {
		t.Errorf("none() should report IsNoneType")
	}
	if !subtype.IsNoneType(reg, remoteEmpty) {
		t.Errorf("a remote alias expanding to none() should report IsNoneType")
	}
	if !subtype.IsNoneType(reg, types.NewUnion([]types.Type{types.None{}, remoteEmpty})) {
		t.Errorf("a union of only None-type alternatives should report IsNoneType")
	}
	if subtype.IsNoneType(reg, types.NewUnion([]types.Type{types.None{}, types.Atom{}})) {
		t.Errorf("a union with a non-None alternative should not report IsNoneType")
	}
	opaqueID := types.OpaqueID{Module: "shapes", Name: "opaque_none", Arity: 0}
	if subtype.IsNoneType(reg, types.Opaque{ID: opaqueID}) {
		t.Errorf("Opaque should never report IsNoneType")
	}
}

func TestIsAnyTypeThroughUnionAndRemote(t *testing.T) {
	reg := fixtures.NewStatic()
	anyID := types.RemoteID{Module: "shapes", Name: "anything", Arity: 0}
	reg.RegisterAlias(anyID, nil, types.Any{})
	remoteAny := types.Remote{ID: anyID}

	if !subtype.IsAnyType(reg, types.Any{}) {
		t.Errorf("any() should report IsAnyType")
	}
	if !subtype.IsAnyType(reg, remoteAny) {
		t.Errorf("a remote alias expanding to any() should report IsAnyType")
	}
	if !subtype.IsAnyType(reg, types.NewUnion([]types.Type{types.Atom{}, remoteAny})) {
		t.Errorf("a union containing an Any-type alternative should report IsAnyType")
	}
	if subtype.IsAnyType(reg, types.NewUnion([]types.Type{types.Atom{}, types.Number{}})) {
		t.Errorf("a union with no Any-type alternative should not report IsAnyType")
	}
	opaqueID := types.OpaqueID{Module: "shapes", Name: "opaque_any", Arity: 0}
	if subtype.IsAnyType(reg, types.Opaque{ID: opaqueID}) {
		t.Errorf("Opaque should never report IsAnyType")
	}
}
