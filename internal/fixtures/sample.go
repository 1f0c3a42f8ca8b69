package fixtures

import "github.com/nominal-types/eqcore/types"

// Sample builds a Static registry with a handful of declarations
// exercising the trickier corners of alias expansion and record
// refinement: a plain record, a self-referential alias (for testing
// SubType's co-inductive termination), and a pair of
// mutually-recursive aliases.
func Sample() *Static {
	s := NewStatic()

	s.RegisterRecord("", "person", types.RecordDecl{Fields: []types.FieldDecl{
		{Name: "name", Type: types.Binary{}},
		{Name: "age", Type: types.Number{}},
		{Name: "pet", Type: types.NewUnion([]types.Type{types.Atom{}, types.Nil{}})},
	}})

	// A self-referential list-of-self alias: json_tree() ::
	// atom() | number() | binary() | [json_tree()].
	jsonTreeID := types.RemoteID{Module: "shapes", Name: "json_tree", Arity: 0}
	s.RegisterAlias(jsonTreeID, nil, types.NewUnion([]types.Type{
		types.Atom{},
		types.Number{},
		types.Binary{},
		types.List{Elem: types.Remote{ID: jsonTreeID}},
	}))

	// Mutually recursive: even_list() :: [] | {number(), odd_list()}
	//                      odd_list()  :: {number(), even_list()}
	evenListID := types.RemoteID{Module: "shapes", Name: "even_list", Arity: 0}
	oddListID := types.RemoteID{Module: "shapes", Name: "odd_list", Arity: 0}
	s.RegisterAlias(evenListID, nil, types.NewUnion([]types.Type{
		types.Nil{},
		types.Tuple{Elems: []types.Type{types.Number{}, types.Remote{ID: oddListID}}},
	}))
	s.RegisterAlias(oddListID, nil, types.Tuple{Elems: []types.Type{types.Number{}, types.Remote{ID: evenListID}}})

	// A parametric alias: box(T) :: {'box', T}.
	boxID := types.RemoteID{Module: "shapes", Name: "box", Arity: 1}
	s.RegisterAlias(boxID, []string{"T"}, types.Tuple{Elems: []types.Type{
		types.AtomLit{Value: "box"},
		types.Var{Name: "T"},
	}})

	return s
}
