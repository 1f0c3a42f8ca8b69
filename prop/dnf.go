package prop

// Cube is a conjunction of literals in disjunctive normal form: a set
// of positive and negative assertions that must all hold simultaneously.
// An empty Cube (no Pos, no Neg) is vacuously true and leaves an
// environment unchanged when applied.
type Cube struct {
	Pos []PosProp
	Neg []NegProp
}

// ToDNF reduces p to disjunctive normal form: a list of Cubes whose
// disjunction is equivalent to p. It follows the same DNF-style
// expansion a boolean-equation reducer uses (distributing And over Or),
// but over Pos/Neg/And/Or/Unknown rather than And/Or/Not/Var.
//
// An UnknownProp reduces to a single empty cube (no constraint, not "no
// cubes") so that And(Unknown, X) still carries X's information. An
// empty OrProp — which Or builds only when called with no operands —
// reduces to no cubes at all, meaning the disjunction is
// unsatisfiable.
func ToDNF(p Prop) []Cube {
	switch v := p.(type) {
	case UnknownProp:
		return []Cube{{}}
	case PosProp:
		return []Cube{{Pos: []PosProp{v}}}
	case NegProp:
		return []Cube{{Neg: []NegProp{v}}}
	case OrProp:
		cubes := make([]Cube, 0, len(v.Props))
		for _, sub := range v.Props {
			cubes = append(cubes, ToDNF(sub)...)
		}
		return cubes
	case AndProp:
		return andAll(v.Props)
	default:
		panic("prop: unreachable prop variant in ToDNF")
	}
}

// andAll distributes conjunction over each subprop's own DNF: the
// cross product of each operand's cube list, unioning Pos/Neg literals
// pairwise, the same way a product-of-sums expansion works.
func andAll(props []Prop) []Cube {
	acc := []Cube{{}}
	for _, p := range props {
		subCubes := ToDNF(p)
		next := make([]Cube, 0, len(acc)*len(subCubes))
		for _, a := range acc {
			for _, b := range subCubes {
				next = append(next, mergeCubes(a, b))
			}
		}
		acc = next
	}
	return acc
}

func mergeCubes(a, b Cube) Cube {
	pos := make([]PosProp, 0, len(a.Pos)+len(b.Pos))
	pos = append(pos, a.Pos...)
	pos = append(pos, b.Pos...)
	neg := make([]NegProp, 0, len(a.Neg)+len(b.Neg))
	neg = append(neg, a.Neg...)
	neg = append(neg, b.Neg...)
	return Cube{Pos: pos, Neg: neg}
}
