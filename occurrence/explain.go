package occurrence

import (
	"github.com/nominal-types/eqcore/prop"
	"github.com/nominal-types/eqcore/syntax"
)

// ExplainGuard reduces a single guard expression to its proposition and
// that proposition's DNF cubes, without needing a full environment or
// pattern — useful for inspecting what a guard alone contributes before
// it's combined with a pattern match.
func ExplainGuard(g syntax.Guard) (prop.Prop, []prop.Cube) {
	p := testProps(g)
	return p, prop.ToDNF(p)
}
