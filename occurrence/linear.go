package occurrence

import (
	"github.com/nominal-types/eqcore/syntax"
	"github.com/nominal-types/eqcore/types"
)

// Eqwater gates whether occurrence refinement activates at all for a
// set of clauses (a function clause list, or a case expression's
// clause list). It is true iff:
//
//   - cfg.GradualTyping is on, AND
//   - either every clause is pattern-free (no argument patterns at
//     all — e.g. an if-expression's clauses), or refinement is
//     unbounded (cfg.UnlimitedRefinement) or there are fewer than 7
//     clauses, AND
//   - every clause's pattern variables are linear: no variable name
//     appears more than once across that clause's own pattern list.
//
// This is distinct from maxRefinementClauses, which separately bounds
// how many DNF cubes a single clause's combined proposition may expand
// into once refinement has already been activated.
func Eqwater(cfg types.Context, clauses []syntax.Clause) bool {
	if !cfg.GradualTyping {
		return false
	}

	patternFree := true
	for _, c := range clauses {
		if len(c.Patterns) > 0 {
			patternFree = false
			break
		}
	}
	if !patternFree && !cfg.UnlimitedRefinement && len(clauses) >= 7 {
		return false
	}

	for _, c := range clauses {
		if !linearClause(c) {
			return false
		}
	}
	return true
}

// linearClause reports whether every variable bound across c's pattern
// list occurs at most once — a non-linear pattern like `{X, X}` is
// refused rather than silently letting the second occurrence overwrite
// the first in an alias map.
func linearClause(c syntax.Clause) bool {
	counts := map[string]int{}
	for _, p := range c.Patterns {
		collectPatternVars(p, counts)
	}
	for _, n := range counts {
		if n > 1 {
			return false
		}
	}
	return true
}

// collectPatternVars walks pat and tallies every PatVar name it finds,
// recursing through the compound pattern variants.
func collectPatternVars(pat syntax.Pattern, counts map[string]int) {
	switch v := pat.(type) {
	case syntax.PatVar:
		counts[v.Name]++
	case syntax.PatTuple:
		for _, e := range v.Elems {
			collectPatternVars(e, counts)
		}
	case syntax.PatRecord:
		for _, f := range v.Fields {
			collectPatternVars(f.Pattern, counts)
		}
		if v.Generic != nil {
			collectPatternVars(v.Generic, counts)
		}
	case syntax.PatMatch:
		collectPatternVars(v.Left, counts)
		collectPatternVars(v.Right, counts)
	}
}
