// Package occurrence implements the occurrence typing engine proper:
// given a type environment and a pattern/guard test, it
// computes the narrower environments visible on the success and
// failure branches of that test. It is built on the type algebra of
// types, the subtyping decision procedure of subtype, the proposition
// algebra of prop, and the minimal pattern/guard contract of syntax.
package occurrence

import (
	"github.com/nominal-types/eqcore/prop"
	"github.com/nominal-types/eqcore/syntax"
	"github.com/nominal-types/eqcore/types"
)

// maxRefinementClauses caps how many DNF cubes a single clause's
// combined pattern+guard proposition may expand into; past the cap,
// applyMatch leaves the environment unnarrowed on both branches,
// unless cfg.UnlimitedRefinement is set.
// Occurrence typing's DNF expansion is worst-case exponential in the
// number of guard alternatives; this cap keeps a pathological guard
// sequence from blowing up compilation time for the common case, at
// the cost of precision on the rare large one.
const maxRefinementClauses = 64

// applyMatch is the shared core of every exported operation in this
// package: given the combined pattern+guard proposition and the alias
// bindings a successful match introduces, it computes the then/else
// environments.
func applyMatch(reg types.Registry, cfg types.Context, env types.Env, combined prop.Prop, aliases prop.AMap) (thenEnv, elseEnv types.Env) {
	thenCubes := prop.ToDNF(combined)
	if !cfg.UnlimitedRefinement && len(thenCubes) > maxRefinementClauses {
		return env, env
	}

	thenEnvs := make([]types.Env, 0, len(thenCubes))
	for _, cube := range thenCubes {
		narrowed := BatchSelect(env, cube, reg, cfg)
		for name, obj := range aliases {
			if t, ok := typePathRef(narrowed, obj, reg); ok {
				narrowed = narrowed.With(name, t)
			}
		}
		thenEnvs = append(thenEnvs, narrowed)
	}
	if len(thenEnvs) == 0 {
		thenEnv = env
	} else {
		thenEnv = joinEnvs(thenEnvs)
	}

	elseCubes := prop.ToDNF(prop.Not(combined))
	elseEnvs := make([]types.Env, 0, len(elseCubes))
	for _, cube := range elseCubes {
		elseEnvs = append(elseEnvs, BatchSelect(env, cube, reg, cfg))
	}
	if len(elseEnvs) == 0 {
		elseEnv = env
	} else {
		elseEnv = joinEnvs(elseEnvs)
	}
	return thenEnv, elseEnv
}

// MatchEnvs is the single-test narrowing combinator, built on
// applyMatch like the clause-list operations below: test pat (plus
// guardAlts, the clause's guard alternatives) against obj under env,
// and return the environment
// visible when the match succeeds and the environment visible when it
// fails.
func MatchEnvs(reg types.Registry, cfg types.Context, env types.Env, obj prop.Obj, pat syntax.Pattern, guardAlts []syntax.Guard, gen *FreshGen) (thenEnv, elseEnv types.Env) {
	patProp, aliases := extractPattern(pat, obj, gen)
	guardProp := combineGuards(guardAlts)
	combined := prop.And(patProp, guardProp)
	return applyMatch(reg, cfg, env, combined, aliases)
}

// IfEnvs narrows env across an if-clause's guard alternatives: the
// environment visible in the clause's body, and the environment
// visible to subsequent if-clauses once this one has failed.
func IfEnvs(reg types.Registry, cfg types.Context, env types.Env, clause syntax.IfClause) (thenEnv, elseEnv types.Env) {
	combined := combineGuards(clause.Guards)
	return applyMatch(reg, cfg, env, combined, prop.AMap{})
}

// clauseEnvs narrows env across one multi-argument clause, matching
// objs[i] against c.Patterns[i] for every argument position and ANDing
// in the clause's own guard alternatives.
func clauseEnvs(reg types.Registry, cfg types.Context, env types.Env, objs []prop.Obj, c syntax.Clause, gen *FreshGen) (thenEnv, elseEnv types.Env) {
	if len(objs) != len(c.Patterns) {
		panic("occurrence: clause pattern arity does not match object count")
	}
	combined := prop.Prop(prop.UnknownProp{})
	aliases := prop.AMap{}
	for i, pat := range c.Patterns {
		p, a := extractPattern(pat, objs[i], gen)
		combined = prop.And(combined, p)
		mergeAMap(aliases, a)
	}
	combined = prop.And(combined, combineGuards(c.Guards))
	return applyMatch(reg, cfg, env, combined, aliases)
}

// ClausesEnvs threads env through an ordered sequence of function (or
// case, with a single-element objs) clauses: the environment visible
// inside each clause's body, in order, plus the environment visible
// after every clause has failed to match (e.g. for a function_clause
// error branch, or to type-check code the case/function admits is
// unreachable when no clause ever falls through).
//
// Refinement across the whole clause list is gated by Eqwater: when it
// reports false (gradual typing is off, the clause list is too large
// and unbounded refinement wasn't requested, or some clause's pattern
// variables are non-linear), every clause sees env unrefined and the
// fallthrough env is env itself.
func ClausesEnvs(reg types.Registry, cfg types.Context, env types.Env, objs []prop.Obj, clauses []syntax.Clause, gen *FreshGen) (thenEnvs []types.Env, fallthroughEnv types.Env) {
	thenEnvs = make([]types.Env, len(clauses))
	if !Eqwater(cfg, clauses) {
		for i := range clauses {
			thenEnvs[i] = env
		}
		return thenEnvs, env
	}

	cur := env
	for i, c := range clauses {
		then, els := clauseEnvs(reg, cfg, cur, objs, c, gen)
		thenEnvs[i] = then
		cur = els
	}
	return thenEnvs, cur
}

// CaseEnvs narrows across a case expression's clauses. subj describes
// the scrutinee: when subj.Ok, the scrutinee is a bare variable and
// each clause additionally narrows that variable's own type across
// clauses; otherwise only pattern-bound variables are narrowed, rooted at a
// synthetic object seeded with subj.Type.
func CaseEnvs(reg types.Registry, cfg types.Context, env types.Env, subj syntax.CaseSubject, clauses []syntax.Clause, gen *FreshGen) (thenEnvs []types.Env, fallthroughEnv types.Env) {
	name := subj.Name
	base := env
	if !subj.Ok {
		name = gen.Next()
		base = env.With(name, subj.Type)
	} else if _, bound := env.Lookup(name); !bound {
		base = env.With(name, subj.Type)
	}
	obj := prop.Obj(prop.VarObj{Name: name})
	return ClausesEnvs(reg, cfg, base, []prop.Obj{obj}, clauses, gen)
}
