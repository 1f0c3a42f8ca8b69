package occurrence

import (
	"sort"

	"github.com/nominal-types/eqcore/prop"
	"github.com/nominal-types/eqcore/types"
)

// BatchSelect applies every literal of cube to env, narrowing each
// literal's object in place. Literals are applied deepest
// path first: narrowing a nested field before its enclosing variable
// means a later shallower literal about the same root sees the
// already-narrowed structure, rather than the two writes racing to
// clobber each other through independent setAtPath calls. An empty
// cube — no Pos, no Neg — leaves env unchanged.
func BatchSelect(env types.Env, cube prop.Cube, reg types.Registry, cfg types.Context) types.Env {
	type literal struct {
		obj      prop.Obj
		asserted types.Type
		positive bool
		depth    int
	}

	lits := make([]literal, 0, len(cube.Pos)+len(cube.Neg))
	for _, p := range cube.Pos {
		_, steps := decomposeObj(p.Object)
		lits = append(lits, literal{obj: p.Object, asserted: p.Type, positive: true, depth: len(steps)})
	}
	for _, n := range cube.Neg {
		_, steps := decomposeObj(n.Object)
		lits = append(lits, literal{obj: n.Object, asserted: n.Type, positive: false, depth: len(steps)})
	}

	sort.SliceStable(lits, func(i, j int) bool { return lits[i].depth > lits[j].depth })

	for _, l := range lits {
		env = applyLiteral(env, l.obj, l.asserted, l.positive, reg, cfg)
	}
	return env
}

func applyLiteral(env types.Env, obj prop.Obj, asserted types.Type, positive bool, reg types.Registry, cfg types.Context) types.Env {
	root, steps := decomposeObj(obj)
	cur, ok := env.Lookup(root)
	if !ok {
		return env
	}
	transform := func(leaf types.Type) types.Type {
		if positive {
			return restrict(reg, cfg, leaf, asserted)
		}
		return remove(reg, cfg, leaf, asserted)
	}
	return env.With(root, setAtPath(cur, steps, transform, reg))
}

// joinEnvs merges a set of alternative environments produced by
// distinct DNF cubes into one: every key any of them defines gets the
// join (union) of its value across all environments that define it.
// Sound but not necessarily tight — matching Join's own trade-off.
func joinEnvs(envs []types.Env) types.Env {
	if len(envs) == 0 {
		return types.Env{}
	}
	if len(envs) == 1 {
		return envs[0]
	}
	keys := map[string]bool{}
	for _, e := range envs {
		for k := range e {
			keys[k] = true
		}
	}
	result := make(types.Env, len(keys))
	for k := range keys {
		var vals []types.Type
		for _, e := range envs {
			if v, ok := e[k]; ok {
				vals = append(vals, v)
			}
		}
		result[k] = types.NewUnion(vals)
	}
	return result
}
