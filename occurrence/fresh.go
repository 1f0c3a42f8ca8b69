package occurrence

import "fmt"

// FreshGen hands out unique synthetic variable names, used whenever the
// occurrence engine needs a root Obj for a scrutinee or sub-pattern
// that has no stable program-level name of its own.
type FreshGen struct {
	counter int
}

// Next returns a new name guaranteed not to collide with any name
// previously returned by this generator.
func (g *FreshGen) Next() string {
	g.counter++
	return fmt.Sprintf("$occ%d", g.counter)
}

// Reset zeroes the counter, so a generator can be reused across
// independent top-level checks without its names growing unbounded.
func (g *FreshGen) Reset() {
	g.counter = 0
}
