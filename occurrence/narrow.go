package occurrence

import "github.com/nominal-types/eqcore/types"

// NarrowPositive is the public face of restrict: the type of a value
// known to be both cur and asserted, as if a positive occurrence test
// against asserted had just succeeded.
func NarrowPositive(reg types.Registry, cfg types.Context, cur, asserted types.Type) types.Type {
	return restrict(reg, cfg, cur, asserted)
}

// NarrowNegative is the public face of remove: the type of a value
// known to be cur but not denied, as if a negative occurrence test
// against denied had just succeeded.
func NarrowNegative(reg types.Registry, cfg types.Context, cur, denied types.Type) types.Type {
	return remove(reg, cfg, cur, denied)
}
