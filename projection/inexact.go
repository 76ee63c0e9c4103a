package projection

import (
	"gonum.org/v1/gonum/floats"

	"github.com/varineq/varineq/convex"
)

// Inexact is the feasible-inexact-projection oracle P_C^γ(u, v): it
// projects v onto set, stopping at the first inner iterate x whose
// duality gap falls below the iterate-dependent tolerance γ‖u−x‖². The
// bound is re-evaluated against the evolving x on every step.
//
// The result x is feasible and satisfies
//
//	⟨v−x, s−x⟩ ≤ γ‖x−u‖²   for all s ∈ set,
//
// the relaxed variational condition against the anchor u. With γ = 0 (or
// x pinned at u) only the exact minimizer is accepted; the MaxIter cap in
// opts then decides how long to try.
//
// opts.Eps and opts.Predicate are ignored; everything else (Start,
// MaxIter, Counter) applies as in Approx.
func Inexact(set convex.Set, u, v []float64, gamma float64, opts Options) ([]float64, error) {
	opts.Predicate = func(x, g, s []float64, _ int) bool {
		d := floats.Distance(u, x, 2)

		return gapDone(x, g, s, gamma*d*d)
	}

	return Approx(v, set, opts)
}
