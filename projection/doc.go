// Package projection approximately projects points onto convex sets and
// exposes the inexact feasible-projection oracle P the outer VIP solvers
// share.
//
// Approx(y, set, opts) specializes the conditional-gradient solver to the
// objective ½‖x−y‖², whose gradient is x−y and whose restriction to the
// segment [x, s] has the closed-form minimizer
//
//	λ = clamp(⟨y−x, s−x⟩ / ⟨s−x, s−x⟩, 0, 1)
//
// so every inner step is an exact line search. Three short-circuits come
// first: y already feasible is returned unchanged with zero iterations;
// sets with a closed-form projection (convex.Projector — halfspaces,
// hyperplanes, balls, boxes) skip iteration entirely; everything else
// needs a support function or fails with ErrNeedSupport.
//
// Inexact(set, u, v, gamma, opts) is the oracle P_C^γ(u, v): it projects
// v onto C but stops at the first inner iterate x whose duality gap falls
// below the *iterate-dependent* tolerance γ‖u−x‖². The returned point is
// feasible and satisfies ⟨v−x, s−x⟩ ≤ γ‖x−u‖² for all s ∈ C — a relaxed
// projection that is cheap far from the anchor u and sharp near it.
package projection
