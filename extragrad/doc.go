// Package extragrad implements two extragradient-type solvers for
// variational inequality problems, both built on the inexact projection
// oracle P of package projection.
//
// 🚀 The two schemes
//
// Method — the basic two-projection scheme with a diminishing
// inexactness schedule. Step k at iterate x:
//
//	αₖ = (k+1)^−2.1
//	γₖ = min(αₖ/⟨F(x),F(x)⟩, γ)        (γₖ = γ when F(x) = 0)
//	y  = P(C, x, x − α·F(x), γₖ)
//	y ≈ x  ⇒  Converged
//	x' = P(C, x, y − α·F(x), γₖ)
//
// Convergence needs F Lipschitz-pseudomonotone with constant L and
// α < √(1−2γ)/L; that precondition is documented, never checked.
//
// InexactMethod — the adaptive scheme: a fixed tolerance
// γ = 0.9·min(1−ρ, 2−√3), an Armijo-style backtracking search for the
// smallest i ≥ 0 with
//
//	⟨F(x + σαⁱ(y−x)), y−x⟩ ≤ ρ·⟨F(x), y−x⟩,
//
// a steepest-descent step length λ = −⟨F(z), z−x⟩/⟨F(z),F(z)⟩ at the
// accepted z, and x' = P(C, x, x − λ·F(z), γ). The search is capped by
// MaxBacktrack; exhaustion surfaces ErrBacktrackExhausted instead of
// looping forever, and a (near-)zero ⟨F(z),F(z)⟩ follows the degeneracy
// rule on Options.
//
// Both solvers satisfy vip.Sequence: lazy, pull-based, one fully resolved
// outer step per Next. Each run resets its frankwolfe.StepCounter at the
// start; InnerSteps reports the nested conditional-gradient work done so
// far, for diagnostics only.
package extragrad
