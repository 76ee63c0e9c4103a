// Package frankwolfe implements a lazy conditional-gradient (Frank-Wolfe)
// minimizer of a differentiable convex objective over a compact convex
// set, driven by a linear-minimization oracle.
//
// 🚀 Why Frank-Wolfe?
//
//	Projection-free: each step needs only the oracle
//		s = argmax ⟨g, ·⟩ over the set   (g = −∇f at the iterate)
//	and moves x toward s by a bounded step λ ∈ [0,1]. The iterate stays
//	feasible by construction — a convex combination of feasible points —
//	which is exactly what an *inexact* projection engine needs: any prefix
//	of the sequence is a usable feasible answer.
//
// ✨ Shape of the API:
//
//   - Iterator — the resumable state (x, g, s, i); Advance() performs one
//     step, consumers pull as many as they want. The method never
//     terminates on its own; stopping is the consumer's predicate.
//   - Minimize — drives an Iterator until a Predicate holds, with an
//     iteration cap as the hardening guard.
//   - LinearOracle — adapts a convex.Supported set into the Oracle.
//   - StepCounter — injected telemetry, incremented once per step.
//
// The duality gap ⟨g, s−x⟩ is nonnegative at any feasible non-optimal x,
// vanishes at the optimum, and upper-bounds the suboptimality of f(x);
// Gap computes it and the default projection predicates are built on it.
//
// Gradients may be explicit or approximated by forward finite differences
// (step 1e-10) when Spec.Grad is nil. The default step rule is the
// classic λᵢ = 2/(i+1); the projection engine overrides it with an exact
// quadratic line search.
package frankwolfe
