// Package varineq is a toolbox for solving Variational Inequality
// Problems (VIPs) with first-order methods that tolerate inexact
// projections onto the feasible set.
//
// 🚀 What is a VIP?
//
//	Given an operator F: ℝⁿ→ℝⁿ and a closed convex set C, find x* ∈ C with
//		⟨F(x*), x − x*⟩ ≥ 0   for all x ∈ C.
//	Constrained optimization, saddle-point problems, and many equilibrium
//	models are VIPs in disguise. The expensive part of every projection
//	method is the projection itself: for a general convex C it is an
//	optimization problem of its own. varineq replaces it with a cheap
//	inexact projection whose tolerance adapts to the current iterate.
//
// ✨ What's inside?
//
//   - convex/      — the feasible-set collaborators: balls, boxes,
//     simplexes, polytopes (support functions) and halfspaces/hyperplanes
//     (closed-form exact projection)
//   - frankwolfe/  — a lazy conditional-gradient (Frank-Wolfe) minimizer
//     driven by a linear-minimization oracle
//   - projection/  — the approximate feasible-projection engine and the
//     inexact projection oracle P_C^γ(u, v)
//   - extragrad/   — the outer solvers: a basic extragradient method and
//     an adaptive-step inexact extragradient method with Armijo
//     backtracking
//   - vip/         — the problem descriptor, the lazy iterate sequence
//     protocol, and non-materializing Take/Enumerate helpers
//
// ⚙️ Quick start:
//
//	set, _ := convex.NewBall([]float64{0, 0}, 1)
//	prob, _ := vip.New(set, func(x []float64) []float64 {
//		return []float64{x[0], x[1]} // F = identity
//	})
//	run, _ := extragrad.NewMethod(prob, extragrad.DefaultOptions())
//	for _, x := range vip.Take(run, 50) {
//		fmt.Println(x)
//	}
//
// Everything is sequential and pull-based: an outer solver computes
// nothing beyond the iterate you ask for, and dropping the sequence
// cancels the run with no cleanup.
//
// See examples/ for runnable demos and cmd/vipsolve for a small CLI.
package varineq
