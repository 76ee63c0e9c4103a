// Package convex provides the feasible-set collaborators consumed by the
// VIP solvers: membership tests, support functions, and — for the two
// affine shapes — closed-form exact projection.
//
// Three capabilities, three interfaces:
//
//   - Set        — Dim, Contains, AnyPoint: the minimum every solver needs.
//   - Supported  — Set + Support(dir), the argmax of ⟨dir,·⟩ over the set.
//     Only compact sets can offer it; it powers the linear-minimization
//     oracle of the Frank-Wolfe engine.
//   - Projector  — Set + Project(y), an exact closed-form projection.
//     Sets that implement it let the projection engine skip iteration
//     entirely.
//
// Concrete shapes:
//
//   - Ball       — ‖x−c‖ ≤ r       (Supported + Projector)
//   - Box        — l ≤ x ≤ u       (Supported + Projector)
//   - Simplex    — x ≥ 0, Σx = 1   (Supported; projection left to the
//     iterative engine on purpose)
//   - Polytope   — conv{v₁,…,vₘ}   (Supported; membership via a
//     zero-objective simplex solve over the hull coefficients)
//   - Halfspace  — ⟨a,x⟩ ≤ b       (Projector only; unbounded)
//   - Hyperplane — ⟨a,x⟩ = b       (Projector only; unbounded)
//
// Membership tests use an absolute slack of Tol (1e-9): iterative
// consumers land within floating error of the boundary and must still be
// counted feasible. Methods panic on dimension mismatch, matching the
// gonum/floats primitives they are built on; constructors validate shape
// data and return sentinel errors from types.go.
package convex
