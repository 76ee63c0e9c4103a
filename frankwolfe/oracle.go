package frankwolfe

import "github.com/varineq/varineq/convex"

// LinearOracle adapts a compact convex set's support function into the
// solver's linear-minimization oracle: oracle(g) maximizes ⟨g, ·⟩ over
// the set, which for g = −∇f minimizes the linearized objective.
// Tie-breaking among maximizers belongs to the set implementation.
func LinearOracle(set convex.Supported) Oracle {
	return set.Support
}
