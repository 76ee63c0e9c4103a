package projection

import (
	"errors"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/varineq/varineq/convex"
	"github.com/varineq/varineq/frankwolfe"
)

// Approx returns an approximate projection of y onto set.
//
// Order of resolution:
//  1. y ∈ set — returned unchanged, zero inner iterations.
//  2. set implements convex.Projector — its closed form, zero iterations.
//  3. otherwise the conditional-gradient engine minimizes ½‖x−y‖² with
//     exact line search, stopping at the first iterate accepted by the
//     predicate (default: duality gap below opts.Eps).
//
// Errors: ErrNeedSupport, ErrInfeasibleStart, ErrMaxIterations.
func Approx(y []float64, set convex.Set, opts Options) ([]float64, error) {
	if set.Contains(y) {
		return slices.Clone(y), nil
	}
	if p, ok := set.(convex.Projector); ok {
		return p.Project(y), nil
	}

	sup, ok := set.(convex.Supported)
	if !ok {
		return nil, ErrNeedSupport
	}

	start := opts.Start
	if start == nil {
		start = set.AnyPoint()
	}
	if !set.Contains(start) {
		return nil, ErrInfeasibleStart
	}

	pred := opts.Predicate
	if pred == nil {
		eps := opts.Eps
		pred = func(x, g, s []float64, _ int) bool {
			return gapDone(x, g, s, eps)
		}
	}

	x, _, err := frankwolfe.Minimize(
		squaredDistance(y),
		start,
		frankwolfe.LinearOracle(sup),
		frankwolfe.Spec{
			Grad:    residualGradient(y),
			Step:    exactLineSearch(y),
			Counter: opts.Counter,
		},
		pred,
		opts.MaxIter,
	)
	if err != nil {
		if errors.Is(err, frankwolfe.ErrMaxIterations) {
			return x, ErrMaxIterations
		}

		return nil, err
	}

	return x, nil
}

// gapDone accepts x once the duality gap ⟨g, s−x⟩ drops below eps. A
// non-positive gap means x is already the exact minimizer and is accepted
// regardless of eps (which may legitimately be zero).
func gapDone(x, g, s []float64, eps float64) bool {
	gap := frankwolfe.Gap(x, g, s)

	return gap <= 0 || gap < eps
}

// squaredDistance is the objective ½‖x−y‖².
func squaredDistance(y []float64) frankwolfe.Objective {
	return func(x []float64) float64 {
		d := floats.Distance(x, y, 2)

		return 0.5 * d * d
	}
}

// residualGradient writes ∇(½‖x−y‖²) = x − y.
func residualGradient(y []float64) frankwolfe.Gradient {
	return func(x, grad []float64) {
		floats.SubTo(grad, x, y)
	}
}

// exactLineSearch minimizes the quadratic objective on the segment [x, s]:
// λ = clamp(⟨y−x, s−x⟩ / ⟨s−x, s−x⟩, 0, 1). When s = x any λ is a no-op
// and 0 is returned.
func exactLineSearch(y []float64) frankwolfe.StepRule {
	return func(x, s []float64, _ int) float64 {
		d := make([]float64, len(x))
		floats.SubTo(d, s, x)
		den := floats.Dot(d, d)
		if den == 0 {
			return 0
		}
		r := make([]float64, len(x))
		floats.SubTo(r, y, x)

		return min(max(floats.Dot(r, d)/den, 0), 1)
	}
}
