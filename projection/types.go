package projection

import (
	"errors"
	"fmt"

	"github.com/varineq/varineq/frankwolfe"
)

// ErrNeedSupport is returned when the target set has neither a
// closed-form projection nor a support function.
var ErrNeedSupport = errors.New("projection: set offers no support function")

// ErrInfeasibleStart is returned when the starting point (supplied or
// produced by AnyPoint) is not in the set.
var ErrInfeasibleStart = errors.New("projection: starting point not in set")

// ErrMaxIterations wraps the inner solver's cap error; errors.Is matches
// either sentinel.
var ErrMaxIterations = fmt.Errorf("projection: %w", frankwolfe.ErrMaxIterations)

// Options configures one projection run. The zero value is not usable;
// start from DefaultOptions.
type Options struct {
	// Start is the initial feasible iterate. Nil selects set.AnyPoint().
	Start []float64

	// Eps is the duality-gap tolerance of the default stopping predicate
	// ⟨g, s−x⟩ < Eps. Ignored when Predicate is set.
	Eps float64

	// Predicate overrides the default gap test entirely.
	Predicate frankwolfe.Predicate

	// MaxIter caps the inner conditional-gradient steps.
	MaxIter int

	// Counter, when non-nil, receives one increment per inner step.
	Counter *frankwolfe.StepCounter
}

// DefaultOptions returns the standard knobs: gap tolerance 1e-8, cap
// 10000 inner steps.
func DefaultOptions() Options {
	return Options{Eps: 1e-8, MaxIter: 10000}
}
