package extragrad

import (
	"errors"

	"gonum.org/v1/gonum/floats"

	"github.com/varineq/varineq/frankwolfe"
)

// ErrNilProblem is returned by the constructors when no problem is given.
var ErrNilProblem = errors.New("extragrad: nil problem")

// ErrBadOptions is returned when option validation fails; the cause is
// attached via %w.
var ErrBadOptions = errors.New("extragrad: bad options")

// ErrInfeasibleStart is returned when Options.Start lies outside the
// feasible set.
var ErrInfeasibleStart = errors.New("extragrad: start point not in feasible set")

// ErrBacktrackExhausted is surfaced by InexactMethod when no i ≤
// MaxBacktrack satisfies the Armijo condition. The source scheme loops
// forever here; we stop in a failed state instead.
var ErrBacktrackExhausted = errors.New("extragrad: backtracking search exhausted")

// ErrDegenerateOperator is surfaced when ⟨F(z),F(z)⟩ is nonzero yet too
// small to divide by. An exactly zero value is not an error: F(z) = 0
// certifies z as a VIP solution and the run converges on it.
var ErrDegenerateOperator = errors.New("extragrad: near-zero operator value in step-length denominator")

// degenerateTol: ⟨F,F⟩ below this (and nonzero) is considered numerically
// degenerate; ‖F‖ ≈ 1e-12.
const degenerateTol = 1e-24

// Options configures the basic extragradient Method.
type Options struct {
	// Alpha is the fixed extragradient step α. Convergence requires
	// α < √(1−2γ)/L for the recorded Lipschitz constant L.
	Alpha float64

	// Gamma is the ceiling of the per-step inexactness tolerance γₖ.
	Gamma float64

	// EqualTol is the per-element tolerance of the convergence test
	// between successive projections. Zero demands exact equality.
	EqualTol float64

	// MaxProj caps the inner conditional-gradient steps of each
	// projection call.
	MaxProj int

	// Start overrides the arbitrary feasible starting point x₁.
	Start []float64

	// Counter receives every nested conditional-gradient step. Nil gets a
	// private counter, still readable through InnerSteps.
	Counter *frankwolfe.StepCounter
}

// DefaultOptions returns the reference parameters: α = 0.1, γ = 0.05,
// tolerant equality at 1e-9, 10000 inner steps per projection.
func DefaultOptions() Options {
	return Options{Alpha: 0.1, Gamma: 0.05, EqualTol: 1e-9, MaxProj: 10000}
}

func (o *Options) validate() error {
	switch {
	case o.Alpha <= 0:
		return errors.New("Alpha must be positive")
	case o.Gamma <= 0:
		return errors.New("Gamma must be positive")
	case o.EqualTol < 0:
		return errors.New("EqualTol must not be negative")
	case o.MaxProj <= 0:
		return errors.New("MaxProj must be positive")
	}

	return nil
}

// InexactOptions configures InexactMethod.
type InexactOptions struct {
	// Beta scales the look-ahead projection target x − β·F(x).
	Beta float64

	// Sigma is the initial backtracking step scale σ ∈ (0, 1].
	Sigma float64

	// Rho is the Armijo acceptance factor ρ ∈ (0, 1); it also fixes the
	// projection tolerance γ = 0.9·min(1−ρ, 2−√3).
	Rho float64

	// Alpha is the backtracking contraction factor α ∈ (0, 1).
	Alpha float64

	// MaxBacktrack caps the Armijo search exponent i.
	MaxBacktrack int

	// EqualTol is the convergence equality tolerance. The reference
	// scheme uses exact equality here, hence the zero default.
	EqualTol float64

	// MaxProj caps the inner conditional-gradient steps per projection.
	MaxProj int

	// Start overrides the arbitrary feasible starting point x₁.
	Start []float64

	// Counter as in Options.
	Counter *frankwolfe.StepCounter
}

// DefaultInexactOptions returns the reference parameters:
// β = 1, σ = 1, ρ = 0.5, α = 0.5, backtracking capped at 64.
func DefaultInexactOptions() InexactOptions {
	return InexactOptions{Beta: 1, Sigma: 1, Rho: 0.5, Alpha: 0.5, MaxBacktrack: 64, MaxProj: 10000}
}

func (o *InexactOptions) validate() error {
	switch {
	case o.Beta <= 0:
		return errors.New("Beta must be positive")
	case o.Sigma <= 0 || o.Sigma > 1:
		return errors.New("Sigma must be in (0, 1]")
	case o.Rho <= 0 || o.Rho >= 1:
		return errors.New("Rho must be in (0, 1)")
	case o.Alpha <= 0 || o.Alpha >= 1:
		return errors.New("Alpha must be in (0, 1)")
	case o.MaxBacktrack <= 0:
		return errors.New("MaxBacktrack must be positive")
	case o.EqualTol < 0:
		return errors.New("EqualTol must not be negative")
	case o.MaxProj <= 0:
		return errors.New("MaxProj must be positive")
	}

	return nil
}

// same compares successive projections: exact equality when tol is zero,
// element-wise approximate equality otherwise.
func same(a, b []float64, tol float64) bool {
	if tol == 0 {
		return floats.Equal(a, b)
	}

	return floats.EqualApprox(a, b, tol)
}
