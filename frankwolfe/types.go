package frankwolfe

import (
	"errors"
	"sync/atomic"
)

// ErrBadSpec is returned when the objective, starting point, or oracle is
// missing, or when Minimize is handed a nil stopping predicate.
var ErrBadSpec = errors.New("frankwolfe: objective, start and oracle are required")

// ErrMaxIterations is returned by Minimize when the stopping predicate is
// still false after the iteration cap.
var ErrMaxIterations = errors.New("frankwolfe: iteration cap exceeded")

// Objective evaluates the function being minimized.
type Objective func(x []float64) float64

// Gradient writes ∇f(x) into grad (len(grad) == len(x)).
type Gradient func(x, grad []float64)

// Oracle solves the linear subproblem: it returns a point of the feasible
// set maximizing ⟨dir, ·⟩.
type Oracle func(dir []float64) []float64

// StepRule chooses the step length λ ∈ [0,1] for iteration i, given the
// current iterate x and the oracle solution s.
type StepRule func(x, s []float64, i int) float64

// Predicate decides when a consumer stops pulling iterates. It sees the
// current iterate x, the direction g = −∇f(x), the oracle solution s, and
// the 1-based iteration index i.
type Predicate func(x, g, s []float64, i int) bool

// StepCounter counts conditional-gradient steps across the nested solver
// calls of one outer run. It is diagnostics only — no algorithmic meaning.
// All methods are safe on a nil receiver, and the count is atomic so that
// a concurrent consumer cannot corrupt it.
type StepCounter struct {
	n atomic.Int64
}

// Reset zeroes the counter. Outer solvers call it once at the start of a
// run.
func (c *StepCounter) Reset() {
	if c != nil {
		c.n.Store(0)
	}
}

// Inc adds one step.
func (c *StepCounter) Inc() {
	if c != nil {
		c.n.Add(1)
	}
}

// Count returns the number of steps since the last Reset.
func (c *StepCounter) Count() int64 {
	if c == nil {
		return 0
	}

	return c.n.Load()
}

// Spec carries the optional knobs of the solver. The zero value is valid:
// finite-difference gradient, 2/(i+1) step rule, no counter.
type Spec struct {
	// Grad is the explicit gradient of the objective. Nil selects a
	// forward finite-difference approximation with step 1e-10.
	Grad Gradient

	// Step overrides the step-size rule. Nil selects λᵢ = 2/(i+1).
	Step StepRule

	// Counter, when non-nil, is incremented once per completed step.
	Counter *StepCounter
}
