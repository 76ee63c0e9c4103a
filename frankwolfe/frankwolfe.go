package frankwolfe

import (
	"slices"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
)

// fdStep is the forward-difference step used when no explicit gradient is
// supplied.
const fdStep = 1e-10

// Iterator — resumable conditional-gradient state.
//
// Invariant: x is always feasible for the oracle's set. x₀ must be
// feasible; every later iterate is the convex combination
// x + λ(s − x), λ ∈ [0,1], of two feasible points.
//
// Step i → i+1:
//
//	λᵢ   = step(xᵢ, sᵢ, i)
//	xᵢ₊₁ = xᵢ + λᵢ(sᵢ − xᵢ)
//	gᵢ₊₁ = −∇f(xᵢ₊₁)
//	sᵢ₊₁ = oracle(gᵢ₊₁)
//
// The iterator never stops on its own; callers consult X/G/S/I between
// Advance calls and stop pulling when their predicate holds.
type Iterator struct {
	f       Objective
	grad    Gradient
	oracle  Oracle
	step    StepRule
	counter *StepCounter

	x, g, s []float64
	i       int
}

// NewIterator initializes the state at x₀: g₁ = −∇f(x₀), s₁ = oracle(g₁),
// i = 1. The first emitted iterate is x₀ itself.
func NewIterator(f Objective, x0 []float64, oracle Oracle, spec Spec) (*Iterator, error) {
	if f == nil || len(x0) == 0 || oracle == nil {
		return nil, ErrBadSpec
	}

	grad := spec.Grad
	if grad == nil {
		grad = approxGradient(f)
	}
	step := spec.Step
	if step == nil {
		step = DecayStep
	}

	it := &Iterator{
		f:       f,
		grad:    grad,
		oracle:  oracle,
		step:    step,
		counter: spec.Counter,
		x:       slices.Clone(x0),
		g:       make([]float64, len(x0)),
		i:       1,
	}
	it.refresh()

	return it, nil
}

// X returns the current iterate, valid until the next Advance.
func (it *Iterator) X() []float64 { return it.x }

// G returns g = −∇f(x), valid until the next Advance.
func (it *Iterator) G() []float64 { return it.g }

// S returns the current oracle solution, valid until the next Advance.
func (it *Iterator) S() []float64 { return it.s }

// I returns the 1-based iteration index.
func (it *Iterator) I() int { return it.i }

// Advance performs one conditional-gradient step and bumps the telemetry
// counter.
func (it *Iterator) Advance() {
	lambda := it.step(it.x, it.s, it.i)
	for j := range it.x {
		it.x[j] += lambda * (it.s[j] - it.x[j])
	}
	it.i++
	it.refresh()
	it.counter.Inc()
}

// refresh recomputes g = −∇f(x) and s = oracle(g) for the current x.
func (it *Iterator) refresh() {
	it.grad(it.x, it.g)
	floats.Scale(-1, it.g)
	it.s = it.oracle(it.g)
}

// DecayStep is the classic open-loop rule λᵢ = 2/(i+1).
func DecayStep(_, _ []float64, i int) float64 {
	return 2 / float64(i+1)
}

// Gap returns the Frank-Wolfe duality gap ⟨g, s−x⟩: nonnegative at any
// feasible non-optimal x and a certified bound on f(x) − f(x*).
func Gap(x, g, s []float64) float64 {
	d := make([]float64, len(x))
	floats.SubTo(d, s, x)

	return floats.Dot(g, d)
}

// Minimize pulls iterates until pred(x, g, s, i) holds and returns that
// iterate (as a fresh copy) with its index. A predicate still false after
// maxIter steps surfaces ErrMaxIterations together with the last iterate.
func Minimize(f Objective, x0 []float64, oracle Oracle, spec Spec, pred Predicate, maxIter int) ([]float64, int, error) {
	if pred == nil {
		return nil, 0, ErrBadSpec
	}
	it, err := NewIterator(f, x0, oracle, spec)
	if err != nil {
		return nil, 0, err
	}

	for {
		if pred(it.x, it.g, it.s, it.i) {
			return slices.Clone(it.x), it.i, nil
		}
		if it.i >= maxIter {
			return slices.Clone(it.x), it.i, ErrMaxIterations
		}
		it.Advance()
	}
}

// approxGradient builds a forward finite-difference gradient of f.
func approxGradient(f Objective) Gradient {
	settings := &fd.Settings{Formula: fd.Forward, Step: fdStep}

	return func(x, grad []float64) {
		fd.Gradient(grad, f, x, settings)
	}
}
