package extragrad

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/varineq/varineq/frankwolfe"
	"github.com/varineq/varineq/projection"
	"github.com/varineq/varineq/vip"
)

// InexactMethod is the adaptive-step scheme: Armijo backtracking toward
// the look-ahead projection, a steepest-descent step length, and a fixed
// projection tolerance γ = 0.9·min(1−ρ, 2−√3). Satisfies vip.Sequence.
type InexactMethod struct {
	prob    *vip.Problem
	opts    InexactOptions
	gamma   float64
	counter *frankwolfe.StepCounter

	x       []float64
	k       int
	started bool
	done    bool
	err     error
}

// NewInexactMethod builds a run of the adaptive scheme over prob. The
// tolerance γ is derived from Rho here, once per run.
func NewInexactMethod(prob *vip.Problem, opts InexactOptions) (*InexactMethod, error) {
	if prob == nil {
		return nil, ErrNilProblem
	}
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadOptions, err)
	}

	counter := opts.Counter
	if counter == nil {
		counter = new(frankwolfe.StepCounter)
	}

	return &InexactMethod{
		prob:    prob,
		opts:    opts,
		gamma:   0.9 * min(1-opts.Rho, 2-math.Sqrt(3)),
		counter: counter,
	}, nil
}

// X returns the current iterate, valid until the next call to Next.
func (m *InexactMethod) X() []float64 { return m.x }

// K returns the 1-based index of the current iterate.
func (m *InexactMethod) K() int { return m.k }

// Err reports a failed run: ErrBacktrackExhausted, ErrDegenerateOperator,
// or a projection error. Nil while running and after convergence.
func (m *InexactMethod) Err() error { return m.err }

// Gamma returns the derived projection tolerance of this run.
func (m *InexactMethod) Gamma() float64 { return m.gamma }

// InnerSteps returns the nested conditional-gradient steps so far.
func (m *InexactMethod) InnerSteps() int64 { return m.counter.Count() }

// Next advances the run by one outer step: look-ahead projection, Armijo
// backtracking, steepest-descent step, final projection.
func (m *InexactMethod) Next() bool {
	if m.done || m.err != nil {
		return false
	}

	if !m.started {
		m.started = true
		m.counter.Reset()
		if err := m.start(); err != nil {
			m.err = err

			return false
		}

		return true
	}

	set := m.prob.Set()
	fx := m.prob.Eval(m.x)

	popts := projection.DefaultOptions()
	popts.Start = slices.Clone(m.x)
	popts.MaxIter = m.opts.MaxProj
	popts.Counter = m.counter

	// y = P(C, x, x − β·F(x), γ).
	target := slices.Clone(m.x)
	floats.AddScaled(target, -m.opts.Beta, fx)
	y, err := projection.Inexact(set, m.x, target, m.gamma, popts)
	if err != nil {
		m.err = err

		return false
	}

	if same(y, m.x, m.opts.EqualTol) {
		m.done = true

		return false
	}

	dir := make([]float64, len(m.x)) // y − x
	floats.SubTo(dir, y, m.x)

	z, err := m.backtrack(fx, dir)
	if err != nil {
		m.err = err

		return false
	}

	fz := m.prob.Eval(z)
	dz := floats.Dot(fz, fz)
	if dz == 0 {
		// F(z) = 0 certifies z as a solution: ⟨F(z), s−z⟩ = 0 ≥ 0 for all
		// s ∈ C. Emit it as the final iterate.
		m.x = z
		m.k++
		m.done = true

		return true
	}
	if dz < degenerateTol {
		m.err = ErrDegenerateOperator

		return false
	}

	// Steepest-descent length λ = −⟨F(z), z−x⟩ / ⟨F(z),F(z)⟩, then
	// x' = P(C, x, x − λ·F(z), γ).
	diff := make([]float64, len(m.x)) // z − x
	floats.SubTo(diff, z, m.x)
	lambda := -floats.Dot(fz, diff) / dz

	target = slices.Clone(m.x)
	floats.AddScaled(target, -lambda, fz)
	x, err := projection.Inexact(set, m.x, target, m.gamma, popts)
	if err != nil {
		m.err = err

		return false
	}

	m.x = x
	m.k++

	return true
}

// backtrack finds the smallest i ≥ 0 with
// ⟨F(x + σαⁱ·dir), dir⟩ ≤ ρ·⟨F(x), dir⟩ and returns z = x + σαⁱ·dir.
// The search is bounded by MaxBacktrack.
func (m *InexactMethod) backtrack(fx, dir []float64) ([]float64, error) {
	rhs := m.opts.Rho * floats.Dot(fx, dir)
	t := m.opts.Sigma
	z := make([]float64, len(m.x))

	for i := 0; i <= m.opts.MaxBacktrack; i++ {
		copy(z, m.x)
		floats.AddScaled(z, t, dir)
		if floats.Dot(m.prob.Eval(z), dir) <= rhs {
			return z, nil
		}
		t *= m.opts.Alpha
	}

	return nil, ErrBacktrackExhausted
}

func (m *InexactMethod) start() error {
	if m.opts.Start != nil {
		if !m.prob.Set().Contains(m.opts.Start) {
			return ErrInfeasibleStart
		}
		m.x = slices.Clone(m.opts.Start)
	} else {
		m.x = m.prob.Set().AnyPoint()
	}
	m.k = 1

	return nil
}

var _ vip.Sequence = (*InexactMethod)(nil)
