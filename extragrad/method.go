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

// Method is the basic inexact extragradient run: a resumable state
// machine Start → Running → Converged satisfying vip.Sequence. The first
// Next emits x₁ (Options.Start or an arbitrary feasible point) and resets
// the step counter; each later Next resolves one full outer step,
// including both nested projections.
type Method struct {
	prob    *vip.Problem
	opts    Options
	counter *frankwolfe.StepCounter

	x       []float64
	k       int
	started bool
	done    bool
	err     error
}

// NewMethod builds a run of the basic scheme over prob. Nothing is
// computed until the first Next.
func NewMethod(prob *vip.Problem, opts Options) (*Method, error) {
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

	return &Method{prob: prob, opts: opts, counter: counter}, nil
}

// X returns the current iterate, valid until the next call to Next.
func (m *Method) X() []float64 { return m.x }

// K returns the 1-based index of the current iterate.
func (m *Method) K() int { return m.k }

// Err reports a failed run: nil while running and after convergence.
func (m *Method) Err() error { return m.err }

// InnerSteps returns the conditional-gradient steps spent so far in
// nested projections. Diagnostics only.
func (m *Method) InnerSteps() int64 { return m.counter.Count() }

// Next advances the run by one outer step. It returns false once the run
// converged (successive projections indistinguishable within EqualTol) or
// failed (see Err).
func (m *Method) Next() bool {
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

	// Guard the tolerance against large operator norms. ⟨Fx,Fx⟩ = 0 makes
	// the quotient +Inf, so the min is just Gamma — no division needed.
	gk := m.opts.Gamma
	if d := floats.Dot(fx, fx); d > 0 {
		gk = min(math.Pow(float64(m.k+1), -2.1)/d, m.opts.Gamma)
	}

	popts := projection.DefaultOptions()
	popts.Start = slices.Clone(m.x)
	popts.MaxIter = m.opts.MaxProj
	popts.Counter = m.counter

	// Look-ahead projection: y = P(C, x, x − α·F(x), γₖ).
	target := slices.Clone(m.x)
	floats.AddScaled(target, -m.opts.Alpha, fx)
	y, err := projection.Inexact(set, m.x, target, gk, popts)
	if err != nil {
		m.err = err

		return false
	}

	if same(y, m.x, m.opts.EqualTol) {
		m.done = true

		return false
	}

	// Main step: x' = P(C, x, y − α·F(x), γₖ).
	target = slices.Clone(y)
	floats.AddScaled(target, -m.opts.Alpha, fx)
	x, err := projection.Inexact(set, m.x, target, gk, popts)
	if err != nil {
		m.err = err

		return false
	}

	m.x = x
	m.k++

	return true
}

func (m *Method) start() error {
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

var _ vip.Sequence = (*Method)(nil)
