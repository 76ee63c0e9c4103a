package vip

import (
	"errors"
	"math"

	"github.com/varineq/varineq/convex"
)

// ErrNilSet is returned by New when no feasible set is supplied.
var ErrNilSet = errors.New("vip: nil feasible set")

// ErrNilOperator is returned by New when no operator is supplied.
var ErrNilOperator = errors.New("vip: nil operator")

// Operator is the map F: ℝⁿ → ℝⁿ of a variational inequality. It must not
// retain or mutate its argument.
type Operator func(x []float64) []float64

// Problem is an immutable VIP descriptor: find x* ∈ C with
// ⟨F(x*), x − x*⟩ ≥ 0 for all x ∈ C.
type Problem struct {
	set       convex.Set
	op        Operator
	lipschitz float64
}

// Option configures a Problem at construction.
type Option func(*Problem)

// WithLipschitz records a Lipschitz constant for F. It documents a
// convergence precondition for the solvers (e.g. α < √(1−2γ)/L for the
// basic extragradient method) and is never checked at runtime.
func WithLipschitz(l float64) Option {
	return func(p *Problem) { p.lipschitz = l }
}

// New builds a Problem over set with operator f. Without WithLipschitz
// the constant defaults to +Inf.
func New(set convex.Set, f Operator, opts ...Option) (*Problem, error) {
	if set == nil {
		return nil, ErrNilSet
	}
	if f == nil {
		return nil, ErrNilOperator
	}

	p := &Problem{set: set, op: f, lipschitz: math.Inf(1)}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Set returns the feasible set C.
func (p *Problem) Set() convex.Set { return p.set }

// Eval evaluates F at x.
func (p *Problem) Eval(x []float64) []float64 { return p.op(x) }

// Lipschitz returns the recorded Lipschitz constant of F (+Inf when
// unknown).
func (p *Problem) Lipschitz() float64 { return p.lipschitz }
