package frankwolfe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varineq/varineq/convex"
	"github.com/varineq/varineq/frankwolfe"
)

// quadratic returns ½‖x−y‖² and its gradient for a fixed target y.
func quadratic(y []float64) (frankwolfe.Objective, frankwolfe.Gradient) {
	f := func(x []float64) float64 {
		sum := 0.0
		for i := range x {
			d := x[i] - y[i]
			sum += d * d
		}

		return 0.5 * sum
	}
	grad := func(x, g []float64) {
		for i := range x {
			g[i] = x[i] - y[i]
		}
	}

	return f, grad
}

// TestNewIterator_BadSpec verifies the constructor sentinel.
func TestNewIterator_BadSpec(t *testing.T) {
	f, _ := quadratic([]float64{0})
	oracle := func(dir []float64) []float64 { return []float64{0} }

	_, err := frankwolfe.NewIterator(nil, []float64{0}, oracle, frankwolfe.Spec{})
	assert.ErrorIs(t, err, frankwolfe.ErrBadSpec, "nil objective")

	_, err = frankwolfe.NewIterator(f, nil, oracle, frankwolfe.Spec{})
	assert.ErrorIs(t, err, frankwolfe.ErrBadSpec, "empty start")

	_, err = frankwolfe.NewIterator(f, []float64{0}, nil, frankwolfe.Spec{})
	assert.ErrorIs(t, err, frankwolfe.ErrBadSpec, "nil oracle")
}

// TestMinimize_NilPredicate verifies Minimize rejects a missing stopping
// rule instead of panicking on the first iterate.
func TestMinimize_NilPredicate(t *testing.T) {
	f, _ := quadratic([]float64{0})
	oracle := func(dir []float64) []float64 { return []float64{0} }

	x, i, err := frankwolfe.Minimize(f, []float64{0}, oracle, frankwolfe.Spec{}, nil, 10)
	assert.ErrorIs(t, err, frankwolfe.ErrBadSpec)
	assert.Nil(t, x)
	assert.Zero(t, i)
}

// TestDecayStep pins the open-loop rule λᵢ = 2/(i+1).
func TestDecayStep(t *testing.T) {
	assert.Equal(t, 1.0, frankwolfe.DecayStep(nil, nil, 1))
	assert.Equal(t, 0.5, frankwolfe.DecayStep(nil, nil, 3))
	assert.Equal(t, 0.2, frankwolfe.DecayStep(nil, nil, 9))
}

// TestGap computes ⟨g, s−x⟩.
func TestGap(t *testing.T) {
	got := frankwolfe.Gap([]float64{1, 0}, []float64{2, -1}, []float64{0, 3})
	// ⟨(2,−1), (−1,3)⟩ = −2 − 3
	assert.Equal(t, -5.0, got)
}

// TestIterator_FirstEmitIsStart checks initialization: the state at i=1
// holds x₀, g₁ = −∇f(x₀), s₁ = oracle(g₁), before any Advance.
func TestIterator_FirstEmitIsStart(t *testing.T) {
	box, err := convex.NewBox([]float64{0, 0}, []float64{1, 1})
	require.NoError(t, err)

	f, grad := quadratic([]float64{2, 0})
	it, err := frankwolfe.NewIterator(f, []float64{0.5, 0.5}, frankwolfe.LinearOracle(box), frankwolfe.Spec{Grad: grad})
	require.NoError(t, err)

	assert.Equal(t, 1, it.I())
	assert.Equal(t, []float64{0.5, 0.5}, it.X())
	assert.Equal(t, []float64{1.5, -0.5}, it.G(), "g = y − x₀")
	assert.Equal(t, []float64{1, 0}, it.S(), "box support of g")
}

// TestMinimize_ConvergesOnBox minimizes ½‖x−(2,2)‖² over [0,1]²; the
// minimizer is the corner (1,1) and the duality gap certifies it.
func TestMinimize_ConvergesOnBox(t *testing.T) {
	box, err := convex.NewBox([]float64{0, 0}, []float64{1, 1})
	require.NoError(t, err)

	f, grad := quadratic([]float64{2, 2})
	pred := func(x, g, s []float64, i int) bool {
		return frankwolfe.Gap(x, g, s) < 1e-3
	}

	x, iters, err := frankwolfe.Minimize(f, []float64{0.5, 0.5}, frankwolfe.LinearOracle(box),
		frankwolfe.Spec{Grad: grad}, pred, 10000)
	require.NoError(t, err)
	assert.Greater(t, iters, 1)
	assert.InDeltaSlice(t, []float64{1, 1}, x, 1e-2)
	assert.True(t, box.Contains(x), "iterates stay feasible by construction")
}

// TestMinimize_FiniteDifferenceGradient exercises the fd fallback: same
// problem, no explicit gradient.
func TestMinimize_FiniteDifferenceGradient(t *testing.T) {
	box, err := convex.NewBox([]float64{0, 0}, []float64{1, 1})
	require.NoError(t, err)

	f, _ := quadratic([]float64{2, 2})
	pred := func(x, g, s []float64, i int) bool {
		return frankwolfe.Gap(x, g, s) < 1e-3
	}

	x, _, err := frankwolfe.Minimize(f, []float64{0.5, 0.5}, frankwolfe.LinearOracle(box),
		frankwolfe.Spec{}, pred, 10000)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 1}, x, 1e-2)
}

// TestMinimize_MaxIterations surfaces the cap together with the last
// iterate.
func TestMinimize_MaxIterations(t *testing.T) {
	box, err := convex.NewBox([]float64{0}, []float64{1})
	require.NoError(t, err)

	f, grad := quadratic([]float64{5})
	never := func(x, g, s []float64, i int) bool { return false }

	x, iters, err := frankwolfe.Minimize(f, []float64{0}, frankwolfe.LinearOracle(box),
		frankwolfe.Spec{Grad: grad}, never, 3)
	assert.ErrorIs(t, err, frankwolfe.ErrMaxIterations)
	assert.Equal(t, 3, iters)
	assert.NotNil(t, x, "last iterate accompanies the error")
}

// TestStepCounter covers lifecycle and nil safety.
func TestStepCounter(t *testing.T) {
	var c frankwolfe.StepCounter
	assert.EqualValues(t, 0, c.Count())

	c.Inc()
	c.Inc()
	assert.EqualValues(t, 2, c.Count())

	c.Reset()
	assert.EqualValues(t, 0, c.Count())

	var nilCounter *frankwolfe.StepCounter
	assert.NotPanics(t, func() {
		nilCounter.Inc()
		nilCounter.Reset()
	})
	assert.EqualValues(t, 0, nilCounter.Count())
}

// TestIterator_CountsSteps: one increment per Advance, none at init.
func TestIterator_CountsSteps(t *testing.T) {
	box, err := convex.NewBox([]float64{0, 0}, []float64{1, 1})
	require.NoError(t, err)

	f, grad := quadratic([]float64{2, 2})
	counter := new(frankwolfe.StepCounter)
	it, err := frankwolfe.NewIterator(f, []float64{0.5, 0.5}, frankwolfe.LinearOracle(box),
		frankwolfe.Spec{Grad: grad, Counter: counter})
	require.NoError(t, err)

	assert.EqualValues(t, 0, counter.Count(), "initialization is not a step")
	for i := 0; i < 7; i++ {
		it.Advance()
	}
	assert.EqualValues(t, 7, counter.Count())
	assert.Equal(t, 8, it.I())
}
