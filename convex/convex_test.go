package convex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varineq/varineq/convex"
)

// TestNewBall_Validation verifies constructor sentinels.
func TestNewBall_Validation(t *testing.T) {
	_, err := convex.NewBall(nil, 1)
	assert.ErrorIs(t, err, convex.ErrDimensionMismatch, "empty center must error")

	_, err = convex.NewBall([]float64{0, 0}, -1)
	assert.ErrorIs(t, err, convex.ErrDegenerateSet, "negative radius must error")

	_, err = convex.NewBall([]float64{0, 0}, 0)
	assert.NoError(t, err, "zero radius (a point) is allowed")
}

// TestBall_Geometry covers Contains, Support and Project on the unit ball.
func TestBall_Geometry(t *testing.T) {
	b, err := convex.NewBall([]float64{0, 0}, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, b.Dim())
	assert.True(t, b.Contains([]float64{0.6, 0.8}), "boundary point is feasible")
	assert.False(t, b.Contains([]float64{1, 1}), "outside point is infeasible")
	assert.True(t, b.Contains(b.AnyPoint()), "AnyPoint must be feasible")

	// Support along (0, 2) is the north pole regardless of magnitude.
	assert.InDeltaSlice(t, []float64{0, 1}, b.Support([]float64{0, 2}), 1e-12)
	// Zero direction: every point maximizes; the center is returned.
	assert.Equal(t, []float64{0, 0}, b.Support([]float64{0, 0}))

	// Radial projection of an outside point.
	assert.InDeltaSlice(t, []float64{0.6, 0.8}, b.Project([]float64{3, 4}), 1e-12)
	// Inside points project to themselves.
	assert.Equal(t, []float64{0.1, -0.2}, b.Project([]float64{0.1, -0.2}))
}

// TestBox_Geometry covers the box capabilities.
func TestBox_Geometry(t *testing.T) {
	_, err := convex.NewBox([]float64{0}, []float64{1, 2})
	assert.ErrorIs(t, err, convex.ErrDimensionMismatch)

	_, err = convex.NewBox([]float64{2}, []float64{1})
	assert.ErrorIs(t, err, convex.ErrDegenerateSet, "crossed bounds must error")

	b, err := convex.NewBox([]float64{-1, 0}, []float64{1, 2})
	require.NoError(t, err)

	assert.True(t, b.Contains([]float64{1, 2}), "corner is feasible")
	assert.False(t, b.Contains([]float64{1.5, 1}))
	assert.Equal(t, []float64{0, 1}, b.AnyPoint(), "midpoint")

	assert.Equal(t, []float64{1, 0}, b.Support([]float64{3, -1}))
	assert.Equal(t, []float64{-1, 0}, b.Support([]float64{-1, 0}), "zero component ties toward lo")

	assert.Equal(t, []float64{1, 0}, b.Project([]float64{5, -7}), "clamp both coordinates")
	assert.Equal(t, []float64{0.5, 1}, b.Project([]float64{0.5, 1}), "feasible unchanged")
}

// TestSimplex_Geometry covers the standard simplex.
func TestSimplex_Geometry(t *testing.T) {
	_, err := convex.NewSimplex(0)
	assert.ErrorIs(t, err, convex.ErrDegenerateSet)

	s, err := convex.NewSimplex(3)
	require.NoError(t, err)

	assert.True(t, s.Contains([]float64{0.2, 0.3, 0.5}))
	assert.False(t, s.Contains([]float64{0.5, 0.5, 0.5}), "sum 1.5 is outside")
	assert.False(t, s.Contains([]float64{1.2, -0.2, 0}), "negative coordinate is outside")
	assert.True(t, s.Contains(s.AnyPoint()), "barycenter is feasible")

	assert.Equal(t, []float64{0, 1, 0}, s.Support([]float64{1, 5, 3}), "vertex of largest component")
	assert.Equal(t, []float64{1, 0, 0}, s.Support([]float64{2, 2, 1}), "lowest index wins ties")
}

// TestNewPolytope_Validation verifies constructor sentinels.
func TestNewPolytope_Validation(t *testing.T) {
	_, err := convex.NewPolytope(nil)
	assert.ErrorIs(t, err, convex.ErrDimensionMismatch, "empty vertex list must error")

	_, err = convex.NewPolytope([][]float64{{}})
	assert.ErrorIs(t, err, convex.ErrDimensionMismatch, "zero-dimensional vertex must error")

	_, err = convex.NewPolytope([][]float64{{0, 0}, {1}})
	assert.ErrorIs(t, err, convex.ErrDimensionMismatch, "ragged vertices must error")

	_, err = convex.NewPolytope([][]float64{{1, 2}})
	assert.NoError(t, err, "a single vertex (a point) is allowed")
}

// TestPolytope_Geometry covers the hull of the unit square.
func TestPolytope_Geometry(t *testing.T) {
	p, err := convex.NewPolytope([][]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}})
	require.NoError(t, err)

	assert.Equal(t, 2, p.Dim())
	assert.Equal(t, []float64{0.5, 0.5}, p.AnyPoint(), "vertex barycenter")

	assert.True(t, p.Contains([]float64{0.25, 0.75}), "interior point is feasible")
	assert.True(t, p.Contains([]float64{1, 1}), "vertex is feasible")
	assert.False(t, p.Contains([]float64{1.5, 0.5}), "outside point is infeasible")
	assert.True(t, p.Contains(p.AnyPoint()), "AnyPoint must be feasible")

	assert.Equal(t, []float64{1, 1}, p.Support([]float64{2, 1}), "vertex of largest inner product")
	assert.Equal(t, []float64{0, 0}, p.Support([]float64{-1, -1}))
	assert.Equal(t, []float64{1, 0}, p.Support([]float64{1, 0}), "lowest index wins ties")
}

// TestHalfspace_ExactProjection pins the closed-form formula on
// C = {x ∈ ℝ² : x₁ ≥ 0}, i.e. a = (−1, 0), b = 0.
func TestHalfspace_ExactProjection(t *testing.T) {
	_, err := convex.NewHalfspace([]float64{0, 0}, 1)
	assert.ErrorIs(t, err, convex.ErrDegenerateSet, "zero normal must error")

	h, err := convex.NewHalfspace([]float64{-1, 0}, 0)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 3}, h.Project([]float64{-2, 3}), "infeasible point lands on the boundary")
	assert.Equal(t, []float64{1, 1}, h.Project([]float64{1, 1}), "feasible point unchanged")
	assert.True(t, h.Contains(h.AnyPoint()))

	// Non-unit normal exercises the ‖a‖² denominator.
	h2, err := convex.NewHalfspace([]float64{2, 0}, 2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 5}, h2.Project([]float64{4, 5}), 1e-12)
}

// TestHyperplane_ExactProjection covers the affine equality shape.
func TestHyperplane_ExactProjection(t *testing.T) {
	h, err := convex.NewHyperplane([]float64{1, 1}, 1)
	require.NoError(t, err)

	assert.True(t, h.Contains([]float64{0.5, 0.5}))
	assert.False(t, h.Contains([]float64{1, 1}))

	// (1,1) is at distance √2/2 from the plane; projection is (0.5, 0.5).
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, h.Project([]float64{1, 1}), 1e-12)
	// Feasible points are their own projection (up to float error).
	assert.InDeltaSlice(t, []float64{0.25, 0.75}, h.Project([]float64{0.25, 0.75}), 1e-12)
	assert.True(t, h.Contains(h.AnyPoint()))
}
