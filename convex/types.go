package convex

import "errors"

// Tol is the absolute slack used by every membership test. A point within
// Tol of the boundary counts as feasible; iterative projections stop at
// floating accuracy and would otherwise oscillate on the Contains check.
const Tol = 1e-9

// ErrDimensionMismatch is returned by constructors whose shape data
// disagree in length (e.g. box bounds of different sizes).
var ErrDimensionMismatch = errors.New("convex: dimension mismatch")

// ErrDegenerateSet is returned when shape data describe an empty or
// collapsed set: a negative radius, a zero normal vector, crossed bounds.
var ErrDegenerateSet = errors.New("convex: degenerate set")

// Set is a nonempty closed convex subset of ℝⁿ.
type Set interface {
	// Dim reports the ambient dimension n.
	Dim() int

	// Contains reports whether x lies in the set, within Tol.
	Contains(x []float64) bool

	// AnyPoint returns a freshly allocated feasible point. Which point is
	// unspecified; solvers use it only as a starting iterate.
	AnyPoint() []float64
}

// Supported is a compact Set that can evaluate its support function: the
// returned point maximizes ⟨dir, ·⟩ over the set. Tie-breaking among
// maximizers is up to the implementation.
type Supported interface {
	Set

	// Support returns a freshly allocated maximizer of ⟨dir, ·⟩.
	Support(dir []float64) []float64
}

// Projector is a Set with an exact closed-form projection. The projection
// engine short-circuits to it, bypassing iteration.
type Projector interface {
	Set

	// Project returns a freshly allocated nearest point of the set to y.
	Project(y []float64) []float64
}
