package convex

import (
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Halfspace is the closed halfspace {x : ⟨a,x⟩ ≤ b}. It is unbounded, so
// it has no support function; projection is closed-form instead.
type Halfspace struct {
	a    []float64
	b    float64
	nrm2 float64 // ‖a‖², cached
}

// NewHalfspace builds {x : ⟨a,x⟩ ≤ b}. The normal a must be nonzero.
func NewHalfspace(a []float64, b float64) (*Halfspace, error) {
	n2 := floats.Dot(a, a)
	if n2 == 0 {
		return nil, ErrDegenerateSet
	}

	return &Halfspace{a: slices.Clone(a), b: b, nrm2: n2}, nil
}

func (h *Halfspace) Dim() int { return len(h.a) }

func (h *Halfspace) Contains(x []float64) bool {
	return floats.Dot(h.a, x) <= h.b+Tol
}

// AnyPoint returns the projection of the origin onto the halfspace.
func (h *Halfspace) AnyPoint() []float64 {
	return h.Project(make([]float64, len(h.a)))
}

// Project returns y itself when ⟨a,y⟩ ≤ b, otherwise the orthogonal
// projection y + (b − ⟨a,y⟩)·a/‖a‖² onto the bounding hyperplane.
func (h *Halfspace) Project(y []float64) []float64 {
	p := slices.Clone(y)
	if r := floats.Dot(h.a, y) - h.b; r > 0 {
		floats.AddScaled(p, -r/h.nrm2, h.a)
	}

	return p
}

// Hyperplane is the affine set {x : ⟨a,x⟩ = b}.
type Hyperplane struct {
	a    []float64
	b    float64
	nrm2 float64
}

// NewHyperplane builds {x : ⟨a,x⟩ = b}. The normal a must be nonzero.
func NewHyperplane(a []float64, b float64) (*Hyperplane, error) {
	n2 := floats.Dot(a, a)
	if n2 == 0 {
		return nil, ErrDegenerateSet
	}

	return &Hyperplane{a: slices.Clone(a), b: b, nrm2: n2}, nil
}

func (h *Hyperplane) Dim() int { return len(h.a) }

func (h *Hyperplane) Contains(x []float64) bool {
	r := floats.Dot(h.a, x) - h.b

	return r >= -Tol && r <= Tol
}

// AnyPoint returns the projection of the origin onto the hyperplane.
func (h *Hyperplane) AnyPoint() []float64 {
	return h.Project(make([]float64, len(h.a)))
}

// Project returns y + (b − ⟨a,y⟩)·a/‖a‖², the orthogonal projection.
func (h *Hyperplane) Project(y []float64) []float64 {
	p := slices.Clone(y)
	floats.AddScaled(p, (h.b-floats.Dot(h.a, y))/h.nrm2, h.a)

	return p
}
