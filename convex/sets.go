package convex

import (
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// Ball is the closed Euclidean ball {x : ‖x−c‖ ≤ r}.
type Ball struct {
	center []float64
	radius float64
}

// NewBall builds the ball of the given center and radius.
// Radius zero is allowed (a single point); negative radius is not.
func NewBall(center []float64, radius float64) (*Ball, error) {
	if len(center) == 0 {
		return nil, ErrDimensionMismatch
	}
	if radius < 0 {
		return nil, ErrDegenerateSet
	}

	return &Ball{center: slices.Clone(center), radius: radius}, nil
}

func (b *Ball) Dim() int { return len(b.center) }

func (b *Ball) Contains(x []float64) bool {
	return floats.Distance(x, b.center, 2) <= b.radius+Tol
}

// AnyPoint returns the center.
func (b *Ball) AnyPoint() []float64 { return slices.Clone(b.center) }

// Support returns c + r·dir/‖dir‖. A zero direction leaves every point a
// maximizer; the center is returned.
func (b *Ball) Support(dir []float64) []float64 {
	p := slices.Clone(b.center)
	if n := floats.Norm(dir, 2); n > 0 {
		floats.AddScaled(p, b.radius/n, dir)
	}

	return p
}

// Project returns y itself when feasible, otherwise the radial projection
// c + r·(y−c)/‖y−c‖.
func (b *Ball) Project(y []float64) []float64 {
	d := floats.Distance(y, b.center, 2)
	if d <= b.radius {
		return slices.Clone(y)
	}

	p := slices.Clone(b.center)
	for i := range p {
		p[i] += b.radius / d * (y[i] - b.center[i])
	}

	return p
}

// Box is the axis-aligned box {x : lo ≤ x ≤ hi}.
type Box struct {
	lo, hi []float64
}

// NewBox builds the box with the given per-coordinate bounds.
func NewBox(lo, hi []float64) (*Box, error) {
	if len(lo) == 0 || len(lo) != len(hi) {
		return nil, ErrDimensionMismatch
	}
	for i := range lo {
		if lo[i] > hi[i] {
			return nil, ErrDegenerateSet
		}
	}

	return &Box{lo: slices.Clone(lo), hi: slices.Clone(hi)}, nil
}

func (b *Box) Dim() int { return len(b.lo) }

func (b *Box) Contains(x []float64) bool {
	if len(x) != len(b.lo) {
		panic("convex: dimension mismatch")
	}
	for i, v := range x {
		if v < b.lo[i]-Tol || v > b.hi[i]+Tol {
			return false
		}
	}

	return true
}

// AnyPoint returns the box midpoint.
func (b *Box) AnyPoint() []float64 {
	p := make([]float64, len(b.lo))
	for i := range p {
		p[i] = 0.5 * (b.lo[i] + b.hi[i])
	}

	return p
}

// Support maximizes coordinate-wise: hi where dir is positive, lo
// elsewhere (zero components break ties toward lo).
func (b *Box) Support(dir []float64) []float64 {
	if len(dir) != len(b.lo) {
		panic("convex: dimension mismatch")
	}
	p := make([]float64, len(dir))
	for i, d := range dir {
		if d > 0 {
			p[i] = b.hi[i]
		} else {
			p[i] = b.lo[i]
		}
	}

	return p
}

// Project clamps each coordinate into [lo, hi].
func (b *Box) Project(y []float64) []float64 {
	if len(y) != len(b.lo) {
		panic("convex: dimension mismatch")
	}
	p := make([]float64, len(y))
	for i, v := range y {
		p[i] = min(max(v, b.lo[i]), b.hi[i])
	}

	return p
}

// Simplex is the standard probability simplex {x : x ≥ 0, Σx = 1} in ℝⁿ.
// It deliberately offers no exact projection: it is the canonical test bed
// for the iterative projection engine.
type Simplex struct {
	n int
}

// NewSimplex builds the standard simplex in ℝⁿ.
func NewSimplex(n int) (*Simplex, error) {
	if n <= 0 {
		return nil, ErrDegenerateSet
	}

	return &Simplex{n: n}, nil
}

func (s *Simplex) Dim() int { return s.n }

func (s *Simplex) Contains(x []float64) bool {
	if len(x) != s.n {
		panic("convex: dimension mismatch")
	}
	sum := 0.0
	for _, v := range x {
		if v < -Tol {
			return false
		}
		sum += v
	}

	// Σx must be 1; the per-coordinate slack accumulates, so scale Tol by n.
	return sum >= 1-float64(s.n)*Tol && sum <= 1+float64(s.n)*Tol
}

// AnyPoint returns the barycenter (1/n, …, 1/n).
func (s *Simplex) AnyPoint() []float64 {
	p := make([]float64, s.n)
	for i := range p {
		p[i] = 1 / float64(s.n)
	}

	return p
}

// Support returns the vertex e_i of the largest direction component
// (lowest index on ties).
func (s *Simplex) Support(dir []float64) []float64 {
	if len(dir) != s.n {
		panic("convex: dimension mismatch")
	}
	best := 0
	for i, d := range dir {
		if d > dir[best] {
			best = i
		}
	}
	p := make([]float64, s.n)
	p[best] = 1

	return p
}

// Polytope is the convex hull conv{v₁, …, vₘ} of a finite vertex list.
// Like Simplex it offers no exact projection, so it routes through the
// iterative projection engine via its support function.
type Polytope struct {
	verts [][]float64
}

// NewPolytope builds the hull of the given vertices. The list must be
// non-empty and every vertex must share the same dimension.
func NewPolytope(vertices [][]float64) (*Polytope, error) {
	if len(vertices) == 0 || len(vertices[0]) == 0 {
		return nil, ErrDimensionMismatch
	}
	n := len(vertices[0])
	verts := make([][]float64, len(vertices))
	for i, v := range vertices {
		if len(v) != n {
			return nil, ErrDimensionMismatch
		}
		verts[i] = slices.Clone(v)
	}

	return &Polytope{verts: verts}, nil
}

func (p *Polytope) Dim() int { return len(p.verts[0]) }

// Contains decides hull membership by solving the coefficient feasibility
// problem Vλ = x, Σλ = 1, λ ≥ 0 with a zero-objective simplex phase.
// Unlike the analytic shapes it carries no Tol slack of its own: the LP's
// numeric tolerance is the boundary fuzz.
func (p *Polytope) Contains(x []float64) bool {
	n := p.Dim()
	if len(x) != n {
		panic("convex: dimension mismatch")
	}
	m := len(p.verts)
	a := mat.NewDense(n+1, m, nil)
	for j, v := range p.verts {
		for i, vi := range v {
			a.Set(i, j, vi)
		}
		a.Set(n, j, 1)
	}
	b := make([]float64, n+1)
	copy(b, x)
	b[n] = 1
	_, _, err := lp.Simplex(make([]float64, m), a, b, 0, nil)

	return err == nil
}

// AnyPoint returns the vertex barycenter.
func (p *Polytope) AnyPoint() []float64 {
	c := make([]float64, p.Dim())
	for _, v := range p.verts {
		floats.AddScaled(c, 1/float64(len(p.verts)), v)
	}

	return c
}

// Support returns the vertex of the largest inner product with dir
// (lowest index on ties).
func (p *Polytope) Support(dir []float64) []float64 {
	if len(dir) != p.Dim() {
		panic("convex: dimension mismatch")
	}
	best := 0
	for i, v := range p.verts {
		if floats.Dot(dir, v) > floats.Dot(dir, p.verts[best]) {
			best = i
		}
	}

	return slices.Clone(p.verts[best])
}
