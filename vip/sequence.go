package vip

import "slices"

// Sequence is a lazy, pull-based stream of solver iterates. Next advances
// and reports whether an iterate is available; X returns the current
// iterate, valid until the next call to Next; Err reports why the stream
// ended (nil for normal convergence or a consumer that simply stopped
// pulling).
type Sequence interface {
	Next() bool
	X() []float64
	Err() error
}

// Take pulls at most n iterates and returns them as fresh copies. The
// stream may end earlier; check seq.Err afterwards to distinguish
// convergence from failure.
func Take(seq Sequence, n int) [][]float64 {
	out := make([][]float64, 0, n)
	for len(out) < n && seq.Next() {
		out = append(out, slices.Clone(seq.X()))
	}

	return out
}

// Enumerate walks the stream pairing each iterate with its 1-based index,
// without materializing anything. fn returning false stops the walk.
// Enumerate returns seq.Err().
func Enumerate(seq Sequence, fn func(k int, x []float64) bool) error {
	for k := 1; seq.Next(); k++ {
		if !fn(k, seq.X()) {
			break
		}
	}

	return seq.Err()
}
