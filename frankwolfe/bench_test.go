package frankwolfe_test

import (
	"testing"

	"github.com/varineq/varineq/convex"
	"github.com/varineq/varineq/frankwolfe"
)

// BenchmarkMinimize_Simplex measures the generic solver on a 50-dim
// simplex with the open-loop step rule.
func BenchmarkMinimize_Simplex(b *testing.B) {
	const n = 50
	set, err := convex.NewSimplex(n)
	if err != nil {
		b.Fatal(err)
	}

	y := make([]float64, n)
	y[0] = 2
	f, grad := quadratic(y)
	pred := func(x, g, s []float64, i int) bool {
		return frankwolfe.Gap(x, g, s) < 1e-3
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, err := frankwolfe.Minimize(f, set.AnyPoint(), frankwolfe.LinearOracle(set),
			frankwolfe.Spec{Grad: grad}, pred, 100000)
		if err != nil {
			b.Fatal(err)
		}
	}
}
