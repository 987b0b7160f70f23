// Package synth contains the statistical mixture tests: over a large
// seeded sample, the empirical spoilage-subtype proportions must match the
// configured weights within a small tolerance.
package synth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// mixture draws bad-path rows and tallies subtype frequencies.
func mixture(t *testing.T, v Variant, rows int, seed int64) []float64 {
	t.Helper()

	gen, err := NewGenerator(v, WithSeed(seed))
	require.NoError(t, err)

	counts := make([]int, len(v.Bad))
	for i := 0; i < rows; i++ {
		_, st := gen.bad()
		counts[st]++
	}

	props := make([]float64, len(counts))
	for i, c := range counts {
		props[i] = float64(c) / float64(rows)
	}

	return props
}

// TestSubtypeMixture60_30_10 checks the RawADC and PPMShelfLife mixtures.
func TestSubtypeMixture60_30_10(t *testing.T) {
	t.Parallel()

	const rows = 100000
	const tolerance = 0.01

	for _, v := range []Variant{RawADC(), PPMShelfLife()} {
		props := mixture(t, v, rows, 29)
		want := []float64{0.60, 0.30, 0.10}
		for i, w := range want {
			require.LessOrEqual(t, math.Abs(props[i]-w), tolerance,
				"%s subtype %s: empirical %0.4f vs %0.2f",
				v.Schema.Name, v.Bad[i].Name, props[i], w)
		}
	}
}

// TestSubtypeMixture40_40_20 checks the TriGas mixture.
func TestSubtypeMixture40_40_20(t *testing.T) {
	t.Parallel()

	const rows = 100000
	const tolerance = 0.01

	v := TriGas()
	props := mixture(t, v, rows, 31)
	want := []float64{0.40, 0.40, 0.20}
	for i, w := range want {
		require.LessOrEqual(t, math.Abs(props[i]-w), tolerance,
			"%s subtype %s: empirical %0.4f vs %0.2f",
			v.Schema.Name, v.Bad[i].Name, props[i], w)
	}
}
