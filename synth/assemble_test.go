// Package synth contains unit tests for the dataset assembler: sizing,
// exact splits, determinism, progress reporting, and error branches.
package synth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PenyelamatPangan/Models/sensor"
)

// countFresh tallies label==1 rows.
func countFresh(rows []sensor.Row) int {
	n := 0
	for _, r := range rows {
		if r.Label == sensor.LabelFresh {
			n++
		}
	}

	return n
}

// TestBuildDatasetDefaultSplit: length equals the request, fresh count is
// exactly floor(total/2), for both even and odd totals.
func TestBuildDatasetDefaultSplit(t *testing.T) {
	t.Parallel()

	for _, total := range []int{10, 101, 1000} {
		rows, err := BuildDataset(RawADC(), total, WithSeed(43))
		require.NoError(t, err)
		require.Len(t, rows, total)
		require.Equal(t, total/2, countFresh(rows))
	}
}

// TestBuildDatasetExplicitSplit covers WithFreshCount, including the
// all-fresh and all-bad extremes.
func TestBuildDatasetExplicitSplit(t *testing.T) {
	t.Parallel()

	for _, fresh := range []int{0, 1, 42, 100} {
		rows, err := BuildDataset(TriGas(), 100, WithSeed(47), WithFreshCount(fresh))
		require.NoError(t, err)
		require.Len(t, rows, 100)
		require.Equal(t, fresh, countFresh(rows))
	}
}

// TestBuildDatasetErrors exercises the sentinel branches.
func TestBuildDatasetErrors(t *testing.T) {
	t.Parallel()

	_, err := BuildDataset(RawADC(), 0)
	require.ErrorIs(t, err, ErrBadRowCount)

	_, err = BuildDataset(RawADC(), -5)
	require.ErrorIs(t, err, ErrBadRowCount)

	_, err = BuildDataset(RawADC(), 10, WithFreshCount(11))
	require.ErrorIs(t, err, ErrBadSplit)

	bad := RawADC()
	bad.Bad = nil
	_, err = BuildDataset(bad, 10)
	require.ErrorIs(t, err, ErrInvalidVariant)
}

// TestBuildDatasetDeterministicPerSeed: equal seeds yield identical
// datasets including shuffle order.
func TestBuildDatasetDeterministicPerSeed(t *testing.T) {
	t.Parallel()

	a, err := BuildDataset(PPMShelfLife(), 500, WithSeed(53))
	require.NoError(t, err)
	b, err := BuildDataset(PPMShelfLife(), 500, WithSeed(53))
	require.NoError(t, err)
	require.Equal(t, a, b)
}

// TestBuildDatasetShuffles: with a fixed seed the label sequence must not
// be the unshuffled fresh-prefix/bad-suffix layout.
func TestBuildDatasetShuffles(t *testing.T) {
	t.Parallel()

	const total = 1000

	rows, err := BuildDataset(RawADC(), total, WithSeed(59))
	require.NoError(t, err)

	prefixFresh := 0
	for i := 0; i < total/2; i++ {
		if rows[i].Label == sensor.LabelFresh {
			prefixFresh++
		}
	}
	// An unshuffled dataset would have all 500 fresh rows in the prefix.
	require.Less(t, prefixFresh, total/2, "dataset does not look shuffled")
}

// TestBuildDatasetProgress verifies the callback cadence and final report.
func TestBuildDatasetProgress(t *testing.T) {
	t.Parallel()

	const total = 64

	calls := 0
	lastDone := 0
	rows, err := BuildDataset(RawADC(), total, WithSeed(61),
		WithProgress(func(done, totalArg int) {
			calls++
			require.Equal(t, total, totalArg)
			require.Equal(t, lastDone+1, done, "progress must advance by one")
			lastDone = done
		}),
	)
	require.NoError(t, err)
	require.Len(t, rows, total)
	require.Equal(t, total, calls)
	require.Equal(t, total, lastDone)
}

// TestBuildDatasetRowOwnership: rows must be fully formed for their schema.
func TestBuildDatasetRowOwnership(t *testing.T) {
	t.Parallel()

	v := PPMShelfLife()
	rows, err := BuildDataset(v, 50, WithSeed(67))
	require.NoError(t, err)
	for _, r := range rows {
		require.Len(t, r.Values, v.Schema.ValueWidth())
	}
}
