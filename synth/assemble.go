// SPDX-License-Identifier: MIT
// Package: Models/synth
//
// assemble.go — dataset assembly: split, generate, shuffle.
//
// Contract:
//   - BuildDataset is the only component deciding split sizes and ordering.
//   - Exactly fresh-count rows come from the fresh path and the remainder
//     from the bad path; the final uniform permutation (Fisher–Yates via
//     rand.Shuffle) erases label-correlated ordering from the output.
//   - The returned slice is owned by the caller (handed off, not shared).

package synth

import (
	"fmt"

	"github.com/PenyelamatPangan/Models/sensor"
)

// BuildDataset generates a complete shuffled dataset of total rows for the
// given variant. The default split is floor(total/2) fresh with the
// remainder bad; WithFreshCount overrides it. WithProgress observes every
// generated row. Errors: ErrBadRowCount, ErrBadSplit, ErrInvalidVariant.
// Complexity: O(total × fields) time, O(total) memory.
func BuildDataset(v Variant, total int, opts ...Option) ([]sensor.Row, error) {
	if total < MinDatasetRows {
		return nil, fmt.Errorf("%s: total=%d < min=%d: %w",
			MethodBuildDataset, total, MinDatasetRows, ErrBadRowCount)
	}
	if err := validateVariant(v); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildDataset, err)
	}

	cfg := newConfig(opts...)

	fresh := total / DefaultSplitDivisor
	if cfg.splitSet {
		fresh = cfg.freshCount
	}
	if fresh < 0 || fresh > total {
		return nil, fmt.Errorf("%s: fresh=%d of total=%d: %w",
			MethodBuildDataset, fresh, total, ErrBadSplit)
	}

	gen := newGenerator(v, cfg)

	rows := make([]sensor.Row, 0, total)
	for i := 0; i < fresh; i++ {
		rows = append(rows, gen.Fresh())
		if cfg.progress != nil {
			cfg.progress(len(rows), total)
		}
	}
	for i := fresh; i < total; i++ {
		rows = append(rows, gen.Bad())
		if cfg.progress != nil {
			cfg.progress(len(rows), total)
		}
	}

	// Single full-sequence pass; order carries no meaning afterwards.
	gen.rng.Shuffle(len(rows), func(i, j int) {
		rows[i], rows[j] = rows[j], rows[i]
	})

	return rows, nil
}
