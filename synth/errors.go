// SPDX-License-Identifier: MIT
// Package: Models/synth
//
// errors.go — sentinel errors for the synth package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context via %w ("<Method>: ...: %w").
//   • Generators MUST NOT panic at runtime; validation panics are confined
//     to option constructors (WithX...).

package synth

import "errors"

// ErrBadRowCount indicates that a requested dataset size is below the
// allowed minimum (total < MinDatasetRows).
// Usage: if errors.Is(err, ErrBadRowCount) { /* fix total */ }.
var ErrBadRowCount = errors.New("synth: invalid row count")

// ErrBadSplit indicates that the fresh/bad split is inconsistent with the
// requested total (fresh < 0 or fresh > total).
// Usage: if errors.Is(err, ErrBadSplit) { /* fix WithFreshCount */ }.
var ErrBadSplit = errors.New("synth: invalid fresh/bad split")

// ErrInvalidVariant indicates that a Variant table violates its structural
// contract: bad schema, degenerate ranges, negative sigma, mismatched
// profile widths, subtype weights that do not form a distribution, or a
// derived-field spec pointing at a primary column.
// Variant tables are fixed constants, so this surfaces programmer error in
// a preset (or a hand-rolled Variant), not a runtime condition.
var ErrInvalidVariant = errors.New("synth: invalid variant table")
