// SPDX-License-Identifier: MIT
// Package: Models/synth
//
// variant.go — declarative parameter tables driving the generator engine.
//
// Design contract:
//   - A Variant is pure data: schema, per-class draw specs, subtype mixture,
//     and optional derived-field specs. The engine interprets the table;
//     presets (variant_*.go) only differ in constants.
//   - Primary fields occupy the leading value indexes; derived columns
//     (affine analog, shelf life) come after them, before or after the
//     label per the schema. This keeps draw order and value order aligned.
//   - Tables are validated once in NewGenerator; generation itself assumes
//     a valid table and cannot fail.

package synth

import (
	"github.com/PenyelamatPangan/Models/sensor"
)

// Range is a closed numeric interval [Lo, Hi].
type Range struct {
	Lo float64
	Hi float64
}

// Width returns Hi − Lo. Variant tables guarantee non-degenerate widths
// wherever a Range is used as a normalization denominator.
func (r Range) Width() float64 { return r.Hi - r.Lo }

// Contains reports whether v lies in [Lo, Hi].
func (r Range) Contains(v float64) bool { return v >= r.Lo && v <= r.Hi }

// Draw is the three-stage sampling spec for one field under one class
// condition: uniform base range, Gaussian noise sigma, hard clip bounds.
type Draw struct {
	// Base is the uniform-sampling interval for the per-draw center value.
	Base Range

	// Sigma is the standard deviation of the Gaussian perturbation
	// applied to the base (0 disables noise).
	Sigma float64

	// Clip is the hard floor/ceiling enforced on the final value.
	// Bad-class clips are intentionally wider than the nominal bad
	// threshold — a soft margin toward the fresh boundary, not a defect.
	Clip Range
}

// Profile holds one Draw per primary field, in value order.
type Profile []Draw

// Subtype is one spoilage mechanism of the bad-class mixture: its mixture
// weight and a full per-field profile with its own elevated base ranges.
type Subtype struct {
	// Name identifies the mechanism (fermentation, decomposition, ...).
	Name string

	// Weight is the mixture probability; weights across a variant's
	// subtypes must sum to 1.
	Weight float64

	// Draws parameterizes every primary field for this subtype.
	Draws Profile
}

// Affine derives an analog column from a concentration column:
// analog = Intercept + Slope·value[Src], then Gaussian noise, then clip.
// One subtype may opt out of the correlation entirely and draw the analog
// as an independent uniform integer over a high sub-range — a deliberate
// adversarial noise case.
type Affine struct {
	// Src is the value index of the driving concentration field.
	Src int

	// Dst is the value index of the derived analog column.
	Dst int

	// Slope and Intercept define the deterministic pre-noise relation.
	Slope     float64
	Intercept float64

	// Sigma is the Gaussian noise applied after the affine map.
	Sigma float64

	// Clip bounds the final analog value for both classes.
	Clip Range

	// DecorrelatedSubtype, when ≥ 0, names the bad subtype index whose
	// analog ignores the affine relation; DecorrelatedRange is its
	// independent uniform draw interval.
	DecorrelatedSubtype int
	DecorrelatedRange   Range
}

// NoDecorrelation marks an Affine spec whose correlation holds for every
// subtype.
const NoDecorrelation = -1

// ShelfLife derives a remaining-shelf-life column from the normalized
// primary readings: each reading is normalized into [0,1] against its
// class range, the normalized values are averaged into a freshness score,
// and the score is mapped inversely onto the class hour range (score 0 →
// Hours.Hi, score 1 → Hours.Lo) with a uniform jitter, then clipped.
type ShelfLife struct {
	// Dst is the value index of the derived hours column.
	Dst int

	// FreshNorm and BadNorm are the per-field normalization ranges for
	// each class; widths must be non-zero (they are division denominators).
	FreshNorm []Range
	BadNorm   []Range

	// FreshHours and BadHours are the target hour ranges per class;
	// they must not overlap so the label can be read off the hours alone.
	FreshHours Range
	BadHours   Range

	// FreshJitter and BadJitter are the uniform jitter half-widths (±h).
	FreshJitter float64
	BadJitter   float64
}

// Variant is one complete dataset scheme: column layout plus the full
// class-conditional parameter table.
type Variant struct {
	// Schema declares the output columns, including the label column.
	Schema sensor.Schema

	// Fresh parameterizes every primary field for the fresh class.
	Fresh Profile

	// Bad is the spoilage-subtype mixture for the bad class.
	Bad []Subtype

	// Analog, when non-nil, derives a correlated analog column.
	Analog *Affine

	// ShelfLife, when non-nil, derives a remaining-shelf-life column.
	ShelfLife *ShelfLife
}

// primaryCount reports how many leading value indexes are primary
// (directly drawn) fields, i.e. total values minus derived columns.
func (v Variant) primaryCount() int {
	n := v.Schema.ValueWidth()
	if v.Analog != nil {
		n--
	}
	if v.ShelfLife != nil {
		n--
	}

	return n
}
