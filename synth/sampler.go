// SPDX-License-Identifier: MIT
// Package: Models/synth
//
// sampler.go — the class-conditional row generator.
//
// Canonical pipeline (both classes, every primary field):
//   1) base  ~ U[Base.Lo, Base.Hi]          (per-draw center)
//   2) value = base + σ·N(0,1)              (sensor noise)
//   3) value = clip(value, Clip.Lo, Clip.Hi)
//   4) integer columns are truncated to whole counts (ADC read-out)
//
// Bad rows first pick a spoilage subtype from the weighted mixture, then
// run the same pipeline with that subtype's table. Derived columns (affine
// analog, shelf-life hours) are computed after all primary fields exist.
//
// Contract:
//   - NewGenerator validates the table once; Fresh/Bad cannot fail and
//     never panic. One Generator is single-goroutine (it owns its RNG).
//   - Determinism per (variant, seed, call order).

package synth

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/PenyelamatPangan/Models/sensor"
)

// freshSubtype is the subtype placeholder for fresh-path draws; it never
// matches a real subtype index.
const freshSubtype = -1

// Generator produces labeled rows for one variant. It owns its RNG;
// share one Generator per goroutine, not across them.
type Generator struct {
	v     Variant
	rng   *rand.Rand
	sub   categorical        // subtype mixture table
	kinds []sensor.FieldKind // per-value quantization policy
}

// NewGenerator validates the variant table, resolves options, and returns
// a ready generator. Returns ErrInvalidVariant (wrapped) on a bad table.
// Complexity: O(fields × subtypes) validation, O(1) afterwards.
func NewGenerator(v Variant, opts ...Option) (*Generator, error) {
	if err := validateVariant(v); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodNewGenerator, err)
	}

	return newGenerator(v, newConfig(opts...)), nil
}

// newGenerator wires a Generator from an already-validated variant and a
// resolved config. Internal callers (BuildDataset) validate first.
func newGenerator(v Variant, cfg config) *Generator {
	weights := make([]float64, len(v.Bad))
	for i, st := range v.Bad {
		weights[i] = st.Weight
	}
	// Weights were validated with the variant; the rebuild cannot fail.
	sub, _ := newCategorical(weights)

	kinds := make([]sensor.FieldKind, 0, v.Schema.ValueWidth())
	for _, f := range v.Schema.Fields {
		if f.Kind != sensor.KindLabel {
			kinds = append(kinds, f.Kind)
		}
	}

	return &Generator{
		v:     v,
		rng:   rngFrom(cfg),
		sub:   sub,
		kinds: kinds,
	}
}

// Fresh produces one row of the fresh class (label sentinel 1).
// Every value lies within its field's fresh clip bounds.
// Complexity: O(fields).
func (g *Generator) Fresh() sensor.Row {
	return g.row(g.v.Fresh, sensor.LabelFresh, freshSubtype)
}

// Bad produces one row of the bad class (label sentinel 0): a spoilage
// subtype is drawn from the mixture, then that subtype's table drives the
// draws. Every value lies within its field's bad clip bounds.
// Complexity: O(fields + subtypes).
func (g *Generator) Bad() sensor.Row {
	row, _ := g.bad()

	return row
}

// bad is the subtype-revealing bad path, shared by Bad and the mixture and
// correlation tests.
func (g *Generator) bad() (sensor.Row, int) {
	st := g.sub.pick(g.rng)

	return g.row(g.v.Bad[st].Draws, sensor.LabelBad, st), st
}

// row runs the full pipeline for one sample: primary draws, then derived
// columns, then label attachment.
func (g *Generator) row(p Profile, label sensor.Label, subtype int) sensor.Row {
	values := make([]float64, g.v.Schema.ValueWidth())

	// Primary fields occupy the leading value indexes (table invariant).
	for i, d := range p {
		values[i] = g.quantize(i, drawValue(g.rng, d))
	}

	// Derived columns consume the primary values just produced.
	if a := g.v.Analog; a != nil {
		values[a.Dst] = g.quantize(a.Dst, g.analogValue(values, subtype))
	}
	if s := g.v.ShelfLife; s != nil {
		values[s.Dst] = g.quantize(s.Dst, g.shelfLifeHours(values, label))
	}

	return sensor.Row{Values: values, Label: label}
}

// drawValue executes steps 1-3 of the pipeline for one field.
func drawValue(rng *rand.Rand, d Draw) float64 {
	base := d.Base.Lo + rng.Float64()*d.Base.Width()
	v := base + rng.NormFloat64()*d.Sigma

	return clamp(v, d.Clip)
}

// analogValue computes the derived analog column. Correlated paths apply
// the affine map to the realized source concentration, then noise and
// clip; the decorrelated subtype draws an independent uniform value over
// the configured high sub-range instead.
func (g *Generator) analogValue(values []float64, subtype int) float64 {
	a := g.v.Analog

	if a.DecorrelatedSubtype != NoDecorrelation && subtype == a.DecorrelatedSubtype {
		return a.DecorrelatedRange.Lo + g.rng.Float64()*a.DecorrelatedRange.Width()
	}

	base := a.Intercept + a.Slope*values[a.Src]

	return clamp(base+g.rng.NormFloat64()*a.Sigma, a.Clip)
}

// shelfLifeHours computes the derived remaining-shelf-life column.
// Each primary reading is normalized into [0,1] against its class range,
// the normalized values are averaged into a freshness score, and the score
// maps inversely onto the class hour range (score 0 → Hi, score 1 → Lo)
// before jitter and the final clip.
func (g *Generator) shelfLifeHours(values []float64, label sensor.Label) float64 {
	s := g.v.ShelfLife

	norm, hours, jitter := s.BadNorm, s.BadHours, s.BadJitter
	if label == sensor.LabelFresh {
		norm, hours, jitter = s.FreshNorm, s.FreshHours, s.FreshJitter
	}

	score := 0.0
	for i, r := range norm {
		// Range widths are validated non-zero; no division guard needed.
		score += clamp((values[i]-r.Lo)/r.Width(), Range{Lo: unitLo, Hi: unitHi})
	}
	score /= float64(len(norm))

	h := hours.Hi - score*hours.Width()
	h += (g.rng.Float64()*2 - 1) * jitter

	return clamp(h, hours)
}

// quantize applies the column's read-out policy: integer columns truncate
// to whole counts, concentration columns stay continuous.
func (g *Generator) quantize(i int, v float64) float64 {
	if g.kinds[i] == sensor.KindInt {
		return math.Trunc(v)
	}

	return v
}

// clamp bounds v into the closed interval r.
func clamp(v float64, r Range) float64 {
	if v < r.Lo {
		return r.Lo
	}
	if v > r.Hi {
		return r.Hi
	}

	return v
}
