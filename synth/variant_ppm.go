// SPDX-License-Identifier: MIT
// Package: Models/synth
//
// variant_ppm.go — PPMShelfLife preset: calibrated ppm concentrations with
// a derived remaining-shelf-life (RSL) column.
//
// Differences from RawADC:
//   - MQ135 reports a calibrated float ppm (two decimals in the output);
//     MQ3 and MiCS-5524 report integer ppm.
//   - A fifth column, RSL_Hours, maps the averaged normalized readings
//     inversely onto hours: fresh rows land in [24,168] (±12h jitter),
//     bad rows in [0,23] (±3h jitter). The two ranges never overlap, so
//     RSL alone separates the classes.
//
// Bad-class mixture is 60/30/10 with the same mechanism split as RawADC.

package synth

import "github.com/PenyelamatPangan/Models/sensor"

// Shelf-life mapping constants (hours).
const (
	rslFreshLo     = 24
	rslFreshHi     = 168
	rslBadLo       = 0
	rslBadHi       = 23
	rslFreshJitter = 12
	rslBadJitter   = 3
)

// ppmRSLColumn is the value index of the derived RSL column.
const ppmRSLColumn = 3

// PPMShelfLife returns the ppm dataset variant: MQ135 ppm (float), MQ3 and
// MiCS-5524 ppm (int), the Output label, and derived RSL hours.
func PPMShelfLife() Variant {
	// Fresh envelopes double as the fresh normalization ranges of the RSL
	// score; the outer bad clip bounds double as the bad normalization.
	fresh := Profile{
		{Base: Range{10, 60}, Sigma: 5, Clip: Range{10, 60}},
		{Base: Range{5, 50}, Sigma: 5, Clip: Range{5, 50}},
		{Base: Range{5, 60}, Sigma: 5, Clip: Range{5, 60}},
	}

	return Variant{
		Schema: sensor.Schema{
			Name: "PPMShelfLife",
			Fields: []sensor.FieldSpec{
				{Name: "MQ135_Analog", Kind: sensor.KindFloat},
				{Name: "MQ3_Analog", Kind: sensor.KindInt},
				{Name: "MiCS5524_Analog", Kind: sensor.KindInt},
				{Name: "Output", Kind: sensor.KindLabel},
				{Name: "RSL_Hours", Kind: sensor.KindInt},
			},
		},
		Fresh: fresh,
		Bad: []Subtype{
			{
				Name:   "fermentation",
				Weight: 0.60,
				Draws: Profile{
					{Base: Range{130, 250}, Sigma: 15, Clip: Range{120, 300}},
					{Base: Range{250, 500}, Sigma: 20, Clip: Range{200, 500}},
					{Base: Range{150, 350}, Sigma: 20, Clip: Range{120, 400}},
				},
			},
			{
				Name:   "decomposition",
				Weight: 0.30,
				Draws: Profile{
					{Base: Range{250, 400}, Sigma: 20, Clip: Range{200, 400}},
					{Base: Range{100, 250}, Sigma: 15, Clip: Range{100, 300}},
					{Base: Range{200, 450}, Sigma: 25, Clip: Range{150, 500}},
				},
			},
			{
				Name:   "advanced",
				Weight: 0.10,
				Draws: Profile{
					{Base: Range{320, 400}, Sigma: 25, Clip: Range{280, 400}},
					{Base: Range{350, 500}, Sigma: 25, Clip: Range{300, 500}},
					{Base: Range{400, 600}, Sigma: 30, Clip: Range{350, 600}},
				},
			},
		},
		ShelfLife: &ShelfLife{
			Dst: ppmRSLColumn,
			FreshNorm: []Range{
				{10, 60},
				{5, 50},
				{5, 60},
			},
			// Outer bad bounds across all subtypes, per field.
			BadNorm: []Range{
				{120, 400},
				{100, 500},
				{120, 600},
			},
			FreshHours:  Range{rslFreshLo, rslFreshHi},
			BadHours:    Range{rslBadLo, rslBadHi},
			FreshJitter: rslFreshJitter,
			BadJitter:   rslBadJitter,
		},
	}
}
