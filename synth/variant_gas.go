// SPDX-License-Identifier: MIT
// Package: Models/synth
//
// variant_gas.go — TriGas preset: ethanol/ammonia/methane concentrations
// plus a raw MQ analog column affinely correlated with ethanol.
//
// The analog column models the uncalibrated MQ divider voltage tracking
// the ethanol concentration: analog = 120 + 6·C2H5OH before noise, clipped
// to [50,950]. Subtype 3 ("high analog noise") deliberately breaks the
// correlation — the analog is an independent uniform draw over the high
// sub-range [700,950] — so a classifier cannot lean on the analog column
// alone.
//
// Bad-class mixture is 40/40/20: fermentation (ethanol-dominant),
// decomposition (ammonia-dominant), and the decorrelated high-noise case.

package synth

import "github.com/PenyelamatPangan/Models/sensor"

// Affine relation between ethanol ppm and the MQ analog read-out.
const (
	gasAnalogSlope     = 6.0
	gasAnalogIntercept = 120.0
	gasAnalogSigma     = 15.0
	gasAnalogLo        = 50
	gasAnalogHi        = 950
)

// Value-index layout of the TriGas variant.
const (
	gasEthanolColumn = 0
	gasAnalogColumn  = 3
)

// gasNoiseSubtype is the bad subtype whose analog column is decorrelated.
const gasNoiseSubtype = 2

// TriGas returns the tri-gas dataset variant: three float ppm columns,
// the derived integer MQ analog column in [50,950], and the Output label.
func TriGas() Variant {
	return Variant{
		Schema: sensor.Schema{
			Name: "TriGas",
			Fields: []sensor.FieldSpec{
				{Name: "C2H5OH_PPM", Kind: sensor.KindFloat},
				{Name: "NH3_PPM", Kind: sensor.KindFloat},
				{Name: "CH4_PPM", Kind: sensor.KindFloat},
				{Name: "MQ_Analog_Value", Kind: sensor.KindInt},
				{Name: "Output", Kind: sensor.KindLabel},
			},
		},
		Fresh: Profile{
			{Base: Range{1, 30}, Sigma: 3, Clip: Range{0.5, 35}},
			{Base: Range{0.5, 15}, Sigma: 1.5, Clip: Range{0.2, 20}},
			{Base: Range{1, 25}, Sigma: 2.5, Clip: Range{0.5, 30}},
		},
		Bad: []Subtype{
			{
				// Ethanol-dominant fermentation.
				Name:   "fermentation",
				Weight: 0.40,
				Draws: Profile{
					{Base: Range{60, 120}, Sigma: 8, Clip: Range{50, 130}},
					{Base: Range{10, 40}, Sigma: 4, Clip: Range{8, 50}},
					{Base: Range{15, 60}, Sigma: 6, Clip: Range{10, 70}},
				},
			},
			{
				// Ammonia-dominant decomposition.
				Name:   "decomposition",
				Weight: 0.40,
				Draws: Profile{
					{Base: Range{20, 60}, Sigma: 5, Clip: Range{15, 70}},
					{Base: Range{40, 90}, Sigma: 6, Clip: Range{30, 100}},
					{Base: Range{30, 90}, Sigma: 8, Clip: Range{20, 100}},
				},
			},
			{
				// High analog noise: concentrations elevated across the
				// board, analog decorrelated from ethanol.
				Name:   "high-analog-noise",
				Weight: 0.20,
				Draws: Profile{
					{Base: Range{30, 100}, Sigma: 10, Clip: Range{20, 110}},
					{Base: Range{20, 70}, Sigma: 8, Clip: Range{15, 80}},
					{Base: Range{40, 110}, Sigma: 10, Clip: Range{25, 120}},
				},
			},
		},
		Analog: &Affine{
			Src:                 gasEthanolColumn,
			Dst:                 gasAnalogColumn,
			Slope:               gasAnalogSlope,
			Intercept:           gasAnalogIntercept,
			Sigma:               gasAnalogSigma,
			Clip:                Range{gasAnalogLo, gasAnalogHi},
			DecorrelatedSubtype: gasNoiseSubtype,
			DecorrelatedRange:   Range{700, gasAnalogHi},
		},
	}
}
