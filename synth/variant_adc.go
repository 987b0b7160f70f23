// SPDX-License-Identifier: MIT
// Package: Models/synth
//
// variant_adc.go — RawADC preset: 10-bit analog counts from the benchtop rig
// (MQ135 air quality, MQ3 alcohol, MiCS-5524 multi-gas on an Arduino ADC).
//
// Field semantics:
//   - MQ135 detects NH3/NOx/alcohol/benzene/smoke/CO2; clean air reads low,
//     decomposition by-products push it toward full scale.
//   - MQ3 detects alcohol vapor; fermentation drives it high.
//   - MiCS-5524 detects CO/CH4/C2H5OH/H2/NH3; any spoilage gas raises it.
//
// Bad-class mixture (60/30/10):
//   1. fermentation-dominant — very high MQ3, elevated others.
//   2. decomposition-dominant — very high MQ135, elevated others.
//   3. advanced spoilage — every sensor very high.
//
// Bad clip floors sit below the nominal bad ranges on purpose: the
// fresh/bad boundary is noisy on real hardware and the soft margin keeps
// the classes overlapping slightly near it.

package synth

import "github.com/PenyelamatPangan/Models/sensor"

// ADC full-scale bound (10-bit read-out).
const adcFullScale = 1023

// Fresh-class envelope shared by all three ADC sensors.
const (
	adcFreshLo    = 100
	adcFreshHi    = 350
	adcFreshSigma = 20
)

// RawADC returns the raw-ADC dataset variant: three integer analog columns
// in [0,1023] plus the binary Output label.
func RawADC() Variant {
	return Variant{
		Schema: sensor.Schema{
			Name: "RawADC",
			Fields: []sensor.FieldSpec{
				{Name: "MQ135_Analog", Kind: sensor.KindInt},
				{Name: "MQ3_Analog", Kind: sensor.KindInt},
				{Name: "MiCS5524_Analog", Kind: sensor.KindInt},
				{Name: "Output", Kind: sensor.KindLabel},
			},
		},
		Fresh: Profile{
			{Base: Range{adcFreshLo, adcFreshHi}, Sigma: adcFreshSigma, Clip: Range{adcFreshLo, adcFreshHi}},
			{Base: Range{adcFreshLo, adcFreshHi}, Sigma: adcFreshSigma, Clip: Range{adcFreshLo, adcFreshHi}},
			{Base: Range{adcFreshLo, adcFreshHi}, Sigma: adcFreshSigma, Clip: Range{adcFreshLo, adcFreshHi}},
		},
		Bad: []Subtype{
			{
				// Fermentation produces alcohol vapor first: MQ3 spikes,
				// the other sensors pick up moderate by-products.
				Name:   "fermentation",
				Weight: 0.60,
				Draws: Profile{
					{Base: Range{450, 750}, Sigma: 30, Clip: Range{400, 800}},
					{Base: Range{600, adcFullScale}, Sigma: 30, Clip: Range{550, adcFullScale}},
					{Base: Range{500, 800}, Sigma: 30, Clip: Range{450, 850}},
				},
			},
			{
				// Protein breakdown produces NH3: MQ135 spikes, MiCS
				// follows on H2/CO/CH4, MQ3 stays moderate.
				Name:   "decomposition",
				Weight: 0.30,
				Draws: Profile{
					{Base: Range{700, adcFullScale}, Sigma: 40, Clip: Range{650, adcFullScale}},
					{Base: Range{400, 700}, Sigma: 35, Clip: Range{400, 750}},
					{Base: Range{600, 900}, Sigma: 35, Clip: Range{550, 950}},
				},
			},
			{
				// Severe spoilage: every sensor near full scale.
				Name:   "advanced",
				Weight: 0.10,
				Draws: Profile{
					{Base: Range{800, adcFullScale}, Sigma: 40, Clip: Range{750, adcFullScale}},
					{Base: Range{750, adcFullScale}, Sigma: 40, Clip: Range{700, adcFullScale}},
					{Base: Range{800, adcFullScale}, Sigma: 40, Clip: Range{750, adcFullScale}},
				},
			},
		},
	}
}
