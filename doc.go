// Package models is the synthetic-data toolkit behind the PenyelamatPangan
// food-freshness classifier: it fabricates labeled gas-sensor datasets and
// live device feeds so models can be trained before the benchtop rig has
// collected enough real samples.
//
// 🚀 What does it do?
//
//	Draws rows from class-conditional mixture models that mimic the rig's
//	sensors (MQ135, MQ3, MiCS-5524 on a 10-bit Arduino ADC) under fresh and
//	spoiled conditions:
//		• Per-field pipeline: uniform base → Gaussian noise → hard clip
//		• Bad class: weighted spoilage-subtype mixture (fermentation,
//		  decomposition, advanced / high-noise) with overlapping soft margins
//		• Derived columns: remaining-shelf-life hours, ethanol-correlated
//		  analog read-out
//		• Assembly: exact fresh/bad split, single Fisher–Yates shuffle,
//		  CSV with exact header literals
//
// ✨ Why use it?
//
//   - Deterministic on demand – inject a seed and every draw, subtype, and
//     shuffle is reproducible; leave it out and runs are independent
//   - Declarative – each dataset scheme is one constant table, not a code path
//   - Honest boundaries – the class envelopes overlap near the fresh/bad
//     threshold the way real sensors do
//
// Everything is organized under four subpackages and two commands:
//
//	sensor/  — Row, Schema, Label: the tabular data model and rendering rules
//	synth/   — the generator engine, the three variant presets, the assembler
//	tabular/ — CSV serialization (header + rows, fatal-on-write-failure)
//	emulate/ — MQTT device feed replaying generated readings as JSON
//	cmd/freshgen — writes the three training CSVs with fixed configuration
//	cmd/freshemu — streams readings to a broker, configured via environment
//
// Quick example:
//
//	rows, err := synth.BuildDataset(synth.RawADC(), 100000, synth.WithSeed(42))
//	if err != nil { ... }
//	n, err := tabular.Write("food_freshness_dataset.csv", synth.RawADC().Schema, rows)
package models
