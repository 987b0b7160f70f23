// Package synth generates labeled synthetic gas-sensor rows from
// class-conditional mixture models, for training food-freshness classifiers.
//
// What:
//
//   - One parameter-driven engine (Generator) samples rows per class:
//     draw a base value uniformly from the field's class range, perturb it
//     with Gaussian noise, then clip to the field's hard bounds.
//   - The bad class is a weighted mixture of spoilage subtypes
//     (fermentation, decomposition, advanced / high-noise); subtype
//     selection uses an explicit cumulative-distribution table.
//   - Three presets parameterize the engine: RawADC (10-bit analog counts),
//     PPMShelfLife (ppm concentrations plus a derived remaining-shelf-life
//     column), and TriGas (ethanol/ammonia/methane plus an analog column
//     affinely correlated with ethanol).
//   - BuildDataset assembles a full shuffled dataset with an exact
//     fresh/bad split.
//
// Why:
//
//   - Benchtop gas-sensor rigs produce too little labeled data to train on;
//     the presets mimic the sensors' empirical fresh/spoiled envelopes.
//   - Subtype mixtures keep the bad class multi-modal, the way real
//     spoilage mechanisms are.
//
// Determinism:
//
//   - With WithSeed or WithRand, every draw and the final shuffle are
//     reproducible. Without either, the engine self-seeds from the clock
//     (non-reproducible runs by default).
//
// Options:
//
//   - WithSeed(seed) / WithRand(rng): inject the random source.
//   - WithFreshCount(n): override the default floor(total/2) fresh split.
//   - WithProgress(fn): observe row-generation progress.
//
// Errors:
//
//   - ErrBadRowCount:   requested total is below the minimum.
//   - ErrBadSplit:      fresh count is negative or exceeds the total.
//   - ErrInvalidVariant: a variant table violates its structural contract.
//
// Invariants (by construction, validated in tests):
//
//   - Every generated value lies within its field's class clip bounds.
//   - Fresh rows carry sensor.LabelFresh, bad rows sensor.LabelBad.
//   - PPMShelfLife: RSL hours land in [24,168] for fresh and [0,23] for bad;
//     the two ranges never overlap.
package synth
