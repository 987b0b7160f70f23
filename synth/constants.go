// Package synth defines shared constants used by the generator engine and
// the variant presets, keeping validation messages and numeric contracts
// consistent across the package.
package synth

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the operation name for context.
//-----------------------------------------------------------------------------

const (
	// MethodNewGenerator is the canonical name of the Generator constructor.
	MethodNewGenerator = "NewGenerator"
	// MethodBuildDataset is the canonical name of the dataset assembler.
	MethodBuildDataset = "BuildDataset"
)

//-----------------------------------------------------------------------------
// Dataset sizing
//-----------------------------------------------------------------------------

// MinDatasetRows is the smallest dataset BuildDataset will assemble.
// A dataset of zero rows is meaningless as classifier input.
const MinDatasetRows = 1

// DefaultSplitDivisor derives the default fresh count as total/DefaultSplitDivisor
// (floor division); the remainder becomes the bad count.
const DefaultSplitDivisor = 2

//-----------------------------------------------------------------------------
// Mixture weights
//-----------------------------------------------------------------------------

// weightSumTolerance is the permitted absolute deviation of a subtype
// weight vector's sum from 1.0 (guards against sloppy constant tables
// without rejecting exact decimal literals like 0.60+0.30+0.10).
const weightSumTolerance = 1e-9

//-----------------------------------------------------------------------------
// Shared unit bounds
//-----------------------------------------------------------------------------

// unitLo and unitHi bound normalized freshness scores and the subtype
// selector draw; both live on the closed unit interval.
const (
	unitLo = 0.0
	unitHi = 1.0
)
