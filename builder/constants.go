// Package builder defines shared constants used by dataset builders, ensuring
// consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuildDataset is the canonical name for the BuildDataset orchestrator.
	MethodBuildDataset = "BuildDataset"
	// MethodGaussian is the canonical name for the Gaussian constructor.
	MethodGaussian = "Gaussian"
	// MethodUniform is the canonical name for the Uniform constructor.
	MethodUniform = "Uniform"
	// MethodCategorical is the canonical name for the Categorical constructor.
	MethodCategorical = "Categorical"
	// MethodBlobs is the canonical name for Blobs.
	MethodBlobs = "Blobs"
	// MethodFriedman1 is the canonical name for Friedman1.
	MethodFriedman1 = "Friedman1"
	// MethodLinearTarget is the canonical name for LinearTarget.
	MethodLinearTarget = "LinearTarget"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinSamples is the smallest row count a builder accepts.
const MinSamples = 1

// MinFeatures is the smallest column count a constructor accepts.
const MinFeatures = 1

// MinLevels is the smallest level count of a categorical feature.
const MinLevels = 2

// Friedman1Features is the width of the Friedman #1 design matrix; only the
// first five columns influence the target.
const Friedman1Features = 10

// friedman1Active is the number of informative Friedman #1 columns.
const friedman1Active = 5
