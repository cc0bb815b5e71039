package eval

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linkpred/matrix"
)

// Model is the embedding-model collaborator evaluated by this package.
// Implementations live outside this module; Evaluate only requires the
// three operations below.
type Model interface {
	// Reset reinitializes the model to an untrained state. Called before
	// every trial so successive fits do not leak state.
	Reset()

	// Fit trains the model on the training weight matrix and one feature
	// row per training node.
	Fit(weights *matrix.CSR, features *mat.Dense) error

	// PredictNew scores the link between two nodes given their feature
	// vectors. Higher means more likely linked. NaN scores are tolerated
	// and coerced to zero during pooling.
	PredictNew(fi, fj mat.Vector) (float64, error)
}
