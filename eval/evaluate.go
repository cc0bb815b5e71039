package eval

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/linkpred/matrix"
	"github.com/katalvlaran/linkpred/sample"
)

// maxTestPairs caps the number of test pairs scored per trial; larger
// test sets are uniformly subsampled.
const maxTestPairs = 1000

// Report summarizes an evaluation run. Slices are indexed by proportion.
type Report struct {
	// Proportions echoes the evaluated holdout proportions.
	Proportions []float64
	// Micro holds the mean micro-averaged ROC-AUC over trials.
	Micro []float64
	// Std holds the population standard deviation of the per-trial scores.
	Std []float64
}

// Score predicts every pair with the model, pools the scores and returns
// the micro-averaged ROC-AUC. Feature rows are looked up by pair index,
// so pairs and features must share an id space.
//
// Prediction errors propagate; NaN scores are tolerated (see ROCAUC).
func Score(model Model, pairs []Pair, classes []bool, features *mat.Dense) (float64, error) {
	if model == nil {
		return 0, ErrNilModel
	}
	if len(pairs) != len(classes) {
		return 0, ErrDimensionMismatch
	}

	scores := make([]float64, len(pairs))
	for k, p := range pairs {
		s, err := model.PredictNew(features.RowView(p.I), features.RowView(p.J))
		if err != nil {
			return 0, err
		}
		scores[k] = s
	}

	return ROCAUC(classes, scores)
}

// Evaluate runs the full link-prediction protocol: for every proportion
// and trial, the model is reset, a fresh node-holdout split is drawn,
// the model is fitted on the training side, and up to maxTestPairs test
// pairs are scored. Per proportion, the mean and population standard
// deviation of the trial scores are reported.
//
// The seed determines every split and subsample; the same seed and model
// reproduce the same Report.
//
// Errors:
//   - ErrNilModel / ErrNilMatrix — nil collaborators.
//   - ErrInvalidOptions          — trials < 1 or no proportions.
//   - anything SplitNodes, Fit or Score surface.
func Evaluate(model Model, m *matrix.CSR, features *mat.Dense, proportions []float64, trials int, seed int64) (*Report, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	if m == nil {
		return nil, ErrNilMatrix
	}
	if trials < 1 || len(proportions) == 0 {
		return nil, ErrInvalidOptions
	}

	rng := sample.New(seed)
	rep := &Report{
		Proportions: append([]float64(nil), proportions...),
		Micro:       make([]float64, len(proportions)),
		Std:         make([]float64, len(proportions)),
	}

	for pi, p := range proportions {
		trialScores := make([]float64, 0, trials)
		for t := 0; t < trials; t++ {
			model.Reset()

			sp, err := SplitNodes(m, features, p, rng)
			if err != nil {
				return nil, err
			}
			if err = model.Fit(sp.TrainWeights, sp.TrainFeatures); err != nil {
				return nil, err
			}

			pairs, classes := subsamplePairs(sp.TestPairs, sp.TestClasses, rng)
			sc, err := Score(model, pairs, classes, features)
			if err != nil {
				return nil, err
			}
			trialScores = append(trialScores, sc)
		}
		rep.Micro[pi] = stat.Mean(trialScores, nil)
		rep.Std[pi] = stat.PopStdDev(trialScores, nil)
	}

	return rep, nil
}

// subsamplePairs draws up to maxTestPairs pairs without replacement,
// keeping classes aligned.
func subsamplePairs(pairs []Pair, classes []bool, rng *rand.Rand) ([]Pair, []bool) {
	if len(pairs) <= maxTestPairs {
		return pairs, classes
	}
	perm := rng.Perm(len(pairs))[:maxTestPairs]
	outP := make([]Pair, maxTestPairs)
	outC := make([]bool, maxTestPairs)
	for k, idx := range perm {
		outP[k] = pairs[idx]
		outC[k] = classes[idx]
	}

	return outP, outC
}
