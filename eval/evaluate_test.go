package eval_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linkpred/eval"
	"github.com/katalvlaran/linkpred/matrix"
)

// oracleModel scores 1 for observed (undirected) edges of the full graph
// and 0 otherwise, decoding node ids from the id-encoding feature rows.
// It separates classes perfectly, so every trial must score AUC 1.
type oracleModel struct {
	adj    []map[int]struct{}
	resets int
	fits   int
}

func (o *oracleModel) Reset() { o.resets++ }

func (o *oracleModel) Fit(_ *matrix.CSR, _ *mat.Dense) error {
	o.fits++

	return nil
}

func (o *oracleModel) PredictNew(fi, fj mat.Vector) (float64, error) {
	i, j := int(fi.AtVec(0)), int(fj.AtVec(0))
	if _, edge := o.adj[i][j]; edge {
		return 1, nil
	}

	return 0, nil
}

// faultyModel fails every prediction.
type faultyModel struct{ oracleModel }

var errPredict = errors.New("predict failed")

func (f *faultyModel) PredictNew(_, _ mat.Vector) (float64, error) {
	return 0, errPredict
}

// TestEvaluate_Validation covers argument rejection.
func TestEvaluate_Validation(t *testing.T) {
	m := ringWithChords(t, 10)
	model := &oracleModel{adj: m.NeighborSets()}

	_, err := eval.Evaluate(nil, m, idFeatures(10), []float64{0.5}, 1, 1)
	assert.ErrorIs(t, err, eval.ErrNilModel)

	_, err = eval.Evaluate(model, nil, idFeatures(10), []float64{0.5}, 1, 1)
	assert.ErrorIs(t, err, eval.ErrNilMatrix)

	_, err = eval.Evaluate(model, m, idFeatures(10), nil, 1, 1)
	assert.ErrorIs(t, err, eval.ErrInvalidOptions, "no proportions")

	_, err = eval.Evaluate(model, m, idFeatures(10), []float64{0.5}, 0, 1)
	assert.ErrorIs(t, err, eval.ErrInvalidOptions, "zero trials")
}

// TestEvaluate_PerfectModel: an oracle scorer must reach AUC 1.0 with
// zero variance on every proportion, and the model must be reset and
// fitted once per trial.
func TestEvaluate_PerfectModel(t *testing.T) {
	const n = 50
	m := ringWithChords(t, n)
	model := &oracleModel{adj: m.NeighborSets()}

	proportions := []float64{0.4, 0.6}
	const trials = 3
	rep, err := eval.Evaluate(model, m, idFeatures(n), proportions, trials, 2026)
	require.NoError(t, err)

	require.Equal(t, proportions, rep.Proportions)
	require.Len(t, rep.Micro, 2)
	require.Len(t, rep.Std, 2)
	for i := range proportions {
		assert.Equal(t, 1.0, rep.Micro[i], "oracle must separate classes perfectly")
		assert.Equal(t, 0.0, rep.Std[i], "identical trial scores have zero spread")
	}
	assert.Equal(t, len(proportions)*trials, model.resets)
	assert.Equal(t, len(proportions)*trials, model.fits)
}

// TestEvaluate_SeedDeterminism: same seed, same stateless model ⇒ same
// report.
func TestEvaluate_SeedDeterminism(t *testing.T) {
	const n = 40
	m := ringWithChords(t, n)

	run := func() *eval.Report {
		rep, err := eval.Evaluate(&oracleModel{adj: m.NeighborSets()}, m,
			idFeatures(n), []float64{0.5}, 2, 7)
		require.NoError(t, err)

		return rep
	}
	assert.Equal(t, run(), run())
}

// TestEvaluate_PredictErrorPropagates: collaborator faults must not be
// swallowed.
func TestEvaluate_PredictErrorPropagates(t *testing.T) {
	const n = 30
	m := ringWithChords(t, n)

	_, err := eval.Evaluate(&faultyModel{}, m, idFeatures(n), []float64{0.5}, 1, 3)
	assert.ErrorIs(t, err, errPredict)
}

// TestScore_Validation covers the standalone scorer.
func TestScore_Validation(t *testing.T) {
	_, err := eval.Score(nil, nil, nil, idFeatures(2))
	assert.ErrorIs(t, err, eval.ErrNilModel)

	model := &oracleModel{adj: []map[int]struct{}{{}, {}}}
	_, err = eval.Score(model, []eval.Pair{{I: 0, J: 1}}, []bool{true, false}, idFeatures(2))
	assert.ErrorIs(t, err, eval.ErrDimensionMismatch)
}
