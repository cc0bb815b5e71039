package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linkpred/eval"
	"github.com/katalvlaran/linkpred/matrix"
	"github.com/katalvlaran/linkpred/sample"
)

// ringWithChords builds a directed n-ring plus chords i→(i+7)%n for a
// denser but still sparse test graph.
func ringWithChords(t *testing.T, n int) *matrix.CSR {
	t.Helper()
	var rows, cols []int
	var vals []float64
	for i := 0; i < n; i++ {
		rows = append(rows, i, i)
		cols = append(cols, (i+1)%n, (i+7)%n)
		vals = append(vals, 1, 0.5)
	}
	m, err := matrix.New(n, rows, cols, vals)
	require.NoError(t, err)

	return m
}

// idFeatures returns one feature row per node holding the node id, so
// stub models can recover ids from feature vectors.
func idFeatures(n int) *mat.Dense {
	f := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		f.Set(i, 0, float64(i))
	}

	return f
}

// TestSplitNodes_Validation covers argument rejection.
func TestSplitNodes_Validation(t *testing.T) {
	m := ringWithChords(t, 10)

	_, err := eval.SplitNodes(nil, idFeatures(10), 0.5, nil)
	assert.ErrorIs(t, err, eval.ErrNilMatrix)

	_, err = eval.SplitNodes(m, idFeatures(10), 0, nil)
	assert.ErrorIs(t, err, eval.ErrBadRatio)
	_, err = eval.SplitNodes(m, idFeatures(10), 1, nil)
	assert.ErrorIs(t, err, eval.ErrBadRatio)

	_, err = eval.SplitNodes(m, idFeatures(9), 0.5, nil)
	assert.ErrorIs(t, err, eval.ErrDimensionMismatch)
}

// TestSplitNodes_Structure verifies the partition invariants on a
// mid-sized graph: train side confined to kept nodes, test pairs confined
// to held-out nodes, negatives are genuine non-edges, classes alternate.
func TestSplitNodes_Structure(t *testing.T) {
	const n = 60
	m := ringWithChords(t, n)
	adj := m.NeighborSets()

	sp, err := eval.SplitNodes(m, idFeatures(n), 0.5, sample.New(404))
	require.NoError(t, err)

	// Kept bookkeeping is consistent.
	require.Equal(t, sp.TrainWeights.N(), len(sp.Kept))
	rows, width := sp.TrainFeatures.Dims()
	assert.Equal(t, len(sp.Kept), rows)
	assert.Equal(t, 1, width)
	for r, old := range sp.Kept {
		assert.Equal(t, float64(old), sp.TrainFeatures.At(r, 0),
			"train feature row %d must be node %d's row", r, old)
	}

	heldOut := make(map[int]bool, n)
	for i := 0; i < n; i++ {
		heldOut[i] = true
	}
	for _, old := range sp.Kept {
		delete(heldOut, old)
	}
	require.NotEmpty(t, heldOut, "seed must hold out some nodes")

	// Test pairs: alternating (positive, negative), all in held-out space.
	require.Equal(t, len(sp.TestPairs), len(sp.TestClasses))
	require.NotZero(t, len(sp.TestPairs))
	require.Zero(t, len(sp.TestPairs)%2, "pairs come in positive/negative couples")
	for k, p := range sp.TestPairs {
		assert.True(t, heldOut[p.I], "test pair %d endpoint %d leaked from train side", k, p.I)
		assert.True(t, heldOut[p.J], "test pair %d endpoint %d leaked from train side", k, p.J)
		if sp.TestClasses[k] {
			_, edge := adj[p.I][p.J]
			assert.True(t, edge, "positive test pair %d must be an observed edge", k)
		} else {
			assert.NotEqual(t, p.I, p.J, "negative test pair %d is a self-pair", k)
			_, edge := adj[p.I][p.J]
			assert.False(t, edge, "negative test pair %d is an observed edge", k)
		}
	}

	// Train pairs: train index space, negatives avoid train neighborhoods.
	trainAdj := sp.TrainWeights.NeighborSets()
	require.Equal(t, len(sp.TrainPairs), len(sp.TrainClasses))
	for k, p := range sp.TrainPairs {
		require.Less(t, p.I, sp.TrainWeights.N())
		require.Less(t, p.J, sp.TrainWeights.N())
		if !sp.TrainClasses[k] {
			assert.NotEqual(t, p.I, p.J)
			_, edge := trainAdj[p.I][p.J]
			assert.False(t, edge, "negative train pair %d is an observed edge", k)
		}
	}
}

// TestSplitNodes_SeedDeterminism verifies the same seed reproduces the
// same partition.
func TestSplitNodes_SeedDeterminism(t *testing.T) {
	const n = 40
	m := ringWithChords(t, n)

	a, err := eval.SplitNodes(m, idFeatures(n), 0.4, sample.New(99))
	require.NoError(t, err)
	b, err := eval.SplitNodes(m, idFeatures(n), 0.4, sample.New(99))
	require.NoError(t, err)

	assert.Equal(t, a.Kept, b.Kept)
	assert.Equal(t, a.TestPairs, b.TestPairs)
	assert.Equal(t, a.TestClasses, b.TestClasses)
	assert.Equal(t, a.TrainPairs, b.TrainPairs)
}

// TestSplitNodes_RetryBudget: on a complete graph every held-out pair is
// an edge, so negative-pair sampling must give up with ErrRetryBudget
// instead of spinning.
func TestSplitNodes_RetryBudget(t *testing.T) {
	const n = 30
	var rows, cols []int
	var vals []float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			rows = append(rows, i)
			cols = append(cols, j)
			vals = append(vals, 1)
		}
	}
	m, err := matrix.New(n, rows, cols, vals)
	require.NoError(t, err)

	_, err = eval.SplitNodes(m, idFeatures(n), 0.2, sample.New(8))
	assert.ErrorIs(t, err, eval.ErrRetryBudget)
}
