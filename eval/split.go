package eval

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linkpred/matrix"
	"github.com/katalvlaran/linkpred/sample"
)

// maxNegativeRetries bounds rejection sampling of a single negative pair.
// Exceeding it returns ErrRetryBudget instead of spinning on pathological
// inputs (e.g. a held-out node adjacent to every other held-out node).
const maxNegativeRetries = 1000

// Pair identifies a candidate link between two nodes.
type Pair struct {
	I, J int
}

// Split is the outcome of a node-holdout train/test partition.
//
// Train-side fields are expressed in the compacted train index space
// (0..len(Kept)-1); Kept maps those back to original node ids. Test-side
// pairs stay in the original id space, since test nodes have no train
// index.
type Split struct {
	// TrainWeights is the induced weight submatrix over kept nodes.
	TrainWeights *matrix.CSR
	// TrainFeatures holds one feature row per kept node, in Kept order.
	TrainFeatures *mat.Dense
	// Kept maps train index → original node id.
	Kept []int

	// TestPairs alternates observed edges among held-out nodes with
	// rejection-sampled non-edges; TestClasses marks which is which.
	TestPairs   []Pair
	TestClasses []bool

	// TrainPairs/TrainClasses mirror the test set inside the train
	// submatrix (train index space), for optional train-side scoring.
	TrainPairs   []Pair
	TrainClasses []bool
}

// SplitNodes produces a train/test partition for link prediction by
// sampling nodes.
//
// Algorithm:
//  1. keep[i] ~ Bernoulli(ratio): kept nodes form the training graph.
//  2. TrainWeights = induced submatrix; TrainFeatures = kept feature rows.
//  3. For every edge (i,j) with both endpoints held out, emit a positive
//     test pair and one negative pair drawn from the held-out pool,
//     rejecting self-pairs and observed (undirected) edges, with a
//     bounded retry budget.
//  4. For every edge of the train submatrix, emit a positive train pair
//     and one negative with the same rejection rule against the train
//     neighborhoods.
//
// Errors:
//   - ErrNilMatrix         — m is nil.
//   - ErrBadRatio          — ratio outside (0, 1).
//   - ErrDimensionMismatch — features row count differs from m.N().
//   - ErrRetryBudget       — a negative pair could not be found in
//     maxNegativeRetries attempts.
//   - matrix.ErrBadSize    — the keep mask selected zero nodes.
//
// Complexity: O(N·d + E) expected, where d is the feature width.
func SplitNodes(m *matrix.CSR, features *mat.Dense, ratio float64, rng *rand.Rand) (*Split, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if ratio <= 0 || ratio >= 1 {
		return nil, ErrBadRatio
	}
	if features == nil {
		return nil, ErrDimensionMismatch
	}
	rows, d := features.Dims()
	if rows != m.N() {
		return nil, ErrDimensionMismatch
	}
	if rng == nil {
		rng = sample.New(0)
	}

	// Step 1: Bernoulli keep mask and the held-out pool.
	keep := make([]bool, m.N())
	var held []int
	for i := range keep {
		keep[i] = rng.Float64() < ratio
		if !keep[i] {
			held = append(held, i)
		}
	}

	// Step 2: induced training matrix and features.
	sub, kept, err := m.Submatrix(keep)
	if err != nil {
		return nil, err
	}
	trainFeat := mat.NewDense(len(kept), d, nil)
	for r, old := range kept {
		trainFeat.SetRow(r, mat.Row(nil, old, features))
	}

	sp := &Split{
		TrainWeights:  sub,
		TrainFeatures: trainFeat,
		Kept:          kept,
	}

	// Step 3: test pairs among held-out nodes.
	adj := m.NeighborSets()
	var splitErr error
	m.Nonzero(func(i, j int, _ float64) {
		if splitErr != nil || keep[i] || keep[j] {
			return
		}
		sp.TestPairs = append(sp.TestPairs, Pair{I: i, J: j})
		sp.TestClasses = append(sp.TestClasses, true)

		fi, fj, err := drawNonEdge(i, held, adj, rng)
		if err != nil {
			splitErr = err
			return
		}
		sp.TestPairs = append(sp.TestPairs, Pair{I: fi, J: fj})
		sp.TestClasses = append(sp.TestClasses, false)
	})
	if splitErr != nil {
		return nil, splitErr
	}

	// Step 4: train pairs inside the submatrix.
	trainAdj := sub.NeighborSets()
	sub.Nonzero(func(i, j int, _ float64) {
		if splitErr != nil {
			return
		}
		sp.TrainPairs = append(sp.TrainPairs, Pair{I: i, J: j})
		sp.TrainClasses = append(sp.TrainClasses, true)

		fj, err := drawNonNeighbor(i, sub.N(), trainAdj[i], rng)
		if err != nil {
			splitErr = err
			return
		}
		sp.TrainPairs = append(sp.TrainPairs, Pair{I: i, J: fj})
		sp.TrainClasses = append(sp.TrainClasses, false)
	})
	if splitErr != nil {
		return nil, splitErr
	}

	return sp, nil
}

// drawNonEdge draws a (fi, fj) pair from pool that is neither a self-pair
// nor an observed undirected edge. The first attempt anchors fi at the
// positive pair's source; further attempts redraw both endpoints.
func drawNonEdge(anchor int, pool []int, adj []map[int]struct{}, rng *rand.Rand) (int, int, error) {
	fi := anchor
	fj := pool[rng.Intn(len(pool))]
	for attempt := 0; ; attempt++ {
		if fi != fj {
			if _, edge := adj[fi][fj]; !edge {
				return fi, fj, nil
			}
		}
		if attempt >= maxNegativeRetries {
			return 0, 0, ErrRetryBudget
		}
		fi = pool[rng.Intn(len(pool))]
		fj = pool[rng.Intn(len(pool))]
	}
}

// drawNonNeighbor draws fj uniform over [0, n) that is neither i itself
// nor one of i's neighbors.
func drawNonNeighbor(i, n int, neighbors map[int]struct{}, rng *rand.Rand) (int, error) {
	for attempt := 0; attempt <= maxNegativeRetries; attempt++ {
		fj := rng.Intn(n)
		if fj == i {
			continue
		}
		if _, edge := neighbors[fj]; !edge {
			return fj, nil
		}
	}

	return 0, ErrRetryBudget
}
