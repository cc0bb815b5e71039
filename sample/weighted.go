package sample

import (
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Weighted draws indices from a fixed discrete probability distribution.
//
// Description:
//
//	Given a vector of non-negative weights w (not necessarily normalized),
//	Draw returns index i with probability w[i] / sum(w). The normalized
//	cumulative sum is computed once at construction; each draw samples a
//	uniform value u ∈ [0,1) and locates the first CDF entry strictly
//	greater than u (side=right semantics, so entries with zero weight are
//	never selected).
//
// Invariants:
//   - cdf is monotone non-decreasing.
//   - cdf[len(cdf)-1] == 1.0 exactly (forced after normalization), so a
//     draw can never fall off the end of the table.
//
// Complexity:
//
//	Construction O(k); Draw O(log k).
type Weighted struct {
	cdf []float64
	rng *rand.Rand
}

// NewWeighted builds a Weighted sampler from weights.
// rng may be nil, in which case a deterministic default stream is used.
//
// Errors:
//   - ErrNoWeights      — weights is empty.
//   - ErrBadWeight      — a weight is negative, NaN or infinite.
//   - ErrZeroWeightSum  — all weights are zero.
//
// The all-zero case is rejected rather than left undefined; RowWise
// guarantees it never occurs by substituting a self-loop distribution.
func NewWeighted(weights []float64, rng *rand.Rand) (*Weighted, error) {
	if len(weights) == 0 {
		return nil, ErrNoWeights
	}
	var sum float64
	for _, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, ErrBadWeight
		}
		sum += w
	}
	if sum == 0 {
		return nil, ErrZeroWeightSum
	}
	if rng == nil {
		rng = New(0)
	}

	cdf := make([]float64, len(weights))
	floats.CumSum(cdf, weights)
	floats.Scale(1/sum, cdf)
	// Pin the final entry so u ∈ [0,1) always lands inside the table,
	// whatever rounding the normalization introduced.
	cdf[len(cdf)-1] = 1.0

	return &Weighted{cdf: cdf, rng: rng}, nil
}

// Len returns the number of entries in the distribution.
func (w *Weighted) Len() int { return len(w.cdf) }

// Draw returns an index into the original weight vector, selected with
// probability proportional to its weight.
//
// Complexity: O(log k).
func (w *Weighted) Draw() int {
	u := w.rng.Float64()

	// First index whose cumulative sum exceeds u. Zero-weight entries
	// have cdf[i] == cdf[i-1] ≤ u and are skipped by the strict compare.
	return sort.Search(len(w.cdf), func(i int) bool { return w.cdf[i] > u })
}
