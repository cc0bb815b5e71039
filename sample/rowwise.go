package sample

import (
	"math/rand"

	"github.com/katalvlaran/linkpred/matrix"
)

// RowWise samples column indices from the per-row transition
// distributions of a sparse weight matrix.
//
// Description:
//
//	For each row i of the matrix, the nonzero entries are L1-normalized
//	into a probability vector over their column indices and backed by one
//	Weighted sampler. Sample(i) then draws a column j with probability
//	M[i][j] / sum(M[i]). Rows with no outgoing weight degenerate to the
//	single choice {i: 1}, so Sample(i) == i always holds for them.
//
//	Only nonzero entries materialize distribution entries, so a RowWise
//	built from a dense or a sparse representation of the same matrix
//	behaves identically.
//
// Complexity:
//
//	Construction O(E) for E nonzero entries; Sample(i) O(log k_i).
type RowWise struct {
	choices [][]int
	rc      []*Weighted
}

// NewRowWise builds one sampler per row of m.
// rng may be nil for a deterministic default stream; all rows share it,
// so RowWise must not be used from multiple goroutines.
//
// Errors:
//   - ErrNilMatrix — m is nil.
func NewRowWise(m *matrix.CSR, rng *rand.Rand) (*RowWise, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if rng == nil {
		rng = New(0)
	}

	n := m.N()
	rw := &RowWise{
		choices: make([][]int, n),
		rc:      make([]*Weighted, n),
	}
	selfLoop := []float64{1}
	for i := 0; i < n; i++ {
		cols, vals, err := m.Row(i)
		if err != nil {
			return nil, err
		}
		if len(cols) == 0 {
			// Isolated node: the only transition is back to itself.
			rw.choices[i] = []int{i}
			vals = selfLoop
		} else {
			rw.choices[i] = cols
		}
		// NewWeighted normalizes, so raw row weights pass through as-is.
		if rw.rc[i], err = NewWeighted(vals, rng); err != nil {
			return nil, err
		}
	}

	return rw, nil
}

// N returns the number of rows.
func (rw *RowWise) N() int { return len(rw.rc) }

// Sample draws a column index from row i's distribution.
// Returns ErrIndexOutOfRange for i outside [0, N).
//
// Complexity: O(log k_i).
func (rw *RowWise) Sample(i int) (int, error) {
	if i < 0 || i >= len(rw.rc) {
		return 0, ErrIndexOutOfRange
	}

	return rw.choices[i][rw.rc[i].Draw()], nil
}
