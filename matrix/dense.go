package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// FromDense builds a CSR matrix from a square gonum dense matrix.
//
// Only nonzero entries are materialized, so a CSR built from a dense
// matrix is indistinguishable from one built from the equivalent COO
// triplets: samplers constructed over either produce identical draws.
//
// Returns ErrDimensionMismatch for non-square input and ErrBadWeight for
// negative, NaN or infinite entries.
//
// Complexity: O(N²) scan, O(N + E) storage.
func FromDense(d *mat.Dense) (*CSR, error) {
	r, c := d.Dims()
	if r != c {
		return nil, ErrDimensionMismatch
	}
	if r == 0 {
		return nil, ErrBadSize
	}

	buckets := make([][]entry, r)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := d.At(i, j)
			if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, ErrBadWeight
			}
			if v == 0 {
				continue
			}
			buckets[i] = append(buckets[i], entry{col: j, val: v})
		}
	}

	return fromBuckets(r, buckets), nil
}

// ToDense materializes the matrix as a gonum dense matrix.
// Intended for interop with model collaborators and for tests; the CSR
// form remains the canonical representation.
//
// Complexity: O(N² + E).
func (m *CSR) ToDense() *mat.Dense {
	d := mat.NewDense(m.n, m.n, nil)
	m.Nonzero(func(i, j int, v float64) {
		d.Set(i, j, v)
	})

	return d
}
