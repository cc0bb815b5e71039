package matrix

import (
	"math"
	"sort"
)

// CSR is a compressed-sparse-row square matrix of non-negative weights.
//
// Layout: for row i, the nonzero entries live in cols[rowPtr[i]:rowPtr[i+1]]
// and vals[rowPtr[i]:rowPtr[i+1]], with column indices strictly increasing
// within each row. Explicit zeros are dropped at construction and duplicate
// (row, col) triplets are merged by addition, so the stored entries are
// exactly the nonzero structure of the matrix.
//
// CSR is immutable after construction. The Row accessor returns views into
// the internal slices; callers must not modify them.
//
// Memory: O(N + E) for N nodes and E nonzero entries.
type CSR struct {
	n      int
	rowPtr []int
	cols   []int
	vals   []float64
}

// entry is a (column, value) pair used during ingestion.
type entry struct {
	col int
	val float64
}

// New builds a CSR matrix of size n×n from COO triplets.
//
// Rules applied during ingestion:
//  1. rows, cols and vals must have equal length (ErrDimensionMismatch).
//  2. Every index must lie in [0, n) (ErrIndexOutOfRange).
//  3. Every value must be finite and ≥ 0 (ErrBadWeight).
//  4. Zero values are dropped; duplicates are summed; columns are sorted.
//
// Complexity: O(E log k) where k is the largest row population.
func New(n int, rows, cols []int, vals []float64) (*CSR, error) {
	if n <= 0 {
		return nil, ErrBadSize
	}
	if len(rows) != len(cols) || len(cols) != len(vals) {
		return nil, ErrDimensionMismatch
	}

	// Bucket valid entries by row, skipping explicit zeros.
	buckets := make([][]entry, n)
	for k := range rows {
		i, j, v := rows[k], cols[k], vals[k]
		if i < 0 || i >= n || j < 0 || j >= n {
			return nil, ErrIndexOutOfRange
		}
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrBadWeight
		}
		if v == 0 {
			continue
		}
		buckets[i] = append(buckets[i], entry{col: j, val: v})
	}

	return fromBuckets(n, buckets), nil
}

// fromBuckets flattens per-row entry buckets into CSR arrays,
// sorting each row by column and merging duplicates by addition.
func fromBuckets(n int, buckets [][]entry) *CSR {
	m := &CSR{
		n:      n,
		rowPtr: make([]int, n+1),
	}
	for i, row := range buckets {
		sort.Slice(row, func(a, b int) bool { return row[a].col < row[b].col })
		for k, e := range row {
			if k > 0 && e.col == m.cols[len(m.cols)-1] {
				m.vals[len(m.vals)-1] += e.val
				continue
			}
			m.cols = append(m.cols, e.col)
			m.vals = append(m.vals, e.val)
		}
		m.rowPtr[i+1] = len(m.cols)
	}

	return m
}

// N returns the number of nodes (rows/columns).
func (m *CSR) N() int { return m.n }

// NNZ returns the number of stored nonzero entries.
func (m *CSR) NNZ() int { return len(m.vals) }

// Row returns the nonzero column indices and values of row i as read-only
// views. Both slices have equal length; columns are strictly increasing.
// Returns ErrIndexOutOfRange for i outside [0, N).
//
// Complexity: O(1).
func (m *CSR) Row(i int) (cols []int, vals []float64, err error) {
	if i < 0 || i >= m.n {
		return nil, nil, ErrIndexOutOfRange
	}
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]

	return m.cols[lo:hi], m.vals[lo:hi], nil
}

// At returns the weight at (i, j), or zero when no entry is stored.
// Returns ErrIndexOutOfRange for indices outside [0, N).
//
// Complexity: O(log k) via binary search within the row.
func (m *CSR) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, ErrIndexOutOfRange
	}
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	cols := m.cols[lo:hi]
	k := sort.SearchInts(cols, j)
	if k < len(cols) && cols[k] == j {
		return m.vals[lo+k], nil
	}

	return 0, nil
}

// RowSum returns the sum of row i's weights (zero for an empty row).
// Returns ErrIndexOutOfRange for i outside [0, N).
func (m *CSR) RowSum(i int) (float64, error) {
	if i < 0 || i >= m.n {
		return 0, ErrIndexOutOfRange
	}
	var s float64
	for _, v := range m.vals[m.rowPtr[i]:m.rowPtr[i+1]] {
		s += v
	}

	return s, nil
}

// Sum returns the total weight over all entries.
func (m *CSR) Sum() float64 {
	var s float64
	for _, v := range m.vals {
		s += v
	}

	return s
}

// Nonzero calls fn(i, j, v) for every stored entry in row-major order.
// Iteration order is deterministic: rows ascending, columns ascending.
func (m *CSR) Nonzero(fn func(i, j int, v float64)) {
	for i := 0; i < m.n; i++ {
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			fn(i, m.cols[k], m.vals[k])
		}
	}
}

// Submatrix returns the induced submatrix over nodes with keep[i]==true,
// together with the slice of original indices of the kept nodes (kept[r]
// is the original id of new row r). Entries between a kept and a dropped
// node are discarded.
//
// keep must have length N (ErrDimensionMismatch). The kept set may be
// empty, producing a valid 0-entry matrix only when at least one node is
// kept; keeping zero nodes returns ErrBadSize since a 0×0 matrix is not
// representable.
//
// Complexity: O(N + E).
func (m *CSR) Submatrix(keep []bool) (*CSR, []int, error) {
	if len(keep) != m.n {
		return nil, nil, ErrDimensionMismatch
	}

	// Old index → new index mapping; -1 for dropped nodes.
	remap := make([]int, m.n)
	var kept []int
	for i, k := range keep {
		if k {
			remap[i] = len(kept)
			kept = append(kept, i)
		} else {
			remap[i] = -1
		}
	}
	if len(kept) == 0 {
		return nil, nil, ErrBadSize
	}

	sub := &CSR{
		n:      len(kept),
		rowPtr: make([]int, len(kept)+1),
	}
	for r, old := range kept {
		for k := m.rowPtr[old]; k < m.rowPtr[old+1]; k++ {
			if nc := remap[m.cols[k]]; nc >= 0 {
				sub.cols = append(sub.cols, nc)
				sub.vals = append(sub.vals, m.vals[k])
			}
		}
		sub.rowPtr[r+1] = len(sub.cols)
	}

	return sub, kept, nil
}

// NeighborSets returns, for every node, the set of nodes it shares a
// nonzero entry with in either direction (the undirected nonzero
// structure). Self-loops appear in their own set.
//
// Used by eval's rejection sampling to test "is (i,j) an observed edge"
// in O(1).
//
// Complexity: O(N + E) time and space.
func (m *CSR) NeighborSets() []map[int]struct{} {
	sets := make([]map[int]struct{}, m.n)
	for i := range sets {
		sets[i] = make(map[int]struct{})
	}
	m.Nonzero(func(i, j int, _ float64) {
		sets[i][j] = struct{}{}
		sets[j][i] = struct{}{}
	})

	return sets
}
