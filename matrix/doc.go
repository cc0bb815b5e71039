// Package matrix provides the immutable sparse weight matrix consumed by
// the sample, batch and eval packages.
//
// A weight matrix is a square N×N matrix of non-negative entries, where
// entry (i,j) holds the affinity (co-occurrence count, edge weight, ...)
// between nodes i and j. The matrix may be asymmetric. Zero entries carry
// no probability mass and are never materialized.
//
// The only concrete representation is CSR (compressed sparse row), built
// once from COO triplets or from a dense gonum mat.Dense, and read-only
// afterwards. CSR keeps per-row access O(1) to the slice of nonzero
// (column, value) pairs, which is exactly the access pattern of the
// per-row samplers in package sample.
//
// Use New for sparse ingestion, FromDense when the data already lives in
// a gonum matrix, Submatrix for node-holdout splits, and NeighborSets for
// rejection sampling against observed edges.
package matrix
