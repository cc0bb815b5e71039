// Package linkpred is a toolkit for training-data generation and quality
// evaluation of node-embedding models on weighted graphs.
//
// What it provides:
//
//   - Weighted sampling: draw node indices proportionally to a sparse
//     co-occurrence/adjacency distribution, with O(log k) per draw after a
//     one-time O(k) setup (inverse-CDF search).
//   - Batch generation: lazy, finite streams of (source, target, label)
//     triples mixing positive pairs (drawn from per-row transition
//     distributions) and uniform negative pairs, shuffled per batch.
//   - Asynchronous prefetch: a single-worker look-ahead wrapper that
//     overlaps production of the next batch with consumption of the
//     current one.
//   - Link-prediction evaluation: node-holdout train/test splits and
//     micro-averaged ROC-AUC scoring of an embedding model.
//
// Everything is organized under four subpackages:
//
//	matrix/ — immutable CSR weight matrices + dense (gonum/mat) interop
//	sample/ — Weighted and RowWise samplers, deterministic RNG utilities
//	batch/  — Generator and Prefetch for training batches
//	eval/   — train/test node splits, ROC-AUC, evaluation loops
//
// Determinism: no package touches global random state. Every stochastic
// entry point accepts an explicit seed or *rand.Rand, so the same seed
// reproduces the same batches and the same evaluation splits.
//
//	go get github.com/katalvlaran/linkpred
package linkpred
