// Package eval measures link-prediction quality of node-embedding models.
//
// The evaluation protocol is node holdout: a Bernoulli(ratio) mask keeps
// a training subset of nodes, the model is fitted on the induced
// submatrix and the kept feature rows, and test pairs are formed from
// edges among the held-out nodes plus rejection-sampled non-edges. The
// model scores each pair and the pooled scores are summarized by
// micro-averaged ROC-AUC (all samples pooled before the curve is built).
//
// The model itself is an external collaborator behind the Model
// interface; this package owns only the bookkeeping around it. Negative
// test pairs are drawn with a bounded retry budget — pathological inputs
// (near-complete neighborhoods) surface ErrRetryBudget instead of
// looping forever.
//
// All randomness flows through an explicit *rand.Rand or seed, so splits
// and subsampling are reproducible.
package eval
