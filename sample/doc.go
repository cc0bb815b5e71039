// Package sample implements weighted random sampling over sparse
// transition distributions.
//
// Two samplers are provided:
//
//   - Weighted — draws an index from a fixed discrete distribution given
//     by a vector of non-negative weights. The normalized cumulative sum
//     is computed once at construction (O(k)); each Draw is an
//     inverse-CDF binary search (O(log k)). This amortizes setup across
//     an unbounded, a-priori-unknown number of draws, the typical shape
//     of stochastic training loops.
//
//   - RowWise — one Weighted sampler per row of a CSR weight matrix,
//     representing per-node transition distributions. A row with no
//     outgoing weight degenerates to a self-loop: Sample(i) always
//     returns i for such rows.
//
// Randomness is explicit everywhere: constructors accept a *rand.Rand
// (nil selects a deterministic default stream), and the package exposes
// New/Derive factories so callers can reproduce draws from a seed and
// decorrelate parallel streams.
package sample
