// Package batch produces training batches of (source, target, label)
// triples for embedding learning via negative sampling.
//
// A Generator yields a lazy, finite, non-restartable sequence of batches
// from a sparse weight matrix. Per batch it draws BatchSize source nodes
// uniformly, one positive target per source from the row's transition
// distribution (label −1), and BatchSize×NumberNegative uniform negative
// targets (label +1), then applies one global permutation so positive
// and negative blocks carry no positional signal. Uniform negatives are
// drawn without rejecting accidental true edges — a deliberate, cheap
// approximation inherited from the sampling design.
//
// Prefetch wraps any batch source with a single background worker that
// computes batch N+1 while the caller consumes batch N (look-ahead of
// exactly one). The wrapped sequence has identical elements and order;
// producer errors surface on the next retrieval after any already-queued
// element.
//
// End of sequence is signaled by ErrExhausted, which is normal
// termination rather than a fault.
package batch
