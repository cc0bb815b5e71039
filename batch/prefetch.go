package batch

import (
	"errors"

	"golang.org/x/sync/errgroup"
)

// Source is any lazy sequence of batches. Next returns the next element,
// or ErrExhausted (or another error) when the sequence ends. Generator
// satisfies Source.
type Source interface {
	Next() (Batch, error)
}

// Prefetch wraps a Source with a single-slot look-ahead computed on a
// background worker.
//
// Scheduling model: the worker computes the next element while the
// current one is handed to the caller; the handoff channel is unbuffered,
// so at most one element is ever computed ahead. The wrapped sequence has
// identical elements in identical order.
//
// Failure semantics: an error raised while producing an element is
// delivered in-band on the retrieval that reaches it, after any
// already-queued element — never masked by the prefetch. After the
// terminal error the worker exits; there is no cancellation primitive,
// since exhausting the source is the only termination path and the
// worker holds no resources beyond its goroutine.
type Prefetch struct {
	ch  chan result
	grp *errgroup.Group
}

// result is the worker→consumer handoff unit.
type result struct {
	b   Batch
	err error
}

// NewPrefetch starts the background worker and returns the wrapper.
// Returns ErrNilSource for a nil src.
func NewPrefetch(src Source) (*Prefetch, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	p := &Prefetch{
		ch:  make(chan result),
		grp: new(errgroup.Group),
	}
	p.grp.Go(func() error {
		defer close(p.ch)
		for {
			b, err := src.Next()
			p.ch <- result{b: b, err: err}
			if err != nil {
				if errors.Is(err, ErrExhausted) {
					return nil
				}

				return err
			}
		}
	})

	return p, nil
}

// Next returns the next element of the wrapped sequence. After the
// source terminates, every call returns ErrExhausted (for normal
// termination) or the source's terminal error exactly once followed by
// ErrExhausted.
func (p *Prefetch) Next() (Batch, error) {
	r, ok := <-p.ch
	if !ok {
		return Batch{}, ErrExhausted
	}

	return r.b, r.err
}

// Wait blocks until the worker has exited and reports the first
// production fault, or nil when the sequence ended by normal exhaustion.
// Call after draining the sequence.
func (p *Prefetch) Wait() error {
	return p.grp.Wait()
}
