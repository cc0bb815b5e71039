package batch

import (
	"math/rand"

	"github.com/katalvlaran/linkpred/matrix"
	"github.com/katalvlaran/linkpred/sample"
)

// Generator yields a finite sequence of training batches from a weight
// matrix.
//
// Description:
//
//	Each batch is assembled in four steps:
//	 1. Draw BatchSize source nodes uniformly from [0, N).
//	 2. For each source, draw one positive target from the source row's
//	    transition distribution (label LabelPositive). Sources are tiled
//	    across the negative block, so every negative shares its source
//	    with a positive.
//	 3. Draw BatchSize×NumberNegative negative targets uniformly from
//	    [0, N), independent of the source. True edges are not rejected;
//	    this is an accepted approximation.
//	 4. Apply one random permutation to U, V and X alike, removing any
//	    positional correlation between the positive and negative blocks.
//
//	The sequence yields exactly NumberIterations batches and then returns
//	ErrExhausted from every further Next call. A Generator is not
//	restartable and not safe for concurrent use; wrap it in a Prefetch
//	for overlap with consumption.
type Generator struct {
	rw      *sample.RowWise
	rng     *rand.Rand
	opts    Options
	n       int
	yielded int
}

// NewGenerator validates opts, builds the per-row samplers once (O(E)),
// and returns a ready generator.
//
// Errors:
//   - ErrNilMatrix     — m is nil.
//   - ErrInvalidOptions — nonsensical sizes or counts.
func NewGenerator(m *matrix.CSR, opts Options) (*Generator, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	rng := sample.New(opts.Seed)
	rw, err := sample.NewRowWise(m, rng)
	if err != nil {
		return nil, err
	}

	return &Generator{
		rw:   rw,
		rng:  rng,
		opts: opts,
		n:    m.N(),
	}, nil
}

// Next produces the next batch, or ErrExhausted after NumberIterations
// batches. Exhaustion is the only termination path; Next never returns a
// partial batch.
//
// Complexity: O(L log k) per call for L = BatchSize×(1+NumberNegative).
func (g *Generator) Next() (Batch, error) {
	if g.yielded >= g.opts.NumberIterations {
		return Batch{}, ErrExhausted
	}

	size := g.opts.BatchSize
	total := size * (1 + g.opts.NumberNegative)
	u := make([]int, total)
	v := make([]int, total)
	x := make([]float64, total)

	// Step 1: uniform sources, tiled over the negative block so slot
	// b+r·size shares its source with positive slot b.
	for b := 0; b < size; b++ {
		src := g.rng.Intn(g.n)
		for r := 0; r <= g.opts.NumberNegative; r++ {
			u[b+r*size] = src
		}
	}

	// Step 2: positive targets from the row distributions.
	for b := 0; b < size; b++ {
		tgt, err := g.rw.Sample(u[b])
		if err != nil {
			return Batch{}, err
		}
		v[b] = tgt
		x[b] = LabelPositive
	}

	// Step 3: uniform negative targets, no true-edge rejection.
	for k := size; k < total; k++ {
		v[k] = g.rng.Intn(g.n)
		x[k] = LabelNegative
	}

	// Step 4: one permutation applied to all three arrays keeps them
	// aligned while destroying block order.
	perm := g.rng.Perm(total)
	out := Batch{
		U: make([]int, total),
		V: make([]int, total),
		X: make([]float64, total),
	}
	for i, p := range perm {
		out.U[i] = u[p]
		out.V[i] = v[p]
		out.X[i] = x[p]
	}

	g.yielded++

	return out, nil
}

// Remaining returns how many batches the sequence will still yield.
func (g *Generator) Remaining() int { return g.opts.NumberIterations - g.yielded }
