package batch

// Label values attached to generated pairs. The sign convention is fixed:
// positive (observed) pairs carry −1, negative (uniform) pairs carry +1.
// Consumers rely on it exactly as-is.
const (
	// LabelPositive marks a pair drawn from the observed transition
	// distribution.
	LabelPositive = -1.0
	// LabelNegative marks a uniformly drawn contrastive pair.
	LabelNegative = 1.0
)

// Batch holds three aligned sequences of equal length
// BatchSize × (1 + NumberNegative): source node ids U, target node ids V,
// and labels X. A batch is ephemeral — produced and consumed per
// iteration, never persisted.
type Batch struct {
	// U holds source node ids.
	U []int
	// V holds target node ids.
	V []int
	// X holds labels: LabelPositive or LabelNegative, aligned with U/V.
	X []float64
}

// Len returns the number of triples in the batch.
func (b Batch) Len() int { return len(b.X) }

// Options configures a Generator.
//   - NumberNegative: uniform negative pairs per positive pair (≥ 0).
//   - NumberIterations: total batches to yield before exhaustion (≥ 1).
//   - BatchSize: positive pairs per batch (≥ 1).
//   - Seed: RNG seed; 0 selects the fixed default stream.
type Options struct {
	NumberNegative   int
	NumberIterations int
	BatchSize        int
	Seed             int64
}

// Default generation parameters.
const (
	// DefaultNumberNegative is the usual negative-to-positive ratio for
	// embedding training.
	DefaultNumberNegative = 5
	// DefaultNumberIterations bounds the sequence length.
	DefaultNumberIterations = 1000
	// DefaultBatchSize is the number of positive pairs per batch.
	DefaultBatchSize = 128
)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		NumberNegative:   DefaultNumberNegative,
		NumberIterations: DefaultNumberIterations,
		BatchSize:        DefaultBatchSize,
		Seed:             0,
	}
}

// validate reports whether the options describe a producible sequence.
func (o Options) validate() error {
	if o.BatchSize < 1 || o.NumberIterations < 1 || o.NumberNegative < 0 {
		return ErrInvalidOptions
	}

	return nil
}
