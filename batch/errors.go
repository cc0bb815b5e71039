package batch

import "errors"

var (
	// ErrExhausted signals normal end of a batch sequence: the configured
	// number of iterations has been yielded. It is returned by every
	// retrieval past the end and never indicates a fault.
	ErrExhausted = errors.New("batch: sequence exhausted")
	// ErrInvalidOptions indicates a non-positive batch size or iteration
	// count, or a negative number of negatives.
	ErrInvalidOptions = errors.New("batch: invalid options")
	// ErrNilMatrix indicates a nil weight matrix.
	ErrNilMatrix = errors.New("batch: weight matrix must be non-nil")
	// ErrNilSource indicates a nil source handed to Prefetch.
	ErrNilSource = errors.New("batch: source must be non-nil")
)
