package sample

import "errors"

var (
	// ErrNoWeights indicates an empty weight vector.
	ErrNoWeights = errors.New("sample: weight vector must be non-empty")
	// ErrZeroWeightSum indicates that all weights are zero, so no
	// distribution can be formed. RowWise never triggers this: empty rows
	// fall back to a self-loop before a Weighted sampler is built.
	ErrZeroWeightSum = errors.New("sample: weights must contain at least one positive entry")
	// ErrBadWeight indicates a negative, NaN or infinite weight.
	ErrBadWeight = errors.New("sample: weights must be finite and non-negative")
	// ErrIndexOutOfRange indicates a row index outside [0, N).
	ErrIndexOutOfRange = errors.New("sample: row index out of range")
	// ErrNilMatrix indicates a nil weight matrix.
	ErrNilMatrix = errors.New("sample: weight matrix must be non-nil")
)
