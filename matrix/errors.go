package matrix

import "errors"

var (
	// ErrDimensionMismatch indicates COO slices of differing lengths or a
	// non-square dense input.
	ErrDimensionMismatch = errors.New("matrix: rows, cols and vals must describe a square matrix")
	// ErrIndexOutOfRange indicates a row or column index outside [0, N).
	ErrIndexOutOfRange = errors.New("matrix: index out of range")
	// ErrBadWeight indicates a negative, NaN or infinite weight.
	ErrBadWeight = errors.New("matrix: weights must be finite and non-negative")
	// ErrBadSize indicates a non-positive matrix size.
	ErrBadSize = errors.New("matrix: size must be positive")
)
