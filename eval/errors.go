package eval

import "errors"

var (
	// ErrNilModel indicates a nil model collaborator.
	ErrNilModel = errors.New("eval: model must be non-nil")
	// ErrNilMatrix indicates a nil adjacency matrix.
	ErrNilMatrix = errors.New("eval: adjacency matrix must be non-nil")
	// ErrBadRatio indicates a holdout ratio outside (0, 1).
	ErrBadRatio = errors.New("eval: holdout ratio must lie strictly between 0 and 1")
	// ErrDimensionMismatch indicates features whose row count differs from
	// the number of nodes, or misaligned classes/scores.
	ErrDimensionMismatch = errors.New("eval: dimension mismatch")
	// ErrNoSamples indicates an empty score/class set.
	ErrNoSamples = errors.New("eval: no samples to score")
	// ErrDegenerateClasses indicates that only one class is present, so a
	// ROC curve is undefined.
	ErrDegenerateClasses = errors.New("eval: both classes must be present for ROC-AUC")
	// ErrRetryBudget indicates that rejection sampling of a negative pair
	// exhausted its attempt budget (near-complete neighborhood or a
	// held-out set that is too small).
	ErrRetryBudget = errors.New("eval: negative-pair rejection sampling exhausted its retry budget")
	// ErrInvalidOptions indicates non-positive trials or an empty
	// proportions list.
	ErrInvalidOptions = errors.New("eval: invalid evaluation options")
)
