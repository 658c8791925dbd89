package compute

import "errors"

var (
	// ErrInvalidInput is returned for arguments the computation is undefined for: empty sequences, mismatched lengths, non-positive temperatures or scales.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDegenerateResult is returned when a well-formed input has no meaningful result, such as normalizing a zero vector.
	ErrDegenerateResult = errors.New("degenerate result")
)
