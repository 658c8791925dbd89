package compute

import (
	"fmt"

	"github.com/expki/go-attention/logger"
)

// DotProduct returns the sum of a[i]*b[i]. Vectors of different length are rejected.
//
// Example:
//
//	DotProduct(Vector{1, 2, 3}, Vector{4, 5, 6}) // 32
func DotProduct(a, b Vector) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: dot product of vectors with length %d and %d", ErrInvalidInput, len(a), len(b))
	}
	return dot(a, b), nil
}

// Magnitude returns the Euclidean norm of the vector.
func Magnitude(vector Vector) float64 {
	return norm(vector)
}

// Normalize returns the unit vector pointing in the same direction.
// A vector without a finite, non-zero magnitude (including the empty vector) yields ErrDegenerateResult.
func Normalize(vector Vector) (Vector, error) {
	magnitude := norm(vector)
	if magnitude == 0 || !isFinite(magnitude) {
		logger.Sugar().Debugf("normalize rejected vector of length %d with magnitude %v", len(vector), magnitude)
		return nil, fmt.Errorf("%w: cannot normalize vector with magnitude %v", ErrDegenerateResult, magnitude)
	}
	out := make(Vector, len(vector))
	for i, value := range vector {
		out[i] = value / magnitude
	}
	return out, nil
}
