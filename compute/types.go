package compute

import (
	"fmt"
	"math"
	"slices"
)

// Vector is an ordered sequence of real numbers. Every operation in this package returns new vectors and never mutates its inputs.
type Vector []float64

func (v Vector) Clone() Vector {
	return slices.Clone(v)
}

// Matrix holds one Vector per row, e.g. one row of scores per query token.
type Matrix []Vector

func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	clone := make(Matrix, len(m))
	for i, row := range m {
		clone[i] = row.Clone()
	}
	return clone
}

// Dims returns the number of rows and the length of the first row.
func (m Matrix) Dims() (rows, cols int) {
	if len(m) == 0 {
		return 0, 0
	}
	return len(m), len(m[0])
}

// flatten copies the matrix into a row-major slice, rejecting rows that are not cols long.
func (m Matrix) flatten(cols int) ([]float64, error) {
	flat := make([]float64, 0, len(m)*cols)
	for i, row := range m {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has length %d, expected %d", ErrInvalidInput, i, len(row), cols)
		}
		flat = append(flat, row...)
	}
	return flat, nil
}

func isFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}
