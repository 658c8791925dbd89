//go:build gonum && !gorgonia
// +build gonum,!gorgonia

package compute

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

const Backend = "gonum"

func dot(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	return blas64.Implementation().Ddot(len(a), a, 1, b, 1)
}

func norm(vector []float64) float64 {
	if len(vector) == 0 {
		return 0
	}
	return blas64.Implementation().Dnrm2(len(vector), vector, 1)
}

// matVec computes matrix · x with a single Dgemv call.
func matVec(matrix []float64, rows, cols int, x []float64) ([]float64, error) {
	out := make([]float64, rows)
	if rows == 0 || cols == 0 {
		return out, nil
	}
	blas64.Implementation().Dgemv(
		blas.NoTrans,
		rows, cols,
		1.0, matrix, cols,
		x, 1,
		0.0, out, 1,
	)
	return out, nil
}
