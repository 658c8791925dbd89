//go:build !gonum && !gorgonia
// +build !gonum,!gorgonia

package compute

import "gonum.org/v1/gonum/floats"

// Backend names the kernel implementation selected at build time.
const Backend = "go"

func dot(a, b []float64) (sum float64) {
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// norm scales while accumulating so large or tiny components neither overflow nor underflow.
func norm(vector []float64) float64 {
	return floats.Norm(vector, 2)
}

// matVec multiplies the row-major rows x cols matrix with x.
func matVec(matrix []float64, rows, cols int, x []float64) ([]float64, error) {
	out := make([]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = dot(matrix[i*cols:(i+1)*cols], x)
	}
	return out, nil
}
