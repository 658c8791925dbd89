//go:build gorgonia
// +build gorgonia

package compute

import (
	"fmt"
	"slices"

	_ "github.com/expki/go-attention/env"
	"gonum.org/v1/gonum/floats"
	"gorgonia.org/gorgonia"
	"gorgonia.org/tensor"
)

const Backend = "gorgonia"

func dot(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	ta := tensor.New(tensor.WithBacking(slices.Clone(a)), tensor.WithShape(len(a)))
	tb := tensor.New(tensor.WithBacking(slices.Clone(b)), tensor.WithShape(len(b)))
	result, err := ta.Inner(tb)
	if err != nil {
		panic(err)
	}
	return result.(float64)
}

func norm(vector []float64) float64 {
	return floats.Norm(vector, 2)
}

// matVec computes matrix · x on a gorgonia graph.
func matVec(matrix []float64, rows, cols int, x []float64) ([]float64, error) {
	// gorgonia collapses unit dimensions into scalars, so tiny shapes stay on the plain loop
	if rows < 2 || cols < 2 {
		out := make([]float64, rows)
		for i := 0; i < rows; i++ {
			out[i] = dot(matrix[i*cols:(i+1)*cols], x)
		}
		return out, nil
	}

	g := gorgonia.NewGraph()

	// Key matrix
	keysNode := gorgonia.NewMatrix(g, tensor.Float64,
		gorgonia.WithShape(rows, cols),
		gorgonia.WithValue(tensor.New(tensor.WithBacking(matrix), tensor.WithShape(rows, cols))),
		gorgonia.WithName("keys"),
	)

	// Query vector
	queryNode := gorgonia.NewVector(g, tensor.Float64,
		gorgonia.WithShape(cols),
		gorgonia.WithValue(tensor.New(tensor.WithBacking(slices.Clone(x)), tensor.WithShape(cols))),
		gorgonia.WithName("query"),
	)

	// Matrix vector multiplication
	scoresNode, err := gorgonia.Mul(keysNode, queryNode)
	if err != nil {
		return nil, fmt.Errorf("build score graph: %v", err)
	}

	// Execute the graph
	machine := gorgonia.NewTapeMachine(g)
	defer machine.Close()
	err = machine.RunAll()
	if err != nil {
		return nil, fmt.Errorf("run score graph: %v", err)
	}

	return slices.Clone(scoresNode.Value().Data().([]float64)), nil
}
