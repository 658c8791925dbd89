package compute

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultTemperature leaves the logits unscaled.
const DefaultTemperature = 1.0

// Softmax maps logits to a probability distribution of the same length.
// Each value is divided by temperature before exponentiation: small temperatures sharpen the
// distribution toward a one-hot vector at the arg-max, large ones flatten it toward uniform.
//
// Example:
//
//	p, _ := Softmax(Vector{2.0, 1.0, 0.1}, 1.0) // ≈ [0.659, 0.242, 0.099]
func Softmax(values Vector, temperature float64) (Vector, error) {
	err := checkSoftmaxInput(values, temperature)
	if err != nil {
		return nil, err
	}
	probabilities, _, _ := softmax(values, temperature)
	return probabilities, nil
}

// SoftmaxRows applies Softmax to every row independently.
func SoftmaxRows(matrix Matrix, temperature float64) (Matrix, error) {
	out := make(Matrix, len(matrix))
	for i, row := range matrix {
		probabilities, err := Softmax(row, temperature)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = probabilities
	}
	return out, nil
}

// Breakdown holds the intermediate values of a softmax evaluation for display.
type Breakdown struct {
	Temperature float64 `json:"temperature"`
	// Scaled are the logits divided by the temperature.
	Scaled Vector `json:"scaled"`
	// Max is the largest scaled logit, subtracted before exponentiation.
	Max float64 `json:"max"`
	// Exponentials are exp(scaled - max).
	Exponentials Vector `json:"exponentials"`
	// Sum is the sum of Exponentials, always >= 1.
	Sum           float64 `json:"sum"`
	Probabilities Vector  `json:"probabilities"`
}

// SoftmaxBreakdown evaluates Softmax and keeps every intermediate step.
func SoftmaxBreakdown(values Vector, temperature float64) (breakdown Breakdown, err error) {
	err = checkSoftmaxInput(values, temperature)
	if err != nil {
		return breakdown, err
	}
	breakdown.Temperature = temperature
	breakdown.Scaled = make(Vector, len(values))
	for i, value := range values {
		breakdown.Scaled[i] = value / temperature
	}
	breakdown.Probabilities, breakdown.Exponentials, breakdown.Sum = softmax(values, temperature)
	breakdown.Max = floats.Max(values) / temperature
	return breakdown, nil
}

// Entropy returns the Shannon entropy in nats of a probability distribution.
// It is 0 for a one-hot distribution and log(n) for a uniform one.
func Entropy(probabilities Vector) float64 {
	return stat.Entropy(probabilities)
}

func checkTemperature(temperature float64) error {
	if !isFinite(temperature) || temperature <= 0 {
		return fmt.Errorf("%w: temperature must be positive and finite, got %v", ErrInvalidInput, temperature)
	}
	return nil
}

func checkSoftmaxInput(values Vector, temperature float64) error {
	if err := checkTemperature(temperature); err != nil {
		return err
	}
	if len(values) == 0 {
		return fmt.Errorf("%w: softmax of an empty sequence", ErrInvalidInput)
	}
	for i, value := range values {
		if !isFinite(value) {
			return fmt.Errorf("%w: softmax value %d is %v", ErrInvalidInput, i, value)
		}
	}
	return nil
}

// softmax subtracts the maximum before dividing by the temperature. This is the same shift as
// subtracting max(values/temperature) but cannot produce Inf-Inf when the temperature underflows the division.
func softmax(values []float64, temperature float64) (probabilities, exponentials Vector, sum float64) {
	shift := floats.Max(values)
	exponentials = make(Vector, len(values))
	for i, value := range values {
		exponentials[i] = math.Exp((value - shift) / temperature)
	}
	sum = floats.Sum(exponentials)
	probabilities = make(Vector, len(values))
	for i, exponential := range exponentials {
		probabilities[i] = exponential / sum
	}
	return probabilities, exponentials, sum
}
