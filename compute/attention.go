package compute

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"github.com/expki/go-attention/logger"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// AttentionScores returns the pre-softmax similarity of query to every key, scaled by sqrt(len(query)).
//
// Example:
//
//	AttentionScores(Vector{1, 0}, Matrix{{1, 0}, {0, 1}}) // ≈ [0.707, 0]
func AttentionScores(query Vector, keys Matrix) (Vector, error) {
	return ScaledAttentionScores(query, keys, math.Sqrt(float64(len(query))))
}

// ScaledAttentionScores returns dot(query, key)/scale for every key.
// Every key must have the query's length and scale must be positive and finite.
// No keys yields an empty result.
func ScaledAttentionScores(query Vector, keys Matrix, scale float64) (Vector, error) {
	if len(query) == 0 {
		return nil, fmt.Errorf("%w: empty query", ErrInvalidInput)
	}
	if !isFinite(scale) || scale <= 0 {
		return nil, fmt.Errorf("%w: scale factor must be positive and finite, got %v", ErrInvalidInput, scale)
	}
	flat, err := keys.flatten(len(query))
	if err != nil {
		return nil, fmt.Errorf("keys do not match query dimension: %w", err)
	}
	scores, err := matVec(flat, len(keys), len(query), query)
	if err != nil {
		return nil, err
	}
	for i := range scores {
		scores[i] /= scale
	}
	return scores, nil
}

// AttentionWeights returns softmax(AttentionScores(query, keys)) at the given temperature.
func AttentionWeights(query Vector, keys Matrix, temperature float64) (Vector, error) {
	scores, err := AttentionScores(query, keys)
	if err != nil {
		return nil, err
	}
	return Softmax(scores, temperature)
}

// WeightedSum returns sum(weights[i] * values[i]), the output of attention for one query.
func WeightedSum(weights Vector, values Matrix) (Vector, error) {
	if len(weights) != len(values) {
		return nil, fmt.Errorf("%w: %d weights for %d values", ErrInvalidInput, len(weights), len(values))
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: weighted sum of no values", ErrInvalidInput)
	}
	_, cols := values.Dims()
	out := make(Vector, cols)
	for i, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: value %d has length %d, expected %d", ErrInvalidInput, i, len(row), cols)
		}
		floats.AddScaled(out, weights[i], row)
	}
	return out, nil
}

// ScoreMatrix computes AttentionScores for every query against the same keys, one row per query.
// Rows are computed concurrently; the first failing row cancels the rest.
func ScoreMatrix(ctx context.Context, queries, keys Matrix) (Matrix, error) {
	logger.Sugar().Debugf("computing %dx%d score matrix", len(queries), len(keys))
	out := make(Matrix, len(queries))
	err := forEachRow(ctx, len(queries), func(i int) (err error) {
		out[i], err = AttentionScores(queries[i], keys)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Result is the full scaled dot-product attention for a set of queries.
type Result struct {
	// Scores has one row of pre-softmax scores per query.
	Scores Matrix `json:"scores"`
	// Weights is the row-wise softmax of Scores.
	Weights Matrix `json:"weights"`
	// Outputs has one weighted sum of the values per query.
	Outputs Matrix `json:"outputs"`
}

// Attention computes softmax(Q·Kᵀ/sqrt(d)) at the given temperature and the weighted sum of the values for every query.
// keys and values must have the same number of rows.
func Attention(ctx context.Context, queries, keys, values Matrix, temperature float64) (result Result, err error) {
	if len(keys) != len(values) {
		return result, fmt.Errorf("%w: %d keys for %d values", ErrInvalidInput, len(keys), len(values))
	}
	err = checkTemperature(temperature)
	if err != nil {
		return result, err
	}
	logger.Sugar().Debugf("computing attention for %d queries over %d keys", len(queries), len(keys))
	result = Result{
		Scores:  make(Matrix, len(queries)),
		Weights: make(Matrix, len(queries)),
		Outputs: make(Matrix, len(queries)),
	}
	err = forEachRow(ctx, len(queries), func(i int) (err error) {
		result.Scores[i], err = AttentionScores(queries[i], keys)
		if err != nil {
			return err
		}
		result.Weights[i], err = Softmax(result.Scores[i], temperature)
		if err != nil {
			return err
		}
		result.Outputs[i], err = WeightedSum(result.Weights[i], values)
		return err
	})
	if err != nil {
		return Result{}, err
	}
	return result, nil
}

// forEachRow runs fn for every row index on a bounded errgroup.
func forEachRow(ctx context.Context, rows int, fn func(i int) error) error {
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))
	for i := range rows {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(i); err != nil {
				return fmt.Errorf("query %d: %w", i, err)
			}
			return nil
		})
	}
	return group.Wait()
}
