package compute

import (
	"math"
	"testing"

	"github.com/expki/go-attention/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDotProduct(t *testing.T) {
	testCases := []struct {
		name string
		a, b Vector
		want float64
	}{
		{name: "example", a: Vector{1, 2, 3}, b: Vector{4, 5, 6}, want: 32},
		{name: "orthogonal", a: Vector{1, 0}, b: Vector{0, 1}, want: 0},
		{name: "negative", a: Vector{-1, 2}, b: Vector{3, -4}, want: -11},
		{name: "empty", a: Vector{}, b: Vector{}, want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DotProduct(tc.a, tc.b)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

func TestDotProductLengthMismatch(t *testing.T) {
	_, err := DotProduct(Vector{1, 2, 3}, Vector{1, 2})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorContains(t, err, "length 3 and 2")
}

func TestMagnitude(t *testing.T) {
	assert.InDelta(t, 5.0, Magnitude(Vector{3, 4}), 1e-12)
	assert.Equal(t, 0.0, Magnitude(Vector{}))
}

func TestNormalize(t *testing.T) {
	vector := Vector{3, 4}
	unit, err := Normalize(vector)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.6, 0.8}, unit, 1e-12)
	assert.InDelta(t, 1.0, Magnitude(unit), 1e-12)
	assert.Equal(t, Vector{3, 4}, vector)

	unit, err = Normalize(Vector{-2, 0, 0})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-1, 0, 0}, unit, 1e-12)
}

func TestNormalizeExtremeMagnitudes(t *testing.T) {
	testCases := []struct {
		name   string
		vector Vector
		want   []float64
	}{
		{name: "huge", vector: Vector{1e200, 1e200}, want: []float64{1 / math.Sqrt2, 1 / math.Sqrt2}},
		{name: "tiny", vector: Vector{3e-200, 4e-200}, want: []float64{0.6, 0.8}},
		{name: "max float", vector: Vector{math.MaxFloat64, 0}, want: []float64{1, 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, math.IsInf(Magnitude(tc.vector), 0))
			assert.Greater(t, Magnitude(tc.vector), 0.0)
			unit, err := Normalize(tc.vector)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tc.want, unit, 1e-12)
		})
	}
}

func TestNormalizeDegenerate(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger.Set(zap.New(core))
	t.Cleanup(func() { logger.Set(nil) })

	testCases := []struct {
		name   string
		vector Vector
	}{
		{name: "zero", vector: Vector{0, 0, 0}},
		{name: "empty", vector: Vector{}},
		{name: "nan", vector: Vector{math.NaN(), 1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			unit, err := Normalize(tc.vector)
			assert.ErrorIs(t, err, ErrDegenerateResult)
			assert.Nil(t, unit)
		})
	}
	assert.Equal(t, len(testCases), logs.FilterMessageSnippet("normalize rejected").Len())
}
