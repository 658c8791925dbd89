package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpolateColor(t *testing.T) {
	testCases := []struct {
		name   string
		c1, c2 RGB
		factor float64
		want   string
	}{
		{name: "midpoint rounds up", c1: RGB{0, 0, 0}, c2: RGB{255, 255, 255}, factor: 0.5, want: "rgb(128, 128, 128)"},
		{name: "start", c1: RGB{10, 20, 30}, c2: RGB{200, 100, 0}, factor: 0, want: "rgb(10, 20, 30)"},
		{name: "end", c1: RGB{10, 20, 30}, c2: RGB{200, 100, 0}, factor: 1, want: "rgb(200, 100, 0)"},
		{name: "descending channel", c1: RGB{100, 100, 100}, c2: RGB{0, 0, 0}, factor: 0.25, want: "rgb(75, 75, 75)"},
		{name: "extrapolate above", c1: RGB{0, 0, 0}, c2: RGB{100, 100, 100}, factor: 1.5, want: "rgb(150, 150, 150)"},
		{name: "extrapolate below", c1: RGB{0, 0, 0}, c2: RGB{100, 100, 100}, factor: -0.5, want: "rgb(-50, -50, -50)"},
		{name: "negative half rounds toward positive", c1: RGB{0, 0, 0}, c2: RGB{-1, -1, -1}, factor: 0.5, want: "rgb(0, 0, 0)"},
		{name: "nan factor", c1: RGB{1, 2, 3}, c2: RGB{4, 5, 6}, factor: math.NaN(), want: "rgb(1, 2, 3)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, InterpolateColor(tc.c1, tc.c2, tc.factor))
		})
	}
}

func TestAttentionColor(t *testing.T) {
	assert.Equal(t, "rgb(59, 130, 246)", AttentionColor(0))
	assert.Equal(t, "rgb(236, 72, 153)", AttentionColor(1))
	assert.Equal(t, "rgb(148, 101, 200)", AttentionColor(0.5))
	assert.Equal(t, AttentionColor(0.3), AttentionColor(0.3))
}

func TestPalette(t *testing.T) {
	palette := Palette{Low: RGB{0, 0, 0}, High: RGB{100, 100, 100}}
	assert.Equal(t, RGB{150, 150, 150}, palette.Color(1.5))

	palette.Clamp = true
	assert.Equal(t, RGB{100, 100, 100}, palette.Color(1.5))
	assert.Equal(t, RGB{0, 0, 0}, palette.Color(-3))
	assert.Equal(t, RGB{50, 50, 50}, palette.Color(0.5))

	assert.Equal(t, AttentionLow, DefaultPalette().Color(0))
	assert.Equal(t, AttentionHigh, DefaultPalette().Color(1))
}

func TestRGBClamp(t *testing.T) {
	assert.Equal(t, RGB{255, 0, 10}, RGB{300, -5, 10}.Clamp())
	assert.Equal(t, "\x1b[48;2;255;0;10m", RGB{300, -5, 10}.ANSIBackground())
}

func TestInterpolateInfiniteFactorSaturates(t *testing.T) {
	c := Interpolate(RGB{0, 0, 0}, RGB{1, -1, 0}, math.Inf(1))
	assert.Equal(t, math.MaxInt32, c[0])
	assert.Equal(t, math.MinInt32, c[1])
}
