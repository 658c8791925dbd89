package render

import (
	"fmt"
	"math"
)

// RGB is a color as red, green and blue channels. Channels are nominally within [0, 255]
// but interpolation with factors outside [0, 1] may leave that range.
type RGB [3]int

var (
	// AttentionLow is the color of a zero attention weight (blue-500).
	AttentionLow = RGB{59, 130, 246}
	// AttentionHigh is the color of a full attention weight (pink-500).
	AttentionHigh = RGB{236, 72, 153}
)

// String serializes the color as a CSS rgb() value.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c[0], c[1], c[2])
}

// Clamp limits every channel to [0, 255].
func (c RGB) Clamp() RGB {
	for i, channel := range c {
		c[i] = min(max(channel, 0), 255)
	}
	return c
}

// Interpolate blends linearly from c1 (factor 0) to c2 (factor 1), rounding each channel half up.
// Factors outside [0, 1] extrapolate; a NaN factor yields c1.
func Interpolate(c1, c2 RGB, factor float64) (out RGB) {
	if math.IsNaN(factor) {
		return c1
	}
	for i := range out {
		out[i] = roundHalfUp(float64(c1[i]) + float64(c2[i]-c1[i])*factor)
	}
	return out
}

// InterpolateColor is Interpolate serialized as a CSS rgb() value.
//
// Example:
//
//	InterpolateColor(RGB{0, 0, 0}, RGB{255, 255, 255}, 0.5) // "rgb(128, 128, 128)"
func InterpolateColor(c1, c2 RGB, factor float64) string {
	return Interpolate(c1, c2, factor).String()
}

// AttentionColor maps an attention weight onto the blue to pink gradient shared by all attention visualizations.
func AttentionColor(weight float64) string {
	return InterpolateColor(AttentionLow, AttentionHigh, weight)
}

// Palette is a two color gradient.
type Palette struct {
	Low  RGB
	High RGB
	// Clamp limits the factor to [0, 1] instead of extrapolating.
	Clamp bool
}

// DefaultPalette is the attention gradient without clamping.
func DefaultPalette() Palette {
	return Palette{Low: AttentionLow, High: AttentionHigh}
}

func (p Palette) Color(weight float64) RGB {
	if p.Clamp && !math.IsNaN(weight) {
		weight = min(max(weight, 0), 1)
	}
	return Interpolate(p.Low, p.High, weight)
}

// ANSIBackground returns the 24-bit terminal escape sequence that sets the background to c.
func (c RGB) ANSIBackground() string {
	c = c.Clamp()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", c[0], c[1], c[2])
}

// ANSIReset restores the default terminal colors.
const ANSIReset = "\x1b[0m"

// roundHalfUp rounds ties toward positive infinity and saturates at the int32 range. NaN maps to 0.
func roundHalfUp(value float64) int {
	rounded := math.Floor(value + 0.5)
	switch {
	case math.IsNaN(rounded):
		return 0
	case rounded > math.MaxInt32:
		return math.MaxInt32
	case rounded < math.MinInt32:
		return math.MinInt32
	}
	return int(rounded)
}
