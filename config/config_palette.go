package config

import (
	"github.com/expki/go-attention/render"
)

type Palette struct {
	Low   render.RGB `json:"low"`
	High  render.RGB `json:"high"`
	Clamp bool       `json:"clamp,omitempty"`
}

func DefaultPalette() Palette {
	return Palette{
		Low:  render.AttentionLow,
		High: render.AttentionHigh,
	}
}

// Render converts the configured palette into the renderer's palette.
func (p Palette) Render() render.Palette {
	return render.Palette{
		Low:   p.Low,
		High:  p.High,
		Clamp: p.Clamp,
	}
}
