package config

import "github.com/expki/go-attention/render"

const (
	// MaxDecimals is the formatter's upper bound on fractional digits.
	MaxDecimals = render.MaxDecimals
)
