package render

import (
	"github.com/expki/go-attention/compute"
)

// Cell is one rendered entry of an attention heatmap.
type Cell struct {
	Weight float64 `json:"weight"`
	Color  RGB     `json:"color"`
	Label  string  `json:"label"`
}

// Heatmap turns attention weights into colored, labeled cells.
type Heatmap struct {
	Palette   Palette
	Formatter Formatter
	// Decimals of the percentage label.
	Decimals int
}

// NewHeatmap returns a heatmap with the attention palette and one decimal percentage labels.
func NewHeatmap() Heatmap {
	return Heatmap{
		Palette:  DefaultPalette(),
		Decimals: 1,
	}
}

// Cells maps every weight to a cell. Rows keep their lengths.
func (h Heatmap) Cells(weights compute.Matrix) [][]Cell {
	cells := make([][]Cell, len(weights))
	for i, row := range weights {
		cells[i] = h.Row(row)
	}
	return cells
}

// Row maps a single row of weights, e.g. the attention of one selected token.
func (h Heatmap) Row(weights compute.Vector) []Cell {
	cells := make([]Cell, len(weights))
	for i, weight := range weights {
		cells[i] = Cell{
			Weight: weight,
			Color:  h.Palette.Color(weight),
			Label:  h.Formatter.Percent(weight, h.Decimals),
		}
	}
	return cells
}
