// Package samples holds the demonstration data rendered by the visualizations:
// a six token question, simplified 4-dimensional embeddings for it, candidate answer logits and a hand-tuned attention score matrix.
package samples

import (
	"github.com/expki/go-attention/compute"
)

type Token struct {
	Text string `json:"token"`
	ID   int    `json:"id"`
}

type Logit struct {
	Word  string  `json:"word"`
	Logit float64 `json:"logit"`
}

// Tokens returns the example sentence "Welche Farbe hat der Himmel?" split into tokens.
func Tokens() []Token {
	return []Token{
		{Text: "Welche", ID: 1},
		{Text: "Farbe", ID: 2},
		{Text: "hat", ID: 3},
		{Text: "der", ID: 4},
		{Text: "Himmel", ID: 5},
		{Text: "?", ID: 6},
	}
}

// TokenTexts returns the token strings in sentence order.
func TokenTexts() []string {
	tokens := Tokens()
	texts := make([]string, len(tokens))
	for i, token := range tokens {
		texts[i] = token.Text
	}
	return texts
}

// Embeddings maps every example token to its 4-dimensional embedding.
func Embeddings() map[string]compute.Vector {
	return map[string]compute.Vector{
		"Welche": {0.2, -0.5, 0.8, -0.3},
		"Farbe":  {0.7, 0.3, -0.2, 0.9},
		"hat":    {-0.1, 0.4, 0.2, -0.6},
		"der":    {0.0, -0.2, 0.1, 0.3},
		"Himmel": {0.9, 0.6, 0.4, -0.1},
		"?":      {-0.4, 0.1, -0.3, 0.2},
	}
}

// EmbeddingMatrix returns the embeddings as rows in token order.
func EmbeddingMatrix() compute.Matrix {
	embeddings := Embeddings()
	tokens := Tokens()
	matrix := make(compute.Matrix, len(tokens))
	for i, token := range tokens {
		matrix[i] = embeddings[token.Text]
	}
	return matrix
}

// Logits returns candidate answers with their raw scores.
func Logits() []Logit {
	return []Logit{
		{Word: "blau", Logit: 3.2},
		{Word: "grau", Logit: 1.8},
		{Word: "bewölkt", Logit: 1.5},
		{Word: "klar", Logit: 1.2},
		{Word: "rot", Logit: 0.8},
		{Word: "grün", Logit: 0.3},
	}
}

// LogitValues returns the raw scores of Logits in order.
func LogitValues() compute.Vector {
	logits := Logits()
	values := make(compute.Vector, len(logits))
	for i, logit := range logits {
		values[i] = logit.Logit
	}
	return values
}

// HeatmapScores are simulated QKᵀ scores for Tokens, one row per query token.
// "Farbe" and "Himmel" attend strongly to each other.
func HeatmapScores() compute.Matrix {
	return compute.Matrix{
		{1.2, 0.8, 0.3, 0.1, 0.6, 0.2},
		{0.4, 1.5, 0.2, 0.3, 1.8, 0.1},
		{0.2, 0.4, 1.0, 0.8, 0.3, 0.2},
		{0.1, 0.2, 0.6, 1.2, 0.4, 0.1},
		{0.3, 1.2, 0.2, 0.5, 1.4, 0.2},
		{0.5, 0.3, 0.4, 0.2, 0.3, 0.8},
	}
}
