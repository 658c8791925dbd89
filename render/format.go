package render

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// MaxDecimals is the largest number of fractional digits the formatters print, the same bound JavaScript's toFixed accepts.
const MaxDecimals = 100

// FormatPercent formats a fraction as a percentage with a fixed number of decimals, e.g. 0.42 -> "42.0%".
func FormatPercent(value float64, decimals int) string {
	return toFixed(value*100, decimals) + "%"
}

// FormatNumber formats value with exactly decimals fractional digits.
func FormatNumber(value float64, decimals int) string {
	return toFixed(value, decimals)
}

// toFixed picks the integer n closest to value*10^decimals using the exact binary value,
// taking the larger magnitude on a tie, and prints n with the decimal point shifted back.
// Magnitudes of 1e21 and above fall back to exponent notation. decimals is limited to [0, MaxDecimals].
func toFixed(value float64, decimals int) string {
	switch {
	case math.IsNaN(value):
		return "NaN"
	case math.IsInf(value, 1):
		return "Infinity"
	case math.IsInf(value, -1):
		return "-Infinity"
	case math.Abs(value) >= 1e21:
		return strconv.FormatFloat(value, 'g', -1, 64)
	}
	decimals = min(max(decimals, 0), MaxDecimals)

	scaled := new(big.Rat).SetFloat64(math.Abs(value))
	scaled.Mul(scaled, new(big.Rat).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)))
	scaled.Add(scaled, big.NewRat(1, 2))
	digits := new(big.Int).Quo(scaled.Num(), scaled.Denom()).String()

	if len(digits) <= decimals {
		digits = strings.Repeat("0", decimals-len(digits)+1) + digits
	}
	var out strings.Builder
	if value < 0 {
		out.WriteByte('-')
	}
	whole := len(digits) - decimals
	out.WriteString(digits[:whole])
	if decimals > 0 {
		out.WriteByte('.')
		out.WriteString(digits[whole:])
	}
	return out.String()
}

// Formatter formats numbers for a locale. The zero value formats like FormatPercent and FormatNumber.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
}

// NewFormatter returns a Formatter for tag. language.Und selects the fixed formatting.
func NewFormatter(tag language.Tag) Formatter {
	if tag == language.Und {
		return Formatter{}
	}
	return Formatter{
		tag:     tag,
		printer: message.NewPrinter(tag),
	}
}

func (f Formatter) Language() language.Tag {
	return f.tag
}

// Percent formats a fraction as a localized percentage.
func (f Formatter) Percent(value float64, decimals int) string {
	if f.printer == nil || !finite(value) {
		return FormatPercent(value, decimals)
	}
	return f.printer.Sprint(number.Percent(value, number.Scale(min(max(decimals, 0), MaxDecimals))))
}

// Number formats value with localized separators and exactly decimals fractional digits.
func (f Formatter) Number(value float64, decimals int) string {
	if f.printer == nil || !finite(value) {
		return FormatNumber(value, decimals)
	}
	return f.printer.Sprint(number.Decimal(value, number.Scale(min(max(decimals, 0), MaxDecimals))))
}

func finite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}
