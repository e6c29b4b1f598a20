// Package conversion computes converted amounts and renders them as
// display records.
package conversion

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/amirasaad/fxquery/pkg/currency"
)

// DefaultAmount is used when a query does not give one.
const DefaultAmount = "1"

const (
	displayPrecision  = 4
	exponentThreshold = 1e21
)

// Record is the display-ready result of converting one amount into one
// target currency.
type Record struct {
	Base            currency.Code
	Target          currency.Code
	Amount          string
	ConvertedAmount string
	InverseRate     string
	Title           string
	Subtitle        string
}

// CopyText is the value offered to the clipboard.
func (r Record) CopyText() string {
	return r.ConvertedAmount
}

// Format converts amount at rate and builds the record for target.
// An amount that does not parse converts as NaN; the query parser never
// accepts one.
func Format(base, target currency.Code, amount string, rate float64) Record {
	value, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		value = math.NaN()
	}

	converted := FormatNumber(value * rate)
	inverse := FormatNumber(1 / rate)

	return Record{
		Base:            base,
		Target:          target,
		Amount:          amount,
		ConvertedAmount: converted,
		InverseRate:     inverse,
		Title:           fmt.Sprintf("%s %s = %s %s", amount, base, converted, target),
		Subtitle:        fmt.Sprintf("1 %s = %s %s. Press Enter to copy", target, inverse, base),
	}
}

// FormatNumber renders v with four decimals, rounding halves of the
// exact binary value away from zero, then drops trailing zeros and a
// dangling decimal point: 12.5 -> "12.5", 12 -> "12".
// Magnitudes of 1e21 and above switch to exponent form ("1e+21").
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case math.Abs(v) >= exponentThreshold:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	s := new(big.Rat).SetFloat64(v).FloatString(displayPrecision)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
