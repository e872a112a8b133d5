package models

import (
	"math"
	"strconv"
)

// ReportingSymbol is the single currency every amount is normalized into
// before commission calculation.
const ReportingSymbol = "£"

// Money is a monetary amount tagged with a one-character currency symbol.
// At the text boundary it is a prefixed decimal string ("£125", "$10000.00");
// internally the amount is a plain float64.
type Money struct {
	Symbol string
	Amount float64
}

// ParseMoney splits a prefixed string into its currency symbol (first rune)
// and numeric amount. A value whose remainder does not parse as a number
// yields a NaN amount, which downstream formatting renders as "NaN" rather
// than aborting the run.
func ParseMoney(s string) Money {
	if s == "" {
		return Money{Amount: math.NaN()}
	}
	runes := []rune(s)
	symbol := string(runes[0])
	amount, err := strconv.ParseFloat(string(runes[1:]), 64)
	if err != nil {
		amount = math.NaN()
	}
	return Money{Symbol: symbol, Amount: amount}
}

// String renders the amount with its symbol prefix using the shortest exact
// decimal representation, so whole-number commissions come out as "£125"
// rather than "£125.000000".
func (m Money) String() string {
	return m.Symbol + strconv.FormatFloat(m.Amount, 'f', -1, 64)
}

// FormatFixed renders the amount with a fixed number of decimal places,
// used by the currency normalizer ("£80.00").
func (m Money) FormatFixed(decimals int) string {
	return m.Symbol + strconv.FormatFloat(m.Amount, 'f', decimals, 64)
}
