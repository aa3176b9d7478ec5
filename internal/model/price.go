package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParsePrice extracts the amount from a display price such as "$45",
// "$3.50/piece" or "From $1,200". It reports false when the string carries
// no amount.
func ParsePrice(display string) (decimal.Decimal, bool) {
	start := strings.IndexFunc(display, isDigit)
	if start < 0 {
		return decimal.Zero, false
	}

	end := start
	for end < len(display) && (isDigit(rune(display[end])) || display[end] == '.' || display[end] == ',') {
		end++
	}

	amount := strings.TrimRight(strings.ReplaceAll(display[start:end], ",", ""), ".")
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
