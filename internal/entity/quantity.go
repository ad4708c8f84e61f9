package entity

import (
	"regexp"
	"strconv"
	"strings"
)

// Quantities, prices and bid amounts are stored as display strings
// ("500 kg", "₹5,000"). The numeric value is recovered with a regex at the
// point of use, matching how every call site of the marketplace treats them.

var (
	amountPattern = regexp.MustCompile(`[0-9][0-9,]*(?:\.[0-9]+)?`)
	unitPattern   = regexp.MustCompile(`[a-zA-Z]+`)
)

const DefaultUnit = "kg"

// ParseAmount returns the first numeric substring of s as a float,
// or 0 when s carries no number at all.
func ParseAmount(s string) float64 {
	match := amountPattern.FindString(s)
	if match == "" {
		return 0
	}

	amount, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
	if err != nil {
		return 0
	}

	return amount
}

// ParseUnit returns the first alphabetic substring of s ("kg" in "500 kg"),
// or DefaultUnit when the string carries none.
func ParseUnit(s string) string {
	unit := unitPattern.FindString(s)
	if unit == "" {
		return DefaultUnit
	}

	return unit
}

// FormatQuantity renders an amount back into the display form the stores keep.
func FormatQuantity(amount float64, unit string) string {
	return strconv.FormatFloat(amount, 'f', -1, 64) + " " + unit
}
