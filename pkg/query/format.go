package query

import (
	"fmt"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Placeholder is displayed for an absent value
	Placeholder = "—"

	// Free is displayed for a zero price
	Free = "Free"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// FormatPrice formats a price per million tokens for display. Prices under a
// cent keep four decimal places.
func FormatPrice(price *float64) string {
	switch {
	case price == nil:
		return Placeholder
	case *price == 0:
		return Free
	case *price < 0.01:
		return fmt.Sprintf("$%.4f", *price)
	default:
		return fmt.Sprintf("$%.2f", *price)
	}
}

// FormatPriceFixed formats a price per million tokens with exactly two
// decimal places, for aligned columns
func FormatPriceFixed(price *float64) string {
	if price == nil {
		return Placeholder
	}
	return fmt.Sprintf("$%.2f", *price)
}

// FormatCost formats an amount in USD, keeping four decimal places for
// amounts under a cent
func FormatCost(cost float64) string {
	if cost != 0 && cost < 0.01 {
		return fmt.Sprintf("$%.4f", cost)
	}
	return fmt.Sprintf("$%.2f", cost)
}

// FormatContextWindow formats a token count as 128K or 1M. Zero is unknown.
func FormatContextWindow(tokens uint64) string {
	switch {
	case tokens == 0:
		return Placeholder
	case tokens >= 1_000_000:
		return trimZero(fmt.Sprintf("%.1f", float64(tokens)/1_000_000)) + "M"
	case tokens >= 1_000:
		return fmt.Sprintf("%dK", tokens/1_000)
	default:
		return fmt.Sprint(tokens)
	}
}

// FormatBool formats a flag as Yes or No
func FormatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func trimZero(s string) string {
	return strings.TrimSuffix(s, ".0")
}
