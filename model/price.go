package model

import (
	"regexp"
	"strconv"
	"strings"
)

// NormalizedPrice is a parsed view of a free-form price string such as
// "₹699" or "$24.99". Amount is zero when no number could be extracted.
type NormalizedPrice struct {
	Original string  `json:"original"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

var amountRe = regexp.MustCompile(`\d+(?:[.,]\d+)?`)

// ParsePrice extracts a numeric amount and a currency code from a raw price
// string. Unknown currencies default to INR, matching the source market of
// the sample data.
func ParsePrice(raw string) NormalizedPrice {
	p := NormalizedPrice{Original: raw, Currency: currencyOf(raw)}
	if m := amountRe.FindString(raw); m != "" {
		m = strings.ReplaceAll(m, ",", ".")
		if f, err := strconv.ParseFloat(m, 64); err == nil {
			p.Amount = f
		}
	}
	return p
}

func currencyOf(raw string) string {
	switch {
	case strings.Contains(raw, "₹") || strings.Contains(raw, "INR"):
		return "INR"
	case strings.Contains(raw, "$") || strings.Contains(raw, "USD"):
		return "USD"
	case strings.Contains(raw, "€") || strings.Contains(raw, "EUR"):
		return "EUR"
	}
	return "INR"
}

// Map returns the price in the generic fragment shape.
func (p NormalizedPrice) Map() map[string]any {
	return map[string]any{
		"original": p.Original,
		"amount":   p.Amount,
		"currency": p.Currency,
	}
}
