// Package pricing renders prices the way the store displays them: French
// digit grouping, no decimals (FCFA has no subdivision).
package pricing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DefaultCurrency = "FCFA"

var printer = message.NewPrinter(language.French)

// Group renders n with French thousands grouping (non-breaking spaces).
func Group(n int64) string {
	return printer.Sprintf("%d", n)
}

// Format renders a price with its currency suffix. An empty currency falls
// back to FCFA.
func Format(price int64, currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	return Group(price) + " " + currency
}
