package types

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DisplayPlaces is the number of fraction digits amounts are shown with.
const DisplayPlaces = 2

// FormatAmount formats an amount for display in the given currency.
//
// This is the only place where amounts are rounded. Sums must always be
// calculated on the unrounded decimals.
func FormatAmount(amount decimal.Decimal, unit currency.Unit, tag language.Tag) string {
	rounded := amount.Round(DisplayPlaces)
	p := message.NewPrinter(tag)
	return p.Sprint(currency.Symbol(unit.Amount(rounded.InexactFloat64())))
}

// ParseCurrency parses an ISO 4217 currency code. Unknown codes fall back to USD.
func ParseCurrency(code string) currency.Unit {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return currency.USD
	}
	return unit
}
