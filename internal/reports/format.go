package reports

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var currencyPrinter = message.NewPrinter(language.BrazilianPortuguese)

// Currency renders an exact decimal amount as a pt-BR currency string.
// Amounts stay decimal everywhere else; this runs only at the output
// boundary.
func Currency(amount decimal.Decimal) string {
	f, _ := amount.Float64()
	return currencyPrinter.Sprintf("R$ %.2f", f)
}

// DateBR renders a purchase date the way the ledgers and daily breakdowns
// display it.
func DateBR(t time.Time) string {
	return t.Format("02/01/2006")
}

// DateTimeBR renders a purchase timestamp for the detailed ledger.
func DateTimeBR(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}
