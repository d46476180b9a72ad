package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyFormatter renders amounts for display with two decimal places and
// locale-specific digit grouping.
type CurrencyFormatter struct {
	Symbol  string
	printer *message.Printer
}

// NewCurrencyFormatter builds a formatter for the given symbol and BCP 47 locale.
// An unparseable locale falls back to English grouping.
func NewCurrencyFormatter(symbol, locale string) CurrencyFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return CurrencyFormatter{
		Symbol:  symbol,
		printer: message.NewPrinter(tag),
	}
}

// Format renders d, e.g. "₹1,250.50" or "-₹85.00".
func (f CurrencyFormatter) Format(d decimal.Decimal) string {
	printer := f.printer
	if printer == nil {
		printer = message.NewPrinter(language.English)
	}

	rounded := d.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	abs := rounded.Abs()
	whole := abs.Truncate(0)
	cents := abs.Sub(whole).Shift(2).IntPart()

	return sign + f.Symbol + printer.Sprintf("%d", whole.IntPart()) + fmt.Sprintf(".%02d", cents)
}

// FormattedTotals are Totals rendered for display.
type FormattedTotals struct {
	Credits string
	Debits  string
	Net     string
}

// FormatTotals renders the three sums of t.
func (f CurrencyFormatter) FormatTotals(t Totals) FormattedTotals {
	return FormattedTotals{
		Credits: f.Format(t.Credits),
		Debits:  f.Format(t.Debits),
		Net:     f.Format(t.Net),
	}
}
