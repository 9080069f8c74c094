package report

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	// FooterDecimals applies to grand totals and every exported amount.
	FooterDecimals = 2
	// ColumnDecimals applies to per-meal subtotals in the on-screen table.
	ColumnDecimals = 0
)

// Formatter renders amounts as "<symbol> <grouped number>".
type Formatter struct {
	symbol  string
	printer *message.Printer
}

func NewFormatter(symbol, locale string) Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return Formatter{symbol: symbol, printer: message.NewPrinter(tag)}
}

// WithSymbol returns a copy that prints a different currency symbol.
func (f Formatter) WithSymbol(symbol string) Formatter {
	f.symbol = symbol
	return f
}

// Amount rounds half away from zero to the given number of decimals.
func (f Formatter) Amount(v float64, decimals int) string {
	rounded := decimal.NewFromFloat(v).Round(int32(decimals)).InexactFloat64()
	return f.symbol + " " + f.printer.Sprint(number.Decimal(rounded, number.Scale(decimals)))
}
