package reports

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var brazilian = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL formats an amount as Brazilian Real, e.g. "R$ 1.234,56".
//
// Amounts are rounded half away from zero to cents. The integer part must
// fit into an int64, which every stored amount does.
func FormatBRL(amount decimal.Decimal) string {
	rounded := amount.Round(2)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}

	fixed := rounded.Abs().StringFixed(2)
	cents := fixed[strings.IndexByte(fixed, '.')+1:]

	return sign + "R$ " + brazilian.Sprintf("%d", rounded.Abs().IntPart()) + "," + cents
}
