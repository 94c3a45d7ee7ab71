package i18n

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatNumber renders amount with at most two fraction digits using the
// locale's grouping and decimal separators.
func FormatNumber(locale Locale, amount decimal.Decimal) string {
	group, point := ",", "."
	if locale == RU {
		group, point = "\u00a0", ","
	}
	rounded := amount.Round(2)
	intPart, frac, _ := strings.Cut(rounded.Abs().StringFixed(2), ".")
	frac = strings.TrimRight(frac, "0")

	var b strings.Builder
	if rounded.IsNegative() {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(group)
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteString(point)
		b.WriteString(frac)
	}
	return b.String()
}

// FormatMoney renders amount followed by the locale's currency sign.
func (c *Catalog) FormatMoney(locale Locale, amount decimal.Decimal) string {
	return FormatNumber(locale, amount) + " " + c.Label(locale, "currency.sign")
}

// FormatUnits renders a whole amount of currency units.
func (c *Catalog) FormatUnits(locale Locale, units int64) string {
	return c.FormatMoney(locale, decimal.NewFromInt(units))
}
