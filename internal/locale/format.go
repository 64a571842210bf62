package locale

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatMoney formats an amount rounded to whole units with grouping
// separators, prefixed by the currency code, e.g. "SAR 100,000".
func (l Locale) FormatMoney(currency string, amount float64) string {
	rounded := decimal.NewFromFloat(amount).Round(0).IntPart()

	p := message.NewPrinter(l.Tag())
	if currency == "" {
		return p.Sprint(number.Decimal(rounded))
	}
	return p.Sprintf("%s %v", currency, number.Decimal(rounded))
}

// FormatPercent formats a ratio as a percentage with two decimals,
// e.g. 0.0718 becomes "7.18%".
func (l Locale) FormatPercent(ratio float64) string {
	pct := decimal.NewFromFloat(ratio).Mul(decimal.NewFromInt(100)).Round(2)
	value, _ := pct.Float64()

	p := message.NewPrinter(l.Tag())
	return p.Sprintf("%v%%", number.Decimal(value, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
