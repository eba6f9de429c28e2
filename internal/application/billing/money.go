package billing

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatAmount importe con separador de miles y sin decimales si es entero: 45000 -> "45,000".
func FormatAmount(d decimal.Decimal) string {
	p := message.NewPrinter(language.English)
	if d.Equal(d.Truncate(0)) {
		return p.Sprintf("%d", d.IntPart())
	}
	f, _ := d.Round(2).Float64()
	return p.Sprintf("%.2f", f)
}

// FormatFixed importe con dos decimales y sin separador: 15000 -> "15000.00".
func FormatFixed(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// TaxOf impuesto redondeado al entero: round(base * rate).
func TaxOf(base, rate decimal.Decimal) decimal.Decimal {
	return base.Mul(rate).Round(0)
}
