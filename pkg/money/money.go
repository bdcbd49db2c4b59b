// Package money formatea montos en chelines kenianos y centraliza la tasa de IVA.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency código ISO usado en toda la UI.
const Currency = "KES"

// VATRate IVA plano de Kenia (16%).
var VATRate = decimal.RequireFromString("0.16")

var printer = message.NewPrinter(language.English)

// FormatKES formatea sin decimales y con separador de miles: 50000 → "KES 50,000".
func FormatKES(v decimal.Decimal) string {
	return Currency + " " + printer.Sprintf("%v", number.Decimal(v.Round(0).IntPart()))
}

// FormatKESCents formatea con dos decimales (recibos): 1160 → "KES 1,160.00".
// Trabaja sobre el texto del decimal para no perder precisión en montos grandes.
func FormatKESCents(v decimal.Decimal) string {
	fixed := v.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	intPart, frac, _ := strings.Cut(fixed, ".")
	return Currency + " " + sign + groupThousands(intPart) + "." + frac
}

// groupThousands inserta comas cada tres dígitos: "1234567" → "1,234,567".
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// VAT devuelve subtotal × 16%.
func VAT(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(VATRate)
}
