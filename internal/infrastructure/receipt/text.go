package receipt

import (
	"strings"
	"unicode/utf8"

	appreceipt "github.com/jhoicas/bizdash/internal/application/receipt"
	"github.com/jhoicas/bizdash/pkg/money"
)

// TextWidth columnas de una impresora térmica de 80mm con fuente A.
const TextWidth = 42

var _ appreceipt.Renderer = (*TextRenderer)(nil)

// TextRenderer recibo en texto plano de ancho fijo (ESC/POS en modo texto).
type TextRenderer struct {
	width int
}

// NewTextRenderer renderer de TextWidth columnas.
func NewTextRenderer() *TextRenderer { return &TextRenderer{width: TextWidth} }

func (r *TextRenderer) Format() string      { return appreceipt.FormatText }
func (r *TextRenderer) ContentType() string { return "text/plain; charset=utf-8" }

func (r *TextRenderer) Render(doc *appreceipt.Document) ([]byte, error) {
	var b strings.Builder
	sep := strings.Repeat("-", r.width)

	for _, s := range []string{doc.Header.Name, doc.Header.Address, prefixed("Tel: ", doc.Header.Phone),
		doc.Header.Email, prefixed("KRA PIN: ", doc.Header.TaxPIN)} {
		if s != "" {
			r.center(&b, s)
		}
	}
	b.WriteString(sep + "\n")

	customer := doc.CustomerName
	if customer == "" {
		customer = "Walk-in"
	}
	r.pair(&b, "Receipt #", doc.InvoiceNumber)
	r.pair(&b, "Date", doc.IssuedAt.Format("02/01/2006 15:04"))
	r.pair(&b, "Customer", customer)
	if doc.CustomerPhone != "" {
		r.pair(&b, "Phone", doc.CustomerPhone)
	}
	b.WriteString(sep + "\n")

	for _, l := range doc.Lines {
		r.pair(&b, l.Service, money.FormatKESCents(l.Price))
		emp := l.Employee
		if emp == "" {
			emp = "-"
		}
		b.WriteString(truncate("  by "+emp, r.width) + "\n")
	}
	b.WriteString(sep + "\n")

	r.pair(&b, "Subtotal", money.FormatKESCents(doc.Totals.Subtotal))
	r.pair(&b, "VAT (16%)", money.FormatKESCents(doc.Totals.VAT))
	r.pair(&b, "TOTAL", money.FormatKESCents(doc.Totals.Total))
	r.pair(&b, "Payment", doc.PaymentMethod)

	if doc.Footer != "" {
		b.WriteString(sep + "\n")
		for _, ln := range wrap(doc.Footer, r.width) {
			r.center(&b, ln)
		}
	}
	return []byte(b.String()), nil
}

// pair etiqueta a la izquierda y valor a la derecha; la etiqueta se recorta si no caben ambos.
func (r *TextRenderer) pair(b *strings.Builder, label, value string) {
	vw := utf8.RuneCountInString(value)
	if vw >= r.width {
		b.WriteString(truncate(value, r.width) + "\n")
		return
	}
	label = truncate(label, r.width-vw-1)
	gap := r.width - utf8.RuneCountInString(label) - vw
	b.WriteString(label + strings.Repeat(" ", gap) + value + "\n")
}

func (r *TextRenderer) center(b *strings.Builder, s string) {
	s = truncate(s, r.width)
	pad := (r.width - utf8.RuneCountInString(s)) / 2
	b.WriteString(strings.Repeat(" ", pad) + s + "\n")
}

func prefixed(prefix, s string) string {
	if s == "" {
		return ""
	}
	return prefix + s
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// wrap corta por palabras a n columnas.
func wrap(s string, n int) []string {
	var lines []string
	cur := ""
	for _, w := range strings.Fields(s) {
		switch {
		case cur == "":
			cur = truncate(w, n)
		case utf8.RuneCountInString(cur)+1+utf8.RuneCountInString(w) <= n:
			cur += " " + w
		default:
			lines = append(lines, cur)
			cur = truncate(w, n)
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
