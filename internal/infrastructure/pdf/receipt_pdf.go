// Package pdf genera el recibo en PDF para impresora térmica de 80mm.
//
// Layout (columna única):
//
//	┌──────────────────────────┐
//	│  Negocio / dirección     │
//	│  Tel / PIN KRA           │
//	│  ────────────────────    │
//	│  Recibo N° + fecha       │
//	│  Cliente + teléfono      │
//	│  ────────────────────    │
//	│  Servicio      Precio    │
//	│   por Empleado           │
//	│  ────────────────────    │
//	│  Subtotal / VAT / TOTAL  │
//	│  Método de pago          │
//	│  QR + pie                │
//	└──────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/linestyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/bizdash/internal/application/receipt"
	"github.com/jhoicas/bizdash/pkg/money"
)

const (
	pageWidthMM = 80
	// alto base sin líneas de detalle; cada línea suma lineHeightMM
	baseHeightMM = 150
	lineHeightMM = 10
)

var colorGray = &props.Color{Red: 90, Green: 90, Blue: 90}

var _ receipt.Renderer = (*ReceiptRenderer)(nil)

// ReceiptRenderer implementa receipt.Renderer usando Maroto v2.
type ReceiptRenderer struct{}

// NewReceiptRenderer construye el renderer.
func NewReceiptRenderer() *ReceiptRenderer { return &ReceiptRenderer{} }

func (r *ReceiptRenderer) Format() string      { return receipt.FormatPDF }
func (r *ReceiptRenderer) ContentType() string { return "application/pdf" }

// Render genera el PDF y devuelve sus bytes.
func (r *ReceiptRenderer) Render(doc *receipt.Document) ([]byte, error) {
	height := float64(baseHeightMM + lineHeightMM*len(doc.Lines))
	cfg := config.NewBuilder().
		WithDimensions(pageWidthMM, height).
		WithLeftMargin(4).WithRightMargin(4).
		WithTopMargin(4).WithBottomMargin(4).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Receipt "+doc.InvoiceNumber, true).
		WithAuthor(doc.Header.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRows(doc.Header)...)
	m.AddRows(separator())
	m.AddRows(invoiceRows(doc)...)
	m.AddRows(separator())
	m.AddRows(lineRows(doc.Lines)...)
	m.AddRows(separator())
	m.AddRows(totalsRows(doc)...)
	m.AddRows(footerRows(doc)...)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar recibo: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRows(h receipt.Header) []core.Row {
	rows := []core.Row{
		centered(7, h.Name, props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Center, Top: 1}),
	}
	if h.Address != "" {
		rows = append(rows, centered(4, h.Address, props.Text{Size: 7, Align: align.Center, Color: colorGray}))
	}
	if h.Phone != "" {
		rows = append(rows, centered(4, "Tel: "+h.Phone, props.Text{Size: 7, Align: align.Center, Color: colorGray}))
	}
	if h.Email != "" {
		rows = append(rows, centered(4, h.Email, props.Text{Size: 7, Align: align.Center, Color: colorGray}))
	}
	if h.TaxPIN != "" {
		rows = append(rows, centered(4, "KRA PIN: "+h.TaxPIN, props.Text{Size: 7, Align: align.Center, Color: colorGray}))
	}
	return rows
}

func invoiceRows(doc *receipt.Document) []core.Row {
	rows := []core.Row{
		pair(5, "Receipt #", doc.InvoiceNumber, true),
		pair(5, "Date", doc.IssuedAt.Format("02/01/2006 15:04"), false),
		pair(5, "Customer", nonEmpty(doc.CustomerName, "Walk-in"), false),
	}
	if doc.CustomerPhone != "" {
		rows = append(rows, pair(5, "Phone", doc.CustomerPhone, false))
	}
	return rows
}

// lineRows: servicio y precio, debajo el empleado que lo realizó.
func lineRows(lines []receipt.Line) []core.Row {
	rows := make([]core.Row, 0, len(lines)+1)
	rows = append(rows, row.New(5).Add(
		col.New(8).Add(text.New("Service", props.Text{Style: fontstyle.Bold, Size: 8})),
		col.New(4).Add(text.New("Amount", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right})),
	))
	for _, l := range lines {
		rows = append(rows, row.New(lineHeightMM).Add(
			col.New(8).Add(
				text.New(l.Service, props.Text{Size: 8, Top: 1}),
				text.New("by "+nonEmpty(l.Employee, "-"), props.Text{Size: 6.5, Top: 5, Left: 2, Color: colorGray}),
			),
			col.New(4).Add(
				text.New(money.FormatKESCents(l.Price), props.Text{Size: 8, Align: align.Right, Top: 1}),
			),
		))
	}
	return rows
}

func totalsRows(doc *receipt.Document) []core.Row {
	return []core.Row{
		pair(5, "Subtotal", money.FormatKESCents(doc.Totals.Subtotal), false),
		pair(5, "VAT (16%)", money.FormatKESCents(doc.Totals.VAT), false),
		row.New(7).Add(
			col.New(5).Add(text.New("TOTAL", props.Text{Style: fontstyle.Bold, Size: 10, Top: 1})),
			col.New(7).Add(text.New(money.FormatKESCents(doc.Totals.Total), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			})),
		),
		pair(5, "Payment", doc.PaymentMethod, false),
	}
}

// footerRows: QR con número y total para verificación rápida, más el pie.
func footerRows(doc *receipt.Document) []core.Row {
	qr := fmt.Sprintf("%s|%s", doc.InvoiceNumber, doc.Totals.Total.StringFixed(2))
	rows := []core.Row{
		row.New(3),
		row.New(28).Add(col.New(12).Add(code.NewQr(qr, props.Rect{Percent: 90, Center: true}))),
	}
	if doc.Footer != "" {
		rows = append(rows, centered(6, doc.Footer, props.Text{Style: fontstyle.Italic, Size: 8, Align: align.Center, Top: 1}))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func separator() core.Row {
	return line.NewRow(3, props.Line{Color: colorGray, Thickness: 0.2, Style: linestyle.Dashed})
}

func centered(height float64, s string, p props.Text) core.Row {
	return row.New(height).Add(col.New(12).Add(text.New(s, p)))
}

// pair etiqueta a la izquierda y valor a la derecha.
func pair(height float64, label, value string, bold bool) core.Row {
	vp := props.Text{Size: 8, Align: align.Right}
	if bold {
		vp.Style = fontstyle.Bold
	}
	return row.New(height).Add(
		col.New(5).Add(text.New(label, props.Text{Size: 8, Color: colorGray})),
		col.New(7).Add(text.New(value, vp)),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
