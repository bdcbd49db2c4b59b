// Package receipt renderers de recibo para impresora térmica: HTML con
// impresión automática y texto de ancho fijo.
package receipt

import (
	"bytes"
	"fmt"
	"html/template"

	appreceipt "github.com/jhoicas/bizdash/internal/application/receipt"
	"github.com/jhoicas/bizdash/pkg/money"
)

var _ appreceipt.Renderer = (*HTMLRenderer)(nil)

// HTMLRenderer documento de 80mm que abre el diálogo de impresión al cargar y se cierra después.
type HTMLRenderer struct {
	tpl *template.Template
}

// NewHTMLRenderer compila la plantilla.
func NewHTMLRenderer() *HTMLRenderer {
	tpl := template.Must(template.New("receipt").Funcs(template.FuncMap{
		"kes":  money.FormatKESCents,
		"date": func(d *appreceipt.Document) string { return d.IssuedAt.Format("02/01/2006 15:04") },
	}).Parse(htmlTemplate))
	return &HTMLRenderer{tpl: tpl}
}

func (r *HTMLRenderer) Format() string      { return appreceipt.FormatHTML }
func (r *HTMLRenderer) ContentType() string { return "text/html; charset=utf-8" }

func (r *HTMLRenderer) Render(doc *appreceipt.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, doc); err != nil {
		return nil, fmt.Errorf("receipt: render html: %w", err)
	}
	return buf.Bytes(), nil
}

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Receipt {{.InvoiceNumber}}</title>
<style>
  @page { size: 80mm auto; margin: 0; }
  body { width: 80mm; margin: 0; padding: 4mm; font-family: 'Courier New', monospace; font-size: 12px; color: #000; box-sizing: border-box; }
  .center { text-align: center; }
  .business { font-size: 16px; font-weight: bold; }
  .muted { font-size: 11px; }
  hr { border: none; border-top: 1px dashed #000; margin: 6px 0; }
  table { width: 100%; border-collapse: collapse; }
  td { vertical-align: top; padding: 1px 0; }
  td.amount { text-align: right; white-space: nowrap; }
  .employee { font-size: 10px; padding-left: 6px; }
  .total td { font-weight: bold; font-size: 14px; }
  .footer { margin-top: 8px; }
</style>
</head>
<body>
  <div class="center">
    <div class="business">{{.Header.Name}}</div>
    {{with .Header.Address}}<div class="muted">{{.}}</div>{{end}}
    {{with .Header.Phone}}<div class="muted">Tel: {{.}}</div>{{end}}
    {{with .Header.Email}}<div class="muted">{{.}}</div>{{end}}
    {{with .Header.TaxPIN}}<div class="muted">KRA PIN: {{.}}</div>{{end}}
  </div>
  <hr>
  <table>
    <tr><td>Receipt #</td><td class="amount"><strong>{{.InvoiceNumber}}</strong></td></tr>
    <tr><td>Date</td><td class="amount">{{date .}}</td></tr>
    <tr><td>Customer</td><td class="amount">{{if .CustomerName}}{{.CustomerName}}{{else}}Walk-in{{end}}</td></tr>
    {{with .CustomerPhone}}<tr><td>Phone</td><td class="amount">{{.}}</td></tr>{{end}}
  </table>
  <hr>
  <table>
    {{range .Lines}}
    <tr><td>{{.Service}}</td><td class="amount">{{kes .Price}}</td></tr>
    <tr><td class="employee" colspan="2">by {{if .Employee}}{{.Employee}}{{else}}-{{end}}</td></tr>
    {{end}}
  </table>
  <hr>
  <table>
    <tr><td>Subtotal</td><td class="amount">{{kes .Totals.Subtotal}}</td></tr>
    <tr><td>VAT (16%)</td><td class="amount">{{kes .Totals.VAT}}</td></tr>
    <tr class="total"><td>TOTAL</td><td class="amount">{{kes .Totals.Total}}</td></tr>
    <tr><td>Payment</td><td class="amount">{{.PaymentMethod}}</td></tr>
  </table>
  {{with .Footer}}<hr><div class="center footer">{{.}}</div>{{end}}
  <script>
    window.onload = function () {
      window.print();
      window.onafterprint = function () { window.close(); };
      setTimeout(function () { window.close(); }, 1000);
    };
  </script>
</body>
</html>
`
