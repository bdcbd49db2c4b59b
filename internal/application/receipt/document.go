// Package receipt arma el recibo de una factura de servicios y orquesta su impresión
// (HTML para impresora térmica de 80mm, texto de ancho fijo y PDF).
package receipt

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bizdash/internal/application/servicebilling"
	"github.com/jhoicas/bizdash/internal/domain/entity"
)

// Formatos de salida.
const (
	FormatHTML = "html"
	FormatText = "text"
	FormatPDF  = "pdf"
)

// Header cabecera del negocio.
type Header struct {
	Name    string
	Address string
	Phone   string
	Email   string
	TaxPIN  string
}

// Line línea del recibo con atribución al empleado.
type Line struct {
	Service  string
	Employee string
	Price    decimal.Decimal
}

// Document mismo conjunto de campos para todos los formatos.
type Document struct {
	Header        Header
	InvoiceNumber string
	IssuedAt      time.Time
	CustomerName  string
	CustomerPhone string
	Lines         []Line
	Totals        servicebilling.Totals
	PaymentMethod string
	Footer        string
}

// Renderer convierte un Document en bytes de un formato.
type Renderer interface {
	Format() string
	ContentType() string
	Render(doc *Document) ([]byte, error)
}

// BuildDocument arma el recibo. Los totales son los de la factura; si vienen en cero
// se recalculan con la misma función que la vista previa del tablero.
func BuildDocument(inv *entity.ServiceInvoice, settings entity.BusinessSettings, footer string, now time.Time) *Document {
	doc := &Document{
		Header: Header{
			Name:    settings.BusinessName,
			Address: settings.Address,
			Phone:   settings.Phone,
			Email:   settings.Email,
			TaxPIN:  settings.TaxPIN,
		},
		InvoiceNumber: inv.InvoiceNumber,
		IssuedAt:      inv.CreatedAt.Time,
		CustomerName:  inv.CustomerName(),
		Lines:         make([]Line, 0, len(inv.Items)),
		Totals:        servicebilling.InvoiceTotals(inv),
		PaymentMethod: PaymentLabel(inv.PaymentMethod),
		Footer:        footer,
	}
	if inv.Customer != nil {
		doc.CustomerPhone = inv.Customer.Phone
	}
	if doc.IssuedAt.IsZero() {
		doc.IssuedAt = now
	}
	if settings.ReceiptFooter != "" {
		doc.Footer = settings.ReceiptFooter
	}
	for _, it := range inv.Items {
		doc.Lines = append(doc.Lines, Line{Service: it.ServiceName, Employee: it.EmployeeName, Price: it.Price})
	}
	return doc
}

// PaymentLabel nombre visible del método de pago.
func PaymentLabel(method string) string {
	switch method {
	case entity.PaymentCash:
		return "Cash"
	case entity.PaymentMpesa:
		return "M-Pesa"
	case entity.PaymentCard:
		return "Card"
	case entity.PaymentBankTransfer:
		return "Bank Transfer"
	case "":
		return "Cash"
	default:
		return method
	}
}
