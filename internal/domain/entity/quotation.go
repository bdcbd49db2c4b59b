package entity

import "github.com/shopspring/decimal"

// Estados de una cotización.
const (
	QuotationDraft     = "draft"
	QuotationSent      = "sent"
	QuotationAccepted  = "accepted"
	QuotationConverted = "converted"
	QuotationExpired   = "expired"
)

// Quotation cotización; puede convertirse en factura.
type Quotation struct {
	ID              ID              `json:"id"`
	QuotationNumber string          `json:"quotation_number"`
	CustomerName    string          `json:"customer_name"`
	CustomerEmail   string          `json:"customer_email,omitempty"`
	CustomerPhone   string          `json:"customer_phone,omitempty"`
	Items           []InvoiceItem   `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          string          `json:"status"`
	ValidUntil      Timestamp       `json:"valid_until"`
	CreatedAt       Timestamp       `json:"created_at"`
}

// Convertible indica si la cotización puede pasar a factura.
func (q *Quotation) Convertible() bool {
	return q.Status != QuotationConverted && q.Status != QuotationExpired
}
