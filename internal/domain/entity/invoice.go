package entity

import "github.com/shopspring/decimal"

// Estados de una factura de venta.
const (
	InvoiceDraft   = "draft"
	InvoicePending = "pending"
	InvoicePaid    = "paid"
	InvoicePartial = "partial"
	InvoiceOverdue = "overdue"
)

// Invoice factura de venta (módulo de facturación general).
type Invoice struct {
	ID            ID              `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email,omitempty"`
	CustomerPhone string          `json:"customer_phone,omitempty"`
	Items         []InvoiceItem   `json:"items"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxAmount     decimal.Decimal `json:"tax_amount"`
	Discount      decimal.Decimal `json:"discount"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	Status        string          `json:"status"`
	DueDate       Timestamp       `json:"due_date"`
	CreatedAt     Timestamp       `json:"created_at"`
}

// Balance saldo pendiente de la factura.
func (i *Invoice) Balance() decimal.Decimal {
	b := i.TotalAmount.Sub(i.AmountPaid)
	if b.IsNegative() {
		return decimal.Zero
	}
	return b
}
