package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptRecord registro de un recibo impreso (diario local de impresión).
type ReceiptRecord struct {
	ID            int64           `json:"id"`
	InvoiceNumber string          `json:"invoice_number"`
	CustomerName  string          `json:"customer_name"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod string          `json:"payment_method"`
	Format        string          `json:"format"` // html | text | pdf
	ArchiveKey    string          `json:"archive_key,omitempty"`
	PrintedAt     time.Time       `json:"printed_at"`
}
