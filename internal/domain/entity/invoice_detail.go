package entity

import "github.com/shopspring/decimal"

// InvoiceItem línea de factura o cotización.
type InvoiceItem struct {
	ProductID   ID              `json:"product_id,omitempty"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// LineTotal total de la línea; si el backend no lo envía se calcula cantidad × precio.
func (it InvoiceItem) LineTotal() decimal.Decimal {
	if !it.Total.IsZero() {
		return it.Total
	}
	return it.Quantity.Mul(it.UnitPrice)
}
