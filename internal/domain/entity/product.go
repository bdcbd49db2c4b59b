package entity

import "github.com/shopspring/decimal"

// Product producto del inventario tal como lo reporta la analítica de stock.
type Product struct {
	ID           ID              `json:"id"`
	SKU          string          `json:"sku,omitempty"`
	Name         string          `json:"name"`
	Category     string          `json:"category,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
	ReorderLevel decimal.Decimal `json:"reorder_level"`
	Price        decimal.Decimal `json:"price"`
	Cost         decimal.Decimal `json:"cost"`
}

// StockValue valor del stock a precio de venta.
func (p *Product) StockValue() decimal.Decimal {
	return p.Quantity.Mul(p.Price)
}
