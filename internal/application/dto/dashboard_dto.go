package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bizdash/internal/domain/analytics"
	"github.com/jhoicas/bizdash/internal/domain/entity"
)

// RecentInvoiceDTO factura reciente en la pantalla de inicio.
type RecentInvoiceDTO struct {
	ID            entity.ID        `json:"id"`
	InvoiceNumber string           `json:"invoice_number"`
	CustomerName  string           `json:"customer_name"`
	Total         Money            `json:"total"`
	Status        string           `json:"status"`
	CreatedAt     entity.Timestamp `json:"created_at"`
}

// LowStockDTO producto con stock bajo o agotado.
type LowStockDTO struct {
	ID           entity.ID             `json:"id"`
	Name         string                `json:"name"`
	SKU          string                `json:"sku,omitempty"`
	Quantity     decimal.Decimal       `json:"quantity"`
	ReorderLevel decimal.Decimal       `json:"reorder_level"`
	Status       analytics.StockStatus `json:"status"`
	Badge        analytics.Badge       `json:"badge"`
}

// HomeView pantalla de inicio: resumen, facturas recientes y stock bajo.
// Cada parte se degrada por separado a su valor vacío con un aviso.
type HomeView struct {
	Overview       OverviewView       `json:"overview"`
	RecentInvoices []RecentInvoiceDTO `json:"recent_invoices"`
	LowStock       []LowStockDTO      `json:"low_stock"`
	Alerts         []Alert            `json:"alerts"`
}
