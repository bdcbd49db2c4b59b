package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bizdash/internal/domain/entity"
)

// InvoiceFilter filtros de GET /api/invoices.
type InvoiceFilter struct {
	Search    string `query:"search"`
	Status    string `query:"status"`
	DateRange string `query:"date_range"`
}

// QuotationFilter filtros de GET /api/quotations.
type QuotationFilter struct {
	Search string `query:"search"`
}

// QuotationItemRequest línea de cotización.
type QuotationItemRequest struct {
	ProductID   *entity.ID      `json:"product_id,omitempty"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// QuotationRequest body para POST /api/quotations.
type QuotationRequest struct {
	CustomerName  string                 `json:"customer_name"`
	CustomerEmail string                 `json:"customer_email,omitempty"`
	CustomerPhone string                 `json:"customer_phone,omitempty"`
	Items         []QuotationItemRequest `json:"items"`
	ValidityDays  int                    `json:"validity_days"`
	Notes         string                 `json:"notes,omitempty"`
}

// InvoiceSummary fila del listado de facturas con montos formateados.
type InvoiceSummary struct {
	ID            entity.ID        `json:"id"`
	InvoiceNumber string           `json:"invoice_number"`
	CustomerName  string           `json:"customer_name"`
	Total         Money            `json:"total"`
	Balance       Money            `json:"balance"`
	Status        string           `json:"status"`
	DueDate       entity.Timestamp `json:"due_date"`
	CreatedAt     entity.Timestamp `json:"created_at"`
}

// QuotationSummary fila del listado de cotizaciones.
type QuotationSummary struct {
	ID              entity.ID        `json:"id"`
	QuotationNumber string           `json:"quotation_number"`
	CustomerName    string           `json:"customer_name"`
	Total           Money            `json:"total"`
	Status          string           `json:"status"`
	Convertible     bool             `json:"convertible"`
	ValidUntil      entity.Timestamp `json:"valid_until"`
}

// ServiceInvoiceSummary fila del listado de facturas de servicios.
type ServiceInvoiceSummary struct {
	ID            entity.ID        `json:"id"`
	InvoiceNumber string           `json:"invoice_number"`
	CustomerName  string           `json:"customer_name"`
	Items         int              `json:"items"`
	Total         Money            `json:"total"`
	PaymentMethod string           `json:"payment_method"`
	CreatedAt     entity.Timestamp `json:"created_at"`
}
