package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bizdash/internal/domain/entity"
)

// ── Catálogo ─────────────────────────────────────────────────────────────────

// ServiceRequest body para crear/editar un servicio.
type ServiceRequest struct {
	ServiceName       string          `json:"service_name"`
	Description       string          `json:"description,omitempty"`
	Price             decimal.Decimal `json:"price"`
	EstimatedDuration int             `json:"estimated_duration"`
}

// CustomerRequest body para crear/editar un cliente.
type CustomerRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Location string `json:"location,omitempty"`
	Email    string `json:"email,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// EmployeeRequest body para crear/editar un empleado.
type EmployeeRequest struct {
	Name           string          `json:"name"`
	Phone          string          `json:"phone,omitempty"`
	Email          string          `json:"email,omitempty"`
	Position       string          `json:"position,omitempty"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
}

// ── Reservas y asignaciones ──────────────────────────────────────────────────

// BookingRequest body para POST /api/service-billing/bookings.
type BookingRequest struct {
	CustomerID entity.ID   `json:"customer_id"`
	Date       string      `json:"date"` // YYYY-MM-DD
	Time       string      `json:"time"` // HH:MM
	ServiceIDs []entity.ID `json:"service_ids"`
	Notes      string      `json:"notes,omitempty"`
}

// BookingStatusRequest body para PATCH de estado de reserva.
type BookingStatusRequest struct {
	Status string `json:"status"`
}

// AssignmentRequest body para crear una asignación (walk-in o desde una reserva).
type AssignmentRequest struct {
	CustomerID        entity.ID       `json:"customer_id"`
	EmployeeID        entity.ID       `json:"employee_id"`
	ServiceID         entity.ID       `json:"service_id"`
	BookingID         *entity.ID      `json:"booking_id,omitempty"`
	EstimatedDuration int             `json:"estimated_duration,omitempty"`
	Price             decimal.Decimal `json:"price,omitempty"`
}

// ── Tablero de facturación ───────────────────────────────────────────────────

// TotalsDTO subtotal / IVA / total de una selección.
type TotalsDTO struct {
	Subtotal Money `json:"subtotal"`
	VAT      Money `json:"vat"`
	Total    Money `json:"total"`
}

// BillableRow asignación facturable tal como se muestra en el tablero.
type BillableRow struct {
	AssignmentID entity.ID               `json:"assignment_id"`
	ServiceName  string                  `json:"service_name"`
	EmployeeName string                  `json:"employee_name"`
	Status       entity.AssignmentStatus `json:"status"`
	StartTime    entity.Timestamp        `json:"start_time"`
	Price        Money                   `json:"price"`
	Selected     bool                    `json:"selected"`
}

// CustomerGroup asignaciones facturables de un cliente con la vista previa de su selección.
type CustomerGroup struct {
	CustomerID    entity.ID     `json:"customer_id"`
	CustomerName  string        `json:"customer_name"`
	CustomerPhone string        `json:"customer_phone,omitempty"`
	Rows          []BillableRow `json:"rows"`
	SelectedIDs   []entity.ID   `json:"selected_ids"`
	Preview       TotalsDTO     `json:"preview"`
}

// BillingBoard tablero completo de facturación de servicios.
type BillingBoard struct {
	Groups []CustomerGroup `json:"groups"`
	Count  int             `json:"count"`
}

// SelectionRequest body para marcar/desmarcar asignaciones en el tablero.
type SelectionRequest struct {
	AssignmentIDs []entity.ID `json:"assignment_ids"`
	Selected      bool        `json:"selected"`
}

// PreviewRequest body para POST /api/service-billing/billing/preview.
type PreviewRequest struct {
	CustomerID    entity.ID   `json:"customer_id"`
	AssignmentIDs []entity.ID `json:"assignment_ids"`
}

// CreateServiceInvoiceRequest body para POST /api/service-billing/invoices.
type CreateServiceInvoiceRequest struct {
	CustomerID    entity.ID   `json:"customer_id"`
	AssignmentIDs []entity.ID `json:"assignment_ids"`
	PaymentMethod string      `json:"payment_method"`
}

// CreateServiceInvoiceResponse factura creada más el tablero ya refrescado.
type CreateServiceInvoiceResponse struct {
	Invoice *entity.ServiceInvoice `json:"invoice"`
	Totals  TotalsDTO              `json:"totals"`
	Board   *BillingBoard          `json:"board,omitempty"`
	Alert   *Alert                 `json:"alert,omitempty"`
}

// ServiceInvoiceFilter filtros del listado de facturas de servicios.
type ServiceInvoiceFilter struct {
	DateRange string `query:"date_range"`
	Search    string `query:"search"`
}

// CommissionRequest body para calcular comisiones de un período.
type CommissionRequest struct {
	Period string `json:"period"` // YYYY-MM
}
