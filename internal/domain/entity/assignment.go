package entity

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bizdash/internal/domain"
)

// AssignmentStatus estado de una asignación de servicio.
type AssignmentStatus string

const (
	AssignmentInProgress AssignmentStatus = "in_progress"
	AssignmentCompleted  AssignmentStatus = "completed"
	AssignmentBilled     AssignmentStatus = "billed"
)

// Transiciones permitidas. Sólo hacia adelante; se puede facturar antes de completar.
var assignmentTransitions = map[AssignmentStatus][]AssignmentStatus{
	AssignmentInProgress: {AssignmentCompleted, AssignmentBilled},
	AssignmentCompleted:  {AssignmentBilled},
}

// CanTransition valida el paso from → to.
func CanTransition(from, to AssignmentStatus) error {
	for _, next := range assignmentTransitions[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s → %s", domain.ErrInvalidTransition, from, to)
}

// Assignment une un cliente, un empleado y un servicio.
type Assignment struct {
	ID                ID               `json:"id"`
	CustomerID        ID               `json:"customer_id"`
	Customer          *Customer        `json:"customer,omitempty"`
	EmployeeID        ID               `json:"employee_id"`
	Employee          *Employee        `json:"employee,omitempty"`
	ServiceID         ID               `json:"service_id"`
	Service           *Service         `json:"service,omitempty"`
	BookingID         ID               `json:"booking_id,omitempty"`
	Status            AssignmentStatus `json:"status"`
	StartTime         Timestamp        `json:"start_time"`
	EndTime           Timestamp        `json:"end_time"`
	EstimatedDuration int              `json:"estimated_duration"`
	ActualDuration    *int             `json:"actual_duration,omitempty"`
	Price             decimal.Decimal  `json:"price"`
}

// Billable indica si la asignación todavía puede incluirse en una factura.
func (a *Assignment) Billable() bool {
	return a.Status != AssignmentBilled
}

// LinePrice precio a facturar: el del servicio, o el precio plano si el backend no anidó el servicio.
func (a *Assignment) LinePrice() decimal.Decimal {
	if a.Service != nil && !a.Service.Price.IsZero() {
		return a.Service.Price
	}
	return a.Price
}

// CustomerKey clave de agrupación por cliente.
func (a *Assignment) CustomerKey() ID {
	if a.CustomerID != "" {
		return a.CustomerID
	}
	if a.Customer != nil {
		return a.Customer.ID
	}
	return ""
}

// CustomerName nombre visible del cliente.
func (a *Assignment) CustomerName() string {
	if a.Customer != nil {
		return a.Customer.Name
	}
	return ""
}

// EmployeeName nombre visible del empleado.
func (a *Assignment) EmployeeName() string {
	if a.Employee != nil {
		return a.Employee.Name
	}
	return ""
}

// ServiceName nombre visible del servicio.
func (a *Assignment) ServiceName() string {
	if a.Service != nil {
		return a.Service.ServiceName
	}
	return ""
}
