package entity

import "github.com/shopspring/decimal"

// Commission pago por período a un empleado, calculado y guardado por el backend.
type Commission struct {
	ID               ID              `json:"id"`
	EmployeeID       ID              `json:"employee_id"`
	EmployeeName     string          `json:"employee_name"`
	Period           string          `json:"period"` // YYYY-MM
	CustomerCount    int             `json:"customer_count"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	CommissionRate   decimal.Decimal `json:"commission_rate"`
	CommissionAmount decimal.Decimal `json:"commission_amount"`
	Status           string          `json:"status,omitempty"`
	CalculatedAt     Timestamp       `json:"calculated_at"`
}
