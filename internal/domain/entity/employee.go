package entity

import "github.com/shopspring/decimal"

// Employee empleado que atiende servicios; CommissionRate en porcentaje (0–100).
type Employee struct {
	ID             ID              `json:"id"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone,omitempty"`
	Email          string          `json:"email,omitempty"`
	Position       string          `json:"position,omitempty"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
}
