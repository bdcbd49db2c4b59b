package entity

import "github.com/shopspring/decimal"

// Service servicio ofrecido; EstimatedDuration en minutos.
type Service struct {
	ID                ID              `json:"id"`
	ServiceName       string          `json:"service_name"`
	Description       string          `json:"description,omitempty"`
	Price             decimal.Decimal `json:"price"`
	EstimatedDuration int             `json:"estimated_duration"`
}
