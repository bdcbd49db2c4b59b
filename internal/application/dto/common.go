package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bizdash/pkg/money"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Alert aviso visible en pantalla cuando una carga falla.
type Alert struct {
	Severity string `json:"severity"` // error | warning | info
	Message  string `json:"message"`
}

// Screen envoltorio de las lecturas de pantalla: datos (o su valor vacío por defecto) más un aviso opcional.
type Screen[T any] struct {
	Data  T      `json:"data"`
	Alert *Alert `json:"alert,omitempty"`
}

// Money monto con su representación en KES sin decimales.
type Money struct {
	Amount  decimal.Decimal `json:"amount"`
	Display string          `json:"display"`
}

// KES construye un Money formateado.
func KES(v decimal.Decimal) Money {
	return Money{Amount: v, Display: money.FormatKES(v)}
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ErrorAlert aviso de error para una parte de la pantalla; el mensaje es el del backend
// o el genérico del cliente HTTP.
func ErrorAlert(part string, err error) Alert {
	msg := "Something went wrong"
	if err != nil {
		msg = err.Error()
	}
	if part != "" {
		msg = part + ": " + msg
	}
	return Alert{Severity: "error", Message: msg}
}
