package entity

import "github.com/shopspring/decimal"

// Métodos de pago aceptados en facturación de servicios.
const (
	PaymentCash         = "cash"
	PaymentMpesa        = "mpesa"
	PaymentCard         = "card"
	PaymentBankTransfer = "bank_transfer"
)

// ValidPaymentMethod indica si m es un método de pago conocido.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentMpesa, PaymentCard, PaymentBankTransfer:
		return true
	}
	return false
}

// ServiceInvoiceItem línea de una factura de servicios, con atribución al empleado.
type ServiceInvoiceItem struct {
	AssignmentID ID              `json:"assignment_id"`
	ServiceName  string          `json:"service_name"`
	EmployeeName string          `json:"employee_name"`
	Price        decimal.Decimal `json:"price"`
}

// ServiceInvoice factura generada a partir de asignaciones. Inmutable una vez creada.
type ServiceInvoice struct {
	ID            ID                   `json:"id"`
	InvoiceNumber string               `json:"invoice_number"`
	CustomerID    ID                   `json:"customer_id"`
	Customer      *Customer            `json:"customer,omitempty"`
	Items         []ServiceInvoiceItem `json:"items"`
	Subtotal      decimal.Decimal      `json:"subtotal"`
	VATAmount     decimal.Decimal      `json:"vat_amount"`
	TotalAmount   decimal.Decimal      `json:"total_amount"`
	PaymentMethod string               `json:"payment_method"`
	CreatedAt     Timestamp            `json:"created_at"`
}

// CustomerName nombre visible del cliente facturado.
func (i *ServiceInvoice) CustomerName() string {
	if i.Customer != nil {
		return i.Customer.Name
	}
	return ""
}
