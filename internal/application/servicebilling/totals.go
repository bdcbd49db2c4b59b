package servicebilling

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bizdash/internal/application/dto"
	"github.com/jhoicas/bizdash/internal/domain/entity"
	"github.com/jhoicas/bizdash/pkg/money"
)

// Totals subtotal, IVA (16 %) y total de un conjunto de líneas.
type Totals struct {
	Subtotal decimal.Decimal
	VAT      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals subtotal = Σ precios, IVA = subtotal × 0.16, total = subtotal + IVA.
// Es la misma función para la vista previa del tablero y para el recibo.
func ComputeTotals(prices ...decimal.Decimal) Totals {
	subtotal := decimal.Sum(decimal.Zero, prices...)
	vat := money.VAT(subtotal)
	return Totals{Subtotal: subtotal, VAT: vat, Total: subtotal.Add(vat)}
}

// IsZero indica que no hay montos (factura sin totales calculados).
func (t Totals) IsZero() bool {
	return t.Subtotal.IsZero() && t.VAT.IsZero() && t.Total.IsZero()
}

// DTO totales formateados en KES.
func (t Totals) DTO() dto.TotalsDTO {
	return dto.TotalsDTO{
		Subtotal: dto.KES(t.Subtotal),
		VAT:      dto.KES(t.VAT),
		Total:    dto.KES(t.Total),
	}
}

// InvoiceTotals totales de una factura creada: los del backend, o recalculados con
// ComputeTotals sobre sus líneas cuando la respuesta no los trae.
func InvoiceTotals(inv *entity.ServiceInvoice) Totals {
	t := Totals{Subtotal: inv.Subtotal, VAT: inv.VATAmount, Total: inv.TotalAmount}
	if !t.IsZero() {
		return t
	}
	prices := make([]decimal.Decimal, 0, len(inv.Items))
	for _, it := range inv.Items {
		prices = append(prices, it.Price)
	}
	return ComputeTotals(prices...)
}

func assignmentPrices(as []entity.Assignment) []decimal.Decimal {
	prices := make([]decimal.Decimal, 0, len(as))
	for i := range as {
		prices = append(prices, as[i].LinePrice())
	}
	return prices
}
