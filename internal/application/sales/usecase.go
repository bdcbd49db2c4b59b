// Package sales contiene facturas de venta, cotizaciones y la configuración del negocio.
package sales

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/bizdash/internal/application/dto"
	"github.com/jhoicas/bizdash/internal/application/screen"
	"github.com/jhoicas/bizdash/internal/domain"
	"github.com/jhoicas/bizdash/internal/domain/analytics"
	"github.com/jhoicas/bizdash/internal/domain/entity"
	"github.com/jhoicas/bizdash/internal/domain/repository"
	"github.com/jhoicas/bizdash/pkg/logger"
)

// DefaultValidityDays validez de una cotización cuando no se indica.
const DefaultValidityDays = 30

// UseCase facturas y cotizaciones.
type UseCase struct {
	gateway repository.SalesGateway
	log     *logger.Logger

	invoices   screen.View[dto.InvoiceFilter, []entity.Invoice]
	quotations screen.View[dto.QuotationFilter, []entity.Quotation]
}

// NewUseCase construye el caso de uso.
func NewUseCase(gateway repository.SalesGateway, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{gateway: gateway, log: log.Component("sales")}
}

// ListInvoices listado filtrado; un filtro más nuevo reemplaza la carga en curso.
func (uc *UseCase) ListInvoices(ctx context.Context, f dto.InvoiceFilter) ([]dto.InvoiceSummary, error) {
	f.Search = strings.TrimSpace(f.Search)
	if f.DateRange != "" {
		if _, err := analytics.ParseDateRange(f.DateRange); err != nil {
			return nil, err
		}
	}
	if f.Status == "all" {
		f.Status = ""
	}
	rows, err := uc.invoices.Load(ctx, f, uc.gateway.ListInvoices)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvoiceSummary, 0, len(rows))
	for i := range rows {
		inv := &rows[i]
		out = append(out, dto.InvoiceSummary{
			ID:            inv.ID,
			InvoiceNumber: inv.InvoiceNumber,
			CustomerName:  inv.CustomerName,
			Total:         dto.KES(inv.TotalAmount),
			Balance:       dto.KES(inv.Balance()),
			Status:        inv.Status,
			DueDate:       inv.DueDate,
			CreatedAt:     inv.CreatedAt,
		})
	}
	return out, nil
}

// GetInvoice factura con sus líneas.
func (uc *UseCase) GetInvoice(ctx context.Context, id entity.ID) (*entity.Invoice, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.gateway.GetInvoice(ctx, id)
}

// ListQuotations listado con búsqueda.
func (uc *UseCase) ListQuotations(ctx context.Context, f dto.QuotationFilter) ([]dto.QuotationSummary, error) {
	f.Search = strings.TrimSpace(f.Search)
	rows, err := uc.quotations.Load(ctx, f, uc.gateway.ListQuotations)
	if err != nil {
		return nil, err
	}
	out := make([]dto.QuotationSummary, 0, len(rows))
	for i := range rows {
		q := &rows[i]
		out = append(out, dto.QuotationSummary{
			ID:              q.ID,
			QuotationNumber: q.QuotationNumber,
			CustomerName:    q.CustomerName,
			Total:           dto.KES(q.TotalAmount),
			Status:          q.Status,
			Convertible:     q.Convertible(),
			ValidUntil:      q.ValidUntil,
		})
	}
	return out, nil
}

// CreateQuotation valida campos requeridos y crea la cotización; los totales los calcula el backend.
func (uc *UseCase) CreateQuotation(ctx context.Context, in dto.QuotationRequest) (*entity.Quotation, error) {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	if in.CustomerName == "" {
		return nil, domain.Invalid("customer_name", "Customer name is required")
	}
	if len(in.Items) == 0 {
		return nil, domain.Invalid("items", "Add at least one item")
	}
	for i := range in.Items {
		it := &in.Items[i]
		it.Description = strings.TrimSpace(it.Description)
		if it.Description == "" {
			return nil, domain.Invalid("items", fmt.Sprintf("Item %d needs a description", i+1))
		}
		if !it.Quantity.IsPositive() {
			return nil, domain.Invalid("items", fmt.Sprintf("Item %d needs a quantity greater than zero", i+1))
		}
		if it.UnitPrice.IsNegative() {
			return nil, domain.Invalid("items", fmt.Sprintf("Item %d has a negative price", i+1))
		}
	}
	switch {
	case in.ValidityDays == 0:
		in.ValidityDays = DefaultValidityDays
	case in.ValidityDays < 0:
		return nil, domain.Invalid("validity_days", "Validity must be a positive number of days")
	}
	q, err := uc.gateway.CreateQuotation(ctx, in)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("quotation", q.QuotationNumber).Int("items", len(in.Items)).Msg("cotización creada")
	return q, nil
}

// ConvertQuotation convierte una cotización en factura.
func (uc *UseCase) ConvertQuotation(ctx context.Context, id entity.ID) (*entity.Invoice, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	inv, err := uc.gateway.ConvertQuotation(ctx, id)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("quotation", id.String()).Str("invoice", inv.InvoiceNumber).Msg("cotización convertida")
	return inv, nil
}
