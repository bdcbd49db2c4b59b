// Package servicebilling contiene el flujo del negocio de servicios: catálogo, reservas,
// asignaciones y la facturación de asignaciones agrupadas por cliente.
package servicebilling

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/bizdash/internal/application/dto"
	"github.com/jhoicas/bizdash/internal/application/screen"
	"github.com/jhoicas/bizdash/internal/domain"
	"github.com/jhoicas/bizdash/internal/domain/entity"
	"github.com/jhoicas/bizdash/internal/domain/repository"
	"github.com/jhoicas/bizdash/pkg/logger"
)

// BillingUseCase tablero de facturación, creación de facturas de servicios y comisiones.
type BillingUseCase struct {
	gateway   repository.BillingGateway
	selection *Selection
	log       *logger.Logger
	newKey    func() string

	mu     sync.Mutex
	groups []Group

	invoices screen.View[dto.ServiceInvoiceFilter, []entity.ServiceInvoice]
}

// NewBillingUseCase construye el caso de uso.
func NewBillingUseCase(gateway repository.BillingGateway, log *logger.Logger) *BillingUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &BillingUseCase{
		gateway:   gateway,
		selection: NewSelection(),
		log:       log.Component("servicebilling"),
		newKey:    uuid.NewString,
	}
}

// fetchGroups trae las asignaciones facturables y las agrupa. Las filas billed se descartan
// aunque el backend las devuelva.
func (uc *BillingUseCase) fetchGroups(ctx context.Context) ([]Group, error) {
	rows, err := uc.gateway.ListBillableAssignments(ctx)
	if err != nil {
		return nil, err
	}
	groups, dropped := GroupBillable(rows)
	if dropped > 0 {
		uc.log.Warn().Int("dropped", dropped).Msg("el backend devolvió asignaciones ya facturadas como facturables")
	}
	uc.mu.Lock()
	uc.groups = groups
	uc.mu.Unlock()
	uc.selection.Retain(groups)
	return groups, nil
}

func (uc *BillingUseCase) cachedGroups(ctx context.Context) ([]Group, error) {
	uc.mu.Lock()
	groups := uc.groups
	uc.mu.Unlock()
	if groups != nil {
		return groups, nil
	}
	return uc.fetchGroups(ctx)
}

// Board refresca el tablero desde el backend.
func (uc *BillingUseCase) Board(ctx context.Context) (*dto.BillingBoard, error) {
	groups, err := uc.fetchGroups(ctx)
	if err != nil {
		return nil, err
	}
	return BuildBoard(groups, uc.selection), nil
}

// Select marca/desmarca asignaciones y devuelve el tablero con la vista previa actualizada.
func (uc *BillingUseCase) Select(ctx context.Context, in dto.SelectionRequest) (*dto.BillingBoard, error) {
	groups, err := uc.cachedGroups(ctx)
	if err != nil {
		return nil, err
	}
	for _, id := range in.AssignmentIDs {
		if !contains(groups, id) {
			return nil, domain.Invalid("assignment_ids", fmt.Sprintf("Assignment %s is not billable", id))
		}
	}
	uc.selection.Set(in.Selected, in.AssignmentIDs...)
	return BuildBoard(groups, uc.selection), nil
}

// Preview totales de un conjunto de asignaciones de un cliente (sólo visualización).
func (uc *BillingUseCase) Preview(ctx context.Context, in dto.PreviewRequest) (dto.TotalsDTO, error) {
	groups, err := uc.cachedGroups(ctx)
	if err != nil {
		return dto.TotalsDTO{}, err
	}
	picked, err := pick(groups, in.CustomerID, in.AssignmentIDs)
	if err != nil {
		return dto.TotalsDTO{}, err
	}
	return ComputeTotals(assignmentPrices(picked)...).DTO(), nil
}

// CreateInvoice crea la factura de servicios para un conjunto de asignaciones de un cliente.
// Los ids se validan contra el tablero recién traído; el rechazo del backend (p. ej. 409 por
// ids ya facturados) se devuelve como error. Tras el éxito el tablero se vuelve a traer.
func (uc *BillingUseCase) CreateInvoice(ctx context.Context, in dto.CreateServiceInvoiceRequest) (*dto.CreateServiceInvoiceResponse, error) {
	if in.CustomerID == "" {
		return nil, domain.Invalid("customer_id", "Customer is required")
	}
	in.AssignmentIDs = dedupe(in.AssignmentIDs)
	if len(in.AssignmentIDs) == 0 {
		return nil, domain.Invalid("assignment_ids", "Select at least one assignment to bill")
	}
	in.PaymentMethod = strings.ToLower(strings.TrimSpace(in.PaymentMethod))
	if in.PaymentMethod == "" {
		in.PaymentMethod = entity.PaymentCash
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.Invalid("payment_method", "Invalid payment method")
	}

	groups, err := uc.fetchGroups(ctx)
	if err != nil {
		return nil, err
	}
	picked, err := pick(groups, in.CustomerID, in.AssignmentIDs)
	if err != nil {
		return nil, err
	}

	key := uc.newKey()
	inv, err := uc.gateway.CreateServiceInvoice(ctx, in, key)
	if err != nil {
		uc.log.Warn().Err(err).Str("customer_id", in.CustomerID.String()).Int("items", len(in.AssignmentIDs)).Msg("factura de servicios rechazada")
		return nil, err
	}
	if inv == nil {
		return nil, fmt.Errorf("servicebilling: respuesta de factura vacía: %w", domain.ErrBackendUnavailable)
	}
	if len(inv.Items) == 0 {
		inv.Items = itemsFromAssignments(picked)
	}
	uc.log.Info().Str("invoice", inv.InvoiceNumber).Str("idempotency_key", key).Int("items", len(in.AssignmentIDs)).Msg("factura de servicios creada")

	uc.selection.Set(false, in.AssignmentIDs...)
	resp := &dto.CreateServiceInvoiceResponse{Invoice: inv, Totals: InvoiceTotals(inv).DTO()}
	board, err := uc.Board(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo refrescar el tablero tras facturar")
		resp.Alert = &dto.Alert{Severity: "warning", Message: "Invoice created, but the billing list could not be refreshed"}
		return resp, nil
	}
	resp.Board = board
	return resp, nil
}

// pick valida que todos los ids pertenezcan al grupo facturable del cliente.
func pick(groups []Group, customerID entity.ID, ids []entity.ID) ([]entity.Assignment, error) {
	if len(ids) == 0 {
		return nil, domain.Invalid("assignment_ids", "Select at least one assignment to bill")
	}
	var group *Group
	for i := range groups {
		if groups[i].CustomerID == customerID {
			group = &groups[i]
			break
		}
	}
	if group == nil {
		return nil, domain.Invalid("customer_id", "Customer has no billable assignments")
	}
	out := make([]entity.Assignment, 0, len(ids))
	for _, id := range ids {
		a, ok := group.Find(id)
		if !ok {
			return nil, domain.Invalid("assignment_ids", fmt.Sprintf("Assignment %s is not billable for this customer", id))
		}
		out = append(out, *a)
	}
	return out, nil
}

func contains(groups []Group, id entity.ID) bool {
	for i := range groups {
		if _, ok := groups[i].Find(id); ok {
			return true
		}
	}
	return false
}

func dedupe(ids []entity.ID) []entity.ID {
	seen := make(map[entity.ID]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func itemsFromAssignments(as []entity.Assignment) []entity.ServiceInvoiceItem {
	items := make([]entity.ServiceInvoiceItem, 0, len(as))
	for i := range as {
		items = append(items, entity.ServiceInvoiceItem{
			AssignmentID: as[i].ID,
			ServiceName:  as[i].ServiceName(),
			EmployeeName: as[i].EmployeeName(),
			Price:        as[i].LinePrice(),
		})
	}
	return items
}

// ListInvoices listado de facturas de servicios; una búsqueda más nueva reemplaza a la anterior.
func (uc *BillingUseCase) ListInvoices(ctx context.Context, f dto.ServiceInvoiceFilter) ([]dto.ServiceInvoiceSummary, error) {
	f.Search = strings.TrimSpace(f.Search)
	rows, err := uc.invoices.Load(ctx, f, uc.gateway.ListServiceInvoices)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ServiceInvoiceSummary, 0, len(rows))
	for i := range rows {
		inv := &rows[i]
		out = append(out, dto.ServiceInvoiceSummary{
			ID:            inv.ID,
			InvoiceNumber: inv.InvoiceNumber,
			CustomerName:  inv.CustomerName(),
			Items:         len(inv.Items),
			Total:         dto.KES(InvoiceTotals(inv).Total),
			PaymentMethod: inv.PaymentMethod,
			CreatedAt:     inv.CreatedAt,
		})
	}
	return out, nil
}

// GetInvoice factura de servicios por número.
func (uc *BillingUseCase) GetInvoice(ctx context.Context, invoiceNumber string) (*entity.ServiceInvoice, error) {
	invoiceNumber = strings.TrimSpace(invoiceNumber)
	if invoiceNumber == "" {
		return nil, domain.Invalid("invoice_number", "Invoice number is required")
	}
	return uc.gateway.GetServiceInvoice(ctx, invoiceNumber)
}

// Commissions comisiones calculadas de un período YYYY-MM.
func (uc *BillingUseCase) Commissions(ctx context.Context, period string) ([]entity.Commission, error) {
	period, err := normalizePeriod(period)
	if err != nil {
		return nil, err
	}
	return uc.gateway.ListCommissions(ctx, period)
}

// CalculateCommissions pide al servidor el cálculo de comisiones del período.
func (uc *BillingUseCase) CalculateCommissions(ctx context.Context, period string) ([]entity.Commission, error) {
	period, err := normalizePeriod(period)
	if err != nil {
		return nil, err
	}
	out, err := uc.gateway.CalculateCommissions(ctx, period)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("period", period).Int("employees", len(out)).Msg("comisiones calculadas")
	return out, nil
}

func normalizePeriod(period string) (string, error) {
	period = strings.TrimSpace(period)
	if period == "" {
		return time.Now().Format("2006-01"), nil
	}
	if _, err := time.Parse("2006-01", period); err != nil {
		return "", domain.Invalid("period", "Period must use the YYYY-MM format")
	}
	return period, nil
}
