package servicebilling

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/bizdash/internal/application/dto"
	"github.com/jhoicas/bizdash/internal/domain"
	"github.com/jhoicas/bizdash/internal/domain/entity"
	"github.com/jhoicas/bizdash/internal/domain/repository"
	"github.com/jhoicas/bizdash/pkg/logger"
)

// WorkflowUseCase reservas y asignaciones (in_progress → completed → billed).
type WorkflowUseCase struct {
	gateway repository.WorkflowGateway
	log     *logger.Logger
}

// NewWorkflowUseCase construye el caso de uso.
func NewWorkflowUseCase(gateway repository.WorkflowGateway, log *logger.Logger) *WorkflowUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &WorkflowUseCase{gateway: gateway, log: log.Component("workflow")}
}

// CreateBooking crea una reserva; el backend la deja en pending.
func (uc *WorkflowUseCase) CreateBooking(ctx context.Context, in dto.BookingRequest) (*entity.Booking, error) {
	if in.CustomerID == "" {
		return nil, domain.Invalid("customer_id", "Customer is required")
	}
	in.Date = strings.TrimSpace(in.Date)
	in.Time = strings.TrimSpace(in.Time)
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, domain.Invalid("date", "Date must use the YYYY-MM-DD format")
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return nil, domain.Invalid("time", "Time must use the HH:MM format")
	}
	in.ServiceIDs = dedupe(in.ServiceIDs)
	if len(in.ServiceIDs) == 0 {
		return nil, domain.Invalid("service_ids", "Select at least one service")
	}
	b, err := uc.gateway.CreateBooking(ctx, in)
	if err != nil {
		return nil, err
	}
	if b.Status == "" {
		b.Status = entity.BookingPending
	}
	return b, nil
}

// ListBookings reservas, opcionalmente filtradas por estado.
func (uc *WorkflowUseCase) ListBookings(ctx context.Context, status string) ([]entity.Booking, error) {
	status = strings.TrimSpace(status)
	if status != "" && status != "all" && !entity.ValidBookingStatus(status) {
		return nil, domain.Invalid("status", "Unknown booking status")
	}
	if status == "all" {
		status = ""
	}
	return uc.gateway.ListBookings(ctx, status)
}

// ListUnassignedBookings reservas que aún pueden pasar a asignación.
func (uc *WorkflowUseCase) ListUnassignedBookings(ctx context.Context) ([]entity.Booking, error) {
	rows, err := uc.gateway.ListUnassignedBookings(ctx)
	if err != nil {
		return nil, err
	}
	out := rows[:0]
	for i := range rows {
		if rows[i].Unassigned() {
			out = append(out, rows[i])
		}
	}
	return out, nil
}

// UpdateBookingStatus cambia el estado de una reserva.
func (uc *WorkflowUseCase) UpdateBookingStatus(ctx context.Context, id entity.ID, status string) (*entity.Booking, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidBookingStatus(status) {
		return nil, domain.Invalid("status", "Unknown booking status")
	}
	return uc.gateway.UpdateBookingStatus(ctx, id, status)
}

// CreateAssignment inicia una asignación (walk-in o desde una reserva) en in_progress.
func (uc *WorkflowUseCase) CreateAssignment(ctx context.Context, in dto.AssignmentRequest) (*entity.Assignment, error) {
	if in.CustomerID == "" || in.EmployeeID == "" || in.ServiceID == "" {
		return nil, domain.Invalid("assignment", "Customer, employee and service are required")
	}
	if in.Price.IsNegative() || in.EstimatedDuration < 0 {
		return nil, domain.ErrInvalidInput
	}
	a, err := uc.gateway.CreateAssignment(ctx, in)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("assignment", a.ID.String()).Str("employee", in.EmployeeID.String()).Msg("asignación iniciada")
	return a, nil
}

// CompleteAssignment marca como completada una asignación en curso. Se rechaza localmente
// si el estado actual no permite la transición.
func (uc *WorkflowUseCase) CompleteAssignment(ctx context.Context, id entity.ID) (*entity.Assignment, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	current, err := uc.gateway.GetAssignment(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := entity.CanTransition(current.Status, entity.AssignmentCompleted); err != nil {
		return nil, err
	}
	a, err := uc.gateway.CompleteAssignment(ctx, id)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("assignment", id.String()).Msg("asignación completada")
	return a, nil
}

// ListAssignments asignaciones filtradas por estado (vacío = todas).
func (uc *WorkflowUseCase) ListAssignments(ctx context.Context, status string) ([]entity.Assignment, error) {
	switch entity.AssignmentStatus(status) {
	case "", entity.AssignmentInProgress, entity.AssignmentCompleted, entity.AssignmentBilled:
	default:
		return nil, domain.Invalid("status", "Unknown assignment status")
	}
	return uc.gateway.ListAssignments(ctx, status)
}
