package servicebilling_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bizdash/internal/application/dto"
	"github.com/jhoicas/bizdash/internal/application/servicebilling"
	"github.com/jhoicas/bizdash/internal/domain"
	"github.com/jhoicas/bizdash/internal/domain/entity"
	"github.com/jhoicas/bizdash/pkg/logger"
)

type fakeWorkflow struct {
	assignment    entity.Assignment
	completeCalls int
	bookings      []entity.Booking
	created       dto.BookingRequest
	lastStatus    string
}

func (f *fakeWorkflow) ListBookings(_ context.Context, status string) ([]entity.Booking, error) {
	f.lastStatus = status
	return f.bookings, nil
}

func (f *fakeWorkflow) ListUnassignedBookings(context.Context) ([]entity.Booking, error) {
	return f.bookings, nil
}

func (f *fakeWorkflow) CreateBooking(_ context.Context, in dto.BookingRequest) (*entity.Booking, error) {
	f.created = in
	return &entity.Booking{ID: "b1", CustomerID: in.CustomerID, Date: in.Date, Time: in.Time}, nil
}

func (f *fakeWorkflow) UpdateBookingStatus(_ context.Context, id entity.ID, status string) (*entity.Booking, error) {
	return &entity.Booking{ID: id, Status: status}, nil
}

func (f *fakeWorkflow) ListAssignments(context.Context, string) ([]entity.Assignment, error) {
	return []entity.Assignment{f.assignment}, nil
}

func (f *fakeWorkflow) GetAssignment(context.Context, entity.ID) (*entity.Assignment, error) {
	a := f.assignment
	return &a, nil
}

func (f *fakeWorkflow) CreateAssignment(_ context.Context, in dto.AssignmentRequest) (*entity.Assignment, error) {
	return &entity.Assignment{ID: "a1", CustomerID: in.CustomerID, Status: entity.AssignmentInProgress}, nil
}

func (f *fakeWorkflow) CompleteAssignment(_ context.Context, id entity.ID) (*entity.Assignment, error) {
	f.completeCalls++
	return &entity.Assignment{ID: id, Status: entity.AssignmentCompleted}, nil
}

func TestCreateBooking_QuedaPendiente(t *testing.T) {
	fw := &fakeWorkflow{}
	uc := servicebilling.NewWorkflowUseCase(fw, logger.Nop())

	b, err := uc.CreateBooking(context.Background(), dto.BookingRequest{
		CustomerID: "5", Date: "2025-06-01", Time: "14:30", ServiceIDs: []entity.ID{"1", "1", "2"},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingPending, b.Status)
	assert.Equal(t, []entity.ID{"1", "2"}, fw.created.ServiceIDs)
}

func TestCreateBooking_Validaciones(t *testing.T) {
	uc := servicebilling.NewWorkflowUseCase(&fakeWorkflow{}, logger.Nop())
	for _, in := range []dto.BookingRequest{
		{Date: "2025-06-01", Time: "14:30", ServiceIDs: []entity.ID{"1"}},
		{CustomerID: "5", Date: "01/06/2025", Time: "14:30", ServiceIDs: []entity.ID{"1"}},
		{CustomerID: "5", Date: "2025-06-01", Time: "2pm", ServiceIDs: []entity.ID{"1"}},
		{CustomerID: "5", Date: "2025-06-01", Time: "14:30"},
	} {
		_, err := uc.CreateBooking(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestListBookings_FiltroDeEstado(t *testing.T) {
	fw := &fakeWorkflow{}
	uc := servicebilling.NewWorkflowUseCase(fw, logger.Nop())

	_, err := uc.ListBookings(context.Background(), "all")
	require.NoError(t, err)
	assert.Empty(t, fw.lastStatus)

	_, err = uc.ListBookings(context.Background(), "archived")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListUnassignedBookings_FiltraAsignadas(t *testing.T) {
	fw := &fakeWorkflow{bookings: []entity.Booking{
		{ID: "1", Status: entity.BookingPending},
		{ID: "2", Status: entity.BookingAssigned},
		{ID: "3", Status: entity.BookingConfirmed},
	}}
	uc := servicebilling.NewWorkflowUseCase(fw, logger.Nop())

	rows, err := uc.ListUnassignedBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, entity.ID("3"), rows[1].ID)
}

func TestCompleteAssignment(t *testing.T) {
	tests := []struct {
		status  entity.AssignmentStatus
		wantErr error
	}{
		{entity.AssignmentInProgress, nil},
		{entity.AssignmentCompleted, domain.ErrInvalidTransition},
		{entity.AssignmentBilled, domain.ErrInvalidTransition},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			fw := &fakeWorkflow{assignment: entity.Assignment{ID: "9", Status: tt.status}}
			uc := servicebilling.NewWorkflowUseCase(fw, logger.Nop())
			a, err := uc.CompleteAssignment(context.Background(), "9")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, fw.completeCalls)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, entity.AssignmentCompleted, a.Status)
		})
	}
}

func TestCreateAssignment_CamposRequeridos(t *testing.T) {
	uc := servicebilling.NewWorkflowUseCase(&fakeWorkflow{}, logger.Nop())
	_, err := uc.CreateAssignment(context.Background(), dto.AssignmentRequest{CustomerID: "1", ServiceID: "2"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
