package servicebilling_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bizdash/internal/application/dto"
	"github.com/jhoicas/bizdash/internal/application/servicebilling"
	"github.com/jhoicas/bizdash/internal/domain"
	"github.com/jhoicas/bizdash/internal/domain/entity"
	"github.com/jhoicas/bizdash/pkg/logger"
)

type fakeBilling struct {
	billable      []entity.Assignment
	listErr       error
	listCalls     int
	invoice       *entity.ServiceInvoice
	createErr     error
	createCalls   int
	lastCreate    dto.CreateServiceInvoiceRequest
	lastKey       string
	billOnSuccess bool
}

func (f *fakeBilling) ListBillableAssignments(context.Context) ([]entity.Assignment, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]entity.Assignment, len(f.billable))
	copy(out, f.billable)
	return out, nil
}

func (f *fakeBilling) CreateServiceInvoice(_ context.Context, in dto.CreateServiceInvoiceRequest, key string) (*entity.ServiceInvoice, error) {
	f.createCalls++
	f.lastCreate, f.lastKey = in, key
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.billOnSuccess {
		billed := map[entity.ID]bool{}
		for _, id := range in.AssignmentIDs {
			billed[id] = true
		}
		rest := f.billable[:0]
		for _, a := range f.billable {
			if !billed[a.ID] {
				rest = append(rest, a)
			}
		}
		f.billable = rest
	}
	return f.invoice, nil
}

func (f *fakeBilling) ListServiceInvoices(context.Context, dto.ServiceInvoiceFilter) ([]entity.ServiceInvoice, error) {
	return []entity.ServiceInvoice{*f.invoice}, nil
}

func (f *fakeBilling) GetServiceInvoice(context.Context, string) (*entity.ServiceInvoice, error) {
	return f.invoice, nil
}

func (f *fakeBilling) ListCommissions(context.Context, string) ([]entity.Commission, error) {
	return nil, nil
}

func (f *fakeBilling) CalculateCommissions(_ context.Context, period string) ([]entity.Commission, error) {
	return []entity.Commission{{EmployeeName: "Achieng", Period: period}}, nil
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assignment(id, customerID, customer string, status entity.AssignmentStatus, price string) entity.Assignment {
	return entity.Assignment{
		ID:         entity.ID(id),
		CustomerID: entity.ID(customerID),
		Customer:   &entity.Customer{ID: entity.ID(customerID), Name: customer, Phone: "0712"},
		Employee:   &entity.Employee{Name: "Achieng"},
		Service:    &entity.Service{ServiceName: "Haircut", Price: d(price)},
		Status:     status,
	}
}

func board() []entity.Assignment {
	return []entity.Assignment{
		assignment("1", "10", "Zawadi", entity.AssignmentCompleted, "500"),
		assignment("2", "20", "amina", entity.AssignmentInProgress, "1200"),
		assignment("3", "10", "Zawadi", entity.AssignmentInProgress, "300"),
		assignment("4", "20", "amina", entity.AssignmentBilled, "999"),
	}
}

func TestComputeTotals_IVA16(t *testing.T) {
	got := servicebilling.ComputeTotals(d("500"), d("300"), d("1200"))
	assert.True(t, d("2000").Equal(got.Subtotal))
	assert.True(t, d("320").Equal(got.VAT))
	assert.True(t, d("2320").Equal(got.Total))
	assert.True(t, got.Subtotal.Mul(d("1.16")).Equal(got.Total))
}

func TestComputeTotals_Vacio(t *testing.T) {
	got := servicebilling.ComputeTotals()
	assert.True(t, got.IsZero())
}

func TestGroupBillable_DescartaFacturadasYOrdena(t *testing.T) {
	groups, dropped := servicebilling.GroupBillable(board())
	assert.Equal(t, 1, dropped)
	require.Len(t, groups, 2)
	assert.Equal(t, "amina", groups[0].CustomerName, "orden por nombre sin mayúsculas")
	assert.Equal(t, "Zawadi", groups[1].CustomerName)
	require.Len(t, groups[0].Assignments, 1)
	assert.Equal(t, entity.ID("2"), groups[0].Assignments[0].ID)
	assert.Equal(t, []entity.ID{"1", "3"}, []entity.ID{groups[1].Assignments[0].ID, groups[1].Assignments[1].ID})
}

func TestBoard_SeleccionYVistaPrevia(t *testing.T) {
	fb := &fakeBilling{billable: board()}
	uc := servicebilling.NewBillingUseCase(fb, logger.Nop())

	b, err := uc.Board(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, b.Count)
	for _, g := range b.Groups {
		for _, r := range g.Rows {
			assert.NotEqual(t, entity.AssignmentBilled, r.Status)
		}
	}

	b, err = uc.Select(context.Background(), dto.SelectionRequest{AssignmentIDs: []entity.ID{"1", "3"}, Selected: true})
	require.NoError(t, err)
	zawadi := b.Groups[1]
	assert.Equal(t, []entity.ID{"1", "3"}, zawadi.SelectedIDs)
	assert.Equal(t, "KES 800", zawadi.Preview.Subtotal.Display)
	assert.Equal(t, "KES 128", zawadi.Preview.VAT.Display)
	assert.Equal(t, "KES 928", zawadi.Preview.Total.Display)
	assert.Empty(t, b.Groups[0].SelectedIDs, "la selección es independiente por cliente")

	b, err = uc.Select(context.Background(), dto.SelectionRequest{AssignmentIDs: []entity.ID{"3"}, Selected: false})
	require.NoError(t, err)
	assert.Equal(t, "KES 580", b.Groups[1].Preview.Total.Display)
	assert.Equal(t, 1, fb.listCalls, "seleccionar no vuelve a pedir el tablero")
}

func TestSelect_IDFacturadoRechazado(t *testing.T) {
	uc := servicebilling.NewBillingUseCase(&fakeBilling{billable: board()}, logger.Nop())
	_, err := uc.Select(context.Background(), dto.SelectionRequest{AssignmentIDs: []entity.ID{"4"}, Selected: true})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPreview_CoincideConElRecibo(t *testing.T) {
	fb := &fakeBilling{billable: board()}
	uc := servicebilling.NewBillingUseCase(fb, logger.Nop())

	preview, err := uc.Preview(context.Background(), dto.PreviewRequest{CustomerID: "10", AssignmentIDs: []entity.ID{"1", "3"}})
	require.NoError(t, err)

	inv := &entity.ServiceInvoice{Items: []entity.ServiceInvoiceItem{{Price: d("500")}, {Price: d("300")}}}
	receipt := servicebilling.InvoiceTotals(inv)
	assert.True(t, preview.Total.Amount.Equal(receipt.Total))
	assert.True(t, preview.VAT.Amount.Equal(receipt.VAT))
}

func TestCreateInvoice_ExitoRefrescaTablero(t *testing.T) {
	fb := &fakeBilling{
		billable:      board(),
		billOnSuccess: true,
		invoice: &entity.ServiceInvoice{
			InvoiceNumber: "SINV-0001",
			Subtotal:      d("800"), VATAmount: d("128"), TotalAmount: d("928"),
		},
	}
	uc := servicebilling.NewBillingUseCase(fb, logger.Nop())

	resp, err := uc.CreateInvoice(context.Background(), dto.CreateServiceInvoiceRequest{
		CustomerID: "10", AssignmentIDs: []entity.ID{"1", "3", "1"},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.PaymentCash, fb.lastCreate.PaymentMethod, "método por defecto")
	assert.Equal(t, []entity.ID{"1", "3"}, fb.lastCreate.AssignmentIDs)
	assert.NotEmpty(t, fb.lastKey)
	assert.Equal(t, "SINV-0001", resp.Invoice.InvoiceNumber)
	assert.Len(t, resp.Invoice.Items, 2, "líneas reconstruidas si el backend no las devuelve")
	assert.Equal(t, "KES 928", resp.Totals.Total.Display)
	require.NotNil(t, resp.Board)
	assert.Equal(t, 1, resp.Board.Count)
	assert.Equal(t, 2, fb.listCalls, "validación + refresco")
}

func TestCreateInvoice_RechazoDelBackendEsError(t *testing.T) {
	conflict := errors.New("Assignments already billed")
	fb := &fakeBilling{billable: board(), createErr: conflict}
	uc := servicebilling.NewBillingUseCase(fb, logger.Nop())

	resp, err := uc.CreateInvoice(context.Background(), dto.CreateServiceInvoiceRequest{
		CustomerID: "10", AssignmentIDs: []entity.ID{"1"}, PaymentMethod: "mpesa",
	})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, conflict)
}

func TestCreateInvoice_ValidacionLocal(t *testing.T) {
	tests := []struct {
		name string
		in   dto.CreateServiceInvoiceRequest
	}{
		{"sin ids", dto.CreateServiceInvoiceRequest{CustomerID: "10"}},
		{"sin cliente", dto.CreateServiceInvoiceRequest{AssignmentIDs: []entity.ID{"1"}}},
		{"método inválido", dto.CreateServiceInvoiceRequest{CustomerID: "10", AssignmentIDs: []entity.ID{"1"}, PaymentMethod: "bitcoin"}},
		{"id de otro cliente", dto.CreateServiceInvoiceRequest{CustomerID: "10", AssignmentIDs: []entity.ID{"2"}}},
		{"id ya facturado", dto.CreateServiceInvoiceRequest{CustomerID: "20", AssignmentIDs: []entity.ID{"4"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := &fakeBilling{billable: board()}
			uc := servicebilling.NewBillingUseCase(fb, logger.Nop())
			_, err := uc.CreateInvoice(context.Background(), tt.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Zero(t, fb.createCalls)
		})
	}
}

func TestCreateInvoice_RefrescoFallidoDevuelveAviso(t *testing.T) {
	fb := &fakeBilling{billable: board(), invoice: &entity.ServiceInvoice{InvoiceNumber: "SINV-2"}}
	// la validación usa la primera lectura; la segunda (refresco) falla
	uc := servicebilling.NewBillingUseCase(&failAfter{fakeBilling: fb, ok: 1}, logger.Nop())

	resp, err := uc.CreateInvoice(context.Background(), dto.CreateServiceInvoiceRequest{CustomerID: "20", AssignmentIDs: []entity.ID{"2"}})
	require.NoError(t, err)
	require.NotNil(t, resp.Alert)
	assert.Nil(t, resp.Board)
	assert.Equal(t, "KES 1,392", resp.Totals.Total.Display, "totales recalculados si la factura no los trae")
}

type failAfter struct {
	*fakeBilling
	ok int
}

func (f *failAfter) ListBillableAssignments(ctx context.Context) ([]entity.Assignment, error) {
	if f.ok == 0 {
		return nil, domain.ErrBackendUnavailable
	}
	f.ok--
	return f.fakeBilling.ListBillableAssignments(ctx)
}

func TestCommissions_Periodo(t *testing.T) {
	uc := servicebilling.NewBillingUseCase(&fakeBilling{}, logger.Nop())
	_, err := uc.Commissions(context.Background(), "2025/05")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.CalculateCommissions(context.Background(), "2025-05")
	require.NoError(t, err)
	assert.Equal(t, "2025-05", out[0].Period)
}
