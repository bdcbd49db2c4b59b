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
)

// fakeCatalog registra la última búsqueda y responde con ecos de la entrada.
type fakeCatalog struct {
	search string
	calls  int
}

func (f *fakeCatalog) ListServices(context.Context) ([]entity.Service, error) { return nil, nil }
func (f *fakeCatalog) CreateService(_ context.Context, in dto.ServiceRequest) (*entity.Service, error) {
	f.calls++
	return &entity.Service{ID: "1", ServiceName: in.ServiceName, Price: in.Price}, nil
}
func (f *fakeCatalog) UpdateService(_ context.Context, id entity.ID, in dto.ServiceRequest) (*entity.Service, error) {
	f.calls++
	return &entity.Service{ID: id, ServiceName: in.ServiceName}, nil
}
func (f *fakeCatalog) DeleteService(context.Context, entity.ID) error { f.calls++; return nil }
func (f *fakeCatalog) ListCustomers(_ context.Context, search string) ([]entity.Customer, error) {
	f.search = search
	return []entity.Customer{{ID: "1", Name: "Zawadi"}}, nil
}
func (f *fakeCatalog) CreateCustomer(_ context.Context, in dto.CustomerRequest) (*entity.Customer, error) {
	f.calls++
	return &entity.Customer{ID: "1", Name: in.Name, Phone: in.Phone}, nil
}
func (f *fakeCatalog) UpdateCustomer(_ context.Context, id entity.ID, in dto.CustomerRequest) (*entity.Customer, error) {
	f.calls++
	return &entity.Customer{ID: id, Name: in.Name}, nil
}
func (f *fakeCatalog) DeleteCustomer(context.Context, entity.ID) error { f.calls++; return nil }
func (f *fakeCatalog) ListEmployees(context.Context) ([]entity.Employee, error) {
	return nil, nil
}
func (f *fakeCatalog) CreateEmployee(_ context.Context, in dto.EmployeeRequest) (*entity.Employee, error) {
	f.calls++
	return &entity.Employee{ID: "1", Name: in.Name, CommissionRate: in.CommissionRate}, nil
}
func (f *fakeCatalog) UpdateEmployee(_ context.Context, id entity.ID, in dto.EmployeeRequest) (*entity.Employee, error) {
	f.calls++
	return &entity.Employee{ID: id, Name: in.Name}, nil
}
func (f *fakeCatalog) DeleteEmployee(context.Context, entity.ID) error { f.calls++; return nil }

func TestCatalog_Validaciones(t *testing.T) {
	fc := &fakeCatalog{}
	uc := servicebilling.NewCatalogUseCase(fc)
	ctx := context.Background()

	_, err := uc.CreateService(ctx, dto.ServiceRequest{ServiceName: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.CreateService(ctx, dto.ServiceRequest{ServiceName: "Braids", Price: d("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.CreateCustomer(ctx, dto.CustomerRequest{Name: "Zawadi"})
	assert.EqualError(t, err, "Name and phone are required")
	_, err = uc.CreateEmployee(ctx, dto.EmployeeRequest{Name: "Achieng", CommissionRate: d("100.5")})
	assert.EqualError(t, err, "Commission rate must be between 0 and 100")
	assert.ErrorIs(t, uc.DeleteCustomer(ctx, ""), domain.ErrInvalidInput)
	assert.Zero(t, fc.calls)
}

func TestCatalog_Crear(t *testing.T) {
	fc := &fakeCatalog{}
	uc := servicebilling.NewCatalogUseCase(fc)
	ctx := context.Background()

	s, err := uc.CreateService(ctx, dto.ServiceRequest{ServiceName: " Braids ", Price: d("2500"), EstimatedDuration: 120})
	require.NoError(t, err)
	assert.Equal(t, "Braids", s.ServiceName)

	e, err := uc.CreateEmployee(ctx, dto.EmployeeRequest{Name: "Achieng", CommissionRate: d("100")})
	require.NoError(t, err)
	assert.True(t, d("100").Equal(e.CommissionRate))

	rows, err := uc.ListCustomers(ctx, "  zaw ")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "zaw", fc.search)
}
