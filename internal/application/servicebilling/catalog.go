package servicebilling

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bizdash/internal/application/dto"
	"github.com/jhoicas/bizdash/internal/application/screen"
	"github.com/jhoicas/bizdash/internal/domain"
	"github.com/jhoicas/bizdash/internal/domain/entity"
	"github.com/jhoicas/bizdash/internal/domain/repository"
)

var maxCommissionRate = decimal.NewFromInt(100)

// CatalogUseCase servicios, clientes y empleados. La validación local sólo cubre campos
// requeridos y rangos; el resto lo decide el backend.
type CatalogUseCase struct {
	gateway   repository.CatalogGateway
	customers screen.View[string, []entity.Customer]
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(gateway repository.CatalogGateway) *CatalogUseCase {
	return &CatalogUseCase{gateway: gateway}
}

// ── Servicios ────────────────────────────────────────────────────────────────

func validateService(in *dto.ServiceRequest) error {
	in.ServiceName = strings.TrimSpace(in.ServiceName)
	if in.ServiceName == "" {
		return domain.Invalid("service_name", "Service name is required")
	}
	if in.Price.IsNegative() {
		return domain.Invalid("price", "Price cannot be negative")
	}
	if in.EstimatedDuration < 0 {
		return domain.Invalid("estimated_duration", "Estimated duration cannot be negative")
	}
	return nil
}

func (uc *CatalogUseCase) ListServices(ctx context.Context) ([]entity.Service, error) {
	return uc.gateway.ListServices(ctx)
}

func (uc *CatalogUseCase) CreateService(ctx context.Context, in dto.ServiceRequest) (*entity.Service, error) {
	if err := validateService(&in); err != nil {
		return nil, err
	}
	return uc.gateway.CreateService(ctx, in)
}

func (uc *CatalogUseCase) UpdateService(ctx context.Context, id entity.ID, in dto.ServiceRequest) (*entity.Service, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := validateService(&in); err != nil {
		return nil, err
	}
	return uc.gateway.UpdateService(ctx, id, in)
}

func (uc *CatalogUseCase) DeleteService(ctx context.Context, id entity.ID) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.gateway.DeleteService(ctx, id)
}

// ── Clientes ─────────────────────────────────────────────────────────────────

func validateCustomer(in *dto.CustomerRequest) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	if in.Name == "" || in.Phone == "" {
		return domain.Invalid("name", "Name and phone are required")
	}
	return nil
}

// ListCustomers búsqueda de clientes; una búsqueda nueva reemplaza a la que esté en curso.
func (uc *CatalogUseCase) ListCustomers(ctx context.Context, search string) ([]entity.Customer, error) {
	return uc.customers.Load(ctx, strings.TrimSpace(search), uc.gateway.ListCustomers)
}

func (uc *CatalogUseCase) CreateCustomer(ctx context.Context, in dto.CustomerRequest) (*entity.Customer, error) {
	if err := validateCustomer(&in); err != nil {
		return nil, err
	}
	return uc.gateway.CreateCustomer(ctx, in)
}

func (uc *CatalogUseCase) UpdateCustomer(ctx context.Context, id entity.ID, in dto.CustomerRequest) (*entity.Customer, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := validateCustomer(&in); err != nil {
		return nil, err
	}
	return uc.gateway.UpdateCustomer(ctx, id, in)
}

func (uc *CatalogUseCase) DeleteCustomer(ctx context.Context, id entity.ID) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.gateway.DeleteCustomer(ctx, id)
}

// ── Empleados ────────────────────────────────────────────────────────────────

func validateEmployee(in *dto.EmployeeRequest) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return domain.Invalid("name", "Employee name is required")
	}
	if in.CommissionRate.IsNegative() || in.CommissionRate.GreaterThan(maxCommissionRate) {
		return domain.Invalid("commission_rate", "Commission rate must be between 0 and 100")
	}
	return nil
}

func (uc *CatalogUseCase) ListEmployees(ctx context.Context) ([]entity.Employee, error) {
	return uc.gateway.ListEmployees(ctx)
}

func (uc *CatalogUseCase) CreateEmployee(ctx context.Context, in dto.EmployeeRequest) (*entity.Employee, error) {
	if err := validateEmployee(&in); err != nil {
		return nil, err
	}
	return uc.gateway.CreateEmployee(ctx, in)
}

func (uc *CatalogUseCase) UpdateEmployee(ctx context.Context, id entity.ID, in dto.EmployeeRequest) (*entity.Employee, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := validateEmployee(&in); err != nil {
		return nil, err
	}
	return uc.gateway.UpdateEmployee(ctx, id, in)
}

func (uc *CatalogUseCase) DeleteEmployee(ctx context.Context, id entity.ID) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.gateway.DeleteEmployee(ctx, id)
}
