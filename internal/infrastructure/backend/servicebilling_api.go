package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jhoicas/bizdash/internal/application/dto"
	"github.com/jhoicas/bizdash/internal/domain"
	"github.com/jhoicas/bizdash/internal/domain/entity"
	"github.com/jhoicas/bizdash/internal/domain/repository"
)

const serviceBillingPrefix = "/service-billing"

// ServiceBillingAPI endpoints del negocio de servicios bajo /service-billing.
type ServiceBillingAPI struct {
	c *Client
}

var (
	_ repository.CatalogGateway  = (*ServiceBillingAPI)(nil)
	_ repository.WorkflowGateway = (*ServiceBillingAPI)(nil)
	_ repository.BillingGateway  = (*ServiceBillingAPI)(nil)
)

// NewServiceBillingAPI construye el gateway sobre el cliente.
func NewServiceBillingAPI(c *Client) *ServiceBillingAPI {
	return &ServiceBillingAPI{c: c}
}

func sb(path string) string { return serviceBillingPrefix + path }

// --- servicios ---

func (s *ServiceBillingAPI) ListServices(ctx context.Context) ([]entity.Service, error) {
	return getList[entity.Service](ctx, s.c, sb("/services"), nil, "services")
}

func (s *ServiceBillingAPI) CreateService(ctx context.Context, in dto.ServiceRequest) (*entity.Service, error) {
	return getOne[entity.Service](ctx, s.c, http.MethodPost, sb("/services"), in, nil, "service")
}

func (s *ServiceBillingAPI) UpdateService(ctx context.Context, id entity.ID, in dto.ServiceRequest) (*entity.Service, error) {
	return getOne[entity.Service](ctx, s.c, http.MethodPut, sb("/services/"+escape(id)), in, nil, "service")
}

func (s *ServiceBillingAPI) DeleteService(ctx context.Context, id entity.ID) error {
	return s.c.Do(ctx, http.MethodDelete, sb("/services/"+escape(id)), nil, nil, nil)
}

// --- clientes ---

func (s *ServiceBillingAPI) ListCustomers(ctx context.Context, search string) ([]entity.Customer, error) {
	q := url.Values{}
	setIf(q, "search", search)
	return getList[entity.Customer](ctx, s.c, sb("/customers"), q, "customers")
}

func (s *ServiceBillingAPI) CreateCustomer(ctx context.Context, in dto.CustomerRequest) (*entity.Customer, error) {
	return getOne[entity.Customer](ctx, s.c, http.MethodPost, sb("/customers"), in, nil, "customer")
}

func (s *ServiceBillingAPI) UpdateCustomer(ctx context.Context, id entity.ID, in dto.CustomerRequest) (*entity.Customer, error) {
	return getOne[entity.Customer](ctx, s.c, http.MethodPut, sb("/customers/"+escape(id)), in, nil, "customer")
}

func (s *ServiceBillingAPI) DeleteCustomer(ctx context.Context, id entity.ID) error {
	return s.c.Do(ctx, http.MethodDelete, sb("/customers/"+escape(id)), nil, nil, nil)
}

// --- empleados ---

func (s *ServiceBillingAPI) ListEmployees(ctx context.Context) ([]entity.Employee, error) {
	return getList[entity.Employee](ctx, s.c, sb("/employees"), nil, "employees")
}

func (s *ServiceBillingAPI) CreateEmployee(ctx context.Context, in dto.EmployeeRequest) (*entity.Employee, error) {
	return getOne[entity.Employee](ctx, s.c, http.MethodPost, sb("/employees"), in, nil, "employee")
}

func (s *ServiceBillingAPI) UpdateEmployee(ctx context.Context, id entity.ID, in dto.EmployeeRequest) (*entity.Employee, error) {
	return getOne[entity.Employee](ctx, s.c, http.MethodPut, sb("/employees/"+escape(id)), in, nil, "employee")
}

func (s *ServiceBillingAPI) DeleteEmployee(ctx context.Context, id entity.ID) error {
	return s.c.Do(ctx, http.MethodDelete, sb("/employees/"+escape(id)), nil, nil, nil)
}

// --- reservas ---

func (s *ServiceBillingAPI) ListBookings(ctx context.Context, status string) ([]entity.Booking, error) {
	q := url.Values{}
	setIf(q, "status", status)
	return getList[entity.Booking](ctx, s.c, sb("/bookings"), q, "bookings")
}

func (s *ServiceBillingAPI) ListUnassignedBookings(ctx context.Context) ([]entity.Booking, error) {
	return getList[entity.Booking](ctx, s.c, sb("/bookings/unassigned"), nil, "bookings")
}

func (s *ServiceBillingAPI) CreateBooking(ctx context.Context, in dto.BookingRequest) (*entity.Booking, error) {
	return getOne[entity.Booking](ctx, s.c, http.MethodPost, sb("/bookings"), in, nil, "booking")
}

func (s *ServiceBillingAPI) UpdateBookingStatus(ctx context.Context, id entity.ID, status string) (*entity.Booking, error) {
	return getOne[entity.Booking](ctx, s.c, http.MethodPatch, sb("/bookings/"+escape(id)+"/status"),
		dto.BookingStatusRequest{Status: status}, nil, "booking")
}

// --- asignaciones ---

func (s *ServiceBillingAPI) ListAssignments(ctx context.Context, status string) ([]entity.Assignment, error) {
	q := url.Values{}
	setIf(q, "status", status)
	return getList[entity.Assignment](ctx, s.c, sb("/assignments"), q, "assignments")
}

func (s *ServiceBillingAPI) GetAssignment(ctx context.Context, id entity.ID) (*entity.Assignment, error) {
	return getOne[entity.Assignment](ctx, s.c, http.MethodGet, sb("/assignments/"+escape(id)), nil, nil, "assignment")
}

func (s *ServiceBillingAPI) CreateAssignment(ctx context.Context, in dto.AssignmentRequest) (*entity.Assignment, error) {
	return getOne[entity.Assignment](ctx, s.c, http.MethodPost, sb("/assignments"), in, nil, "assignment")
}

func (s *ServiceBillingAPI) CompleteAssignment(ctx context.Context, id entity.ID) (*entity.Assignment, error) {
	return getOne[entity.Assignment](ctx, s.c, http.MethodPatch, sb("/assignments/"+escape(id)+"/complete"), nil, nil, "assignment")
}

// --- facturación ---

func (s *ServiceBillingAPI) ListBillableAssignments(ctx context.Context) ([]entity.Assignment, error) {
	return getList[entity.Assignment](ctx, s.c, sb("/assignments/billable"), nil, "assignments")
}

func (s *ServiceBillingAPI) CreateServiceInvoice(ctx context.Context, in dto.CreateServiceInvoiceRequest, idempotencyKey string) (*entity.ServiceInvoice, error) {
	var headers map[string]string
	if idempotencyKey != "" {
		headers = map[string]string{"Idempotency-Key": idempotencyKey}
	}
	return getOne[entity.ServiceInvoice](ctx, s.c, http.MethodPost, sb("/invoices"), in, headers, "invoice")
}

func (s *ServiceBillingAPI) ListServiceInvoices(ctx context.Context, f dto.ServiceInvoiceFilter) ([]entity.ServiceInvoice, error) {
	q := url.Values{}
	setIf(q, "dateRange", f.DateRange)
	setIf(q, "search", f.Search)
	return getList[entity.ServiceInvoice](ctx, s.c, sb("/invoices"), q, "invoices")
}

func (s *ServiceBillingAPI) GetServiceInvoice(ctx context.Context, invoiceNumber string) (*entity.ServiceInvoice, error) {
	return getOne[entity.ServiceInvoice](ctx, s.c, http.MethodGet, sb("/invoices/"+url.PathEscape(invoiceNumber)), nil, nil, "invoice")
}

// --- comisiones ---

func (s *ServiceBillingAPI) ListCommissions(ctx context.Context, period string) ([]entity.Commission, error) {
	q := url.Values{}
	setIf(q, "period", period)
	return getList[entity.Commission](ctx, s.c, sb("/commission"), q, "commissions")
}

func (s *ServiceBillingAPI) CalculateCommissions(ctx context.Context, period string) ([]entity.Commission, error) {
	var raw json.RawMessage
	if err := s.c.Do(ctx, http.MethodPost, sb("/commission/calculate"), nil, dto.CommissionRequest{Period: period}, &raw); err != nil {
		return nil, err
	}
	rows, err := decodeList[entity.Commission](raw, "commissions")
	if err != nil {
		return nil, fmt.Errorf("backend: comisiones ilegibles: %v: %w", err, domain.ErrBackendUnavailable)
	}
	return rows, nil
}
