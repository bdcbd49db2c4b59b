package repository

import (
	"context"

	"github.com/jhoicas/bizdash/internal/application/dto"
	"github.com/jhoicas/bizdash/internal/domain/analytics"
	"github.com/jhoicas/bizdash/internal/domain/entity"
)

// AuthGateway autenticación contra la API remota.
type AuthGateway interface {
	Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error)
	Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error)
	// Logout recibe el token explícitamente: la sesión local ya se limpió cuando se llama.
	Logout(ctx context.Context, token string) error
}

// SettingsGateway configuración del negocio (/business-settings).
type SettingsGateway interface {
	GetBusinessSettings(ctx context.Context) (*entity.BusinessSettings, error)
	UpdateBusinessSettings(ctx context.Context, in entity.BusinessSettings) (*entity.BusinessSettings, error)
}

// AnalyticsGateway reportes agregados del servidor (/analytics/*).
type AnalyticsGateway interface {
	Overview(ctx context.Context, dr analytics.DateRange) (*dto.OverviewReport, error)
	Sales(ctx context.Context, dr analytics.DateRange) (*dto.SalesReport, error)
	Inventory(ctx context.Context, dr analytics.DateRange) (*dto.InventoryReport, error)
	Profit(ctx context.Context, dr analytics.DateRange) (*dto.ProfitReport, error)
	Customers(ctx context.Context, dr analytics.DateRange) (*dto.CustomersReport, error)
	Employees(ctx context.Context, dr analytics.DateRange) (*dto.EmployeesReport, error)
}

// SalesGateway facturas de venta, cotizaciones y productos con stock bajo.
type SalesGateway interface {
	ListInvoices(ctx context.Context, f dto.InvoiceFilter) ([]entity.Invoice, error)
	GetInvoice(ctx context.Context, id entity.ID) (*entity.Invoice, error)
	ListQuotations(ctx context.Context, f dto.QuotationFilter) ([]entity.Quotation, error)
	CreateQuotation(ctx context.Context, in dto.QuotationRequest) (*entity.Quotation, error)
	ConvertQuotation(ctx context.Context, id entity.ID) (*entity.Invoice, error)
	LowStockProducts(ctx context.Context) ([]entity.Product, error)
}

// CatalogGateway servicios, clientes y empleados del negocio de servicios.
type CatalogGateway interface {
	ListServices(ctx context.Context) ([]entity.Service, error)
	CreateService(ctx context.Context, in dto.ServiceRequest) (*entity.Service, error)
	UpdateService(ctx context.Context, id entity.ID, in dto.ServiceRequest) (*entity.Service, error)
	DeleteService(ctx context.Context, id entity.ID) error

	ListCustomers(ctx context.Context, search string) ([]entity.Customer, error)
	CreateCustomer(ctx context.Context, in dto.CustomerRequest) (*entity.Customer, error)
	UpdateCustomer(ctx context.Context, id entity.ID, in dto.CustomerRequest) (*entity.Customer, error)
	DeleteCustomer(ctx context.Context, id entity.ID) error

	ListEmployees(ctx context.Context) ([]entity.Employee, error)
	CreateEmployee(ctx context.Context, in dto.EmployeeRequest) (*entity.Employee, error)
	UpdateEmployee(ctx context.Context, id entity.ID, in dto.EmployeeRequest) (*entity.Employee, error)
	DeleteEmployee(ctx context.Context, id entity.ID) error
}

// WorkflowGateway reservas y asignaciones.
type WorkflowGateway interface {
	ListBookings(ctx context.Context, status string) ([]entity.Booking, error)
	ListUnassignedBookings(ctx context.Context) ([]entity.Booking, error)
	CreateBooking(ctx context.Context, in dto.BookingRequest) (*entity.Booking, error)
	UpdateBookingStatus(ctx context.Context, id entity.ID, status string) (*entity.Booking, error)

	ListAssignments(ctx context.Context, status string) ([]entity.Assignment, error)
	GetAssignment(ctx context.Context, id entity.ID) (*entity.Assignment, error)
	CreateAssignment(ctx context.Context, in dto.AssignmentRequest) (*entity.Assignment, error)
	CompleteAssignment(ctx context.Context, id entity.ID) (*entity.Assignment, error)
}

// BillingGateway asignaciones facturables, facturas de servicios y comisiones.
type BillingGateway interface {
	ListBillableAssignments(ctx context.Context) ([]entity.Assignment, error)
	CreateServiceInvoice(ctx context.Context, in dto.CreateServiceInvoiceRequest, idempotencyKey string) (*entity.ServiceInvoice, error)
	ListServiceInvoices(ctx context.Context, f dto.ServiceInvoiceFilter) ([]entity.ServiceInvoice, error)
	GetServiceInvoice(ctx context.Context, invoiceNumber string) (*entity.ServiceInvoice, error)

	ListCommissions(ctx context.Context, period string) ([]entity.Commission, error)
	CalculateCommissions(ctx context.Context, period string) ([]entity.Commission, error)
}

// ReceiptJournal diario de recibos impresos.
type ReceiptJournal interface {
	Record(ctx context.Context, rec *entity.ReceiptRecord) error
	Recent(ctx context.Context, limit int) ([]entity.ReceiptRecord, error)
}

// ReceiptArchiver archivo de los PDF de recibos (object storage).
type ReceiptArchiver interface {
	// Archive guarda el PDF y devuelve la clave con la que quedó almacenado.
	Archive(ctx context.Context, invoiceNumber string, pdf []byte) (string, error)
}
