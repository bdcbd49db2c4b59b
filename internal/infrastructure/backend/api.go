package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/bizdash/internal/application/dto"
	"github.com/jhoicas/bizdash/internal/domain/analytics"
	"github.com/jhoicas/bizdash/internal/domain/entity"
	"github.com/jhoicas/bizdash/internal/domain/repository"
)

// API endpoints generales: auth, configuración, analítica y ventas.
type API struct {
	c *Client
}

var (
	_ repository.AuthGateway      = (*API)(nil)
	_ repository.SettingsGateway  = (*API)(nil)
	_ repository.AnalyticsGateway = (*API)(nil)
	_ repository.SalesGateway     = (*API)(nil)
)

// NewAPI construye el gateway sobre el cliente.
func NewAPI(c *Client) *API {
	return &API{c: c}
}

// --- auth ---

func (a *API) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	anon := ""
	var out dto.AuthResponse
	if err := a.c.do(ctx, request{method: http.MethodPost, path: "/auth/login", body: in, token: &anon}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	anon := ""
	var out dto.AuthResponse
	if err := a.c.do(ctx, request{method: http.MethodPost, path: "/auth/register", body: in, token: &anon}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *API) Logout(ctx context.Context, token string) error {
	return a.c.do(ctx, request{method: http.MethodPost, path: "/auth/logout", token: &token}, nil)
}

// --- settings ---

func (a *API) GetBusinessSettings(ctx context.Context) (*entity.BusinessSettings, error) {
	return getOne[entity.BusinessSettings](ctx, a.c, http.MethodGet, "/business-settings", nil, nil, "settings")
}

func (a *API) UpdateBusinessSettings(ctx context.Context, in entity.BusinessSettings) (*entity.BusinessSettings, error) {
	return getOne[entity.BusinessSettings](ctx, a.c, http.MethodPut, "/business-settings", in, nil, "settings")
}

// --- analytics ---

func (a *API) Overview(ctx context.Context, dr analytics.DateRange) (*dto.OverviewReport, error) {
	return report[dto.OverviewReport](ctx, a.c, "overview", dr)
}

func (a *API) Sales(ctx context.Context, dr analytics.DateRange) (*dto.SalesReport, error) {
	return report[dto.SalesReport](ctx, a.c, "sales", dr)
}

func (a *API) Inventory(ctx context.Context, dr analytics.DateRange) (*dto.InventoryReport, error) {
	return report[dto.InventoryReport](ctx, a.c, "inventory", dr)
}

func (a *API) Profit(ctx context.Context, dr analytics.DateRange) (*dto.ProfitReport, error) {
	return report[dto.ProfitReport](ctx, a.c, "profit", dr)
}

func (a *API) Customers(ctx context.Context, dr analytics.DateRange) (*dto.CustomersReport, error) {
	return report[dto.CustomersReport](ctx, a.c, "customers", dr)
}

func (a *API) Employees(ctx context.Context, dr analytics.DateRange) (*dto.EmployeesReport, error) {
	return report[dto.EmployeesReport](ctx, a.c, "employees", dr)
}

// report GET /analytics/<tab>?dateRange=<rango>.
func report[T any](ctx context.Context, c *Client, tab string, dr analytics.DateRange) (*T, error) {
	q := url.Values{}
	setIf(q, "dateRange", string(dr))
	var out T
	if err := c.Do(ctx, http.MethodGet, "/analytics/"+tab, q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// --- ventas ---

func (a *API) ListInvoices(ctx context.Context, f dto.InvoiceFilter) ([]entity.Invoice, error) {
	q := url.Values{}
	setIf(q, "search", f.Search)
	setIf(q, "status", f.Status)
	setIf(q, "dateRange", f.DateRange)
	return getList[entity.Invoice](ctx, a.c, "/invoices", q, "invoices")
}

func (a *API) GetInvoice(ctx context.Context, id entity.ID) (*entity.Invoice, error) {
	return getOne[entity.Invoice](ctx, a.c, http.MethodGet, "/invoices/"+escape(id), nil, nil, "invoice")
}

func (a *API) ListQuotations(ctx context.Context, f dto.QuotationFilter) ([]entity.Quotation, error) {
	q := url.Values{}
	setIf(q, "search", f.Search)
	return getList[entity.Quotation](ctx, a.c, "/quotations", q, "quotations")
}

func (a *API) CreateQuotation(ctx context.Context, in dto.QuotationRequest) (*entity.Quotation, error) {
	return getOne[entity.Quotation](ctx, a.c, http.MethodPost, "/quotations", in, nil, "quotation")
}

func (a *API) ConvertQuotation(ctx context.Context, id entity.ID) (*entity.Invoice, error) {
	return getOne[entity.Invoice](ctx, a.c, http.MethodPost, "/quotations/"+escape(id)+"/convert", nil, nil, "invoice")
}

func (a *API) LowStockProducts(ctx context.Context) ([]entity.Product, error) {
	return getList[entity.Product](ctx, a.c, "/products/low-stock", nil, "products")
}

func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
