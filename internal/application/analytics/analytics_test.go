package analytics_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bizdash/internal/application/analytics"
	"github.com/jhoicas/bizdash/internal/application/dto"
	"github.com/jhoicas/bizdash/internal/domain"
	domainanalytics "github.com/jhoicas/bizdash/internal/domain/analytics"
	"github.com/jhoicas/bizdash/internal/domain/entity"
	"github.com/jhoicas/bizdash/pkg/logger"
)

type fakeReports struct {
	overview    string
	overviewErr error
	lastRange   domainanalytics.DateRange
	profit      *dto.ProfitReport
	inventory   *dto.InventoryReport
}

func (f *fakeReports) Overview(_ context.Context, dr domainanalytics.DateRange) (*dto.OverviewReport, error) {
	f.lastRange = dr
	if f.overviewErr != nil {
		return nil, f.overviewErr
	}
	var r dto.OverviewReport
	if err := json.Unmarshal([]byte(f.overview), &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (f *fakeReports) Sales(context.Context, domainanalytics.DateRange) (*dto.SalesReport, error) {
	return &dto.SalesReport{Growth: decimal.NewFromInt(-3)}, nil
}

func (f *fakeReports) Inventory(context.Context, domainanalytics.DateRange) (*dto.InventoryReport, error) {
	return f.inventory, nil
}

func (f *fakeReports) Profit(context.Context, domainanalytics.DateRange) (*dto.ProfitReport, error) {
	return f.profit, nil
}

func (f *fakeReports) Customers(context.Context, domainanalytics.DateRange) (*dto.CustomersReport, error) {
	return &dto.CustomersReport{}, nil
}

func (f *fakeReports) Employees(context.Context, domainanalytics.DateRange) (*dto.EmployeesReport, error) {
	return &dto.EmployeesReport{}, nil
}

type fakeSales struct {
	invoices    []entity.Invoice
	invoicesErr error
	products    []entity.Product
	productsErr error
}

func (f *fakeSales) ListInvoices(context.Context, dto.InvoiceFilter) ([]entity.Invoice, error) {
	return f.invoices, f.invoicesErr
}
func (f *fakeSales) GetInvoice(context.Context, entity.ID) (*entity.Invoice, error) { return nil, nil }
func (f *fakeSales) ListQuotations(context.Context, dto.QuotationFilter) ([]entity.Quotation, error) {
	return nil, nil
}
func (f *fakeSales) CreateQuotation(context.Context, dto.QuotationRequest) (*entity.Quotation, error) {
	return nil, nil
}
func (f *fakeSales) ConvertQuotation(context.Context, entity.ID) (*entity.Invoice, error) {
	return nil, nil
}
func (f *fakeSales) LowStockProducts(context.Context) ([]entity.Product, error) {
	return f.products, f.productsErr
}

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestTab_OverviewFormateaKES(t *testing.T) {
	fr := &fakeReports{overview: `{"totalSales": 50000, "profitMargin": "15", "salesGrowth": 4.5, "monthly": [{"month":"Jan","sales":"1200.4"}]}`}
	uc := analytics.NewUseCase(fr, &fakeSales{}, logger.Nop())

	got, err := uc.Tab(context.Background(), analytics.TabOverview, domainanalytics.LastQuarter)
	require.NoError(t, err)
	v := got.(dto.OverviewView)

	assert.Equal(t, domainanalytics.LastQuarter, fr.lastRange, "el rango se reenvía tal cual")
	assert.Equal(t, "KES 50,000", v.TotalSales.Display)
	assert.Equal(t, domainanalytics.BadgeWarning, v.MarginBadge)
	assert.Equal(t, domainanalytics.TrendUp, v.SalesTrend)
	require.Len(t, v.Monthly, 1)
	assert.Equal(t, "KES 1,200", v.Monthly[0].Sales.Display)
	assert.NotNil(t, v.TopProducts)
}

func TestTab_InventoryClasifica(t *testing.T) {
	fr := &fakeReports{inventory: &dto.InventoryReport{
		TurnoverRatio: decimal.RequireFromString("5.5"),
		Items: []dto.InventoryItem{
			{Name: "Shampoo", Quantity: d(0), ReorderLevel: d(5)},
			{Name: "Gel", Quantity: d(5), ReorderLevel: d(5), UnitsPerDay: d(1)},
			{Name: "Wax", Quantity: d(40), ReorderLevel: d(5), UnitsPerDay: d(7), Price: d(250)},
		},
	}}
	uc := analytics.NewUseCase(fr, &fakeSales{}, logger.Nop())

	got, err := uc.Tab(context.Background(), analytics.TabInventory, domainanalytics.ThisMonth)
	require.NoError(t, err)
	v := got.(dto.InventoryView)

	assert.Equal(t, domainanalytics.TurnoverGood, v.Turnover)
	assert.Equal(t, domainanalytics.OutOfStock, v.Items[0].Status)
	assert.Equal(t, domainanalytics.VelocityStagnant, v.Items[0].Velocity)
	assert.Equal(t, domainanalytics.LowStock, v.Items[1].Status)
	assert.Equal(t, domainanalytics.VelocityModerate, v.Items[1].Velocity)
	assert.Equal(t, domainanalytics.InStock, v.Items[2].Status)
	assert.Equal(t, domainanalytics.VelocityFast, v.Items[2].Velocity)
	assert.Equal(t, "KES 10,000", v.Items[2].StockValue.Display)
}

func TestTab_ProfitBandas(t *testing.T) {
	fr := &fakeReports{profit: &dto.ProfitReport{Products: []dto.MarginLine{
		{Name: "a", MarginPct: d(30)},
		{Name: "b", MarginPct: d(15)},
		{Name: "c", MarginPct: decimal.RequireFromString("14.9")},
	}}}
	uc := analytics.NewUseCase(fr, &fakeSales{}, logger.Nop())

	got, err := uc.Tab(context.Background(), analytics.TabProfit, domainanalytics.ThisYear)
	require.NoError(t, err)
	v := got.(dto.ProfitView)
	assert.Equal(t, domainanalytics.BadgeSuccess, v.Products[0].Badge)
	assert.Equal(t, domainanalytics.BadgeWarning, v.Products[1].Badge)
	assert.Equal(t, domainanalytics.BadgeError, v.Products[2].Badge)
	assert.NotNil(t, v.Categories)
}

func TestEmpty_DefaultsSinNil(t *testing.T) {
	uc := analytics.NewUseCase(&fakeReports{}, &fakeSales{}, logger.Nop())
	v := uc.Empty(analytics.TabOverview, domainanalytics.Today).(dto.OverviewView)
	assert.Equal(t, "KES 0", v.TotalSales.Display)
	assert.NotNil(t, v.Monthly)
	assert.Equal(t, "Today", v.Period.Label)
}

func TestParseTab(t *testing.T) {
	tab, err := analytics.ParseTab(" Profit ")
	require.NoError(t, err)
	assert.Equal(t, analytics.TabProfit, tab)

	_, err = analytics.ParseTab("forecast")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHome_DegradaPorParte(t *testing.T) {
	fr := &fakeReports{overview: `{"totalSales":50000}`}
	fs := &fakeSales{
		invoicesErr: errors.New("Unable to reach the server"),
		products: []entity.Product{
			{ID: "1", Name: "Wax", Quantity: d(40), ReorderLevel: d(5)},
			{ID: "2", Name: "Gel", Quantity: d(3), ReorderLevel: d(5)},
			{ID: "3", Name: "Oil", Quantity: d(0), ReorderLevel: d(5)},
		},
	}
	uc := analytics.NewUseCase(fr, fs, logger.Nop())

	v, err := uc.Home(context.Background(), domainanalytics.ThisMonth)
	require.NoError(t, err)

	assert.Equal(t, "KES 50,000", v.Overview.TotalSales.Display)
	assert.Empty(t, v.RecentInvoices)
	assert.NotNil(t, v.RecentInvoices)
	require.Len(t, v.Alerts, 1)
	assert.Equal(t, "Recent invoices: Unable to reach the server", v.Alerts[0].Message)

	require.Len(t, v.LowStock, 2)
	assert.Equal(t, "Oil", v.LowStock[0].Name, "agotados primero")
	assert.Equal(t, domainanalytics.BadgeError, v.LowStock[0].Badge)
}

func TestHome_401SeDevuelve(t *testing.T) {
	fr := &fakeReports{overviewErr: domain.ErrUnauthorized}
	uc := analytics.NewUseCase(fr, &fakeSales{}, logger.Nop())

	_, err := uc.Home(context.Background(), domainanalytics.ThisMonth)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
