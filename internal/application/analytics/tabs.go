// Package analytics contiene los casos de uso de la pantalla de inicio y de las
// pestañas de analítica. Los números vienen agregados del servidor; aquí sólo se
// secuencian las cargas y se decoran las filas.
package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/bizdash/internal/application/screen"
	"github.com/jhoicas/bizdash/internal/domain"
	domainanalytics "github.com/jhoicas/bizdash/internal/domain/analytics"
	"github.com/jhoicas/bizdash/internal/domain/repository"
	"github.com/jhoicas/bizdash/pkg/logger"
)

// Tab pestaña de la pantalla de analítica.
type Tab string

const (
	TabOverview  Tab = "overview"
	TabSales     Tab = "sales"
	TabInventory Tab = "inventory"
	TabProfit    Tab = "profit"
	TabCustomers Tab = "customers"
	TabEmployees Tab = "employees"
)

// Tabs en el orden en que se muestran.
var Tabs = []Tab{TabOverview, TabSales, TabInventory, TabProfit, TabCustomers, TabEmployees}

// ParseTab valida el nombre de pestaña.
func ParseTab(s string) (Tab, error) {
	t := Tab(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Tabs {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: pestaña de analítica desconocida %q", domain.ErrInvalidInput, s)
}

type tabView = screen.View[domainanalytics.DateRange, any]

// UseCase analítica por pestañas más la pantalla de inicio.
type UseCase struct {
	reports repository.AnalyticsGateway
	sales   repository.SalesGateway
	log     *logger.Logger
	now     func() time.Time

	views map[Tab]*tabView
}

// NewUseCase construye el caso de uso. sales alimenta las facturas recientes y el stock bajo de Home.
func NewUseCase(reports repository.AnalyticsGateway, sales repository.SalesGateway, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	views := make(map[Tab]*tabView, len(Tabs))
	for _, t := range Tabs {
		views[t] = &tabView{}
	}
	return &UseCase{
		reports: reports,
		sales:   sales,
		log:     log.Component("analytics"),
		now:     time.Now,
		views:   views,
	}
}

// Tab carga una pestaña para el rango dado. Una carga más nueva de la misma pestaña
// cancela la anterior, que termina con screen.ErrSuperseded.
func (uc *UseCase) Tab(ctx context.Context, tab Tab, dr domainanalytics.DateRange) (any, error) {
	view, ok := uc.views[tab]
	if !ok {
		return nil, fmt.Errorf("%w: pestaña %q", domain.ErrInvalidInput, tab)
	}
	return view.Load(ctx, dr, func(ctx context.Context, dr domainanalytics.DateRange) (any, error) {
		return uc.fetch(ctx, tab, dr)
	})
}

func (uc *UseCase) fetch(ctx context.Context, tab Tab, dr domainanalytics.DateRange) (any, error) {
	p := period(dr, uc.now())
	switch tab {
	case TabOverview:
		r, err := uc.reports.Overview(ctx, dr)
		if err != nil {
			return nil, err
		}
		return decorateOverview(r, p), nil
	case TabSales:
		r, err := uc.reports.Sales(ctx, dr)
		if err != nil {
			return nil, err
		}
		return decorateSales(r, p), nil
	case TabInventory:
		r, err := uc.reports.Inventory(ctx, dr)
		if err != nil {
			return nil, err
		}
		return decorateInventory(r, p), nil
	case TabProfit:
		r, err := uc.reports.Profit(ctx, dr)
		if err != nil {
			return nil, err
		}
		return decorateProfit(r, p), nil
	case TabCustomers:
		r, err := uc.reports.Customers(ctx, dr)
		if err != nil {
			return nil, err
		}
		return decorateCustomers(r, p), nil
	default:
		r, err := uc.reports.Employees(ctx, dr)
		if err != nil {
			return nil, err
		}
		return decorateEmployees(r, p), nil
	}
}

// Empty valor por defecto de una pestaña cuando su carga falla.
func (uc *UseCase) Empty(tab Tab, dr domainanalytics.DateRange) any {
	p := period(dr, uc.now())
	switch tab {
	case TabOverview:
		return decorateOverview(nil, p)
	case TabSales:
		return decorateSales(nil, p)
	case TabInventory:
		return decorateInventory(nil, p)
	case TabProfit:
		return decorateProfit(nil, p)
	case TabCustomers:
		return decorateCustomers(nil, p)
	default:
		return decorateEmployees(nil, p)
	}
}
