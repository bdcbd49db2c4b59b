package analytics

import (
	"context"
	"errors"
	"sort"

	"github.com/jhoicas/bizdash/internal/application/dto"
	"github.com/jhoicas/bizdash/internal/domain"
	domainanalytics "github.com/jhoicas/bizdash/internal/domain/analytics"
	"github.com/jhoicas/bizdash/internal/domain/entity"
)

const (
	homeRecentInvoices = 5  // facturas en el widget de recientes
	homeLowStockItems  = 10 // productos en el widget de stock bajo
)

// Home construye la pantalla de inicio.
//
// Tres llamadas en paralelo:
//  1. Overview(rango)      → tarjetas de KPIs
//  2. ListInvoices()       → facturas recientes
//  3. LowStockProducts()   → stock bajo / agotado
//
// Cada parte que falla queda en su valor vacío y agrega un aviso. Sólo un 401 del
// backend se devuelve como error, para que la UI vuelva al login.
func (uc *UseCase) Home(ctx context.Context, dr domainanalytics.DateRange) (dto.HomeView, error) {
	type overviewResult struct {
		report *dto.OverviewReport
		err    error
	}
	type invoicesResult struct {
		rows []entity.Invoice
		err  error
	}
	type stockResult struct {
		rows []entity.Product
		err  error
	}

	overviewCh := make(chan overviewResult, 1)
	invoicesCh := make(chan invoicesResult, 1)
	stockCh := make(chan stockResult, 1)

	go func() {
		r, err := uc.reports.Overview(ctx, dr)
		overviewCh <- overviewResult{r, err}
	}()
	go func() {
		rows, err := uc.sales.ListInvoices(ctx, dto.InvoiceFilter{})
		invoicesCh <- invoicesResult{rows, err}
	}()
	go func() {
		rows, err := uc.sales.LowStockProducts(ctx)
		stockCh <- stockResult{rows, err}
	}()

	overview := <-overviewCh
	invoices := <-invoicesCh
	stock := <-stockCh

	for _, err := range []error{overview.err, invoices.err, stock.err} {
		if errors.Is(err, domain.ErrUnauthorized) {
			return dto.HomeView{}, err
		}
	}

	view := dto.HomeView{
		Overview:       decorateOverview(overview.report, period(dr, uc.now())),
		RecentInvoices: []dto.RecentInvoiceDTO{},
		LowStock:       []dto.LowStockDTO{},
		Alerts:         []dto.Alert{},
	}
	if overview.err != nil {
		uc.log.Warn().Err(overview.err).Msg("home: resumen no disponible")
		view.Alerts = append(view.Alerts, dto.ErrorAlert("Overview", overview.err))
	}
	if invoices.err != nil {
		uc.log.Warn().Err(invoices.err).Msg("home: facturas recientes no disponibles")
		view.Alerts = append(view.Alerts, dto.ErrorAlert("Recent invoices", invoices.err))
	} else {
		view.RecentInvoices = recentInvoices(invoices.rows)
	}
	if stock.err != nil {
		uc.log.Warn().Err(stock.err).Msg("home: stock bajo no disponible")
		view.Alerts = append(view.Alerts, dto.ErrorAlert("Low stock", stock.err))
	} else {
		view.LowStock = lowStock(stock.rows)
	}
	return view, nil
}

// recentInvoices las más nuevas primero.
func recentInvoices(rows []entity.Invoice) []dto.RecentInvoiceDTO {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CreatedAt.After(rows[j].CreatedAt.Time)
	})
	if len(rows) > homeRecentInvoices {
		rows = rows[:homeRecentInvoices]
	}
	out := make([]dto.RecentInvoiceDTO, 0, len(rows))
	for _, inv := range rows {
		out = append(out, dto.RecentInvoiceDTO{
			ID:            inv.ID,
			InvoiceNumber: inv.InvoiceNumber,
			CustomerName:  inv.CustomerName,
			Total:         dto.KES(inv.TotalAmount),
			Status:        inv.Status,
			CreatedAt:     inv.CreatedAt,
		})
	}
	return out
}

// lowStock agotados primero, luego los de menor cantidad.
func lowStock(rows []entity.Product) []dto.LowStockDTO {
	out := make([]dto.LowStockDTO, 0, len(rows))
	for _, p := range rows {
		status := domainanalytics.ClassifyStock(p.Quantity, p.ReorderLevel)
		if status == domainanalytics.InStock {
			continue
		}
		out = append(out, dto.LowStockDTO{
			ID:           p.ID,
			Name:         p.Name,
			SKU:          p.SKU,
			Quantity:     p.Quantity,
			ReorderLevel: p.ReorderLevel,
			Status:       status,
			Badge:        status.Badge(),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Quantity.LessThan(out[j].Quantity)
	})
	if len(out) > homeLowStockItems {
		out = out[:homeLowStockItems]
	}
	return out
}
