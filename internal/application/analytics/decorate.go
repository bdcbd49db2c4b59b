package analytics

import (
	"time"

	"github.com/jhoicas/bizdash/internal/application/dto"
	domain "github.com/jhoicas/bizdash/internal/domain/analytics"
)

// Las funciones de este archivo sólo agregan formato y clasificaciones de presentación
// sobre números ya agregados por el servidor; no recalculan nada.

func period(dr domain.DateRange, now time.Time) dto.PeriodDTO {
	start, end := dr.Bounds(now)
	return dto.PeriodDTO{
		DateRange: dr,
		Label:     dr.Label(),
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.AddDate(0, 0, -1).Format("2006-01-02"),
	}
}

func productSalesViews(rows []dto.ProductSales) []dto.ProductSalesView {
	out := make([]dto.ProductSalesView, 0, len(rows))
	for _, p := range rows {
		out = append(out, dto.ProductSalesView{
			Name:        p.Name,
			UnitsSold:   p.UnitsSold,
			Revenue:     dto.KES(p.Revenue),
			UnitsPerDay: p.UnitsPerDay,
			Velocity:    domain.ClassifyVelocity(p.UnitsPerDay),
		})
	}
	return out
}

func decorateOverview(r *dto.OverviewReport, p dto.PeriodDTO) dto.OverviewView {
	if r == nil {
		r = &dto.OverviewReport{}
	}
	v := dto.OverviewView{
		Period:            p,
		TotalSales:        dto.KES(r.TotalSales),
		TotalOrders:       r.TotalOrders,
		TotalCustomers:    r.TotalCustomers,
		AverageOrderValue: dto.KES(r.AverageOrderValue),
		SalesGrowth:       r.SalesGrowth,
		SalesTrend:        domain.ClassifyTrend(r.SalesGrowth),
		TotalProfit:       dto.KES(r.TotalProfit),
		ProfitMargin:      r.ProfitMargin,
		MarginBadge:       domain.MarginBadge(r.ProfitMargin),
		Monthly:           make([]dto.MonthlyPointView, 0, len(r.Monthly)),
		TopProducts:       productSalesViews(r.TopProducts),
	}
	for _, m := range r.Monthly {
		v.Monthly = append(v.Monthly, dto.MonthlyPointView{
			Month:  m.Month,
			Sales:  dto.KES(m.Sales),
			Orders: m.Orders,
			Profit: dto.KES(m.Profit),
		})
	}
	return v
}

func decorateSales(r *dto.SalesReport, p dto.PeriodDTO) dto.SalesView {
	if r == nil {
		r = &dto.SalesReport{}
	}
	v := dto.SalesView{
		Period:             p,
		TotalRevenue:       dto.KES(r.TotalRevenue),
		TotalTransactions:  r.TotalTransactions,
		AverageTransaction: dto.KES(r.AverageTransaction),
		Growth:             r.Growth,
		Trend:              domain.ClassifyTrend(r.Growth),
		Daily:              make([]dto.DailyPointView, 0, len(r.Daily)),
		ByCategory:         make([]dto.CategorySalesView, 0, len(r.ByCategory)),
		TopProducts:        productSalesViews(r.TopProducts),
	}
	for _, d := range r.Daily {
		v.Daily = append(v.Daily, dto.DailyPointView{Date: d.Date, Sales: dto.KES(d.Sales), Transactions: d.Transactions})
	}
	for _, c := range r.ByCategory {
		v.ByCategory = append(v.ByCategory, dto.CategorySalesView{Category: c.Category, Revenue: dto.KES(c.Revenue), Percentage: c.Percentage})
	}
	return v
}

func decorateInventory(r *dto.InventoryReport, p dto.PeriodDTO) dto.InventoryView {
	if r == nil {
		r = &dto.InventoryReport{}
	}
	v := dto.InventoryView{
		Period:          p,
		TotalProducts:   r.TotalProducts,
		TotalStockValue: dto.KES(r.TotalStockValue),
		LowStockCount:   r.LowStockCount,
		OutOfStockCount: r.OutOfStockCount,
		TurnoverRatio:   r.TurnoverRatio,
		Turnover:        domain.ClassifyTurnover(r.TurnoverRatio),
		Items:           make([]dto.InventoryItemView, 0, len(r.Items)),
	}
	for _, it := range r.Items {
		status := domain.ClassifyStock(it.Quantity, it.ReorderLevel)
		v.Items = append(v.Items, dto.InventoryItemView{
			ID:           it.ID,
			Name:         it.Name,
			SKU:          it.SKU,
			Category:     it.Category,
			Quantity:     it.Quantity,
			ReorderLevel: it.ReorderLevel,
			Price:        dto.KES(it.Price),
			StockValue:   dto.KES(it.Quantity.Mul(it.Price)),
			Status:       status,
			StatusBadge:  status.Badge(),
			UnitsPerDay:  it.UnitsPerDay,
			Velocity:     domain.ClassifyVelocity(it.UnitsPerDay),
		})
	}
	return v
}

func marginViews(rows []dto.MarginLine) []dto.MarginLineView {
	out := make([]dto.MarginLineView, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.MarginLineView{
			Name:      m.Name,
			Revenue:   dto.KES(m.Revenue),
			Cost:      dto.KES(m.Cost),
			Profit:    dto.KES(m.Profit),
			MarginPct: m.MarginPct,
			Badge:     domain.MarginBadge(m.MarginPct),
		})
	}
	return out
}

func decorateProfit(r *dto.ProfitReport, p dto.PeriodDTO) dto.ProfitView {
	if r == nil {
		r = &dto.ProfitReport{}
	}
	return dto.ProfitView{
		Period:       p,
		TotalRevenue: dto.KES(r.TotalRevenue),
		TotalCost:    dto.KES(r.TotalCost),
		GrossProfit:  dto.KES(r.GrossProfit),
		ProfitMargin: r.ProfitMargin,
		MarginBadge:  domain.MarginBadge(r.ProfitMargin),
		Products:     marginViews(r.Products),
		Categories:   marginViews(r.Categories),
	}
}

func decorateCustomers(r *dto.CustomersReport, p dto.PeriodDTO) dto.CustomersView {
	if r == nil {
		r = &dto.CustomersReport{}
	}
	v := dto.CustomersView{
		Period:             p,
		TotalCustomers:     r.TotalCustomers,
		NewCustomers:       r.NewCustomers,
		ReturningCustomers: r.ReturningCustomers,
		AverageSpend:       dto.KES(r.AverageSpend),
		TopCustomers:       make([]dto.CustomerStatView, 0, len(r.TopCustomers)),
	}
	for _, c := range r.TopCustomers {
		v.TopCustomers = append(v.TopCustomers, dto.CustomerStatView{
			Name:       c.Name,
			Phone:      c.Phone,
			Visits:     c.Visits,
			TotalSpent: dto.KES(c.TotalSpent),
			LastVisit:  c.LastVisit,
		})
	}
	return v
}

func decorateEmployees(r *dto.EmployeesReport, p dto.PeriodDTO) dto.EmployeesView {
	if r == nil {
		r = &dto.EmployeesReport{}
	}
	v := dto.EmployeesView{
		Period:       p,
		TotalRevenue: dto.KES(r.TotalRevenue),
		Employees:    make([]dto.EmployeeStatView, 0, len(r.Employees)),
	}
	for _, e := range r.Employees {
		v.Employees = append(v.Employees, dto.EmployeeStatView{
			Name:       e.Name,
			Customers:  e.Customers,
			Services:   e.Services,
			Revenue:    dto.KES(e.Revenue),
			Commission: dto.KES(e.Commission),
		})
	}
	return v
}
