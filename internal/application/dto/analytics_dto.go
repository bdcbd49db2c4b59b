package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/bizdash/internal/domain/analytics"
)

// ── Reportes crudos del backend (/analytics/*) ───────────────────────────────
//
// El backend no es consistente con los nombres de claves (monthlyData vs monthly,
// topProducts vs top_products) ni con el tipo de los números. Cada reporte se
// decodifica de forma tolerante y con valores por defecto explícitos.

// MonthlyPoint punto de la serie mensual.
type MonthlyPoint struct {
	Month  string
	Sales  decimal.Decimal
	Orders decimal.Decimal
	Profit decimal.Decimal
}

func (p *MonthlyPoint) UnmarshalJSON(b []byte) error {
	f, err := decodeFields(b)
	if err != nil {
		return err
	}
	*p = MonthlyPoint{
		Month:  f.str("month", "label", "name", "period"),
		Sales:  f.num("sales", "revenue", "totalSales", "total_sales"),
		Orders: f.num("orders", "transactions", "count", "totalOrders"),
		Profit: f.num("profit", "grossProfit", "gross_profit"),
	}
	return nil
}

// DailyPoint punto de la serie diaria de ventas.
type DailyPoint struct {
	Date         string
	Sales        decimal.Decimal
	Transactions decimal.Decimal
}

func (p *DailyPoint) UnmarshalJSON(b []byte) error {
	f, err := decodeFields(b)
	if err != nil {
		return err
	}
	*p = DailyPoint{
		Date:         f.str("date", "day", "label"),
		Sales:        f.num("sales", "revenue", "total"),
		Transactions: f.num("transactions", "orders", "count"),
	}
	return nil
}

// ProductSales producto en un ranking de ventas.
type ProductSales struct {
	Name        string
	UnitsSold   decimal.Decimal
	Revenue     decimal.Decimal
	UnitsPerDay decimal.Decimal
}

func (p *ProductSales) UnmarshalJSON(b []byte) error {
	f, err := decodeFields(b)
	if err != nil {
		return err
	}
	*p = ProductSales{
		Name:        f.str("name", "productName", "product_name", "product"),
		UnitsSold:   f.num("unitsSold", "units_sold", "quantity", "quantitySold", "sold"),
		Revenue:     f.num("revenue", "totalRevenue", "total_revenue", "sales"),
		UnitsPerDay: f.num("unitsPerDay", "units_per_day", "dailyVelocity", "velocity"),
	}
	return nil
}

// CategorySales participación de una categoría.
type CategorySales struct {
	Category   string
	Revenue    decimal.Decimal
	Percentage decimal.Decimal
}

func (c *CategorySales) UnmarshalJSON(b []byte) error {
	f, err := decodeFields(b)
	if err != nil {
		return err
	}
	*c = CategorySales{
		Category:   f.str("category", "name", "categoryName"),
		Revenue:    f.num("revenue", "sales", "total"),
		Percentage: f.num("percentage", "percent", "share"),
	}
	return nil
}

// OverviewReport respuesta de /analytics/overview.
type OverviewReport struct {
	TotalSales        decimal.Decimal
	TotalOrders       decimal.Decimal
	TotalCustomers    decimal.Decimal
	AverageOrderValue decimal.Decimal
	SalesGrowth       decimal.Decimal
	TotalProfit       decimal.Decimal
	ProfitMargin      decimal.Decimal
	Monthly           []MonthlyPoint
	TopProducts       []ProductSales
}

func (r *OverviewReport) UnmarshalJSON(b []byte) error {
	f, err := decodeFields(b)
	if err != nil {
		return err
	}
	*r = OverviewReport{
		TotalSales:        f.num("totalSales", "total_sales", "totalRevenue"),
		TotalOrders:       f.num("totalOrders", "total_orders", "totalTransactions"),
		TotalCustomers:    f.num("totalCustomers", "total_customers"),
		AverageOrderValue: f.num("averageOrderValue", "average_order_value", "avgOrderValue"),
		SalesGrowth:       f.num("salesGrowth", "sales_growth", "growth"),
		TotalProfit:       f.num("totalProfit", "total_profit", "grossProfit"),
		ProfitMargin:      f.num("profitMargin", "profit_margin", "margin"),
		Monthly:           []MonthlyPoint{},
		TopProducts:       []ProductSales{},
	}
	if err := f.into(&r.Monthly, "monthlyData", "monthly", "monthly_data"); err != nil {
		return err
	}
	if err := f.into(&r.TopProducts, "topProducts", "top_products"); err != nil {
		return err
	}
	return nil
}

// SalesReport respuesta de /analytics/sales.
type SalesReport struct {
	TotalRevenue       decimal.Decimal
	TotalTransactions  decimal.Decimal
	AverageTransaction decimal.Decimal
	Growth             decimal.Decimal
	Daily              []DailyPoint
	ByCategory         []CategorySales
	TopProducts        []ProductSales
}

func (r *SalesReport) UnmarshalJSON(b []byte) error {
	f, err := decodeFields(b)
	if err != nil {
		return err
	}
	*r = SalesReport{
		TotalRevenue:       f.num("totalRevenue", "total_revenue", "totalSales"),
		TotalTransactions:  f.num("totalTransactions", "total_transactions", "totalOrders"),
		AverageTransaction: f.num("averageTransaction", "average_transaction", "averageOrderValue"),
		Growth:             f.num("growth", "salesGrowth", "sales_growth"),
		Daily:              []DailyPoint{},
		ByCategory:         []CategorySales{},
		TopProducts:        []ProductSales{},
	}
	if err := f.into(&r.Daily, "dailySales", "daily", "daily_sales"); err != nil {
		return err
	}
	if err := f.into(&r.ByCategory, "salesByCategory", "byCategory", "categories"); err != nil {
		return err
	}
	return f.into(&r.TopProducts, "topProducts", "top_products")
}

// InventoryItem producto con métricas de movimiento.
type InventoryItem struct {
	ID           string
	Name         string
	SKU          string
	Category     string
	Quantity     decimal.Decimal
	ReorderLevel decimal.Decimal
	Price        decimal.Decimal
	Cost         decimal.Decimal
	UnitsSold    decimal.Decimal
	UnitsPerDay  decimal.Decimal
}

func (it *InventoryItem) UnmarshalJSON(b []byte) error {
	f, err := decodeFields(b)
	if err != nil {
		return err
	}
	*it = InventoryItem{
		ID:           f.str("id", "productId", "product_id"),
		Name:         f.str("name", "productName", "product_name"),
		SKU:          f.str("sku", "code"),
		Category:     f.str("category", "categoryName"),
		Quantity:     f.num("quantity", "stock", "currentStock", "current_stock"),
		ReorderLevel: f.num("reorder_level", "reorderLevel", "minStock", "min_stock"),
		Price:        f.num("price", "sellingPrice", "selling_price"),
		Cost:         f.num("cost", "costPrice", "buyingPrice", "buying_price"),
		UnitsSold:    f.num("unitsSold", "units_sold", "sold"),
		UnitsPerDay:  f.num("unitsPerDay", "units_per_day", "dailyVelocity", "velocity"),
	}
	return nil
}

// InventoryReport respuesta de /analytics/inventory.
type InventoryReport struct {
	TotalProducts   decimal.Decimal
	TotalStockValue decimal.Decimal
	LowStockCount   decimal.Decimal
	OutOfStockCount decimal.Decimal
	TurnoverRatio   decimal.Decimal
	Items           []InventoryItem
}

func (r *InventoryReport) UnmarshalJSON(b []byte) error {
	f, err := decodeFields(b)
	if err != nil {
		return err
	}
	*r = InventoryReport{
		TotalProducts:   f.num("totalProducts", "total_products"),
		TotalStockValue: f.num("totalStockValue", "total_stock_value", "totalValue"),
		LowStockCount:   f.num("lowStockCount", "low_stock_count", "lowStock"),
		OutOfStockCount: f.num("outOfStockCount", "out_of_stock_count", "outOfStock"),
		TurnoverRatio:   f.num("turnoverRatio", "turnover_ratio", "inventoryTurnover", "turnover"),
		Items:           []InventoryItem{},
	}
	return f.into(&r.Items, "products", "items", "inventory")
}

// MarginLine rentabilidad de un producto o categoría.
type MarginLine struct {
	Name      string
	Revenue   decimal.Decimal
	Cost      decimal.Decimal
	Profit    decimal.Decimal
	MarginPct decimal.Decimal
}

func (m *MarginLine) UnmarshalJSON(b []byte) error {
	f, err := decodeFields(b)
	if err != nil {
		return err
	}
	*m = MarginLine{
		Name:      f.str("name", "productName", "product_name", "category"),
		Revenue:   f.num("revenue", "sales", "totalRevenue"),
		Cost:      f.num("cost", "totalCost", "cogs"),
		Profit:    f.num("profit", "grossProfit", "gross_profit"),
		MarginPct: f.num("margin", "profitMargin", "margin_pct", "marginPercentage"),
	}
	return nil
}

// ProfitReport respuesta de /analytics/profit.
type ProfitReport struct {
	TotalRevenue decimal.Decimal
	TotalCost    decimal.Decimal
	GrossProfit  decimal.Decimal
	ProfitMargin decimal.Decimal
	Products     []MarginLine
	Categories   []MarginLine
}

func (r *ProfitReport) UnmarshalJSON(b []byte) error {
	f, err := decodeFields(b)
	if err != nil {
		return err
	}
	*r = ProfitReport{
		TotalRevenue: f.num("totalRevenue", "total_revenue"),
		TotalCost:    f.num("totalCost", "total_cost", "cogs"),
		GrossProfit:  f.num("grossProfit", "gross_profit", "totalProfit"),
		ProfitMargin: f.num("profitMargin", "profit_margin", "margin"),
		Products:     []MarginLine{},
		Categories:   []MarginLine{},
	}
	if err := f.into(&r.Products, "productMargins", "products", "product_margins"); err != nil {
		return err
	}
	return f.into(&r.Categories, "categoryMargins", "categories", "category_margins")
}

// CustomerStat cliente en el ranking de clientes.
type CustomerStat struct {
	Name       string
	Phone      string
	Visits     decimal.Decimal
	TotalSpent decimal.Decimal
	LastVisit  string
}

func (c *CustomerStat) UnmarshalJSON(b []byte) error {
	f, err := decodeFields(b)
	if err != nil {
		return err
	}
	*c = CustomerStat{
		Name:       f.str("name", "customerName", "customer_name"),
		Phone:      f.str("phone"),
		Visits:     f.num("visits", "totalVisits", "total_visits", "orders"),
		TotalSpent: f.num("totalSpent", "total_spent", "revenue"),
		LastVisit:  f.str("lastVisit", "last_visit"),
	}
	return nil
}

// CustomersReport respuesta de /analytics/customers.
type CustomersReport struct {
	TotalCustomers     decimal.Decimal
	NewCustomers       decimal.Decimal
	ReturningCustomers decimal.Decimal
	AverageSpend       decimal.Decimal
	TopCustomers       []CustomerStat
}

func (r *CustomersReport) UnmarshalJSON(b []byte) error {
	f, err := decodeFields(b)
	if err != nil {
		return err
	}
	*r = CustomersReport{
		TotalCustomers:     f.num("totalCustomers", "total_customers"),
		NewCustomers:       f.num("newCustomers", "new_customers"),
		ReturningCustomers: f.num("returningCustomers", "returning_customers"),
		AverageSpend:       f.num("averageSpend", "average_spend", "averageOrderValue"),
		TopCustomers:       []CustomerStat{},
	}
	return f.into(&r.TopCustomers, "topCustomers", "top_customers", "customers")
}

// EmployeeStat desempeño de un empleado (servicios).
type EmployeeStat struct {
	Name       string
	Customers  decimal.Decimal
	Services   decimal.Decimal
	Revenue    decimal.Decimal
	Commission decimal.Decimal
}

func (e *EmployeeStat) UnmarshalJSON(b []byte) error {
	f, err := decodeFields(b)
	if err != nil {
		return err
	}
	*e = EmployeeStat{
		Name:       f.str("name", "employeeName", "employee_name"),
		Customers:  f.num("customers", "customerCount", "customer_count"),
		Services:   f.num("services", "servicesCompleted", "services_completed"),
		Revenue:    f.num("revenue", "totalRevenue", "total_revenue"),
		Commission: f.num("commission", "commissionAmount", "commission_amount"),
	}
	return nil
}

// EmployeesReport respuesta de /analytics/employees.
type EmployeesReport struct {
	TotalRevenue decimal.Decimal
	Employees    []EmployeeStat
}

func (r *EmployeesReport) UnmarshalJSON(b []byte) error {
	f, err := decodeFields(b)
	if err != nil {
		return err
	}
	*r = EmployeesReport{
		TotalRevenue: f.num("totalRevenue", "total_revenue"),
		Employees:    []EmployeeStat{},
	}
	return f.into(&r.Employees, "employees", "performance", "data")
}

// ── Vistas decoradas para la UI ───────────────────────────────────────────────

// AnalyticsRequest parámetros de GET /api/analytics/:tab.
type AnalyticsRequest struct {
	DateRange string `query:"date_range"`
}

// PeriodDTO rango mostrado en la cabecera de la pestaña.
type PeriodDTO struct {
	DateRange analytics.DateRange `json:"date_range"`
	Label     string              `json:"label"`
	StartDate string              `json:"start_date"`
	EndDate   string              `json:"end_date"`
}

// MonthlyPointView punto mensual formateado.
type MonthlyPointView struct {
	Month  string          `json:"month"`
	Sales  Money           `json:"sales"`
	Orders decimal.Decimal `json:"orders"`
	Profit Money           `json:"profit"`
}

// ProductSalesView producto del ranking con su velocidad.
type ProductSalesView struct {
	Name        string             `json:"name"`
	UnitsSold   decimal.Decimal    `json:"units_sold"`
	Revenue     Money              `json:"revenue"`
	UnitsPerDay decimal.Decimal    `json:"units_per_day"`
	Velocity    analytics.Velocity `json:"velocity"`
}

// OverviewView pestaña Overview / tarjetas de Home.
type OverviewView struct {
	Period            PeriodDTO          `json:"period"`
	TotalSales        Money              `json:"total_sales"`
	TotalOrders       decimal.Decimal    `json:"total_orders"`
	TotalCustomers    decimal.Decimal    `json:"total_customers"`
	AverageOrderValue Money              `json:"average_order_value"`
	SalesGrowth       decimal.Decimal    `json:"sales_growth"`
	SalesTrend        analytics.Trend    `json:"sales_trend"`
	TotalProfit       Money              `json:"total_profit"`
	ProfitMargin      decimal.Decimal    `json:"profit_margin"`
	MarginBadge       analytics.Badge    `json:"margin_badge"`
	Monthly           []MonthlyPointView `json:"monthly"`
	TopProducts       []ProductSalesView `json:"top_products"`
}

// DailyPointView punto diario formateado.
type DailyPointView struct {
	Date         string          `json:"date"`
	Sales        Money           `json:"sales"`
	Transactions decimal.Decimal `json:"transactions"`
}

// CategorySalesView participación por categoría formateada.
type CategorySalesView struct {
	Category   string          `json:"category"`
	Revenue    Money           `json:"revenue"`
	Percentage decimal.Decimal `json:"percentage"`
}

// SalesView pestaña Sales.
type SalesView struct {
	Period             PeriodDTO           `json:"period"`
	TotalRevenue       Money               `json:"total_revenue"`
	TotalTransactions  decimal.Decimal     `json:"total_transactions"`
	AverageTransaction Money               `json:"average_transaction"`
	Growth             decimal.Decimal     `json:"growth"`
	Trend              analytics.Trend     `json:"trend"`
	Daily              []DailyPointView    `json:"daily"`
	ByCategory         []CategorySalesView `json:"by_category"`
	TopProducts        []ProductSalesView  `json:"top_products"`
}

// InventoryItemView fila de la tabla de stock.
type InventoryItemView struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	SKU          string                `json:"sku,omitempty"`
	Category     string                `json:"category,omitempty"`
	Quantity     decimal.Decimal       `json:"quantity"`
	ReorderLevel decimal.Decimal       `json:"reorder_level"`
	Price        Money                 `json:"price"`
	StockValue   Money                 `json:"stock_value"`
	Status       analytics.StockStatus `json:"status"`
	StatusBadge  analytics.Badge       `json:"status_badge"`
	UnitsPerDay  decimal.Decimal       `json:"units_per_day"`
	Velocity     analytics.Velocity    `json:"velocity"`
}

// InventoryView pestaña Inventory.
type InventoryView struct {
	Period          PeriodDTO           `json:"period"`
	TotalProducts   decimal.Decimal     `json:"total_products"`
	TotalStockValue Money               `json:"total_stock_value"`
	LowStockCount   decimal.Decimal     `json:"low_stock_count"`
	OutOfStockCount decimal.Decimal     `json:"out_of_stock_count"`
	TurnoverRatio   decimal.Decimal     `json:"turnover_ratio"`
	Turnover        analytics.Turnover  `json:"turnover"`
	Items           []InventoryItemView `json:"items"`
}

// MarginLineView fila de rentabilidad con banda de color.
type MarginLineView struct {
	Name      string          `json:"name"`
	Revenue   Money           `json:"revenue"`
	Cost      Money           `json:"cost"`
	Profit    Money           `json:"profit"`
	MarginPct decimal.Decimal `json:"margin_pct"`
	Badge     analytics.Badge `json:"badge"`
}

// ProfitView pestaña Profit.
type ProfitView struct {
	Period       PeriodDTO        `json:"period"`
	TotalRevenue Money            `json:"total_revenue"`
	TotalCost    Money            `json:"total_cost"`
	GrossProfit  Money            `json:"gross_profit"`
	ProfitMargin decimal.Decimal  `json:"profit_margin"`
	MarginBadge  analytics.Badge  `json:"margin_badge"`
	Products     []MarginLineView `json:"products"`
	Categories   []MarginLineView `json:"categories"`
}

// CustomerStatView fila del ranking de clientes.
type CustomerStatView struct {
	Name       string          `json:"name"`
	Phone      string          `json:"phone,omitempty"`
	Visits     decimal.Decimal `json:"visits"`
	TotalSpent Money           `json:"total_spent"`
	LastVisit  string          `json:"last_visit,omitempty"`
}

// CustomersView pestaña Customers.
type CustomersView struct {
	Period             PeriodDTO          `json:"period"`
	TotalCustomers     decimal.Decimal    `json:"total_customers"`
	NewCustomers       decimal.Decimal    `json:"new_customers"`
	ReturningCustomers decimal.Decimal    `json:"returning_customers"`
	AverageSpend       Money              `json:"average_spend"`
	TopCustomers       []CustomerStatView `json:"top_customers"`
}

// EmployeeStatView fila de desempeño de empleados.
type EmployeeStatView struct {
	Name       string          `json:"name"`
	Customers  decimal.Decimal `json:"customers"`
	Services   decimal.Decimal `json:"services"`
	Revenue    Money           `json:"revenue"`
	Commission Money           `json:"commission"`
}

// EmployeesView pestaña Employees.
type EmployeesView struct {
	Period       PeriodDTO          `json:"period"`
	TotalRevenue Money              `json:"total_revenue"`
	Employees    []EmployeeStatView `json:"employees"`
}
