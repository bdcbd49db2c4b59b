package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/bizdash/internal/application/analytics"
	"github.com/jhoicas/bizdash/internal/application/receipt"
	"github.com/jhoicas/bizdash/internal/application/sales"
	"github.com/jhoicas/bizdash/internal/application/servicebilling"
	"github.com/jhoicas/bizdash/internal/application/session"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Session     *session.Store
	AnalyticsUC *appanalytics.UseCase
	SalesUC     *sales.UseCase
	SettingsUC  *sales.SettingsUseCase
	CatalogUC   *servicebilling.CatalogUseCase
	WorkflowUC  *servicebilling.WorkflowUseCase
	BillingUC   *servicebilling.BillingUseCase
	ReceiptUC   *receipt.UseCase
	AppName     string
	// SwaggerFile ruta del swagger.json; vacío o inexistente = sin /docs.
	SwaggerFile string
}

// Router registra las rutas de la API local.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName, "session_loading": deps.Session.Loading()})
	})

	// Swagger UI en local: http://localhost:<port>/docs
	if deps.SwaggerFile != "" {
		if _, err := os.Stat(deps.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: deps.SwaggerFile,
				Path:     "docs",
				Title:    "Business Dashboard API",
			}))
		}
	}

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.Session)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/session", authHandler.Session)

	// Rutas protegidas (sesión restaurada y autenticada)
	protected := api.Group("", RequireSession(deps.Session))

	dashboardHandler := NewDashboardHandler(deps.AnalyticsUC)
	protected.Get("/home", dashboardHandler.Home)

	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	protected.Get("/analytics", analyticsHandler.Tabs)
	protected.Get("/analytics/:tab", analyticsHandler.GetTab)

	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	protected.Get("/settings", settingsHandler.Get)
	protected.Put("/settings", settingsHandler.Update)

	invoiceHandler := NewInvoiceHandler(deps.SalesUC)
	protected.Get("/invoices", invoiceHandler.List)
	protected.Get("/invoices/:id", invoiceHandler.GetByID)
	protected.Get("/quotations", invoiceHandler.ListQuotations)
	protected.Post("/quotations", invoiceHandler.CreateQuotation)
	protected.Post("/quotations/:id/convert", invoiceHandler.ConvertQuotation)

	receiptHandler := NewReceiptHandler(deps.ReceiptUC)
	protected.Get("/receipts/journal", receiptHandler.Journal)

	// Negocio de servicios
	sb := protected.Group("/service-billing")

	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	sb.Get("/services", catalogHandler.ListServices)
	sb.Post("/services", catalogHandler.CreateService)
	sb.Put("/services/:id", catalogHandler.UpdateService)
	sb.Delete("/services/:id", catalogHandler.DeleteService)
	sb.Get("/customers", catalogHandler.ListCustomers)
	sb.Post("/customers", catalogHandler.CreateCustomer)
	sb.Put("/customers/:id", catalogHandler.UpdateCustomer)
	sb.Delete("/customers/:id", catalogHandler.DeleteCustomer)
	sb.Get("/employees", catalogHandler.ListEmployees)
	sb.Post("/employees", catalogHandler.CreateEmployee)
	sb.Put("/employees/:id", catalogHandler.UpdateEmployee)
	sb.Delete("/employees/:id", catalogHandler.DeleteEmployee)

	workflowHandler := NewWorkflowHandler(deps.WorkflowUC)
	sb.Get("/bookings", workflowHandler.ListBookings)
	sb.Get("/bookings/unassigned", workflowHandler.ListUnassignedBookings)
	sb.Post("/bookings", workflowHandler.CreateBooking)
	sb.Patch("/bookings/:id/status", workflowHandler.UpdateBookingStatus)
	sb.Get("/assignments", workflowHandler.ListAssignments)
	sb.Post("/assignments", workflowHandler.CreateAssignment)
	sb.Patch("/assignments/:id/complete", workflowHandler.CompleteAssignment)

	billingHandler := NewBillingHandler(deps.BillingUC)
	sb.Get("/billing/board", billingHandler.Board)
	sb.Post("/billing/select", billingHandler.Select)
	sb.Post("/billing/preview", billingHandler.Preview)
	sb.Get("/invoices", billingHandler.ListInvoices)
	sb.Post("/invoices", billingHandler.CreateInvoice)
	sb.Get("/invoices/:number", billingHandler.GetInvoice)
	sb.Get("/invoices/:number/receipt", receiptHandler.Render)
	sb.Get("/commissions", billingHandler.Commissions)
	sb.Post("/commissions/calculate", billingHandler.CalculateCommissions)
}
