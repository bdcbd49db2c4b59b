package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/bizdash/internal/application/analytics"
	"github.com/jhoicas/bizdash/internal/application/dto"
	domainanalytics "github.com/jhoicas/bizdash/internal/domain/analytics"
)

// DashboardHandler pantalla de inicio.
type DashboardHandler struct {
	uc *appanalytics.UseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Home KPIs del rango, facturas recientes y stock bajo.
// GET /api/home?date_range=this_month
//
// Cada widget que falla llega vacío con su aviso en alerts; sólo un 401 del backend
// corta la respuesta.
func (h *DashboardHandler) Home(c *fiber.Ctx) error {
	var req dto.AnalyticsRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "Invalid query parameters"})
	}
	dr, err := domainanalytics.ParseDateRange(req.DateRange)
	if err != nil {
		return respondError(c, err)
	}
	view, err := h.uc.Home(c.UserContext(), dr)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.Screen[dto.HomeView]{Data: view})
}
