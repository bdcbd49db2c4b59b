package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/bizdash/internal/application/analytics"
	"github.com/jhoicas/bizdash/internal/application/dto"
	domainanalytics "github.com/jhoicas/bizdash/internal/domain/analytics"
)

// AnalyticsHandler pestañas de analítica.
type AnalyticsHandler struct {
	uc *appanalytics.UseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *appanalytics.UseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// tabInfo pestaña disponible.
type tabInfo struct {
	Key string `json:"key"`
}

// Tabs lista las pestañas en orden.
// GET /api/analytics
func (h *AnalyticsHandler) Tabs(c *fiber.Ctx) error {
	out := make([]tabInfo, 0, len(appanalytics.Tabs))
	for _, t := range appanalytics.Tabs {
		out = append(out, tabInfo{Key: string(t)})
	}
	return c.JSON(out)
}

// GetTab pestaña de analítica decorada; si el backend falla responde 200 con datos vacíos y alert.
// GET /api/analytics/:tab?date_range=
func (h *AnalyticsHandler) GetTab(c *fiber.Ctx) error {
	tab, err := appanalytics.ParseTab(c.Params("tab"))
	if err != nil {
		return respondError(c, err)
	}
	var req dto.AnalyticsRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "Invalid query parameters"})
	}
	dr, err := domainanalytics.ParseDateRange(req.DateRange)
	if err != nil {
		return respondError(c, err)
	}

	data, err := h.uc.Tab(c.UserContext(), tab, dr)
	return screenRead(c, "Analytics", data, err, h.uc.Empty(tab, dr))
}
