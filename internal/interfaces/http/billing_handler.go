package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bizdash/internal/application/dto"
	"github.com/jhoicas/bizdash/internal/application/servicebilling"
	"github.com/jhoicas/bizdash/internal/domain/entity"
)

// BillingHandler tablero de facturación, facturas de servicios y comisiones.
type BillingHandler struct {
	uc *servicebilling.BillingUseCase
}

// NewBillingHandler construye el handler.
func NewBillingHandler(uc *servicebilling.BillingUseCase) *BillingHandler {
	return &BillingHandler{uc: uc}
}

// Board GET /api/service-billing/billing/board
//
// Asignaciones facturables agrupadas por cliente con la selección actual y su vista previa.
func (h *BillingHandler) Board(c *fiber.Ctx) error {
	board, err := h.uc.Board(c.UserContext())
	return screenRead(c, "Billing", board, err, &dto.BillingBoard{Groups: []dto.CustomerGroup{}})
}

// Select POST /api/service-billing/billing/select
func (h *BillingHandler) Select(c *fiber.Ctx) error {
	var in dto.SelectionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	board, err := h.uc.Select(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(board)
}

// Preview POST /api/service-billing/billing/preview
func (h *BillingHandler) Preview(c *fiber.Ctx) error {
	var in dto.PreviewRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	totals, err := h.uc.Preview(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(totals)
}

// CreateInvoice factura las asignaciones seleccionadas y devuelve el tablero refrescado.
// POST /api/service-billing/invoices
func (h *BillingHandler) CreateInvoice(c *fiber.Ctx) error {
	var in dto.CreateServiceInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateInvoice(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListInvoices GET /api/service-billing/invoices?date_range=&search=
func (h *BillingHandler) ListInvoices(c *fiber.Ctx) error {
	var f dto.ServiceInvoiceFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "Invalid query parameters"})
	}
	rows, err := h.uc.ListInvoices(c.UserContext(), f)
	return screenRead(c, "Service invoices", rows, err, []dto.ServiceInvoiceSummary{})
}

// GetInvoice GET /api/service-billing/invoices/:number
func (h *BillingHandler) GetInvoice(c *fiber.Ctx) error {
	inv, err := h.uc.GetInvoice(c.UserContext(), c.Params("number"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inv)
}

// Commissions GET /api/service-billing/commissions?period=YYYY-MM
func (h *BillingHandler) Commissions(c *fiber.Ctx) error {
	rows, err := h.uc.Commissions(c.UserContext(), c.Query("period"))
	return screenRead(c, "Commissions", rows, err, []entity.Commission{})
}

// CalculateCommissions POST /api/service-billing/commissions/calculate
func (h *BillingHandler) CalculateCommissions(c *fiber.Ctx) error {
	var in dto.CommissionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
	}
	rows, err := h.uc.CalculateCommissions(c.UserContext(), in.Period)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}
