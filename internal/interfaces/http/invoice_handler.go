package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bizdash/internal/application/dto"
	"github.com/jhoicas/bizdash/internal/application/sales"
	"github.com/jhoicas/bizdash/internal/domain/entity"
)

// InvoiceHandler facturas de venta y cotizaciones.
type InvoiceHandler struct {
	uc *sales.UseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *sales.UseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// List GET /api/invoices?search=&status=&date_range=
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	var f dto.InvoiceFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "Invalid query parameters"})
	}
	rows, err := h.uc.ListInvoices(c.UserContext(), f)
	return screenRead(c, "Invoices", rows, err, []dto.InvoiceSummary{})
}

// GetByID GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	inv, err := h.uc.GetInvoice(c.UserContext(), entity.ID(c.Params("id")))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inv)
}

// ListQuotations GET /api/quotations?search=
func (h *InvoiceHandler) ListQuotations(c *fiber.Ctx) error {
	var f dto.QuotationFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "Invalid query parameters"})
	}
	rows, err := h.uc.ListQuotations(c.UserContext(), f)
	return screenRead(c, "Quotations", rows, err, []dto.QuotationSummary{})
}

// CreateQuotation POST /api/quotations
func (h *InvoiceHandler) CreateQuotation(c *fiber.Ctx) error {
	var in dto.QuotationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	q, err := h.uc.CreateQuotation(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(q)
}

// ConvertQuotation POST /api/quotations/:id/convert
func (h *InvoiceHandler) ConvertQuotation(c *fiber.Ctx) error {
	inv, err := h.uc.ConvertQuotation(c.UserContext(), entity.ID(c.Params("id")))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(inv)
}
