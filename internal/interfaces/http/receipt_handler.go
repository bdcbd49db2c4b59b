package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bizdash/internal/application/dto"
	"github.com/jhoicas/bizdash/internal/application/receipt"
	"github.com/jhoicas/bizdash/internal/domain/entity"
)

// ReceiptHandler impresión de recibos y diario de impresión.
type ReceiptHandler struct {
	uc *receipt.UseCase
}

// NewReceiptHandler construye el handler.
func NewReceiptHandler(uc *receipt.UseCase) *ReceiptHandler {
	return &ReceiptHandler{uc: uc}
}

// Render GET /api/service-billing/invoices/:number/receipt?format=html|text|pdf
//
// El HTML abre el diálogo de impresión al cargar. ?download=1 fuerza attachment.
func (h *ReceiptHandler) Render(c *fiber.Ctx) error {
	format := c.Query("format", receipt.FormatHTML)
	out, err := h.uc.Render(c.UserContext(), c.Params("number"), format)
	if err != nil {
		return respondError(c, err)
	}
	disposition := "inline"
	if c.QueryBool("download") {
		disposition = "attachment"
	}
	c.Set(fiber.HeaderContentType, out.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("%s; filename=%q", disposition, out.Filename))
	if out.ArchiveKey != "" {
		c.Set("X-Archive-Key", out.ArchiveKey)
	}
	return c.Send(out.Body)
}

// Journal GET /api/receipts/journal?limit=
func (h *ReceiptHandler) Journal(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "Invalid query parameters"})
	}
	page.DefaultPage()
	rows, err := h.uc.Journal(c.UserContext(), page.Limit)
	return screenRead(c, "Receipt journal", rows, err, []entity.ReceiptRecord{})
}
