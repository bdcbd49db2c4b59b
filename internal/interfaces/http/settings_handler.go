package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bizdash/internal/application/sales"
	"github.com/jhoicas/bizdash/internal/domain/entity"
)

// SettingsHandler configuración del negocio.
type SettingsHandler struct {
	uc *sales.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *sales.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get GET /api/settings. Si el backend falla devuelve la copia local con aviso.
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	s, err := h.uc.Get(c.UserContext())
	return screenRead(c, "Settings", s, err, s)
}

// Update PUT /api/settings
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in entity.BusinessSettings
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
