package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bizdash/internal/application/dto"
	"github.com/jhoicas/bizdash/internal/application/session"
)

// AuthHandler login, registro, logout y estado de la sesión local.
type AuthHandler struct {
	store *session.Store
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(store *session.Store) *AuthHandler {
	return &AuthHandler{store: store}
}

func (h *AuthHandler) response() dto.SessionResponse {
	return dto.NewSessionResponse(h.store.Snapshot(), h.store.BusinessSettings())
}

// Register registra usuario y negocio. POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if _, err := h.store.Register(c.UserContext(), in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.response())
}

// Login inicia sesión. POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if _, err := h.store.Login(c.UserContext(), in.Email, in.Password); err != nil {
		return respondError(c, err)
	}
	return c.JSON(h.response())
}

// Logout cierra la sesión local siempre; el aviso al backend es best-effort.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.store.Logout(c.UserContext()); err != nil {
		return respondError(c, err)
	}
	return c.JSON(h.response())
}

// Session estado actual (user, business, isAuthenticated, loading). Nunca expone el token.
// GET /api/auth/session
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	return c.JSON(h.response())
}
