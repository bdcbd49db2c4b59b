package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/bizdash/internal/application/dto"
	"github.com/jhoicas/bizdash/pkg/logger"
)

// Locals keys en Fiber.
const (
	LocalRequestID = "request_id"
)

// sessionGuard lo implementa *session.Store.
type sessionGuard interface {
	Loading() bool
	IsAuthenticated() bool
}

// RequireSession protege las pantallas autenticadas.
//
// Comportamiento:
//   - 503 SESSION_LOADING → el estado persistido todavía se está restaurando.
//   - 401 UNAUTHENTICATED → no hay sesión; la UI debe mostrar el login.
func RequireSession(guard sessionGuard) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if guard.Loading() {
			c.Set(fiber.HeaderRetryAfter, "1")
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "SESSION_LOADING",
				Message: "Session is being restored",
			})
		}
		if !guard.IsAuthenticated() {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHENTICATED",
				Message: "Please sign in",
			})
		}
		return c.Next()
	}
}

// RequestLogger asigna un X-Request-ID (uuid si el cliente no envía uno) y registra cada petición.
func RequestLogger(log *logger.Logger) fiber.Handler {
	log = log.Component("http")
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalRequestID, id)
		c.Set(fiber.HeaderXRequestID, id)

		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error().Err(err)
		}
		ev.Str("request_id", id).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("elapsed", time.Since(start)).
			Msg("request")
		return err
	}
}

// GetRequestID devuelve el id de la petición (después de RequestLogger).
func GetRequestID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRequestID).(string)
	return s
}
