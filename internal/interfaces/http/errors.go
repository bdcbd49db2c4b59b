package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bizdash/internal/application/dto"
	"github.com/jhoicas/bizdash/internal/application/screen"
	"github.com/jhoicas/bizdash/internal/domain"
)

// backendError lo implementa el error HTTP del cliente del backend.
type backendError interface {
	error
	StatusCode() int
	ErrorCode() string
}

// mapError traduce un error de la aplicación a status, código y mensaje visibles.
func mapError(err error) (int, dto.ErrorResponse) {
	var verr *domain.ValidationError
	var berr backendError
	switch {
	case errors.Is(err, screen.ErrSuperseded):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "REQUEST_SUPERSEDED", Message: "A newer request replaced this one"}
	case errors.Is(err, domain.ErrPasswordMismatch):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "PASSWORD_MISMATCH", Message: err.Error()}
	case errors.As(err, &verr):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: verr.Message}
	case errors.As(err, &berr):
		return backendStatus(berr)
	case errors.Is(err, domain.ErrSessionLoading):
		return fiber.StatusServiceUnavailable, dto.ErrorResponse{Code: "SESSION_LOADING", Message: "Session is being restored"}
	case errors.Is(err, domain.ErrNotAuthenticated):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "Please sign in"}
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()}
	case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrAlreadyBilled), errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()}
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()}
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()}
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()}
	case errors.Is(err, domain.ErrBackendUnavailable):
		return fiber.StatusBadGateway, dto.ErrorResponse{Code: "BACKEND_UNAVAILABLE", Message: err.Error()}
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return fiber.StatusRequestTimeout, dto.ErrorResponse{Code: "TIMEOUT", Message: "The request was cancelled"}
	default:
		return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()}
	}
}

// backendStatus conserva los 4xx del backend; los 5xx salen como 502.
func backendStatus(err backendError) (int, dto.ErrorResponse) {
	status := err.StatusCode()
	code := err.ErrorCode()
	if status >= 500 {
		if code == "" {
			code = "BACKEND_ERROR"
		}
		return fiber.StatusBadGateway, dto.ErrorResponse{Code: code, Message: err.Error()}
	}
	if code == "" {
		switch status {
		case fiber.StatusUnauthorized:
			code = "UNAUTHORIZED"
		case fiber.StatusForbidden:
			code = "FORBIDDEN"
		case fiber.StatusNotFound:
			code = "NOT_FOUND"
		case fiber.StatusConflict:
			code = "CONFLICT"
		default:
			code = "BACKEND_REJECTED"
		}
	}
	return status, dto.ErrorResponse{Code: code, Message: err.Error()}
}

// respondError responde con el ErrorResponse mapeado.
func respondError(c *fiber.Ctx, err error) error {
	status, body := mapError(err)
	return c.Status(status).JSON(body)
}

// badBody respuesta para cuerpos JSON ilegibles.
func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Invalid request body"})
}

// passThrough errores que una lectura de pantalla no degrada a aviso.
func passThrough(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized) ||
		errors.Is(err, domain.ErrNotAuthenticated) ||
		errors.Is(err, screen.ErrSuperseded) ||
		errors.Is(err, context.Canceled)
}

// screenRead responde una lectura de pantalla: si falla, 200 con el valor vacío y un aviso,
// salvo 401 del backend, carga reemplazada o petición cancelada.
func screenRead[T any](c *fiber.Ctx, part string, data T, err error, empty T) error {
	if err == nil {
		return c.JSON(dto.Screen[T]{Data: data})
	}
	if passThrough(err) {
		return respondError(c, err)
	}
	alert := dto.ErrorAlert(part, err)
	return c.JSON(dto.Screen[T]{Data: empty, Alert: &alert})
}
