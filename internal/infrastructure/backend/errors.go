package backend

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/jhoicas/bizdash/internal/domain"
)

// unreachableMessage mensaje visible cuando no hay respuesta HTTP.
const unreachableMessage = "Unable to reach the server"

// APIError respuesta no-2xx del backend. Message es el mensaje del backend o el genérico.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string { return e.Message }

// StatusCode status HTTP devuelto por el backend.
func (e *APIError) StatusCode() int { return e.Status }

// ErrorCode código de error del backend, si lo envió.
func (e *APIError) ErrorCode() string { return e.Code }

// Unwrap traduce el status HTTP al error de dominio equivalente.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domain.ErrInvalidInput
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusConflict:
		return domain.ErrConflict
	default:
		if e.Status >= 500 {
			return domain.ErrBackendUnavailable
		}
		return nil
	}
}

// UnreachableError fallo de transporte (DNS, conexión, timeout del cliente HTTP).
type UnreachableError struct {
	Err error
}

func (e *UnreachableError) Error() string { return unreachableMessage }

// Unwrap expone tanto domain.ErrBackendUnavailable como la causa.
func (e *UnreachableError) Unwrap() []error {
	return []error{domain.ErrBackendUnavailable, e.Err}
}

// newAPIError extrae el mensaje de las claves message, error o detail del cuerpo.
// error puede venir como string o como objeto {message}.
func newAPIError(status int, body []byte) *APIError {
	e := &APIError{Status: status}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(body, &m); err == nil {
		e.Code = stringField(m["code"])
		for _, key := range []string{"message", "error", "detail"} {
			if msg := messageField(m[key]); msg != "" {
				e.Message = msg
				break
			}
		}
	}
	if e.Message == "" {
		e.Message = fmt.Sprintf("Request failed with status %d", status)
	}
	return e
}

func stringField(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

func messageField(raw json.RawMessage) string {
	if s := stringField(raw); s != "" {
		return s
	}
	var nested struct {
		Message string `json:"message"`
	}
	if len(raw) > 0 && json.Unmarshal(raw, &nested) == nil {
		return strings.TrimSpace(nested.Message)
	}
	// detail de validación estilo FastAPI: [{msg: ...}]
	var list []struct {
		Msg string `json:"msg"`
	}
	if len(raw) > 0 && json.Unmarshal(raw, &list) == nil && len(list) > 0 {
		return strings.TrimSpace(list[0].Msg)
	}
	return ""
}
