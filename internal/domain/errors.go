package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrBackendUnavailable = errors.New("backend no disponible")
	ErrNotAuthenticated   = errors.New("sesión no iniciada")
	ErrSessionLoading     = errors.New("sesión restaurándose")
	ErrPasswordMismatch   = errors.New("Passwords do not match")
	ErrInvalidTransition  = errors.New("transición de estado no permitida")
	ErrAlreadyBilled      = errors.New("la asignación ya fue facturada")
)

// ValidationError error de validación de formulario; Message se muestra tal cual en la UI.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Unwrap permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Invalid construye un ValidationError.
func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
