package dto

import (
	"time"

	"github.com/jhoicas/bizdash/internal/domain/entity"
)

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest entrada para registro de usuario y negocio.
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	BusinessName    string `json:"businessName"`
}

// AuthResponse respuesta del backend a login/register.
// Algunos despliegues devuelven access_token en lugar de token.
type AuthResponse struct {
	Token       string           `json:"token"`
	AccessToken string           `json:"access_token,omitempty"`
	User        *entity.User     `json:"user"`
	Business    *entity.Business `json:"business"`
}

// BearerToken devuelve el token presente en la respuesta.
func (r AuthResponse) BearerToken() string {
	if r.Token != "" {
		return r.Token
	}
	return r.AccessToken
}

// SessionResponse estado de sesión expuesto a la UI (el token nunca sale del terminal).
type SessionResponse struct {
	User            *entity.User             `json:"user"`
	Business        *entity.Business         `json:"business"`
	Settings        *entity.BusinessSettings `json:"businessSettings,omitempty"`
	IsAuthenticated bool                     `json:"isAuthenticated"`
	Loading         bool                     `json:"loading"`
	ExpiresAt       *time.Time               `json:"expiresAt,omitempty"`
}

// NewSessionResponse construye la respuesta a partir de una instantánea de sesión.
func NewSessionResponse(s entity.Session, settings *entity.BusinessSettings) SessionResponse {
	return SessionResponse{
		User:            s.User,
		Business:        s.Business,
		Settings:        settings,
		IsAuthenticated: s.IsAuthenticated,
		Loading:         s.Loading,
		ExpiresAt:       s.ExpiresAt,
	}
}
