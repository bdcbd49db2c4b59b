// Package jwt inspecciona el token emitido por la API remota.
//
// El terminal no conoce el secreto del backend: los claims se leen sin verificar
// la firma y sólo se usan para mostrar la expiración y para la vigilancia opcional
// de sesión expirada. La autorización real la hace siempre el backend.
package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims claims estándar más los campos que suele incluir el backend.
type Claims struct {
	jwt.RegisteredClaims
	UserID     any    `json:"user_id,omitempty"`
	BusinessID any    `json:"business_id,omitempty"`
	Email      string `json:"email,omitempty"`
	Role       string `json:"role,omitempty"`
}

// Inspect decodifica los claims del token sin validar firma ni expiración.
func Inspect(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("jwt: token vacío")
	}
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("jwt: token ilegible: %w", err)
	}
	return claims, nil
}

// ExpiresAt devuelve la expiración del token; ok=false si no es un JWT o no trae exp.
func ExpiresAt(tokenString string) (t time.Time, ok bool) {
	claims, err := Inspect(tokenString)
	if err != nil || claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// Expired indica si el token trae exp y ya pasó. Tokens opacos nunca se consideran expirados.
func Expired(tokenString string, now time.Time) bool {
	exp, ok := ExpiresAt(tokenString)
	return ok && !now.Before(exp)
}

// Sign genera un token HS256; lo usan los backends simulados de los tests.
func Sign(secret, subject, email string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: email,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
