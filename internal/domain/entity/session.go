package entity

import "time"

// User usuario autenticado tal como lo devuelve el backend en login/register.
type User struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role,omitempty"`
}

// Business negocio al que pertenece el usuario.
type Business struct {
	ID      ID     `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// Session estado de autenticación del terminal.
// Invariante: IsAuthenticated ⇔ User != nil && Token != "".
type Session struct {
	User            *User      `json:"user"`
	Business        *Business  `json:"business"`
	Token           string     `json:"-"`
	IsAuthenticated bool       `json:"isAuthenticated"`
	Loading         bool       `json:"loading"`
	ExpiresAt       *time.Time `json:"expiresAt,omitempty"`
}

// Authenticated evalúa el invariante sobre los campos crudos.
func Authenticated(user *User, token string) bool {
	return user != nil && token != ""
}
