package dto

import "strings"

// CreateUserRequest entrada para crear una cuenta; la contraseña se define luego con el token.
type CreateUserRequest struct {
	Nome    string `json:"nome"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Empresa string `json:"empresa"`
}

// UpdateUserRequest sobrescribe nome y email.
type UpdateUserRequest struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

// UpdateUserResponse eco de la actualización.
type UpdateUserResponse struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

// UserResponse salida de una cuenta (sin hash).
type UserResponse struct {
	ID      string `json:"id"`
	Nome    string `json:"nome"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Empresa string `json:"empresa"`
}

// SetPasswordRequest consume el token de creación de contraseña.
type SetPasswordRequest struct {
	Token string `json:"token"`
	Senha string `json:"senha"`
}

// LoginRequest acepta los nombres de campo en portugués e inglés.
type LoginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Senha    string `json:"senha"`
	Password string `json:"password"`
}

// Identifier email o username, el primero no vacío.
func (r LoginRequest) Identifier() string {
	if s := strings.TrimSpace(r.Email); s != "" {
		return s
	}
	return strings.TrimSpace(r.Username)
}

// Secret senha o password, el primero no vacío.
func (r LoginRequest) Secret() string {
	if r.Senha != "" {
		return r.Senha
	}
	return r.Password
}

// LoginResponse token de sesión + datos de la cuenta.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
