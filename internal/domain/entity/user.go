package entity

import "time"

// Roles válidos para User. Las variantes de administrador se guardan como texto libre.
const (
	RoleCandidato = "candidato"
	RoleUser      = "user"
	RoleAdmin     = "admin"
)

// User representa una cuenta con login (tabla usuarios).
type User struct {
	ID           string
	Nome         string
	Email        string
	PasswordHash string // bcrypt; vacío hasta que se consume el token de creación
	Role         string
	Empresa      string
	CreatedAt    time.Time
}

// HasPassword informa si la cuenta ya definió contraseña.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}
