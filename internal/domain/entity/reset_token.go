package entity

import "time"

// ResetToken ticket de un solo uso para definir la contraseña de una cuenta.
type ResetToken struct {
	ID        string
	UsuarioID string
	Token     string
	Expiracao time.Time
}

// Expired es verdadero cuando now >= expiracao.
func (t *ResetToken) Expired(now time.Time) bool {
	return !now.Before(t.Expiracao)
}
