package onboarding

import (
	"strings"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/domain"
)

// cpfDigits cantidad exacta de dígitos de un CPF.
const cpfDigits = 11

// DeriveInitialPassword calcula la credencial provisoria del candidato:
// los 3 primeros y los 2 últimos dígitos del CPF. Los caracteres no numéricos se ignoran.
func DeriveInitialPassword(cpf string) (string, error) {
	var b strings.Builder
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	d := b.String()
	if len(d) != cpfDigits {
		return "", domain.Invalid("CPF deve conter exatamente 11 dígitos")
	}
	return d[:3] + d[9:], nil
}
