package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas). La capa HTTP los traduce con errors.Is.
var (
	ErrValidation   = errors.New("entrada inválida")
	ErrNotFound     = errors.New("recurso não encontrado")
	ErrUnauthorized = errors.New("credenciais inválidas")
	ErrUpstream     = errors.New("falha no serviço externo")
)

// MissingField indica campos obligatorios ausentes, nombrándolos.
func MissingField(fields ...string) error {
	quoted := make([]string, 0, len(fields))
	for _, f := range fields {
		quoted = append(quoted, "'"+f+"'")
	}
	if len(quoted) == 1 {
		return fmt.Errorf("%w: o campo %s é obrigatório", ErrValidation, quoted[0])
	}
	return fmt.Errorf("%w: os campos %s são obrigatórios", ErrValidation, strings.Join(quoted, " e "))
}

// Invalid construye un error de validación con mensaje libre.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFoundf construye un NotFound nombrando las claves buscadas.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Upstream envuelve la falla de un colaborador externo (object store, firmador).
func Upstream(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrUpstream, op, err)
}

// Message devuelve el texto del error sin el prefijo del sentinel.
func Message(err error) string {
	msg := err.Error()
	for _, s := range []error{ErrValidation, ErrNotFound, ErrUnauthorized, ErrUpstream} {
		if errors.Is(err, s) {
			if rest, ok := strings.CutPrefix(msg, s.Error()+": "); ok {
				return rest
			}
		}
	}
	return msg
}
