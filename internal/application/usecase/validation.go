package usecase

import "strings"

type field struct {
	name  string
	value string
}

// missingFields nombres de los campos vacíos (solo espacios cuenta como vacío), en orden.
func missingFields(fields ...field) []string {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// optional nil si s está vacío; se usa para los filtros de query.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
