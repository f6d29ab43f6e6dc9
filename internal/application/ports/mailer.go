package ports

import "context"

// Message correo saliente con cuerpo en texto y, opcionalmente, HTML.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Mailer puerto de salida para notificaciones por email.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
