package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/ports"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/pkg/config"
)

var _ ports.Mailer = (*SMTPMailer)(nil)

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPMailer envía correos por SMTP (STARTTLS en 587, TLS implícito en 465).
type SMTPMailer struct {
	dialer   dialer
	from     string
	fromName string
}

// NewSMTPMailer construye el mailer a partir de la config.
func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer:   gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:     cfg.User,
		fromName: cfg.FromName,
	}
}

// Send arma un multipart/alternative (texto + HTML) y lo envía.
func (m *SMTPMailer) Send(ctx context.Context, msg ports.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.from == "" {
		return fmt.Errorf("remitente de email no configurado")
	}
	if err := m.dialer.DialAndSend(m.build(msg)); err != nil {
		return fmt.Errorf("enviar email a %s: %w", msg.To, err)
	}
	return nil
}

func (m *SMTPMailer) build(msg ports.Message) *gomail.Message {
	gm := gomail.NewMessage(gomail.SetCharset("UTF-8"))
	gm.SetAddressHeader("From", m.from, m.fromName)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		gm.AddAlternative("text/html", msg.HTML)
	}
	return gm
}
