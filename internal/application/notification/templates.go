// Package notification arma los correos que envían los casos de uso.
package notification

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"net/url"
	texttemplate "text/template"
	"time"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/ports"
)

const (
	brandColor = "#BA68C8"
	slogan     = "Funcionalidades prontas para agilizar suas contratações"
)

// CandidateAccessSubject asunto del correo de acceso al candidato.
const CandidateAccessSubject = "Acesso à Plataforma de Onboarding"

// CreatePasswordSubject asunto del correo de creación de contraseña.
const CreatePasswordSubject = "Bem-vindo ao DocFlow! Crie sua senha de acesso."

// CandidateAccess lleva usuario y credencial provisoria en texto plano (único envío).
func CandidateAccess(to, usuario, senha string) ports.Message {
	return ports.Message{
		To:      to,
		Subject: CandidateAccessSubject,
		Text: fmt.Sprintf("Olá,\n\nSeu acesso foi criado!\nUsuário: %s\nSenha: %s\n\n"+
			"Acesse a plataforma para iniciar o onboarding.", usuario, senha),
	}
}

// PasswordLink base?token=<token>, respetando query existente en la base.
func PasswordLink(base, token string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base + "?token=" + url.QueryEscape(token)
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String()
}

type createPasswordData struct {
	Nome   string
	Link   string
	Horas  int
	Color  string
	Slogan string
	Year   int
}

var createPasswordHTML = htmltemplate.Must(htmltemplate.New("create_password_html").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head><meta charset="UTF-8"><meta name="viewport" content="width=device-width, initial-scale=1.0"></head>
<body style="font-family: Arial, sans-serif; margin: 0; padding: 0; background-color: #f4f4f4;">
  <div style="max-width: 600px; margin: 20px auto; background-color: #ffffff; border-radius: 8px; overflow: hidden;">
    <div style="background-color: {{.Color}}; color: #ffffff; padding: 40px; text-align: center;">
      <h1 style="margin: 0; font-size: 28px;">Bem-vindo(a) ao DocFlow!</h1>
      <p style="margin: 10px 0 0; font-size: 16px;">{{.Slogan}}</p>
    </div>
    <div style="padding: 30px; color: #333333; line-height: 1.6;">
      <p>Olá, {{.Nome}},</p>
      <p>Seu acesso à plataforma DocFlow foi criado com sucesso. Para garantir a segurança da sua conta, o próximo passo é definir uma senha pessoal.</p>
      <p>Por favor, clique no botão abaixo para criar sua senha. Este link é válido por {{.Horas}} horas.</p>
      <div style="text-align: center; margin: 30px 0;">
        <a href="{{.Link}}" style="background-color: {{.Color}}; color: #ffffff; padding: 12px 30px; text-decoration: none; border-radius: 5px; font-weight: bold;">Criar Minha Senha</a>
      </div>
      <p>Se o botão não funcionar, você também pode copiar e colar o seguinte link no seu navegador:</p>
      <p><a href="{{.Link}}" style="word-break: break-all;">{{.Link}}</a></p>
      <p>Atenciosamente,<br>Equipe DocFlow</p>
    </div>
    <div style="background-color: #f4f4f4; color: #888888; text-align: center; padding: 20px; font-size: 12px;">
      <p>&copy; {{.Year}} DocFlow. Todos os direitos reservados.</p>
      <p>Se você não solicitou este e-mail, por favor, desconsidere esta mensagem.</p>
    </div>
  </div>
</body>
</html>`))

var createPasswordText = texttemplate.Must(texttemplate.New("create_password_text").Parse(`Olá, {{.Nome}},

Bem-vindo(a) ao DocFlow!
{{.Slogan}}

Seu acesso foi criado com sucesso. Para garantir a segurança da sua conta, o próximo passo é definir uma senha pessoal.

Copie e cole o seguinte link no seu navegador para criar sua senha:
{{.Link}}

Este link é válido por {{.Horas}} horas.

Atenciosamente,
Equipe DocFlow

(c) {{.Year}} DocFlow.
`))

// CreatePassword correo de bienvenida con el link de creación de contraseña.
func CreatePassword(to, nome, link string, ttl time.Duration, now time.Time) (ports.Message, error) {
	data := createPasswordData{
		Nome:   nome,
		Link:   link,
		Horas:  int(ttl.Hours()),
		Color:  brandColor,
		Slogan: slogan,
		Year:   now.Year(),
	}
	var html, text bytes.Buffer
	if err := createPasswordHTML.Execute(&html, data); err != nil {
		return ports.Message{}, fmt.Errorf("render html: %w", err)
	}
	if err := createPasswordText.Execute(&text, data); err != nil {
		return ports.Message{}, fmt.Errorf("render texto: %w", err)
	}
	return ports.Message{
		To:      to,
		Subject: CreatePasswordSubject,
		Text:    text.String(),
		HTML:    html.String(),
	}, nil
}
