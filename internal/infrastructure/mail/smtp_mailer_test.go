package mail

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/pedronetodeveloper/back-end-lambdas-aws/internal/application/ports"
	"github.com/pedronetodeveloper/back-end-lambdas-aws/pkg/config"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	f.sent = append(f.sent, m...)
	return f.err
}

func newTestMailer(d dialer) *SMTPMailer {
	m := NewSMTPMailer(config.MailConfig{Host: "smtp.test", Port: 587, User: "no-reply@docflow.test", FromName: "DocFlow"})
	m.dialer = d
	return m
}

func TestSMTPMailer_Send_MultipartAlternativo(t *testing.T) {
	d := &fakeDialer{}
	m := newTestMailer(d)

	err := m.Send(context.Background(), ports.Message{
		To:      "ana@acme.com",
		Subject: "Acesso à Plataforma de Onboarding",
		Text:    "Olá",
		HTML:    "<p>Olá</p>",
	})
	require.NoError(t, err)
	require.Len(t, d.sent, 1)

	var buf bytes.Buffer
	_, err = d.sent[0].WriteTo(&buf)
	require.NoError(t, err)
	raw := buf.String()
	assert.Contains(t, raw, `From: "DocFlow" <no-reply@docflow.test>`)
	assert.Contains(t, raw, "To: ana@acme.com")
	assert.Contains(t, raw, "multipart/alternative")
	assert.Contains(t, raw, "text/html")
}

func TestSMTPMailer_Send_SoloTexto(t *testing.T) {
	d := &fakeDialer{}
	require.NoError(t, newTestMailer(d).Send(context.Background(), ports.Message{To: "a@b.com", Subject: "x", Text: "y"}))

	var buf bytes.Buffer
	_, err := d.sent[0].WriteTo(&buf)
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "multipart/alternative")
}

func TestSMTPMailer_Send_ErrorDelServidor(t *testing.T) {
	d := &fakeDialer{err: errors.New("535 auth failed")}
	err := newTestMailer(d).Send(context.Background(), ports.Message{To: "a@b.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a@b.com")
}

func TestSMTPMailer_Send_SinRemitente(t *testing.T) {
	d := &fakeDialer{}
	m := NewSMTPMailer(config.MailConfig{Host: "smtp.test", Port: 587})
	m.dialer = d

	assert.Error(t, m.Send(context.Background(), ports.Message{To: "a@b.com"}))
	assert.Empty(t, d.sent)
}

func TestSMTPMailer_Send_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d := &fakeDialer{}

	assert.ErrorIs(t, newTestMailer(d).Send(ctx, ports.Message{To: "a@b.com"}), context.Canceled)
	assert.Empty(t, d.sent)
}
