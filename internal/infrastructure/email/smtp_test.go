package email

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lexdoc-ai/lexdoc/internal/domain/shared/services"
	"github.com/lexdoc-ai/lexdoc/internal/shared/config"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

func TestPlainText(t *testing.T) {
	in := `<html><body><h2>Bem-vindo à LexDoc AI</h2><p>Olá, <strong>Ana</strong>!</p><p>Seu escritório &amp; equipe</p></body></html>`

	out := PlainText(in)

	assert.Equal(t, "Bem-vindo à LexDoc AI\nOlá, Ana!\nSeu escritório & equipe", out)
}

func TestNewNotifier_FallsBackToLogWithoutHost(t *testing.T) {
	n := NewNotifier(config.EmailConfig{}, logger.NewLogger())
	_, ok := n.(*LogNotifier)
	assert.True(t, ok)

	n = NewNotifier(config.EmailConfig{SMTPHost: "smtp.example.com", SMTPPort: 587}, logger.NewLogger())
	_, ok = n.(*SMTPNotifier)
	assert.True(t, ok)
}

func TestNotifiers_RejectEmptyRecipients(t *testing.T) {
	msg := services.EmailMessage{Subject: "x", HTMLBody: "<p>x</p>"}

	assert.ErrorIs(t, NewLogNotifier(logger.NewLogger()).Send(context.Background(), msg), ErrNoRecipients)
	assert.ErrorIs(t, NewSMTPNotifier(SMTPConfig{Host: "localhost", Port: 1025}, logger.NewLogger()).Send(context.Background(), msg), ErrNoRecipients)
}

func TestSMTPNotifier_HonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewSMTPNotifier(SMTPConfig{Host: "localhost", Port: 1025}, logger.NewLogger()).
		Send(ctx, services.EmailMessage{To: []string{"a@b.com"}, Subject: "x"})

	assert.ErrorIs(t, err, context.Canceled)
}
