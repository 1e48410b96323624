package notify

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"

	"github.com/octobees/portfolio-contact/api/internal/config"
	"github.com/octobees/portfolio-contact/api/internal/entity"
)

type captureSender struct {
	sent []*mail.Msg
	err  error
}

func (c *captureSender) DialAndSendWithContext(_ context.Context, messages ...*mail.Msg) error {
	c.sent = append(c.sent, messages...)
	return c.err
}

func mailConfig() config.MailConfig {
	return config.MailConfig{
		User:      "site@example.com",
		Password:  "secret",
		Recipient: "owner@example.com",
		Host:      "smtp.example.com",
		Port:      587,
		Timeout:   5 * time.Second,
		TimeZone:  "America/Sao_Paulo",
	}
}

func TestNewSMTPNotifier(t *testing.T) {
	n, err := NewSMTPNotifier(mailConfig())
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", n.recipient)

	_, err = NewSMTPNotifier(config.MailConfig{Host: "smtp.example.com", Port: 587})
	assert.Error(t, err, "missing credentials")

	cfg := mailConfig()
	cfg.TimeZone = "Mars/Olympus"
	_, err = NewSMTPNotifier(cfg)
	assert.Error(t, err, "unknown time zone")
}

func TestSMTPNotifierNotify(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	capture := &captureSender{}
	n := &SMTPNotifier{
		client:    capture,
		from:      "site@example.com",
		recipient: "owner@example.com",
		location:  loc,
		now:       func() time.Time { return time.Date(2026, 3, 9, 17, 4, 5, 0, time.UTC) },
	}

	sub := entity.Submission{ID: "abc", Name: "Ana", Email: "ana@ex.com", Message: "Hello there"}
	require.NoError(t, n.Notify(context.Background(), sub))
	require.Len(t, capture.sent, 1)

	msg := capture.sent[0]
	assert.Equal(t, []string{"Nova Mensagem do Site: Ana"}, msg.GetGenHeader(mail.HeaderSubject))
	rcpts, err := msg.GetRecipients()
	require.NoError(t, err)
	assert.Equal(t, []string{"owner@example.com"}, rcpts)
}

func TestSMTPNotifierNotifyError(t *testing.T) {
	capture := &captureSender{err: errors.New("535 authentication failed")}
	n := &SMTPNotifier{
		client:    capture,
		from:      "site@example.com",
		recipient: "owner@example.com",
		location:  time.UTC,
		now:       time.Now,
	}

	err := n.Notify(context.Background(), entity.Submission{Name: "Ana", Email: "ana@ex.com", Message: "Hello there"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "send notification")
}

func TestRenderBody(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	sub := entity.Submission{
		Name:    "Ana",
		Email:   "ana@ex.com",
		Message: "<script>alert(1)</script>",
	}
	body, err := RenderBody(sub, time.Date(2026, 3, 9, 17, 4, 5, 0, time.UTC).In(loc))
	require.NoError(t, err)

	assert.Contains(t, body, "<strong>Nome:</strong> Ana")
	assert.Contains(t, body, "<strong>E-mail:</strong> ana@ex.com")
	assert.Contains(t, body, "Mensagem recebida em: 09/03/2026, 14:04:05")
	assert.False(t, strings.Contains(body, "<script>"), "message content must be escaped")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "Nova Mensagem do Site: Bruno", Subject(entity.Submission{Name: "Bruno"}))
}
