package notify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/octobees/portfolio-contact/api/internal/config"
	"github.com/octobees/portfolio-contact/api/internal/entity"
)

// ReceivedAtLayout renders timestamps the way pt-BR locales print them.
const ReceivedAtLayout = "02/01/2006, 15:04:05"

const defaultTimeout = 30 * time.Second

var bodyTemplate = template.Must(template.New("body").Parse(`<h3>Detalhes da Mensagem:</h3>
<p><strong>Nome:</strong> {{.Name}}</p>
<p><strong>E-mail:</strong> {{.Email}}</p>
<p><strong>Mensagem:</strong></p>
<p>{{.Message}}</p>
<hr>
<p><small>Mensagem recebida em: {{.ReceivedAt}}</small></p>
`))

type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// SMTPNotifier sends notifications through an authenticated SMTP relay.
type SMTPNotifier struct {
	client    sender
	from      string
	recipient string
	location  *time.Location
	now       func() time.Time
}

// NewSMTPNotifier builds a notifier from mail settings. STARTTLS is mandatory.
func NewSMTPNotifier(cfg config.MailConfig) (*SMTPNotifier, error) {
	if !cfg.Enabled() {
		return nil, errors.New("mail credentials are not configured")
	}

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", cfg.TimeZone, err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client, err := mail.NewClient(cfg.Host,
		mail.WithTLSPortPolicy(mail.TLSMandatory),
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(cfg.User),
		mail.WithPassword(cfg.Password),
		mail.WithTimeout(timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("create smtp client: %w", err)
	}

	return &SMTPNotifier{
		client:    client,
		from:      cfg.User,
		recipient: cfg.Recipient,
		location:  loc,
		now:       time.Now,
	}, nil
}

// Notify renders and sends one email describing sub.
func (n *SMTPNotifier) Notify(ctx context.Context, sub entity.Submission) error {
	msg, err := n.buildMessage(sub)
	if err != nil {
		return err
	}
	if err := n.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	return nil
}

func (n *SMTPNotifier) buildMessage(sub entity.Submission) (*mail.Msg, error) {
	body, err := RenderBody(sub, n.now().In(n.location))
	if err != nil {
		return nil, err
	}

	msg := mail.NewMsg()
	if err := msg.From(n.from); err != nil {
		return nil, fmt.Errorf("invalid sender: %w", err)
	}
	if err := msg.To(n.recipient); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}
	msg.Subject(Subject(sub))
	msg.SetDate()
	msg.SetBodyString(mail.TypeTextHTML, body)
	return msg, nil
}

// Subject is the notification subject line for sub.
func Subject(sub entity.Submission) string {
	return "Nova Mensagem do Site: " + sub.Name
}

// RenderBody produces the HTML notification body. User content is escaped.
func RenderBody(sub entity.Submission, receivedAt time.Time) (string, error) {
	var buf bytes.Buffer
	err := bodyTemplate.Execute(&buf, struct {
		Name, Email, Message, ReceivedAt string
	}{
		Name:       sub.Name,
		Email:      sub.Email,
		Message:    sub.Message,
		ReceivedAt: receivedAt.Format(ReceivedAtLayout),
	})
	if err != nil {
		return "", fmt.Errorf("render notification body: %w", err)
	}
	return buf.String(), nil
}
