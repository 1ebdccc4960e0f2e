package mailer

import (
	"context"
	"fmt"

	"github.com/votigram/waitlist-api/pkg/circuitbreaker"
	"github.com/wneessen/go-mail"
)

type Logger interface {
	Error(msg string, args ...interface{})
}

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	// SSL selects implicit TLS (port 465 style) instead of STARTTLS.
	SSL bool
}

// Mailer sends waitlist confirmation emails over SMTP. Sends are guarded by a
// circuit breaker so a dead SMTP host is not hammered on every admission;
// callers treat any returned error as best-effort and log it.
type Mailer struct {
	client  *mail.Client
	from    string
	breaker circuitbreaker.CircuitBreaker
	logger  Logger
}

func New(cfg *Config, logger Logger) (*Mailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	}
	if cfg.SSL {
		opts = append(opts, mail.WithSSL())
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("mailer: create SMTP client: %w", err)
	}

	return &Mailer{
		client:  client,
		from:    cfg.From,
		breaker: circuitbreaker.NewCircuitBreaker(nil),
		logger:  logger,
	}, nil
}

// SendConfirmation composes and dispatches the signup confirmation message.
func (m *Mailer) SendConfirmation(ctx context.Context, to, handle string, position int64) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("mailer: invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("mailer: invalid recipient address: %w", err)
	}

	msg.Subject("✅ Welcome to the Votigram Waitlist!")
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
		"Hi %s,\n\nThanks for joining the Votigram waitlist! You are currently #%d.\n\n"+
			"We'll let you know when you get early access.\n\nBest,\nThe Votigram Team",
		handle, position,
	))
	msg.AddAlternativeString(mail.TypeTextHTML, fmt.Sprintf(
		"<p>Hi %s,</p><p>Thanks for joining the Votigram waitlist! You are currently "+
			"<strong>#%d</strong>.</p><p>We'll let you know when you get early access.</p>"+
			"<p>Best,<br>The Votigram Team</p>",
		handle, position,
	))

	err := m.breaker.Call(func() error {
		return m.client.DialAndSendWithContext(ctx, msg)
	})
	if err != nil {
		if m.logger != nil {
			m.logger.Error("Confirmation email send failed", "to", to, "error", err)
		}
		return err
	}

	return nil
}

// Healthy reports whether the breaker currently allows sends.
func (m *Mailer) Healthy() bool {
	return m.breaker.State() != circuitbreaker.Open
}
