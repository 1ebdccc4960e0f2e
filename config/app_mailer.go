package config

import (
	"os"
	"strconv"

	"github.com/votigram/waitlist-api/internal/log"
	"github.com/votigram/waitlist-api/pkg/mailer"
	"github.com/votigram/waitlist-api/pkg/utils"
)

const DefaultEmailFrom = `"Votigram Waitlist" <no-reply@votigram.com>`

type MailerConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	Secure   bool
}

func NewMailerConfig() *MailerConfig {
	secure := true
	if raw := utils.GetEnvTrimmed("EMAIL_SECURE"); raw != "" {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			secure = parsed
		}
	}

	return &MailerConfig{
		Host:     os.Getenv("EMAIL_HOST"),
		Port:     utils.GetEnvOrDefault("EMAIL_PORT", "465"),
		Username: os.Getenv("EMAIL_USER"),
		Password: os.Getenv("EMAIL_PASS"),
		From:     utils.GetEnvTrimmedOrDefault("EMAIL_FROM", DefaultEmailFrom),
		Secure:   secure,
	}
}

func (mc *MailerConfig) IsConfigured() bool {
	return mc.Host != ""
}

// NewMailerOrNil returns nil when email is not configured; admissions then
// run without confirmation emails.
func (mc *MailerConfig) NewMailerOrNil(logger *log.Logger) *mailer.Mailer {
	if !mc.IsConfigured() {
		logger.Info("Email transport is not configured; confirmation emails disabled")
		return nil
	}

	port, err := strconv.Atoi(mc.Port)
	if err != nil {
		logger.Error("Invalid EMAIL_PORT; confirmation emails disabled", "value", mc.Port, "error", err)
		return nil
	}

	m, err := mailer.New(&mailer.Config{
		Host:     mc.Host,
		Port:     port,
		Username: mc.Username,
		Password: mc.Password,
		From:     mc.From,
		SSL:      mc.Secure,
	}, logger)
	if err != nil {
		logger.Error("Failed to configure mailer; confirmation emails disabled", "error", err)
		return nil
	}

	logger.Info("Mailer configured", "host", mc.Host, "port", port)
	return m
}
