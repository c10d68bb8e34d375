package email

import (
	"errors"
	"fmt"

	"creatorcrewz/internal/logger"

	"gopkg.in/gomail.v2"
)

// Provider delivers emails.
type Provider interface {
	Send(email *Email) error
}

// NewProvider returns an SMTP provider, or a LogProvider when no SMTP host is configured.
func NewProvider(cfg *SMTPConfig) Provider {
	if cfg == nil || cfg.Host == "" {
		return &LogProvider{}
	}
	return NewSMTPProvider(cfg)
}

// ============================================
// SMTP
// ============================================

type SMTPProvider struct {
	config *SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPProvider(cfg *SMTPConfig) *SMTPProvider {
	return &SMTPProvider{
		config: cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (p *SMTPProvider) Send(email *Email) error {
	m, err := p.buildMessage(email)
	if err != nil {
		return err
	}
	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (p *SMTPProvider) buildMessage(email *Email) (*gomail.Message, error) {
	if email == nil || len(email.To) == 0 {
		return nil, errors.New("email has no recipients")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)

	switch {
	case email.HTMLBody != "" && email.Body != "":
		m.SetBody("text/plain", email.Body)
		m.AddAlternative("text/html", email.HTMLBody)
	case email.HTMLBody != "":
		m.SetBody("text/html", email.HTMLBody)
	default:
		m.SetBody("text/plain", email.Body)
	}
	return m, nil
}

// ============================================
// Log
// ============================================

// LogProvider logs emails instead of sending them. Used in development.
type LogProvider struct{}

func (p *LogProvider) Send(email *Email) error {
	if email == nil || len(email.To) == 0 {
		return errors.New("email has no recipients")
	}
	logger.Info("Email (not sent, SMTP disabled)", "to", email.To, "subject", email.Subject)
	return nil
}
