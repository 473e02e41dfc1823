package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
	"github.com/rs/zerolog/log"

	"github.com/nestworth/nestworth-backend/internal/config"
	"github.com/nestworth/nestworth-backend/internal/domain"
)

var _ domain.Mailer = (*SMTPMailer)(nil)

// SMTPMailer sends transactional mail through a plain SMTP relay
type SMTPMailer struct {
	cfg config.SMTPConfig
}

// NewSMTPMailer creates a new SMTPMailer
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// SendPasswordReset emails a password reset link. The link expires after an
// hour, which the body spells out.
func (m *SMTPMailer) SendPasswordReset(to, resetURL string) error {
	e := email.NewEmail()
	e.From = m.cfg.Sender
	e.To = []string{to}
	e.Subject = "Reset your NestWorth password"
	e.Text = []byte(fmt.Sprintf(
		"Hi,\n\n"+
			"We received a request to reset the password for your NestWorth account.\n"+
			"Open the link below to choose a new password. The link expires in one hour.\n\n"+
			"%s\n\n"+
			"If you didn't request this, you can safely ignore this email.\n\n"+
			"The NestWorth Team",
		resetURL,
	))

	addr := fmt.Sprintf("%s:%s", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	if err := e.Send(addr, auth); err != nil {
		log.Error().Err(err).Str("to", to).Msg("Failed to send password reset email")
		return fmt.Errorf("failed to send password reset email: %w", err)
	}

	log.Info().Str("to", to).Msg("Password reset email sent")
	return nil
}
