package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer delivers the password reset link to a user's mailbox.
type Mailer interface {
	SendResetLink(ctx context.Context, to, resetURL string) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer creates a Mailer backed by an SMTP server (Gmail in the
// default configuration).
func NewSMTPMailer(host string, port int, username, password string) Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   username,
	}
}

// SendResetLink sends the plain-text reset email. The message body mirrors
// the wording users already receive from the production mailer.
func (m *smtpMailer) SendResetLink(ctx context.Context, to, resetURL string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Password Reset Request")
	msg.SetBody("text/plain", fmt.Sprintf("Hello, you can reset your password here: %s", resetURL))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}
	return nil
}
