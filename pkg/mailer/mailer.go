package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"medequip-system/pkg/config"
)

// Mailer sends plain-text mail. The SMTP implementation is the only real
// one; tests substitute their own.
type Mailer interface {
	Send(to []string, subject, body string) error
}

type SMTPMailer struct {
	cfg config.SMTPConfig
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(to []string, subject, body string) error {
	if m.cfg.From == "" {
		return fmt.Errorf("smtp sender is not configured")
	}

	message := []byte(
		"From: " + m.cfg.From + "\r\n" +
			"To: " + strings.Join(to, ", ") + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/plain; charset=\"UTF-8\"\r\n" +
			"\r\n" +
			body + "\r\n")

	auth := smtp.PlainAuth("", m.cfg.From, m.cfg.Password, m.cfg.Host)
	return smtp.SendMail(m.cfg.Host+":"+m.cfg.Port, auth, m.cfg.From, to, message)
}
