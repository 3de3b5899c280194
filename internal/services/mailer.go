package services

import (
	"errors"
	"net/smtp"
	"strings"

	"interviewai/server/internal/config"
)

// Mailer sends notification emails. Delivery failure is always non-fatal to
// the caller.
type Mailer interface {
	Send(recipients []string, subject, body string) error
}

type SMTPMailer struct {
	cfg config.SMTPConfig
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(recipients []string, subject, body string) error {
	if !m.cfg.Configured() {
		return errors.New("SMTP not configured")
	}

	addr := m.cfg.Host + ":" + m.cfg.Port
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	msg := []byte("From: \"InterviewAI\" <" + m.cfg.From + ">\r\n" +
		"To: " + strings.Join(recipients, ",") + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n" +
		body + "\r\n")

	return smtp.SendMail(addr, auth, m.cfg.From, recipients, msg)
}
