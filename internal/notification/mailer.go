package notification

import (
	"crypto/tls"

	"github.com/adelicia-js/milestone-monitor-sub001/internal"
	mail "github.com/go-mail/mail/v2"
)

// MailSender delivers a single message. Satisfied by SMTPMailer in
// production and by recording fakes in tests.
type MailSender interface {
	Send(to []string, subject, body string) error
}

// SMTPMailer sends mail over SMTP with mandatory STARTTLS, suitable for
// Gmail and Office365 relays on port 587.
type SMTPMailer struct {
	dialer *mail.Dialer
	from   string
}

func NewSMTPMailer(cfg internal.MailConfig) *SMTPMailer {
	d := mail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.StartTLSPolicy = mail.MandatoryStartTLS
	d.TLSConfig = &tls.Config{
		ServerName:         cfg.Host,
		InsecureSkipVerify: cfg.SkipTLSVerify,
	}

	return &SMTPMailer{
		dialer: d,
		from:   cfg.From,
	}
}

func (m *SMTPMailer) Send(to []string, subject, body string) error {
	if len(to) == 0 {
		return nil
	}

	msg := mail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	return m.dialer.DialAndSend(msg)
}
