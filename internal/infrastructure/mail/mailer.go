// Package mail provides the verification mail transports. SMTPMailer talks to
// a real relay; LogMailer writes the link to the log for development setups
// without one.
package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/rs/zerolog"

	"github.com/lostpaws/petfinder-system/internal/core/ports"
)

// SMTPMailer delivers verification mail over plain SMTP.
type SMTPMailer struct {
	addr    string // host:port
	from    string
	baseURL string
}

func NewSMTPMailer(host, port, from, baseURL string) *SMTPMailer {
	return &SMTPMailer{
		addr:    host + ":" + port,
		from:    from,
		baseURL: baseURL,
	}
}

func (m *SMTPMailer) SendVerification(_ context.Context, mail ports.VerificationMail) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Confirm your registration\r\n\r\n"+
			"Hi %s,\r\n\r\n"+
			"Follow this link to finish creating your account:\r\n\r\n%s\r\n\r\n"+
			"The link expires in 30 minutes. If you did not register, ignore this mail.\r\n",
		m.from, mail.To, mail.Name, verifyLink(m.baseURL, mail.Token),
	)

	if err := smtp.SendMail(m.addr, nil, m.from, []string{mail.To}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// LogMailer logs the verification link instead of sending it.
type LogMailer struct {
	baseURL string
	log     zerolog.Logger
}

func NewLogMailer(baseURL string, log zerolog.Logger) *LogMailer {
	return &LogMailer{baseURL: baseURL, log: log}
}

func (m *LogMailer) SendVerification(_ context.Context, mail ports.VerificationMail) error {
	m.log.Info().
		Str("to", mail.To).
		Str("link", verifyLink(m.baseURL, mail.Token)).
		Msg("verification mail (log transport)")
	return nil
}

func verifyLink(baseURL, token string) string {
	return baseURL + "/verify?token=" + token
}
