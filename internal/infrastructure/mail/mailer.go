// Package mail implements the Mailer port. The log mailer writes outbound
// messages to the structured log; a real SMTP or provider-backed mailer can
// replace it behind the same interface without touching the inquiry pipeline.
package mail

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/collabhub/partner-directory/internal/core/ports"
)

// LogMailer records outbound mail via zerolog instead of sending it.
type LogMailer struct {
	log zerolog.Logger
}

func NewLogMailer(log zerolog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) Send(_ context.Context, mail ports.OutboundMail) error {
	m.log.Info().
		Str("to", mail.To).
		Str("reply_to", mail.ReplyTo).
		Str("subject", mail.Subject).
		Int("body_bytes", len(mail.Body)).
		Msg("outbound mail")
	return nil
}
