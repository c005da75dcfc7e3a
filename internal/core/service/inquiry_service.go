package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/collabhub/partner-directory/internal/api/metrics"
	"github.com/collabhub/partner-directory/internal/core/domain"
	"github.com/collabhub/partner-directory/internal/core/ports"
)

type inquiryService struct {
	catalog       ports.BusinessRepository
	mailer        ports.Mailer
	fallbackInbox string
	log           zerolog.Logger
}

// NewInquiryService returns an InquiryService that renders partnership
// inquiries into mail for the target business. fallbackInbox receives mail
// for businesses without a contact address on file.
func NewInquiryService(catalog ports.BusinessRepository, mailer ports.Mailer, fallbackInbox string, log zerolog.Logger) ports.InquiryService {
	return &inquiryService{
		catalog:       catalog,
		mailer:        mailer,
		fallbackInbox: fallbackInbox,
		log:           log,
	}
}

// Process resolves the target business and delivers the inquiry mail.
func (s *inquiryService) Process(ctx context.Context, in ports.InquiryInput) error {
	start := time.Now()

	business, err := s.catalog.FindByID(ctx, in.BusinessID)
	if err != nil {
		metrics.InquiriesProcessedTotal.WithLabelValues("rejected").Inc()
		return fmt.Errorf("process inquiry: %w", err)
	}

	to := business.ContactEmail
	if to == "" {
		to = s.fallbackInbox
	}

	mail := ports.OutboundMail{
		To:      to,
		ReplyTo: in.SenderEmail,
		Subject: fmt.Sprintf("Partnership inquiry for %s: %s", business.Name, in.Subject),
		Body:    renderInquiryBody(business, in),
	}

	if err := s.mailer.Send(ctx, mail); err != nil {
		metrics.InquiriesProcessedTotal.WithLabelValues("error").Inc()
		metrics.InquiryDeliveryDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return fmt.Errorf("process inquiry: send: %w", err)
	}

	metrics.InquiriesProcessedTotal.WithLabelValues("delivered").Inc()
	metrics.InquiryDeliveryDuration.WithLabelValues("delivered").Observe(time.Since(start).Seconds())

	s.log.Info().
		Str("business_id", business.ID).
		Str("sender", in.SenderEmail).
		Msg("inquiry delivered")

	return nil
}

func renderInquiryBody(business *domain.Business, in ports.InquiryInput) string {
	received := in.ReceivedAt
	if received.IsZero() {
		received = time.Now().UTC()
	}
	return fmt.Sprintf(
		"New partnership inquiry for %s (%s)\n\nFrom: %s <%s>\nReceived: %s\n\n%s\n",
		business.Name, business.Category,
		in.SenderName, in.SenderEmail,
		received.Format(time.RFC3339),
		in.Message,
	)
}
