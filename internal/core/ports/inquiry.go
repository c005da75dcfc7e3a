package ports

import (
	"context"
	"time"
)

// InquiryInput is the DTO passed from the transport layer to InquiryService.
type InquiryInput struct {
	BusinessID  string
	SenderName  string
	SenderEmail string
	Subject     string
	Message     string
	ReceivedAt  time.Time
}

// InquiryService delivers a single partnership inquiry.
type InquiryService interface {
	Process(ctx context.Context, inquiry InquiryInput) error
}

// OutboundMail is a rendered message ready for delivery.
type OutboundMail struct {
	To      string
	ReplyTo string
	Subject string
	Body    string
}

// Mailer sends outbound mail.
type Mailer interface {
	Send(ctx context.Context, mail OutboundMail) error
}
