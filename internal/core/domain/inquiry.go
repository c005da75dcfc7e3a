package domain

import "time"

// Inquiry is a partnership request addressed to a single business, submitted
// through the directory's inquiry form.
type Inquiry struct {
	BusinessID  string    `json:"business_id" bson:"business_id"`
	SenderName  string    `json:"sender_name" bson:"sender_name"`
	SenderEmail string    `json:"sender_email" bson:"sender_email"`
	Subject     string    `json:"subject" bson:"subject"`
	Message     string    `json:"message" bson:"message"`
	ReceivedAt  time.Time `json:"received_at" bson:"received_at"`
}
