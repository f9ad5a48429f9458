package mailer

import "context"

// Message is one outbound outreach email
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Text    string
}

// Mailer sends outreach emails to a venue contact
type Mailer interface {
	// Send delivers the message
	Send(ctx context.Context, msg *Message) error
	// Name returns the mailer type name (for logging)
	Name() string
	// IsConfigured returns true if the mailer has server-side config
	IsConfigured() bool
}
