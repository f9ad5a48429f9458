package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// ResendMailer sends outreach emails via the Resend API
type ResendMailer struct {
	client      *resend.Client
	fromAddress string
}

// NewResendMailer creates a new Resend mailer
func NewResendMailer(apiKey, from string) *ResendMailer {
	if apiKey == "" {
		return nil
	}
	return &ResendMailer{
		client:      resend.NewClient(apiKey),
		fromAddress: from,
	}
}

// IsConfigured returns true if the mailer has server-side config
func (r *ResendMailer) IsConfigured() bool {
	return r.client != nil && r.fromAddress != ""
}

// Send delivers the message through Resend. Outreach emails go out as plain
// text; bookers read pitches in preview panes and HTML styling reads as spam.
func (r *ResendMailer) Send(ctx context.Context, msg *Message) error {
	if msg.To == "" {
		return fmt.Errorf("no recipient specified")
	}

	from := msg.From
	if from == "" {
		from = r.fromAddress
	}

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Text:    msg.Text,
	}
	if msg.ReplyTo != "" {
		params.ReplyTo = msg.ReplyTo
	}

	_, err := r.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("resend send failed: %w", err)
	}

	return nil
}

// Name returns the mailer name
func (r *ResendMailer) Name() string {
	return "resend"
}
