package mailer

import (
	"context"
	"fmt"
)

// Service picks the first configured mailer for each send. Gmail is
// preferred when authorized (replies thread into the artist's own inbox);
// Resend is the fallback.
type Service struct {
	mailers []Mailer
}

// NewService creates a mailer service. Nil mailers are skipped so callers
// can pass constructors directly without checking configuration first.
func NewService(mailers ...Mailer) *Service {
	s := &Service{}
	for _, m := range mailers {
		if m != nil {
			s.mailers = append(s.mailers, m)
		}
	}
	return s
}

// Send delivers the message via the first configured mailer
func (s *Service) Send(ctx context.Context, msg *Message) error {
	for _, m := range s.mailers {
		if !m.IsConfigured() {
			continue
		}
		if err := m.Send(ctx, msg); err != nil {
			return fmt.Errorf("%s: %w", m.Name(), err)
		}
		fmt.Printf("Mailer: sent %q to %s via %s\n", msg.Subject, msg.To, m.Name())
		return nil
	}
	return fmt.Errorf("no mailer configured")
}

// IsConfigured returns true if any mailer can send
func (s *Service) IsConfigured() bool {
	for _, m := range s.mailers {
		if m.IsConfigured() {
			return true
		}
	}
	return false
}
