package mailer

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailMailer sends outreach emails through the musician's own Gmail
// account, so replies land in the thread they expect and deliverability
// rides on their domain reputation rather than ours.
type GmailMailer struct {
	service     *gmail.Service
	config      *oauth2.Config
	token       *oauth2.Token
	fromAddress string
	tokenFile   string
}

// NewGmailMailer creates a Gmail mailer from a credentials file and a
// previously authorized token file. A missing or unreadable token leaves
// the mailer unconfigured rather than failing startup.
func NewGmailMailer(credentialsFile, tokenFile, from string) (*GmailMailer, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	config, err := google.ConfigFromJSON(data, gmail.GmailSendScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w", err)
	}

	m := &GmailMailer{
		config:      config,
		fromAddress: from,
		tokenFile:   tokenFile,
	}

	token, err := loadToken(tokenFile)
	if err != nil {
		fmt.Printf("Gmail mailer: no usable token (%v), sending disabled until authorized\n", err)
		return m, nil
	}
	m.token = token

	if err := m.initService(context.Background()); err != nil {
		fmt.Printf("Gmail mailer: could not initialize service: %v\n", err)
	}

	return m, nil
}

func (g *GmailMailer) initService(ctx context.Context) error {
	if g.token == nil {
		return fmt.Errorf("no token available")
	}

	// Refresh an expired token if we can, and persist the result.
	if !g.token.Valid() && g.token.RefreshToken != "" {
		newToken, err := g.config.TokenSource(ctx, g.token).Token()
		if err != nil {
			return fmt.Errorf("failed to refresh token: %w", err)
		}
		g.token = newToken
		if err := saveToken(g.tokenFile, newToken); err != nil {
			fmt.Printf("Warning: could not save refreshed token: %v\n", err)
		}
	}

	httpClient := g.config.Client(ctx, g.token)
	service, err := gmail.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return fmt.Errorf("failed to create Gmail service: %w", err)
	}

	g.service = service
	return nil
}

// IsConfigured returns true if the mailer is authorized to send
func (g *GmailMailer) IsConfigured() bool {
	return g != nil && g.service != nil
}

// Send delivers the message via the Gmail API
func (g *GmailMailer) Send(ctx context.Context, msg *Message) error {
	if g.service == nil {
		return fmt.Errorf("gmail mailer not authorized")
	}
	if msg.To == "" {
		return fmt.Errorf("no recipient specified")
	}

	raw := base64.URLEncoding.EncodeToString([]byte(buildRFC2822(msg, g.fromAddress)))
	_, err := g.service.Users.Messages.Send("me", &gmail.Message{Raw: raw}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("gmail send failed: %w", err)
	}

	return nil
}

// Name returns the mailer name
func (g *GmailMailer) Name() string {
	return "gmail"
}

// buildRFC2822 assembles a plain-text RFC 2822 message
func buildRFC2822(msg *Message, defaultFrom string) string {
	from := msg.From
	if from == "" {
		from = defaultFrom
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("From: %s\r\n", from))
	b.WriteString(fmt.Sprintf("To: %s\r\n", msg.To))
	if msg.ReplyTo != "" {
		b.WriteString(fmt.Sprintf("Reply-To: %s\r\n", msg.ReplyTo))
	}
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", msg.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Text)
	return b.String()
}

func loadToken(tokenFile string) (*oauth2.Token, error) {
	f, err := os.Open(tokenFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	token := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(token); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}
	return token, nil
}

func saveToken(tokenFile string, token *oauth2.Token) error {
	f, err := os.OpenFile(tokenFile, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return json.NewEncoder(f).Encode(token)
}
