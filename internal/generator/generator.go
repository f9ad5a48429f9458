package generator

import (
	"context"
	"fmt"

	"github.com/dmunro/gigpitch/internal/claude"
	"github.com/dmunro/gigpitch/internal/database"
	"github.com/dmunro/gigpitch/internal/pitch"
	"github.com/dmunro/gigpitch/internal/timeutil"
)

// EmailWriter drafts one email from assembled prompts. Satisfied by
// claude.Client; faked in tests.
type EmailWriter interface {
	DraftEmail(ctx context.Context, systemPrompt, userPrompt string) (*claude.EmailDraft, error)
	IsConfigured() bool
}

// Generator drafts and stores the full outreach sequence for a campaign
type Generator struct {
	db     *database.DB
	writer EmailWriter
}

// New creates a sequence generator
func New(db *database.DB, writer EmailWriter) *Generator {
	return &Generator{db: db, writer: writer}
}

// SequenceLength is the introduction plus every scheduled follow-up
const SequenceLength = 1 + timeutil.FollowUpCount

// GenerateSequence drafts the introduction and all follow-ups for a stored
// campaign and persists each as a pending email on its send date. One bad
// LLM response doesn't abort the sequence: that slot is recorded as failed
// and generation moves on.
func (g *Generator) GenerateSequence(ctx context.Context, campaign *database.Campaign) ([]*database.CampaignEmail, error) {
	if !g.writer.IsConfigured() {
		return nil, fmt.Errorf("email writer not configured")
	}

	req := requestFromCampaign(campaign)
	emails := make([]*database.CampaignEmail, 0, SequenceLength)

	for slot := 0; slot < SequenceLength; slot++ {
		email, err := g.generateSlot(ctx, campaign, req, slot)
		if err != nil {
			return nil, err
		}
		emails = append(emails, email)
	}

	return emails, nil
}

func (g *Generator) generateSlot(ctx context.Context, campaign *database.Campaign, req *pitch.Request, slot int) (*database.CampaignEmail, error) {
	offset := 0
	if slot > 0 {
		offset = timeutil.SendOffsetDays(slot - 1)
	}

	availability := timeutil.FilterAvailabilityByDate(campaign.Availability, offset, &campaign.SubmittedAt)

	var systemPrompt, userPrompt string
	if slot == 0 {
		systemPrompt = pitch.IntroSystemPrompt
		userPrompt = pitch.BuildIntroPrompt(req)
	} else {
		systemPrompt = pitch.FollowUpSystemPrompt
		userPrompt = pitch.BuildFollowUpPrompt(req, slot-1, offset, availability)
	}

	email := &database.CampaignEmail{
		CampaignID:        campaign.ID,
		SequenceSlot:      slot,
		SendOffsetDays:    offset,
		ScheduledFor:      campaign.SubmittedAt.AddDate(0, 0, offset),
		AvailabilityText:  availability.DisplayText,
		AvailabilityValid: availability.IsValid,
		Status:            database.EmailStatusPending,
	}

	draft, err := g.writer.DraftEmail(ctx, systemPrompt, userPrompt)
	if err != nil {
		fmt.Printf("Generator: slot %d draft failed for campaign %d: %v\n", slot, campaign.ID, err)
		email.Status = database.EmailStatusFailed
		email.Error = err.Error()
		return g.db.InsertCampaignEmail(email)
	}

	email.Subject = draft.Subject
	if email.Subject == "" {
		email.Subject = defaultSubject(campaign, slot)
	}
	email.Body = draft.Body

	return g.db.InsertCampaignEmail(email)
}

func requestFromCampaign(c *database.Campaign) *pitch.Request {
	return &pitch.Request{
		ArtistName:     c.ArtistName,
		Genre:          c.Genre,
		HomeCity:       c.HomeCity,
		Draw:           c.Draw,
		PressHighlight: c.PressHighlight,
		EPKLink:        c.EPKLink,
		VideoLinks:     c.VideoLinks,
		VenueName:      c.VenueName,
		VenueCity:      c.VenueCity,
		ContactName:    c.ContactName,
		Availability:   c.Availability,
		ReplyTo:        c.ReplyTo,
		SubmittedAt:    c.SubmittedAt,
	}
}

func defaultSubject(c *database.Campaign, slot int) string {
	subject := fmt.Sprintf("%s at %s", c.ArtistName, c.VenueName)
	if slot > 0 {
		return "Re: " + subject
	}
	return subject
}
