package dispatch

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dmunro/gigpitch/internal/database"
	"github.com/dmunro/gigpitch/internal/mailer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	configured bool
	sendErr    error
	sent       []*mailer.Message
}

func (f *fakeSender) Send(ctx context.Context, msg *mailer.Message) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeSender) IsConfigured() bool { return f.configured }

func pendingEmail(t *testing.T, db *database.DB, campaign *database.Campaign, slot int, scheduledFor time.Time, availValid bool, availText string) *database.CampaignEmail {
	t.Helper()
	email, err := db.InsertCampaignEmail(&database.CampaignEmail{
		CampaignID:        campaign.ID,
		SequenceSlot:      slot,
		ScheduledFor:      scheduledFor,
		Subject:           fmt.Sprintf("Subject %d", slot),
		Body:              fmt.Sprintf("Body %d", slot),
		AvailabilityText:  availText,
		AvailabilityValid: availValid,
		Status:            database.EmailStatusPending,
	})
	require.NoError(t, err)
	return email
}

func TestDispatchDue(t *testing.T) {
	db := database.NewTestDB(t)
	campaign := database.CreateTestCampaign(t, db) // submitted Oct 28, "November 9-26th"
	sender := &fakeSender{configured: true}
	w := NewWorker(db, sender, Config{PollIntervalMinutes: 5})

	intro := pendingEmail(t, db, campaign, 0, campaign.SubmittedAt, true, "November 9-26")
	pendingEmail(t, db, campaign, 1, campaign.SubmittedAt.AddDate(0, 0, 7), true, "November 9-26")

	// Only the intro is due on submission day.
	now := campaign.SubmittedAt.Add(time.Hour)
	w.DispatchDue(context.Background(), now)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Subject 0", sender.sent[0].Subject)
	assert.Equal(t, campaign.ContactEmail, sender.sent[0].To)
	assert.Equal(t, campaign.ReplyTo, sender.sent[0].ReplyTo)

	emails, err := db.ListCampaignEmails(campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, database.EmailStatusSent, emails[0].Status)
	require.NotNil(t, emails[0].SentAt)
	assert.Equal(t, database.EmailStatusPending, emails[1].Status)

	// The intro isn't re-sent on the next pass.
	w.DispatchDue(context.Background(), now.Add(time.Minute))
	assert.Len(t, sender.sent, 1)
	_ = intro
}

func TestDispatchCancelsExpiredAvailability(t *testing.T) {
	db := database.NewTestDB(t)
	campaign := database.CreateTestCampaign(t, db) // window ends Nov 26
	sender := &fakeSender{configured: true}
	w := NewWorker(db, sender, Config{})

	// Drafted while the dates were valid, but dispatch happens Dec 15.
	pendingEmail(t, db, campaign, 2, campaign.SubmittedAt.AddDate(0, 0, 14), true, "November 11-26")

	now := time.Date(2025, time.December, 15, 9, 0, 0, 0, time.UTC)
	w.DispatchDue(context.Background(), now)

	assert.Empty(t, sender.sent)

	emails, err := db.ListCampaignEmails(campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, database.EmailStatusCanceled, emails[0].Status)
	assert.Contains(t, emails[0].Error, "availability expired")
}

func TestDispatchSendsWhenDatesStillValid(t *testing.T) {
	db := database.NewTestDB(t)
	campaign := database.CreateTestCampaign(t, db)
	sender := &fakeSender{configured: true}
	w := NewWorker(db, sender, Config{})

	pendingEmail(t, db, campaign, 1, campaign.SubmittedAt.AddDate(0, 0, 7), true, "November 9-26")

	// Nov 10: the window is in progress, so the email still goes out.
	now := time.Date(2025, time.November, 10, 9, 0, 0, 0, time.UTC)
	w.DispatchDue(context.Background(), now)

	assert.Len(t, sender.sent, 1)
}

func TestDispatchKeepsDatelessDrafts(t *testing.T) {
	db := database.NewTestDB(t)
	campaign := database.CreateTestCampaign(t, db)

	// Free-text availability passes through the filter as valid; expiry
	// can never apply to it.
	_, err := db.Exec(`UPDATE campaigns SET availability = 'weekends mostly' WHERE id = ?`, campaign.ID)
	require.NoError(t, err)

	sender := &fakeSender{configured: true}
	w := NewWorker(db, sender, Config{})

	pendingEmail(t, db, campaign, 1, campaign.SubmittedAt.AddDate(0, 0, 7), true, "weekends mostly")

	now := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	w.DispatchDue(context.Background(), now)

	assert.Len(t, sender.sent, 1)
}

func TestDispatchMarksFailures(t *testing.T) {
	db := database.NewTestDB(t)
	campaign := database.CreateTestCampaign(t, db)
	sender := &fakeSender{configured: true, sendErr: fmt.Errorf("rate limited")}
	w := NewWorker(db, sender, Config{})

	pendingEmail(t, db, campaign, 0, campaign.SubmittedAt, true, "November 9-26")

	w.DispatchDue(context.Background(), campaign.SubmittedAt.Add(time.Hour))

	emails, err := db.ListCampaignEmails(campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, database.EmailStatusFailed, emails[0].Status)
	assert.Contains(t, emails[0].Error, "rate limited")
}

func TestWorkerStartStop(t *testing.T) {
	db := database.NewTestDB(t)
	sender := &fakeSender{configured: true}
	w := NewWorker(db, sender, Config{PollIntervalMinutes: 60})

	require.NoError(t, w.Start())
	assert.Error(t, w.Start(), "double start should fail")
	w.Stop()

	// Stop is idempotent.
	w.Stop()
}

func TestWorkerStartUnconfiguredSender(t *testing.T) {
	db := database.NewTestDB(t)
	w := NewWorker(db, &fakeSender{configured: false}, Config{})

	assert.Error(t, w.Start())
}
