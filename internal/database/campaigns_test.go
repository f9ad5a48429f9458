package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetCampaign(t *testing.T) {
	db := NewTestDB(t)

	campaign := &Campaign{
		ArtistName:     "The Night Owls",
		Genre:          "indie rock",
		HomeCity:       "Portland, OR",
		Draw:           "120-150",
		PressHighlight: "local press pick",
		EPKLink:        "https://example.com/epk",
		VideoLinks:     []string{"https://example.com/v1", "https://example.com/v2"},
		VenueName:      "The Crocodile",
		VenueCity:      "Seattle, WA",
		ContactName:    "Sam",
		ContactEmail:   "sam@example.com",
		Availability:   "November 9-26th",
		ReplyTo:        "band@example.com",
		SubmittedAt:    time.Date(2025, time.October, 28, 9, 0, 0, 0, time.UTC),
	}

	created, err := db.CreateCampaign(campaign)
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.Equal(t, CampaignStatusActive, created.Status)

	got, err := db.GetCampaign(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "The Night Owls", got.ArtistName)
	assert.Equal(t, []string{"https://example.com/v1", "https://example.com/v2"}, got.VideoLinks)
	assert.Equal(t, "November 9-26th", got.Availability)
	assert.Equal(t, 28, got.SubmittedAt.Day())
}

func TestGetCampaignNotFound(t *testing.T) {
	db := NewTestDB(t)

	got, err := db.GetCampaign(9999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListCampaigns(t *testing.T) {
	db := NewTestDB(t)

	t.Run("empty", func(t *testing.T) {
		campaigns, err := db.ListCampaigns()
		require.NoError(t, err)
		assert.Len(t, campaigns, 0)
	})

	t.Run("newest first", func(t *testing.T) {
		first := CreateTestCampaign(t, db)
		second := CreateTestCampaign(t, db)

		campaigns, err := db.ListCampaigns()
		require.NoError(t, err)
		require.Len(t, campaigns, 2)
		assert.Equal(t, second.ID, campaigns[0].ID)
		assert.Equal(t, first.ID, campaigns[1].ID)
	})
}

func TestCancelCampaign(t *testing.T) {
	db := NewTestDB(t)
	campaign := CreateTestCampaign(t, db)

	_, err := db.InsertCampaignEmail(&CampaignEmail{
		CampaignID:   campaign.ID,
		SequenceSlot: 0,
		ScheduledFor: time.Date(2025, time.October, 28, 0, 0, 0, 0, time.UTC),
		Status:       EmailStatusSent,
	})
	require.NoError(t, err)
	_, err = db.InsertCampaignEmail(&CampaignEmail{
		CampaignID:   campaign.ID,
		SequenceSlot: 1,
		ScheduledFor: time.Date(2025, time.November, 4, 0, 0, 0, 0, time.UTC),
		Status:       EmailStatusPending,
	})
	require.NoError(t, err)

	require.NoError(t, db.CancelCampaign(campaign.ID))

	got, err := db.GetCampaign(campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, CampaignStatusCanceled, got.Status)

	emails, err := db.ListCampaignEmails(campaign.ID)
	require.NoError(t, err)
	require.Len(t, emails, 2)
	// Already-sent email is untouched; only the pending one is canceled.
	assert.Equal(t, EmailStatusSent, emails[0].Status)
	assert.Equal(t, EmailStatusCanceled, emails[1].Status)
}

func TestCancelCampaignNotFound(t *testing.T) {
	db := NewTestDB(t)
	assert.Error(t, db.CancelCampaign(1234))
}

func TestCampaignEmailLifecycle(t *testing.T) {
	db := NewTestDB(t)
	campaign := CreateTestCampaign(t, db)

	email := &CampaignEmail{
		CampaignID:        campaign.ID,
		SequenceSlot:      1,
		SendOffsetDays:    7,
		ScheduledFor:      time.Date(2025, time.November, 4, 9, 0, 0, 0, time.UTC),
		Subject:           "Show inquiry",
		Body:              "Hi Sam",
		AvailabilityText:  "November 9-26",
		AvailabilityValid: true,
		Status:            EmailStatusPending,
	}

	created, err := db.InsertCampaignEmail(email)
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	emails, err := db.ListCampaignEmails(campaign.ID)
	require.NoError(t, err)
	require.Len(t, emails, 1)
	assert.Equal(t, "Show inquiry", emails[0].Subject)
	assert.True(t, emails[0].AvailabilityValid)
	assert.Nil(t, emails[0].SentAt)

	sentAt := time.Date(2025, time.November, 4, 9, 5, 0, 0, time.UTC)
	require.NoError(t, db.MarkEmailSent(created.ID, sentAt))

	emails, err = db.ListCampaignEmails(campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, EmailStatusSent, emails[0].Status)
	require.NotNil(t, emails[0].SentAt)
	assert.Equal(t, 4, emails[0].SentAt.Day())
}

func TestListDueEmails(t *testing.T) {
	db := NewTestDB(t)
	campaign := CreateTestCampaign(t, db)

	due := time.Date(2025, time.November, 4, 9, 0, 0, 0, time.UTC)
	later := time.Date(2025, time.December, 1, 9, 0, 0, 0, time.UTC)

	dueEmail, err := db.InsertCampaignEmail(&CampaignEmail{
		CampaignID: campaign.ID, SequenceSlot: 1, ScheduledFor: due, Status: EmailStatusPending,
	})
	require.NoError(t, err)
	_, err = db.InsertCampaignEmail(&CampaignEmail{
		CampaignID: campaign.ID, SequenceSlot: 2, ScheduledFor: later, Status: EmailStatusPending,
	})
	require.NoError(t, err)

	now := time.Date(2025, time.November, 5, 0, 0, 0, 0, time.UTC)

	t.Run("only due pending emails", func(t *testing.T) {
		emails, err := db.ListDueEmails(now)
		require.NoError(t, err)
		require.Len(t, emails, 1)
		assert.Equal(t, dueEmail.ID, emails[0].ID)
	})

	t.Run("sent emails excluded", func(t *testing.T) {
		require.NoError(t, db.MarkEmailSent(dueEmail.ID, now))
		emails, err := db.ListDueEmails(now)
		require.NoError(t, err)
		assert.Len(t, emails, 0)
	})

	t.Run("canceled campaigns excluded", func(t *testing.T) {
		emails, err := db.ListDueEmails(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		require.Len(t, emails, 1)

		require.NoError(t, db.CancelCampaign(campaign.ID))
		emails, err = db.ListDueEmails(time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Len(t, emails, 0)
	})
}

func TestMarkEmailFailedAndCanceled(t *testing.T) {
	db := NewTestDB(t)
	campaign := CreateTestCampaign(t, db)

	email, err := db.InsertCampaignEmail(&CampaignEmail{
		CampaignID:   campaign.ID,
		SequenceSlot: 3,
		ScheduledFor: time.Date(2025, time.November, 18, 0, 0, 0, 0, time.UTC),
		Status:       EmailStatusPending,
	})
	require.NoError(t, err)

	require.NoError(t, db.MarkEmailFailed(email.ID, "smtp timeout"))

	emails, err := db.ListCampaignEmails(campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, EmailStatusFailed, emails[0].Status)
	assert.Equal(t, "smtp timeout", emails[0].Error)

	// Cancel only applies to pending emails; the failed one stays failed.
	require.NoError(t, db.MarkEmailCanceled(email.ID, "availability expired"))
	emails, err = db.ListCampaignEmails(campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, EmailStatusFailed, emails[0].Status)
}
