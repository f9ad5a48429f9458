package database

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates an in-memory SQLite database for testing.
// The database is automatically closed when the test completes.
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

var testCampaignCounter int64 = 0

// CreateTestCampaign creates a campaign for testing purposes. Each call
// produces a unique artist/venue pair with a fixed submission date.
func CreateTestCampaign(t *testing.T, db *DB) *Campaign {
	t.Helper()
	testCampaignCounter++

	campaign := &Campaign{
		ArtistName:   fmt.Sprintf("Test Artist %d", testCampaignCounter),
		Genre:        "indie rock",
		HomeCity:     "Portland, OR",
		Draw:         "100+",
		VenueName:    fmt.Sprintf("Test Venue %d", testCampaignCounter),
		VenueCity:    "Seattle, WA",
		ContactName:  "Sam",
		ContactEmail: fmt.Sprintf("booker%d@example.com", testCampaignCounter),
		Availability: "November 9-26th",
		ReplyTo:      "artist@example.com",
		SubmittedAt:  time.Date(2025, time.October, 28, 9, 0, 0, 0, time.UTC),
	}

	created, err := db.CreateCampaign(campaign)
	require.NoError(t, err, "failed to create test campaign")

	return created
}
