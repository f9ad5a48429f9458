package pitch

import (
	"testing"
	"time"

	"github.com/dmunro/gigpitch/internal/timeutil"
	"github.com/stretchr/testify/assert"
)

func testRequest() *Request {
	return &Request{
		ArtistName:     "The Night Owls",
		Genre:          "indie rock",
		HomeCity:       "Portland, OR",
		Draw:           "120-150 in the Northwest",
		PressHighlight: "Willamette Week's best new band shortlist",
		EPKLink:        "https://nightowls.band/epk",
		VideoLinks: []string{
			"https://youtube.com/watch?v=live1",
			"https://youtube.com/watch?v=live2",
			"https://youtube.com/watch?v=live3",
		},
		VenueName:    "The Crocodile",
		VenueCity:    "Seattle, WA",
		ContactName:  "Sam",
		Availability: "November 9-26th",
		ReplyTo:      "booking@nightowls.band",
		SubmittedAt:  time.Date(2025, time.October, 28, 9, 0, 0, 0, time.UTC),
	}
}

func TestGreetingForSlot(t *testing.T) {
	t.Run("uses contact name", func(t *testing.T) {
		assert.Equal(t, "Hi Sam,", GreetingForSlot(0, "Sam"))
	})

	t.Run("generic greeting without contact", func(t *testing.T) {
		assert.Equal(t, "Hi there,", GreetingForSlot(0, ""))
	})

	t.Run("rotates by slot", func(t *testing.T) {
		assert.NotEqual(t, GreetingForSlot(0, "Sam"), GreetingForSlot(2, "Sam"))
	})

	t.Run("wraps past sequence length", func(t *testing.T) {
		assert.Equal(t, GreetingForSlot(0, "Sam"), GreetingForSlot(8, "Sam"))
	})

	t.Run("negative slot clamps", func(t *testing.T) {
		assert.Equal(t, GreetingForSlot(0, "Sam"), GreetingForSlot(-3, "Sam"))
	})
}

func TestDisclaimerForSlot(t *testing.T) {
	assert.NotEmpty(t, DisclaimerForSlot(0))
	assert.NotEqual(t, DisclaimerForSlot(0), DisclaimerForSlot(1))
	assert.Equal(t, DisclaimerForSlot(0), DisclaimerForSlot(4))
}

func TestVideoLinkForSlot(t *testing.T) {
	links := []string{"a", "b", "c"}

	t.Run("round robin", func(t *testing.T) {
		assert.Equal(t, "a", VideoLinkForSlot(0, links))
		assert.Equal(t, "b", VideoLinkForSlot(1, links))
		assert.Equal(t, "c", VideoLinkForSlot(2, links))
		assert.Equal(t, "a", VideoLinkForSlot(3, links))
	})

	t.Run("no links", func(t *testing.T) {
		assert.Equal(t, "", VideoLinkForSlot(0, nil))
	})

	t.Run("negative slot", func(t *testing.T) {
		assert.Equal(t, "", VideoLinkForSlot(-1, links))
	})
}

func TestBuildIntroPrompt(t *testing.T) {
	req := testRequest()
	prompt := BuildIntroPrompt(req)

	assert.Contains(t, prompt, "## Artist Facts")
	assert.Contains(t, prompt, "The Night Owls")
	assert.Contains(t, prompt, "indie rock")
	assert.Contains(t, prompt, "120-150 in the Northwest")
	assert.Contains(t, prompt, "Willamette Week")
	assert.Contains(t, prompt, "## Venue Facts")
	assert.Contains(t, prompt, "The Crocodile (Seattle, WA)")
	assert.Contains(t, prompt, "Contact: Sam")
	assert.Contains(t, prompt, "introduction email")
	assert.Contains(t, prompt, "Hi Sam,")
	// The intro sends day 0: the full range is still valid.
	assert.Contains(t, prompt, "Propose these dates exactly as written: November 9-26")
	assert.Contains(t, prompt, "https://youtube.com/watch?v=live1")
}

func TestBuildIntroPromptWithoutOptionalFields(t *testing.T) {
	req := testRequest()
	req.ContactName = ""
	req.Draw = ""
	req.PressHighlight = ""
	req.VideoLinks = nil
	req.EPKLink = ""

	prompt := BuildIntroPrompt(req)

	assert.Contains(t, prompt, "Contact: unknown")
	assert.Contains(t, prompt, "Hi there,")
	assert.Contains(t, prompt, "No link to include")
	assert.NotContains(t, prompt, "Typical draw")
	assert.NotContains(t, prompt, "Press highlight")
}

func TestBuildFollowUpPrompt(t *testing.T) {
	req := testRequest()

	t.Run("with remaining dates", func(t *testing.T) {
		availability := timeutil.FilterResult{IsValid: true, DisplayText: "November 11-26"}
		prompt := BuildFollowUpPrompt(req, 1, 14, availability)

		assert.Contains(t, prompt, "follow-up 2 of 7")
		assert.Contains(t, prompt, "sending 14 days after the introduction")
		assert.Contains(t, prompt, "Propose these dates exactly as written: November 11-26")
		// Slot 2 of the round-robin (intro was slot 0, first follow-up slot 1).
		assert.Contains(t, prompt, "https://youtube.com/watch?v=live3")
	})

	t.Run("expired dates switch to soliciting", func(t *testing.T) {
		availability := timeutil.FilterResult{IsValid: false, DisplayText: ""}
		prompt := BuildFollowUpPrompt(req, 3, 31, availability)

		assert.Contains(t, prompt, "follow-up 4 of 7")
		assert.Contains(t, prompt, "Ask what the venue has open instead")
		assert.NotContains(t, prompt, "Propose these dates")
	})

	t.Run("unparseable availability passes through", func(t *testing.T) {
		availability := timeutil.FilterResult{IsValid: true, DisplayText: "weekends mostly"}
		prompt := BuildFollowUpPrompt(req, 0, 7, availability)

		assert.Contains(t, prompt, "Propose these dates exactly as written: weekends mostly")
	})
}
