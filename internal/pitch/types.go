package pitch

import "time"

// Request holds the form a musician fills out to start an outreach campaign.
// SubmittedAt is captured client-side so date math follows the submitter's
// clock, not the server's.
type Request struct {
	ArtistName     string   `json:"artist_name"`
	Genre          string   `json:"genre"`
	HomeCity       string   `json:"home_city"`
	Draw           string   `json:"draw"`
	PressHighlight string   `json:"press_highlight,omitempty"`
	EPKLink        string   `json:"epk_link,omitempty"`
	VideoLinks     []string `json:"video_links,omitempty"`

	VenueName   string `json:"venue_name"`
	VenueCity   string `json:"venue_city"`
	ContactName string `json:"contact_name,omitempty"`

	Availability string `json:"availability"`
	ReplyTo      string `json:"reply_to"`

	SubmittedAt time.Time `json:"submitted_at"`
}
