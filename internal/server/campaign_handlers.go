package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmunro/gigpitch/internal/database"
	"github.com/dmunro/gigpitch/internal/timeutil"
)

type createCampaignRequest struct {
	ArtistName     string   `json:"artist_name"`
	Genre          string   `json:"genre"`
	HomeCity       string   `json:"home_city"`
	Draw           string   `json:"draw"`
	PressHighlight string   `json:"press_highlight"`
	EPKLink        string   `json:"epk_link"`
	VideoLinks     []string `json:"video_links"`
	VenueName      string   `json:"venue_name"`
	VenueCity      string   `json:"venue_city"`
	ContactName    string   `json:"contact_name"`
	ContactEmail   string   `json:"contact_email"`
	Availability   string   `json:"availability"`
	ReplyTo        string   `json:"reply_to"`
	// Captured client-side at form submission so date math follows the
	// submitter's clock across timezones. RFC3339.
	SubmittedAt string `json:"submitted_at"`
}

type campaignResponse struct {
	Campaign *database.Campaign        `json:"campaign"`
	Emails   []*database.CampaignEmail `json:"emails"`
}

// handleCreateCampaign stores the form, drafts the whole outreach sequence
// and returns it
func (s *Server) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.ArtistName) == "" {
		respondError(w, http.StatusBadRequest, "artist_name is required")
		return
	}
	if strings.TrimSpace(req.VenueName) == "" {
		respondError(w, http.StatusBadRequest, "venue_name is required")
		return
	}
	if strings.TrimSpace(req.ContactEmail) == "" {
		respondError(w, http.StatusBadRequest, "contact_email is required")
		return
	}

	submittedAt := time.Now()
	if strings.TrimSpace(req.SubmittedAt) != "" {
		parsed, err := timeutil.ParseInstant(req.SubmittedAt)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid submitted_at format")
			return
		}
		submittedAt = parsed
	}

	campaign := &database.Campaign{
		ArtistName:     strings.TrimSpace(req.ArtistName),
		Genre:          strings.TrimSpace(req.Genre),
		HomeCity:       strings.TrimSpace(req.HomeCity),
		Draw:           strings.TrimSpace(req.Draw),
		PressHighlight: strings.TrimSpace(req.PressHighlight),
		EPKLink:        strings.TrimSpace(req.EPKLink),
		VideoLinks:     cleanLinks(req.VideoLinks),
		VenueName:      strings.TrimSpace(req.VenueName),
		VenueCity:      strings.TrimSpace(req.VenueCity),
		ContactName:    strings.TrimSpace(req.ContactName),
		ContactEmail:   strings.TrimSpace(req.ContactEmail),
		Availability:   strings.TrimSpace(req.Availability),
		ReplyTo:        strings.TrimSpace(req.ReplyTo),
		SubmittedAt:    submittedAt,
	}

	campaign, err := s.db.CreateCampaign(campaign)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	emails, err := s.generator.GenerateSequence(r.Context(), campaign)
	if err != nil {
		respondError(w, http.StatusBadGateway, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, campaignResponse{Campaign: campaign, Emails: emails})
}

func (s *Server) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := s.db.ListCampaigns()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, campaigns)
}

func (s *Server) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	campaign, ok := s.campaignFromPath(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, campaign)
}

func (s *Server) handleListCampaignEmails(w http.ResponseWriter, r *http.Request) {
	campaign, ok := s.campaignFromPath(w, r)
	if !ok {
		return
	}

	emails, err := s.db.ListCampaignEmails(campaign.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, emails)
}

func (s *Server) handleCancelCampaign(w http.ResponseWriter, r *http.Request) {
	campaign, ok := s.campaignFromPath(w, r)
	if !ok {
		return
	}

	if err := s.db.CancelCampaign(campaign.ID); err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "canceled"})
}

func (s *Server) campaignFromPath(w http.ResponseWriter, r *http.Request) (*database.Campaign, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid campaign id")
		return nil, false
	}

	campaign, err := s.db.GetCampaign(id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	if campaign == nil {
		respondError(w, http.StatusNotFound, "campaign not found")
		return nil, false
	}
	return campaign, true
}

func cleanLinks(links []string) []string {
	cleaned := make([]string, 0, len(links))
	for _, link := range links {
		link = strings.TrimSpace(link)
		if link != "" {
			cleaned = append(cleaned, link)
		}
	}
	if len(cleaned) == 0 {
		return nil
	}
	return cleaned
}
