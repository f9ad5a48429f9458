package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/dmunro/gigpitch/internal/timeutil"
)

type availabilityPreviewRequest struct {
	Availability string `json:"availability"`
	SubmittedAt  string `json:"submitted_at"`
}

type availabilityPreviewEntry struct {
	SequenceSlot   int    `json:"sequence_slot"`
	SendOffsetDays int    `json:"send_offset_days"`
	IsValid        bool   `json:"is_valid"`
	DisplayText    string `json:"display_text"`
}

// handleAvailabilityPreview shows how an availability phrase will read in
// each email of the sequence, so the artist can sanity-check their dates
// before creating a campaign.
func (s *Server) handleAvailabilityPreview(w http.ResponseWriter, r *http.Request) {
	var req availabilityPreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	referenceInstant := time.Now()
	if strings.TrimSpace(req.SubmittedAt) != "" {
		parsed, err := timeutil.ParseInstant(req.SubmittedAt)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid submitted_at format")
			return
		}
		referenceInstant = parsed
	}

	entries := make([]availabilityPreviewEntry, 0, 1+timeutil.FollowUpCount)
	for slot := 0; slot <= timeutil.FollowUpCount; slot++ {
		offset := 0
		if slot > 0 {
			offset = timeutil.SendOffsetDays(slot - 1)
		}
		result := timeutil.FilterAvailabilityByDate(req.Availability, offset, &referenceInstant)
		entries = append(entries, availabilityPreviewEntry{
			SequenceSlot:   slot,
			SendOffsetDays: offset,
			IsValid:        result.IsValid,
			DisplayText:    result.DisplayText,
		})
	}

	respondJSON(w, http.StatusOK, entries)
}
