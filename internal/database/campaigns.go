package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// CampaignStatus represents the lifecycle state of an outreach campaign
type CampaignStatus string

const (
	CampaignStatusActive   CampaignStatus = "active"
	CampaignStatusCanceled CampaignStatus = "canceled"
	CampaignStatusDone     CampaignStatus = "done"
)

// EmailStatus represents the lifecycle state of one scheduled email
type EmailStatus string

const (
	EmailStatusPending  EmailStatus = "pending" // drafted, waiting for its send day
	EmailStatusSent     EmailStatus = "sent"
	EmailStatusFailed   EmailStatus = "failed"
	EmailStatusCanceled EmailStatus = "canceled"
)

// Campaign is one venue outreach sequence: the form snapshot plus status
type Campaign struct {
	ID             int64          `json:"id"`
	ArtistName     string         `json:"artist_name"`
	Genre          string         `json:"genre"`
	HomeCity       string         `json:"home_city"`
	Draw           string         `json:"draw"`
	PressHighlight string         `json:"press_highlight,omitempty"`
	EPKLink        string         `json:"epk_link,omitempty"`
	VideoLinks     []string       `json:"video_links,omitempty"`
	VenueName      string         `json:"venue_name"`
	VenueCity      string         `json:"venue_city"`
	ContactName    string         `json:"contact_name,omitempty"`
	ContactEmail   string         `json:"contact_email"`
	Availability   string         `json:"availability"`
	ReplyTo        string         `json:"reply_to"`
	SubmittedAt    time.Time      `json:"submitted_at"`
	Status         CampaignStatus `json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// CampaignEmail is one slot in a campaign's sequence. Slot 0 is the
// introduction; slots 1-7 are the scheduled follow-ups.
type CampaignEmail struct {
	ID                int64       `json:"id"`
	CampaignID        int64       `json:"campaign_id"`
	SequenceSlot      int         `json:"sequence_slot"`
	SendOffsetDays    int         `json:"send_offset_days"`
	ScheduledFor      time.Time   `json:"scheduled_for"`
	Subject           string      `json:"subject"`
	Body              string      `json:"body"`
	AvailabilityText  string      `json:"availability_text"`
	AvailabilityValid bool        `json:"availability_valid"`
	Status            EmailStatus `json:"status"`
	Error             string      `json:"error,omitempty"`
	SentAt            *time.Time  `json:"sent_at,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// CreateCampaign stores a new campaign and returns it with its ID set
func (d *DB) CreateCampaign(c *Campaign) (*Campaign, error) {
	result, err := d.Exec(`
		INSERT INTO campaigns (
			artist_name, genre, home_city, draw, press_highlight, epk_link,
			video_links, venue_name, venue_city, contact_name, contact_email,
			availability, reply_to, submitted_at, status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		c.ArtistName, c.Genre, c.HomeCity, c.Draw, c.PressHighlight, c.EPKLink,
		encodeVideoLinks(c.VideoLinks), c.VenueName, c.VenueCity, c.ContactName, c.ContactEmail,
		c.Availability, c.ReplyTo, c.SubmittedAt, CampaignStatusActive,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign id: %w", err)
	}

	c.ID = id
	c.Status = CampaignStatusActive
	c.CreatedAt = time.Now()
	c.UpdatedAt = time.Now()

	return c, nil
}

type campaignScanner interface {
	Scan(dest ...any) error
}

func scanCampaign(scanner campaignScanner) (*Campaign, error) {
	var c Campaign
	var videoLinks string
	err := scanner.Scan(
		&c.ID, &c.ArtistName, &c.Genre, &c.HomeCity, &c.Draw, &c.PressHighlight,
		&c.EPKLink, &videoLinks, &c.VenueName, &c.VenueCity, &c.ContactName,
		&c.ContactEmail, &c.Availability, &c.ReplyTo, &c.SubmittedAt, &c.Status,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.VideoLinks = decodeVideoLinks(videoLinks)
	return &c, nil
}

const campaignColumns = `
	id, artist_name, genre, home_city, draw, press_highlight, epk_link,
	video_links, venue_name, venue_city, contact_name, contact_email,
	availability, reply_to, submitted_at, status, created_at, updated_at`

// GetCampaign returns a campaign by ID, or nil if it doesn't exist
func (d *DB) GetCampaign(id int64) (*Campaign, error) {
	row := d.QueryRow(`SELECT`+campaignColumns+` FROM campaigns WHERE id = ?`, id)
	c, err := scanCampaign(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	return c, nil
}

// ListCampaigns returns all campaigns, newest first
func (d *DB) ListCampaigns() ([]*Campaign, error) {
	rows, err := d.Query(`SELECT` + campaignColumns + ` FROM campaigns ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	defer rows.Close()

	campaigns := []*Campaign{}
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

// CancelCampaign marks a campaign canceled and cancels its unsent emails
func (d *DB) CancelCampaign(id int64) error {
	tx, err := d.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
		UPDATE campaigns SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
	`, CampaignStatusCanceled, id)
	if err != nil {
		return fmt.Errorf("failed to cancel campaign: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check cancel result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("campaign %d not found", id)
	}

	_, err = tx.Exec(`
		UPDATE campaign_emails SET status = ?, updated_at = CURRENT_TIMESTAMP
		WHERE campaign_id = ? AND status = ?
	`, EmailStatusCanceled, id, EmailStatusPending)
	if err != nil {
		return fmt.Errorf("failed to cancel campaign emails: %w", err)
	}

	return tx.Commit()
}

// MarkCampaignDone marks a campaign done once its last email is dispatched
func (d *DB) MarkCampaignDone(id int64) error {
	_, err := d.Exec(`
		UPDATE campaigns SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
	`, CampaignStatusDone, id)
	if err != nil {
		return fmt.Errorf("failed to mark campaign done: %w", err)
	}
	return nil
}

// InsertCampaignEmail stores one drafted sequence email
func (d *DB) InsertCampaignEmail(e *CampaignEmail) (*CampaignEmail, error) {
	result, err := d.Exec(`
		INSERT INTO campaign_emails (
			campaign_id, sequence_slot, send_offset_days, scheduled_for,
			subject, body, availability_text, availability_valid, status, error
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		e.CampaignID, e.SequenceSlot, e.SendOffsetDays, e.ScheduledFor,
		e.Subject, e.Body, e.AvailabilityText, e.AvailabilityValid, e.Status, e.Error,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert campaign email: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign email id: %w", err)
	}

	e.ID = id
	e.CreatedAt = time.Now()
	e.UpdatedAt = time.Now()

	return e, nil
}

const emailColumns = `
	id, campaign_id, sequence_slot, send_offset_days, scheduled_for,
	subject, body, availability_text, availability_valid, status, error,
	sent_at, created_at, updated_at`

func scanCampaignEmail(scanner campaignScanner) (*CampaignEmail, error) {
	var e CampaignEmail
	err := scanner.Scan(
		&e.ID, &e.CampaignID, &e.SequenceSlot, &e.SendOffsetDays, &e.ScheduledFor,
		&e.Subject, &e.Body, &e.AvailabilityText, &e.AvailabilityValid, &e.Status,
		&e.Error, &e.SentAt, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ListCampaignEmails returns a campaign's sequence in slot order
func (d *DB) ListCampaignEmails(campaignID int64) ([]*CampaignEmail, error) {
	rows, err := d.Query(`
		SELECT`+emailColumns+` FROM campaign_emails
		WHERE campaign_id = ? ORDER BY sequence_slot
	`, campaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaign emails: %w", err)
	}
	defer rows.Close()

	emails := []*CampaignEmail{}
	for rows.Next() {
		e, err := scanCampaignEmail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan campaign email: %w", err)
		}
		emails = append(emails, e)
	}
	return emails, rows.Err()
}

// ListDueEmails returns pending emails whose send time has arrived, oldest
// first, skipping emails on canceled campaigns
func (d *DB) ListDueEmails(now time.Time) ([]*CampaignEmail, error) {
	rows, err := d.Query(`
		SELECT
			e.id, e.campaign_id, e.sequence_slot, e.send_offset_days, e.scheduled_for,
			e.subject, e.body, e.availability_text, e.availability_valid, e.status, e.error,
			e.sent_at, e.created_at, e.updated_at
		FROM campaign_emails e
		JOIN campaigns c ON c.id = e.campaign_id
		WHERE e.status = ? AND e.scheduled_for <= ? AND c.status = ?
		ORDER BY e.scheduled_for, e.id
	`, EmailStatusPending, now, CampaignStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list due emails: %w", err)
	}
	defer rows.Close()

	emails := []*CampaignEmail{}
	for rows.Next() {
		e, err := scanCampaignEmail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan due email: %w", err)
		}
		emails = append(emails, e)
	}
	return emails, rows.Err()
}

// MarkEmailSent records a successful dispatch
func (d *DB) MarkEmailSent(id int64, sentAt time.Time) error {
	_, err := d.Exec(`
		UPDATE campaign_emails
		SET status = ?, sent_at = ?, error = '', updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, EmailStatusSent, sentAt, id)
	if err != nil {
		return fmt.Errorf("failed to mark email sent: %w", err)
	}
	return nil
}

// MarkEmailFailed records a dispatch failure with its reason
func (d *DB) MarkEmailFailed(id int64, reason string) error {
	_, err := d.Exec(`
		UPDATE campaign_emails
		SET status = ?, error = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, EmailStatusFailed, reason, id)
	if err != nil {
		return fmt.Errorf("failed to mark email failed: %w", err)
	}
	return nil
}

// MarkEmailCanceled cancels a single pending email (e.g. its availability
// expired before dispatch)
func (d *DB) MarkEmailCanceled(id int64, reason string) error {
	_, err := d.Exec(`
		UPDATE campaign_emails
		SET status = ?, error = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND status = ?
	`, EmailStatusCanceled, reason, id, EmailStatusPending)
	if err != nil {
		return fmt.Errorf("failed to cancel email: %w", err)
	}
	return nil
}

// Video links are stored newline-joined; none of the link formats we accept
// can contain a newline.
func encodeVideoLinks(links []string) string {
	return strings.Join(links, "\n")
}

func decodeVideoLinks(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
