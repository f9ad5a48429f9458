package dispatch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmunro/gigpitch/internal/database"
	"github.com/dmunro/gigpitch/internal/mailer"
	"github.com/dmunro/gigpitch/internal/timeutil"
)

// DBInterface defines the database operations needed by the dispatch worker
type DBInterface interface {
	ListDueEmails(now time.Time) ([]*database.CampaignEmail, error)
	GetCampaign(id int64) (*database.Campaign, error)
	MarkEmailSent(id int64, sentAt time.Time) error
	MarkEmailFailed(id int64, reason string) error
	MarkEmailCanceled(id int64, reason string) error
}

// Sender delivers one outbound message (satisfied by mailer.Service)
type Sender interface {
	Send(ctx context.Context, msg *mailer.Message) error
	IsConfigured() bool
}

// Worker polls for due sequence emails and dispatches them
type Worker struct {
	db           DBInterface
	sender       Sender
	pollInterval time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
	active bool
}

// Config contains configuration for the dispatch worker
type Config struct {
	PollIntervalMinutes int
}

// NewWorker creates a dispatch worker
func NewWorker(db DBInterface, sender Sender, config Config) *Worker {
	ctx, cancel := context.WithCancel(context.Background())

	pollInterval := time.Duration(config.PollIntervalMinutes) * time.Minute
	if pollInterval <= 0 {
		pollInterval = 5 * time.Minute
	}

	return &Worker{
		db:           db,
		sender:       sender,
		pollInterval: pollInterval,
		ctx:          ctx,
		cancel:       cancel,
	}
}

// Start begins the background poll loop
func (w *Worker) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.active {
		return fmt.Errorf("dispatch worker already started")
	}
	if !w.sender.IsConfigured() {
		return fmt.Errorf("no mailer configured")
	}

	w.active = true
	w.wg.Add(1)
	go w.run()

	fmt.Printf("Dispatch worker started (poll interval %s)\n", w.pollInterval)
	return nil
}

// Stop shuts down the poll loop and waits for in-flight sends
func (w *Worker) Stop() {
	w.mu.Lock()
	if !w.active {
		w.mu.Unlock()
		return
	}
	w.active = false
	w.mu.Unlock()

	w.cancel()
	w.wg.Wait()
	fmt.Println("Dispatch worker stopped")
}

func (w *Worker) run() {
	defer w.wg.Done()

	// First pass immediately so a restart doesn't delay overdue emails.
	w.DispatchDue(w.ctx, time.Now())

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			w.DispatchDue(w.ctx, time.Now())
		}
	}
}

// DispatchDue sends every pending email whose scheduled time has passed.
// A draft's availability is re-checked at actual send time: a sequence
// drafted weeks ago may have advertised dates that have since expired, and
// sending those would pitch the booker dates the artist can no longer play.
func (w *Worker) DispatchDue(ctx context.Context, now time.Time) {
	emails, err := w.db.ListDueEmails(now)
	if err != nil {
		fmt.Printf("Dispatch: failed to list due emails: %v\n", err)
		return
	}

	for _, email := range emails {
		select {
		case <-ctx.Done():
			return
		default:
		}
		w.dispatchOne(ctx, email, now)
	}
}

func (w *Worker) dispatchOne(ctx context.Context, email *database.CampaignEmail, now time.Time) {
	campaign, err := w.db.GetCampaign(email.CampaignID)
	if err != nil || campaign == nil {
		fmt.Printf("Dispatch: campaign %d missing for email %d\n", email.CampaignID, email.ID)
		return
	}

	// Cancel a draft whose advertised dates no longer hold. The filter is
	// anchored at the original submission instant with the elapsed days as
	// the offset; re-parsing against today's date would roll expired
	// ranges into next year and resurrect them. Drafts that never
	// advertised dates (open availability, unparseable phrases) aren't
	// affected by expiry.
	if email.AvailabilityValid {
		elapsed := timeutil.DaysBetween(campaign.SubmittedAt, now)
		if elapsed < 0 {
			elapsed = 0
		}
		fresh := timeutil.FilterAvailabilityByDate(campaign.Availability, elapsed, &campaign.SubmittedAt)
		if !fresh.IsValid && looksLikeDates(campaign.Availability, campaign.SubmittedAt) {
			reason := "availability expired before send"
			if err := w.db.MarkEmailCanceled(email.ID, reason); err != nil {
				fmt.Printf("Dispatch: failed to cancel email %d: %v\n", email.ID, err)
			} else {
				fmt.Printf("Dispatch: canceled email %d (%s)\n", email.ID, reason)
			}
			return
		}
	}

	msg := &mailer.Message{
		To:      campaign.ContactEmail,
		ReplyTo: campaign.ReplyTo,
		Subject: email.Subject,
		Text:    email.Body,
	}

	if err := w.sender.Send(ctx, msg); err != nil {
		fmt.Printf("Dispatch: email %d send failed: %v\n", email.ID, err)
		if err := w.db.MarkEmailFailed(email.ID, err.Error()); err != nil {
			fmt.Printf("Dispatch: failed to record failure for email %d: %v\n", email.ID, err)
		}
		return
	}

	if err := w.db.MarkEmailSent(email.ID, now); err != nil {
		fmt.Printf("Dispatch: failed to mark email %d sent: %v\n", email.ID, err)
	}
}

// looksLikeDates reports whether the campaign's availability phrase parses
// into concrete ranges at all (as opposed to free text passed through).
func looksLikeDates(availability string, submittedAt time.Time) bool {
	return len(timeutil.ParseDateRanges(availability, submittedAt.Year(), submittedAt)) > 0
}
