package migrations

import "database/sql"

func init() {
	Register(Migration{
		Version: 1,
		Name:    "initial_schema",
		Up: func(db *sql.DB) error {
			_, err := db.Exec(`
				CREATE TABLE IF NOT EXISTS campaigns (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					artist_name TEXT NOT NULL,
					genre TEXT NOT NULL DEFAULT '',
					home_city TEXT NOT NULL DEFAULT '',
					draw TEXT NOT NULL DEFAULT '',
					press_highlight TEXT NOT NULL DEFAULT '',
					epk_link TEXT NOT NULL DEFAULT '',
					video_links TEXT NOT NULL DEFAULT '',
					venue_name TEXT NOT NULL,
					venue_city TEXT NOT NULL DEFAULT '',
					contact_name TEXT NOT NULL DEFAULT '',
					contact_email TEXT NOT NULL,
					availability TEXT NOT NULL DEFAULT '',
					reply_to TEXT NOT NULL DEFAULT '',
					submitted_at DATETIME NOT NULL,
					status TEXT NOT NULL DEFAULT 'active',
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
				);

				CREATE TABLE IF NOT EXISTS campaign_emails (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					campaign_id INTEGER NOT NULL,
					sequence_slot INTEGER NOT NULL,
					send_offset_days INTEGER NOT NULL,
					scheduled_for DATETIME NOT NULL,
					subject TEXT NOT NULL DEFAULT '',
					body TEXT NOT NULL DEFAULT '',
					availability_text TEXT NOT NULL DEFAULT '',
					availability_valid INTEGER NOT NULL DEFAULT 0,
					status TEXT NOT NULL DEFAULT 'pending',
					error TEXT NOT NULL DEFAULT '',
					sent_at DATETIME,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					FOREIGN KEY (campaign_id) REFERENCES campaigns(id) ON DELETE CASCADE,
					UNIQUE (campaign_id, sequence_slot)
				);

				CREATE INDEX IF NOT EXISTS idx_campaign_emails_due
					ON campaign_emails(status, scheduled_for);
			`)
			return err
		},
	})
}
