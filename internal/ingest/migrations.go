package ingest

import (
	"database/sql"

	"github.com/HerbHall/netlens/pkg/plugin"
)

// migrations returns the ingest module's database migrations.
func migrations() []plugin.Migration {
	return []plugin.Migration{
		{
			Version:     1,
			Description: "create events table",
			Up: func(tx *sql.Tx) error {
				stmts := []string{
					`CREATE TABLE IF NOT EXISTS events (
						id          TEXT PRIMARY KEY,
						timestamp   INTEGER NOT NULL,
						device      TEXT NOT NULL,
						location    TEXT NOT NULL DEFAULT '',
						interface   TEXT NOT NULL DEFAULT '',
						category    TEXT NOT NULL DEFAULT '',
						event_type  TEXT NOT NULL DEFAULT '',
						severity    INTEGER NOT NULL DEFAULT 6,
						raw_log     TEXT NOT NULL DEFAULT '',
						created_at  DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
					)`,
					`CREATE INDEX IF NOT EXISTS idx_events_timestamp ON events(timestamp)`,
					`CREATE INDEX IF NOT EXISTS idx_events_device ON events(device, timestamp)`,
					`CREATE INDEX IF NOT EXISTS idx_events_interface ON events(interface, timestamp)`,
					`CREATE INDEX IF NOT EXISTS idx_events_location ON events(location, timestamp)`,
				}
				for _, stmt := range stmts {
					if _, err := tx.Exec(stmt); err != nil {
						return err
					}
				}
				return nil
			},
		},
	}
}
