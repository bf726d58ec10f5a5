package kafka

import (
	"context"
	"database/sql"
)

// The outbox table sits outside gorm's entity migration because only the
// plain-SQL repository touches it.
var outboxDDL = []string{
	`CREATE TABLE IF NOT EXISTS outbox_events (
    id UUID PRIMARY KEY,
    request_id TEXT NOT NULL DEFAULT '',
    aggregate_type TEXT NOT NULL,
    aggregate_id TEXT NOT NULL,
    event_type TEXT NOT NULL,
    topic TEXT NOT NULL,
    payload JSONB NOT NULL,
    status TEXT NOT NULL DEFAULT 'pending',
    retry_count INTEGER NOT NULL DEFAULT 0,
    error_message TEXT,
    next_retry_at TIMESTAMPTZ,
    processed_at TIMESTAMPTZ,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	`CREATE INDEX IF NOT EXISTS idx_outbox_events_status_created
    ON outbox_events (status, created_at)`,
}

// MigrateOutboxTable creates the outbox_events table and its polling index.
// Both the API and the relay worker run it, so either can start first on a
// fresh database.
func MigrateOutboxTable(ctx context.Context, db *sql.DB) error {
	for _, stmt := range outboxDDL {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
