// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// databaseType is "sqlite" or "postgres".
func CreateSchema(ctx context.Context, db *sql.DB, databaseType string) error {
	var seq string
	switch databaseType {
	case "sqlite":
		seq = "INTEGER PRIMARY KEY AUTOINCREMENT"
	case "postgres":
		seq = "BIGSERIAL PRIMARY KEY"
	default:
		return fmt.Errorf("unsupported SQL database type %q", databaseType)
	}

	_, err := db.ExecContext(ctx, strings.ReplaceAll(schema, "{{seq}}", seq))
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Timestamps are unix nanoseconds so ordering is exact on both SQLite and
// PostgreSQL. seq records insertion order and breaks timestamp ties.
const schema = `
-- Votes, one row per accepted vote
CREATE TABLE IF NOT EXISTS vote (
    seq {{seq}},
    id TEXT NOT NULL UNIQUE,
    option TEXT NOT NULL,
    recorded_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_vote_option ON vote(option);
CREATE INDEX IF NOT EXISTS idx_vote_recorded_at ON vote(recorded_at, seq);

-- Danmaku messages
CREATE TABLE IF NOT EXISTS message (
    seq {{seq}},
    id TEXT NOT NULL UNIQUE,
    content TEXT NOT NULL,
    option TEXT NOT NULL,
    likes BIGINT NOT NULL DEFAULT 0 CHECK (likes >= 0),
    created_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_message_created_at ON message(created_at DESC, seq DESC);
`
