// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens SQL storage and creates its schema.

# Opening

Open connects with the modernc.org/sqlite or github.com/lib/pq driver,
pings the server and creates the schema:

	conn, err := db.Open("sqlite", "file:twosevenths.db")
	conn, err := db.Open("postgres", "postgres://...")

SQLite connections are limited to one open connection.

# Tables

  - vote: one row per accepted vote (seq, id, option, recorded_at)
  - message: danmaku comments (seq, id, content, option, likes, created_at)

Timestamps are stored as unix nanoseconds. seq is an auto-incrementing
key that orders rows sharing a timestamp by insertion. CreateSchema is
safe to call multiple times - uses IF NOT EXISTS for all tables and
indexes.
*/
package db
