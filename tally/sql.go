// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/twosevenths/models"
)

// SQLStore keeps one row per vote in the vote table. It works with both the
// SQLite and PostgreSQL drivers.
type SQLStore struct {
	db  *sql.DB
	cfg Config
}

func NewSQLStore(db *sql.DB, cfg Config) *SQLStore {
	return &SQLStore{db: db, cfg: cfg}
}

func (s *SQLStore) RecordVote(ctx context.Context, option string) error {
	if err := s.cfg.check(option); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO vote (id, option, recorded_at)
		VALUES ($1, $2, $3)
	`, uuid.NewString(), option, s.cfg.now().UnixNano())
	if err != nil {
		return fmt.Errorf("%w: insert vote: %w", models.ErrUnavailable, err)
	}

	return nil
}

// snapshotTx reads the counts and the timeline from one snapshot of the
// database, so a vote is either in both or in neither.
var snapshotTx = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

func (s *SQLStore) Snapshot(ctx context.Context) (models.Snapshot, error) {
	tx, err := s.db.BeginTx(ctx, snapshotTx)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: begin snapshot: %w", models.ErrUnavailable, err)
	}
	defer tx.Rollback()

	counts, err := s.counts(ctx, tx)
	if err != nil {
		return models.Snapshot{}, err
	}

	timeline, err := s.timeline(ctx, tx)
	if err != nil {
		return models.Snapshot{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: end snapshot: %w", models.ErrUnavailable, err)
	}

	return BuildSnapshot(s.cfg.Options, counts, timeline), nil
}

// counts runs a single aggregate query so the total and the per-option
// counts are consistent with each other
func (s *SQLStore) counts(ctx context.Context, tx *sql.Tx) (map[string]int64, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT option, COUNT(*) FROM vote GROUP BY option
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: count votes: %w", models.ErrUnavailable, err)
	}
	defer rows.Close()

	counts := make(map[string]int64, len(s.cfg.Options))
	for rows.Next() {
		var option string
		var count int64
		if err := rows.Scan(&option, &count); err != nil {
			return nil, fmt.Errorf("%w: scan vote count: %w", models.ErrUnavailable, err)
		}
		counts[option] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: count votes: %w", models.ErrUnavailable, err)
	}

	return counts, nil
}

// timeline returns the most recent votes, oldest first
func (s *SQLStore) timeline(ctx context.Context, tx *sql.Tx) ([]models.TimelineItem, error) {
	if s.cfg.TimelineSize <= 0 {
		return nil, nil
	}

	rows, err := tx.QueryContext(ctx, `
		SELECT option, recorded_at
		FROM vote
		ORDER BY recorded_at DESC, seq DESC
		LIMIT $1
	`, s.cfg.TimelineSize)
	if err != nil {
		return nil, fmt.Errorf("%w: query timeline: %w", models.ErrUnavailable, err)
	}
	defer rows.Close()

	timeline := []models.TimelineItem{}
	for rows.Next() {
		var item models.TimelineItem
		var recordedAt int64
		if err := rows.Scan(&item.Option, &recordedAt); err != nil {
			return nil, fmt.Errorf("%w: scan timeline: %w", models.ErrUnavailable, err)
		}
		item.Timestamp = time.Unix(0, recordedAt).UTC()
		timeline = append(timeline, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: query timeline: %w", models.ErrUnavailable, err)
	}

	slices.Reverse(timeline)
	return timeline, nil
}
