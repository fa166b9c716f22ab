// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package danmaku

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/twosevenths/models"
)

// SQLStore keeps messages in the message table. It works with both the
// SQLite and PostgreSQL drivers.
type SQLStore struct {
	db  *sql.DB
	cfg Config
}

func NewSQLStore(db *sql.DB, cfg Config) *SQLStore {
	return &SQLStore{db: db, cfg: cfg}
}

func (s *SQLStore) Append(ctx context.Context, content, option string) (models.Message, error) {
	msg, err := s.cfg.newMessage(content, option)
	if err != nil {
		return models.Message{}, err
	}
	msg.Timestamp = s.cfg.now()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO message (id, content, option, likes, created_at)
		VALUES ($1, $2, $3, 0, $4)
	`, msg.ID, msg.Content, msg.Option, msg.Timestamp.UnixNano())
	if err != nil {
		return models.Message{}, fmt.Errorf("%w: insert message: %w", models.ErrUnavailable, err)
	}

	return msg, nil
}

// listTx reads the total and the page from one snapshot of the database
var listTx = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

func (s *SQLStore) List(ctx context.Context, limit, offset int) (models.MessagePage, error) {
	limit = s.cfg.Clamp(limit)
	offset = clampOffset(offset)

	tx, err := s.db.BeginTx(ctx, listTx)
	if err != nil {
		return models.MessagePage{}, fmt.Errorf("%w: begin list: %w", models.ErrUnavailable, err)
	}
	defer tx.Rollback()

	var total int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM message`).Scan(&total)
	if err != nil {
		return models.MessagePage{}, fmt.Errorf("%w: count messages: %w", models.ErrUnavailable, err)
	}

	messages, err := s.page(ctx, tx, limit, offset)
	if err != nil {
		return models.MessagePage{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.MessagePage{}, fmt.Errorf("%w: end list: %w", models.ErrUnavailable, err)
	}

	return models.MessagePage{Messages: messages, Total: total}, nil
}

// page returns messages newest first. Rows sharing a timestamp keep
// insertion order through seq.
func (s *SQLStore) page(ctx context.Context, tx *sql.Tx, limit, offset int) ([]models.Message, error) {
	rows, err := tx.QueryContext(ctx, `
		SELECT id, content, option, likes, created_at
		FROM message
		ORDER BY created_at DESC, seq DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: query messages: %w", models.ErrUnavailable, err)
	}
	defer rows.Close()

	messages := []models.Message{}
	for rows.Next() {
		var msg models.Message
		var createdAt int64
		if err := rows.Scan(&msg.ID, &msg.Content, &msg.Option, &msg.Likes, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: scan message: %w", models.ErrUnavailable, err)
		}
		msg.Timestamp = time.Unix(0, createdAt).UTC()
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: query messages: %w", models.ErrUnavailable, err)
	}

	return messages, nil
}

func (s *SQLStore) Like(ctx context.Context, id string) (int64, error) {
	// The increment happens inside the database, so concurrent likes on
	// the same row cannot overwrite each other
	var likes int64
	err := s.db.QueryRowContext(ctx, `
		UPDATE message SET likes = likes + 1
		WHERE id = $1
		RETURNING likes
	`, id).Scan(&likes)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: %s", models.ErrNotFound, id)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: like message: %w", models.ErrUnavailable, err)
	}

	return likes, nil
}
