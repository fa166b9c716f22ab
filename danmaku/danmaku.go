// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package danmaku

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/danielhkuo/twosevenths/models"
)

// Store holds danmaku messages and their like counters.
// Implementations are safe for concurrent use.
type Store interface {
	// Append validates and stores a new message. The id and timestamp are
	// assigned by the store and likes start at zero.
	Append(ctx context.Context, content, option string) (models.Message, error)

	// List returns up to limit messages, newest first, skipping the first
	// offset. limit is clamped by Config.Clamp.
	List(ctx context.Context, limit, offset int) (models.MessagePage, error)

	// Like adds exactly one like and returns the new count. It fails with
	// models.ErrNotFound for an unknown id.
	Like(ctx context.Context, id string) (int64, error)
}

type Config struct {
	Options models.OptionSet

	// MaxLength is the longest accepted content in characters, after trimming
	MaxLength int

	DefaultLimit int
	MaxLimit     int

	// Now defaults to time.Now
	Now func() time.Time
}

// Validate checks a submission before anything is stored and returns the
// content with surrounding whitespace removed.
func (c Config) Validate(content, option string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", fmt.Errorf("%w: content is empty", models.ErrInvalidContent)
	}
	if n := utf8.RuneCountInString(content); n > c.MaxLength {
		return "", fmt.Errorf("%w: content is %d characters, maximum is %d", models.ErrInvalidContent, n, c.MaxLength)
	}
	if !c.Options.Contains(option) {
		return "", fmt.Errorf("%w: %q", models.ErrInvalidOption, option)
	}
	return content, nil
}

// Clamp maps a requested page size onto [1, MaxLimit]. Non-positive values
// select DefaultLimit.
func (c Config) Clamp(limit int) int {
	if limit <= 0 {
		limit = c.DefaultLimit
	}
	return min(limit, c.MaxLimit)
}

// newMessage validates a submission and builds the message to store.
// The caller stamps the timestamp at its serialization point.
func (c Config) newMessage(content, option string) (models.Message, error) {
	content, err := c.Validate(content, option)
	if err != nil {
		return models.Message{}, err
	}

	return models.Message{
		ID:      uuid.NewString(),
		Content: content,
		Option:  option,
		Likes:   0,
	}, nil
}

func (c Config) now() time.Time {
	if c.Now != nil {
		return c.Now().UTC()
	}
	return time.Now().UTC()
}

func clampOffset(offset int) int {
	return max(offset, 0)
}
