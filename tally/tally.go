// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"context"
	"fmt"
	"time"

	"github.com/danielhkuo/twosevenths/models"
)

// Store records votes and serves snapshots of the running tally.
// Implementations are safe for concurrent use.
type Store interface {
	// RecordVote adds one vote for option. It fails with
	// models.ErrInvalidOption when option is not in the poll.
	RecordVote(ctx context.Context, option string) error
	Snapshot(ctx context.Context) (models.Snapshot, error)
}

type Config struct {
	Options models.OptionSet

	// TimelineSize is how many recent votes a snapshot carries. 0 disables
	// the timeline.
	TimelineSize int

	// Now defaults to time.Now
	Now func() time.Time
}

func (c Config) check(option string) error {
	if !c.Options.Contains(option) {
		return fmt.Errorf("%w: %q", models.ErrInvalidOption, option)
	}
	return nil
}

func (c Config) now() time.Time {
	if c.Now != nil {
		return c.Now().UTC()
	}
	return time.Now().UTC()
}

// Percentage returns count/total as a whole percentage, rounding halves away
// from zero (1 of 8 votes is 12.5%, reported as 13). It returns 0 when there
// are no votes.
func Percentage(count, total int64) int {
	if total <= 0 || count <= 0 {
		return 0
	}
	return int((200*count + total) / (2 * total))
}

// BuildSnapshot computes a snapshot from raw per-option counts. Only options
// in the set are reported and summed into the total; counts for labels
// outside the set are ignored.
func BuildSnapshot(options models.OptionSet, counts map[string]int64, timeline []models.TimelineItem) models.Snapshot {
	var total int64
	for _, opt := range options {
		total += counts[opt]
	}

	stats := make(map[string]models.OptionStats, len(options))
	for _, opt := range options {
		stats[opt] = models.OptionStats{
			Count:      counts[opt],
			Percentage: Percentage(counts[opt], total),
		}
	}

	if timeline == nil {
		timeline = []models.TimelineItem{}
	}

	return models.Snapshot{
		Total:    total,
		Options:  stats,
		Timeline: timeline,
	}
}
