// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/danielhkuo/twosevenths/models"
)

// Keys share a hash tag so the vote script runs on one cluster slot
const (
	countsKey    = "twosevenths:{tally}:counts"
	timelineKey  = "twosevenths:{tally}:timeline"
	lastStampKey = "twosevenths:{tally}:last"
)

// voteScript counts a vote and appends it to the capped timeline in one
// step. Timeline entries are "<stamp>:<option>"; the stamp is raised to the
// newest one already stored so the list stays in time order. Stamps are
// fixed-width decimal strings; Lua numbers cannot hold nanoseconds exactly.
var voteScript = redis.NewScript(`
redis.call('HINCRBY', KEYS[1], ARGV[1], 1)
local size = tonumber(ARGV[3])
if size > 0 then
	local stamp = ARGV[2]
	local last = redis.call('GET', KEYS[3])
	if last and last > stamp then
		stamp = last
	end
	redis.call('SET', KEYS[3], stamp)
	redis.call('RPUSH', KEYS[2], stamp .. ':' .. ARGV[1])
	redis.call('LTRIM', KEYS[2], -size, -1)
end
return 1
`)

// RedisStore keeps per-option counters in a Redis hash and the recent vote
// timeline in a capped list.
type RedisStore struct {
	client redis.UniversalClient
	cfg    Config
}

func NewRedisStore(client redis.UniversalClient, cfg Config) *RedisStore {
	return &RedisStore{client: client, cfg: cfg}
}

func (s *RedisStore) RecordVote(ctx context.Context, option string) error {
	if err := s.cfg.check(option); err != nil {
		return err
	}

	keys := []string{countsKey, timelineKey, lastStampKey}
	stamp := fmt.Sprintf("%019d", s.cfg.now().UnixNano())
	if err := voteScript.Run(ctx, s.client, keys, option, stamp, s.cfg.TimelineSize).Err(); err != nil {
		return fmt.Errorf("%w: record vote: %w", models.ErrUnavailable, err)
	}

	return nil
}

func (s *RedisStore) Snapshot(ctx context.Context) (models.Snapshot, error) {
	var countsCmd *redis.StringStringMapCmd
	var timelineCmd *redis.StringSliceCmd

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		countsCmd = pipe.HGetAll(ctx, countsKey)
		if s.cfg.TimelineSize > 0 {
			timelineCmd = pipe.LRange(ctx, timelineKey, -int64(s.cfg.TimelineSize), -1)
		}
		return nil
	})
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: read tally: %w", models.ErrUnavailable, err)
	}

	counts := make(map[string]int64, len(s.cfg.Options))
	for option, raw := range countsCmd.Val() {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return models.Snapshot{}, fmt.Errorf("%w: corrupt count for %q: %w", models.ErrUnavailable, option, err)
		}
		counts[option] = n
	}

	var timeline []models.TimelineItem
	if timelineCmd != nil {
		timeline = make([]models.TimelineItem, 0, len(timelineCmd.Val()))
		for _, raw := range timelineCmd.Val() {
			item, err := decodeTimelineItem(raw)
			if err != nil {
				return models.Snapshot{}, fmt.Errorf("%w: %w", models.ErrUnavailable, err)
			}
			timeline = append(timeline, item)
		}
	}

	return BuildSnapshot(s.cfg.Options, counts, timeline), nil
}

func decodeTimelineItem(raw string) (models.TimelineItem, error) {
	stamp, option, ok := strings.Cut(raw, ":")
	if !ok {
		return models.TimelineItem{}, fmt.Errorf("corrupt timeline entry %q", raw)
	}
	ns, err := strconv.ParseInt(stamp, 10, 64)
	if err != nil {
		return models.TimelineItem{}, fmt.Errorf("corrupt timeline entry %q: %w", raw, err)
	}
	return models.TimelineItem{Option: option, Timestamp: time.Unix(0, ns).UTC()}, nil
}
