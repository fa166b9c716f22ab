// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package danmaku

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/danielhkuo/twosevenths/models"
)

// Keys share a hash tag so scripts touching several of them run on one
// cluster slot.
const (
	indexKey      = "twosevenths:{danmaku}:index"
	lastStampKey  = "twosevenths:{danmaku}:last"
	messagePrefix = "twosevenths:{danmaku}:msg:"
)

// appendScript stores a message and pushes its id in one step. The stamp
// is raised to the newest stamp already stored, so the index never holds an
// older message ahead of a newer one. Stamps are fixed-width decimal
// strings; Lua numbers cannot hold nanoseconds exactly.
var appendScript = redis.NewScript(`
local stamp = ARGV[1]
local last = redis.call('GET', KEYS[3])
if last and last > stamp then
	stamp = last
end
redis.call('HSET', KEYS[1], 'content', ARGV[3], 'option', ARGV[4], 'likes', 0, 'created_at', stamp)
redis.call('LPUSH', KEYS[2], ARGV[2])
redis.call('SET', KEYS[3], stamp)
return stamp
`)

// likeScript increments the like counter only if the message exists,
// returning -1 otherwise. A plain HINCRBY would create a stub hash for
// unknown ids.
var likeScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return -1
end
return redis.call('HINCRBY', KEYS[1], 'likes', 1)
`)

// RedisStore keeps each message in its own hash and the ids in a list,
// newest at the head.
type RedisStore struct {
	client redis.UniversalClient
	cfg    Config
}

func NewRedisStore(client redis.UniversalClient, cfg Config) *RedisStore {
	return &RedisStore{client: client, cfg: cfg}
}

func messageKey(id string) string {
	return messagePrefix + id
}

func (s *RedisStore) Append(ctx context.Context, content, option string) (models.Message, error) {
	msg, err := s.cfg.newMessage(content, option)
	if err != nil {
		return models.Message{}, err
	}

	keys := []string{messageKey(msg.ID), indexKey, lastStampKey}
	stamp, err := appendScript.Run(ctx, s.client, keys,
		formatStamp(s.cfg.now()), msg.ID, msg.Content, msg.Option,
	).Text()
	if err != nil {
		return models.Message{}, fmt.Errorf("%w: append message: %w", models.ErrUnavailable, err)
	}

	if msg.Timestamp, err = parseStamp(stamp); err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", models.ErrUnavailable, err)
	}

	return msg, nil
}

func (s *RedisStore) List(ctx context.Context, limit, offset int) (models.MessagePage, error) {
	limit = s.cfg.Clamp(limit)
	offset = clampOffset(offset)

	var totalCmd *redis.IntCmd
	var idsCmd *redis.StringSliceCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		totalCmd = pipe.LLen(ctx, indexKey)
		idsCmd = pipe.LRange(ctx, indexKey, int64(offset), int64(offset+limit-1))
		return nil
	})
	if err != nil {
		return models.MessagePage{}, fmt.Errorf("%w: list messages: %w", models.ErrUnavailable, err)
	}

	page := models.MessagePage{Messages: []models.Message{}, Total: int(totalCmd.Val())}
	ids := idsCmd.Val()
	if len(ids) == 0 {
		return page, nil
	}

	cmds := make([]*redis.StringStringMapCmd, len(ids))
	_, err = s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, id := range ids {
			cmds[i] = pipe.HGetAll(ctx, messageKey(id))
		}
		return nil
	})
	if err != nil {
		return models.MessagePage{}, fmt.Errorf("%w: load messages: %w", models.ErrUnavailable, err)
	}

	for i, cmd := range cmds {
		msg, err := decodeMessage(ids[i], cmd.Val())
		if err != nil {
			return models.MessagePage{}, fmt.Errorf("%w: %w", models.ErrUnavailable, err)
		}
		page.Messages = append(page.Messages, msg)
	}

	return page, nil
}

func (s *RedisStore) Like(ctx context.Context, id string) (int64, error) {
	likes, err := likeScript.Run(ctx, s.client, []string{messageKey(id)}).Int64()
	if err != nil {
		return 0, fmt.Errorf("%w: like message: %w", models.ErrUnavailable, err)
	}
	if likes < 0 {
		return 0, fmt.Errorf("%w: %s", models.ErrNotFound, id)
	}

	return likes, nil
}

func decodeMessage(id string, fields map[string]string) (models.Message, error) {
	likes, err := strconv.ParseInt(fields["likes"], 10, 64)
	if err != nil {
		return models.Message{}, fmt.Errorf("corrupt likes for message %s: %w", id, err)
	}
	createdAt, err := parseStamp(fields["created_at"])
	if err != nil {
		return models.Message{}, fmt.Errorf("message %s: %w", id, err)
	}

	return models.Message{
		ID:        id,
		Content:   fields["content"],
		Option:    fields["option"],
		Likes:     likes,
		Timestamp: createdAt,
	}, nil
}

// formatStamp renders t as zero-padded unix nanoseconds so that string
// order matches time order
func formatStamp(t time.Time) string {
	return fmt.Sprintf("%019d", t.UnixNano())
}

func parseStamp(s string) (time.Time, error) {
	ns, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("corrupt timestamp %q: %w", s, err)
	}
	return time.Unix(0, ns).UTC(), nil
}
