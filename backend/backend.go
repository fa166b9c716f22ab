// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package backend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/danielhkuo/twosevenths/cliparse"
	"github.com/danielhkuo/twosevenths/danmaku"
	"github.com/danielhkuo/twosevenths/db"
	"github.com/danielhkuo/twosevenths/tally"
)

const pingTimeout = 5 * time.Second

// Backend holds the store pair selected by the configuration
type Backend struct {
	Tally    tally.Store
	Messages danmaku.Store

	closers []func() error
}

// TallyConfig derives the tally store settings from the server configuration
func TallyConfig(cfg cliparse.Config) tally.Config {
	return tally.Config{
		Options:      cfg.Options,
		TimelineSize: cfg.TimelineSize,
	}
}

// MessageConfig derives the message store settings from the server configuration
func MessageConfig(cfg cliparse.Config) danmaku.Config {
	return danmaku.Config{
		Options:      cfg.Options,
		MaxLength:    cfg.MaxMessageLength,
		DefaultLimit: cfg.DefaultListLimit,
		MaxLimit:     cfg.MaxListLimit,
	}
}

// Open connects to the configured storage and builds both stores on it
func Open(ctx context.Context, cfg cliparse.Config) (*Backend, error) {
	tc, mc := TallyConfig(cfg), MessageConfig(cfg)

	switch cfg.DatabaseType {
	case cliparse.DatabaseMemory:
		slog.Warn("using in-memory storage, votes and messages are lost on restart")
		return &Backend{
			Tally:    tally.NewMemoryStore(tc),
			Messages: danmaku.NewMemoryStore(mc),
		}, nil

	case cliparse.DatabaseSQLite, cliparse.DatabasePostgres:
		conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		slog.Info("Database schema ready", "type", cfg.DatabaseType)
		return &Backend{
			Tally:    tally.NewSQLStore(conn, tc),
			Messages: danmaku.NewSQLStore(conn, mc),
			closers:  []func() error{conn.Close},
		}, nil

	case cliparse.DatabaseRedis:
		opts, err := redis.ParseURL(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis URL: %w", err)
		}
		client := redis.NewClient(opts)

		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("redis ping failed: %w", err)
		}
		slog.Info("Redis ready", "addr", opts.Addr)
		return &Backend{
			Tally:    tally.NewRedisStore(client, tc),
			Messages: danmaku.NewRedisStore(client, mc),
			closers:  []func() error{client.Close},
		}, nil
	}

	return nil, fmt.Errorf("unknown database type %q", cfg.DatabaseType)
}

// Close releases the underlying connections
func (b *Backend) Close() error {
	var errs []error
	for _, c := range b.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}
