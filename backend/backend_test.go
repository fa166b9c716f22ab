// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package backend

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/twosevenths/cliparse"
	"github.com/danielhkuo/twosevenths/danmaku"
	"github.com/danielhkuo/twosevenths/tally"
	"github.com/danielhkuo/twosevenths/testutil"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()
	srv := miniredis.RunT(t)

	testCases := []struct {
		name         string
		databaseType string
		url          string
		wantTally    tally.Store
		wantMessages danmaku.Store
	}{
		{"memory", cliparse.DatabaseMemory, "", &tally.MemoryStore{}, &danmaku.MemoryStore{}},
		{"sqlite", cliparse.DatabaseSQLite, "file:" + filepath.Join(t.TempDir(), "poll.db"), &tally.SQLStore{}, &danmaku.SQLStore{}},
		{"redis", cliparse.DatabaseRedis, "redis://" + srv.Addr(), &tally.RedisStore{}, &danmaku.RedisStore{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testutil.GetTestConfig()
			cfg.DatabaseType = tc.databaseType
			cfg.DatabaseURL = tc.url

			b, err := Open(ctx, cfg)
			require.NoError(t, err)
			defer func() { assert.NoError(t, b.Close()) }()

			assert.IsType(t, tc.wantTally, b.Tally)
			assert.IsType(t, tc.wantMessages, b.Messages)

			// The stores are usable end to end
			require.NoError(t, b.Tally.RecordVote(ctx, "double"))
			snap, err := b.Tally.Snapshot(ctx)
			require.NoError(t, err)
			assert.EqualValues(t, 1, snap.Total)

			msg, err := b.Messages.Append(ctx, "hi", "single")
			require.NoError(t, err)
			likes, err := b.Messages.Like(ctx, msg.ID)
			require.NoError(t, err)
			assert.EqualValues(t, 1, likes)
		})
	}
}

func TestOpen_Errors(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name         string
		databaseType string
		url          string
	}{
		{"unknown type", "mysql", "x"},
		{"bad redis url", cliparse.DatabaseRedis, "not a url"},
		{"redis unreachable", cliparse.DatabaseRedis, "redis://127.0.0.1:1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testutil.GetTestConfig()
			cfg.DatabaseType = tc.databaseType
			cfg.DatabaseURL = tc.url

			_, err := Open(ctx, cfg)
			assert.Error(t, err)
		})
	}
}

func TestConfigs(t *testing.T) {
	cfg := testutil.GetTestConfig()
	cfg.MaxMessageLength = 42
	cfg.TimelineSize = 7

	tc := TallyConfig(cfg)
	assert.Equal(t, cfg.Options, tc.Options)
	assert.Equal(t, 7, tc.TimelineSize)

	mc := MessageConfig(cfg)
	assert.Equal(t, 42, mc.MaxLength)
	assert.Equal(t, cfg.DefaultListLimit, mc.DefaultLimit)
	assert.Equal(t, cfg.MaxListLimit, mc.MaxLimit)
}
