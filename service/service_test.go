// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/twosevenths/danmaku"
	"github.com/danielhkuo/twosevenths/models"
	"github.com/danielhkuo/twosevenths/tally"
	"github.com/danielhkuo/twosevenths/testutil"
)

func newTestService() *Service {
	clock := testutil.NewClock()
	return New(
		tally.NewMemoryStore(tally.Config{
			Options:      models.DefaultOptionSet(),
			TimelineSize: 100,
			Now:          clock.Now,
		}),
		danmaku.NewMemoryStore(danmaku.Config{
			Options:      models.DefaultOptionSet(),
			MaxLength:    200,
			DefaultLimit: 20,
			MaxLimit:     100,
			Now:          clock.Now,
		}),
	)
}

func TestService_VoteAndStats(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	for _, opt := range []string{"double", "double", "double", "single"} {
		require.NoError(t, svc.Vote(ctx, opt))
	}

	snap, err := svc.Stats(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 4, snap.Total)
	assert.Equal(t, models.OptionStats{Count: 3, Percentage: 75}, snap.Options["double"])
	assert.Equal(t, models.OptionStats{Count: 1, Percentage: 25}, snap.Options["single"])
	assert.Equal(t, models.OptionStats{Count: 0, Percentage: 0}, snap.Options["alternate"])
	assert.Len(t, snap.Timeline, 4)
}

func TestService_VoteInvalidOption(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	err := svc.Vote(ctx, "everyday")
	assert.True(t, errors.Is(err, models.ErrInvalidOption))

	snap, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, snap.Total)
}

func TestService_MessageLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	msg, err := svc.PostMessage(ctx, "hello", "single")
	require.NoError(t, err)

	for i := 1; i <= 2; i++ {
		likes, err := svc.LikeMessage(ctx, msg.ID)
		require.NoError(t, err)
		assert.EqualValues(t, i, likes)
	}

	resp, err := svc.ListMessages(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, msg.ID, resp.Messages[0].ID)
	assert.Equal(t, "hello", resp.Messages[0].Content)
	assert.EqualValues(t, 2, resp.Messages[0].Likes)

	_, err = svc.LikeMessage(ctx, "missing")
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestService_PostMessageInvalid(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.PostMessage(ctx, "", "single")
	assert.True(t, errors.Is(err, models.ErrInvalidContent))

	_, err = svc.PostMessage(ctx, "hi", "none")
	assert.True(t, errors.Is(err, models.ErrInvalidOption))

	resp, err := svc.ListMessages(ctx, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, resp.Messages)
	assert.NotNil(t, resp.Messages)
}
