// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"testing"

	"github.com/danielhkuo/twosevenths/danmaku"
	"github.com/danielhkuo/twosevenths/models"
	"github.com/danielhkuo/twosevenths/service"
	"github.com/danielhkuo/twosevenths/tally"
	"github.com/danielhkuo/twosevenths/testutil"
)

// newTestService builds a service on in-memory stores with the test config
func newTestService(t *testing.T) *service.Service {
	t.Helper()

	cfg := testutil.GetTestConfig()
	clock := testutil.NewClock()

	t2 := tally.NewMemoryStore(tally.Config{
		Options:      cfg.Options,
		TimelineSize: cfg.TimelineSize,
		Now:          clock.Now,
	})
	m := danmaku.NewMemoryStore(danmaku.Config{
		Options:      cfg.Options,
		MaxLength:    cfg.MaxMessageLength,
		DefaultLimit: cfg.DefaultListLimit,
		MaxLimit:     cfg.MaxListLimit,
		Now:          clock.Now,
	})
	return service.New(t2, m)
}

// newSQLTestService builds a service on a fresh SQLite database and returns
// the connection so tests can break it
func newSQLTestService(t *testing.T) (*service.Service, *sql.DB) {
	t.Helper()

	cfg := testutil.GetTestConfig()
	conn := testutil.SetupTestDB(t)

	t2 := tally.NewSQLStore(conn, tally.Config{
		Options:      cfg.Options,
		TimelineSize: cfg.TimelineSize,
	})
	m := danmaku.NewSQLStore(conn, danmaku.Config{
		Options:      cfg.Options,
		MaxLength:    cfg.MaxMessageLength,
		DefaultLimit: cfg.DefaultListLimit,
		MaxLimit:     cfg.MaxListLimit,
	})
	return service.New(t2, m), conn
}

// postTestMessage stores a message directly through the service
func postTestMessage(t *testing.T, svc *service.Service, content, option string) models.Message {
	t.Helper()

	msg, err := svc.PostMessage(context.Background(), content, option)
	if err != nil {
		t.Fatalf("Failed to post test message: %v", err)
	}
	return msg
}
