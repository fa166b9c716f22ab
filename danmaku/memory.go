// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package danmaku

import (
	"context"
	"fmt"
	"sync"

	"github.com/danielhkuo/twosevenths/models"
)

// MemoryStore keeps messages in process memory. Messages are never evicted.
type MemoryStore struct {
	cfg Config

	mu       sync.RWMutex
	messages []*models.Message // insertion order, oldest first
	byID     map[string]*models.Message
}

func NewMemoryStore(cfg Config) *MemoryStore {
	return &MemoryStore{
		cfg:  cfg,
		byID: make(map[string]*models.Message),
	}
}

func (s *MemoryStore) Append(ctx context.Context, content, option string) (models.Message, error) {
	msg, err := s.cfg.newMessage(content, option)
	if err != nil {
		return models.Message{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg.Timestamp = s.cfg.now()
	stored := msg
	s.messages = append(s.messages, &stored)
	s.byID[msg.ID] = &stored

	return msg, nil
}

func (s *MemoryStore) List(ctx context.Context, limit, offset int) (models.MessagePage, error) {
	limit = s.cfg.Clamp(limit)
	offset = clampOffset(offset)

	s.mu.RLock()
	defer s.mu.RUnlock()

	total := len(s.messages)
	page := models.MessagePage{Messages: []models.Message{}, Total: total}

	for i := total - 1 - offset; i >= 0 && len(page.Messages) < limit; i-- {
		page.Messages = append(page.Messages, *s.messages[i])
	}

	return page, nil
}

func (s *MemoryStore) Like(ctx context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg, ok := s.byID[id]
	if !ok {
		return 0, fmt.Errorf("%w: %s", models.ErrNotFound, id)
	}
	msg.Likes++

	return msg.Likes, nil
}
