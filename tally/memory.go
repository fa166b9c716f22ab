// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"context"
	"slices"
	"sync"

	"github.com/danielhkuo/twosevenths/models"
)

// MemoryStore keeps the tally in process memory.
type MemoryStore struct {
	cfg Config

	mu       sync.RWMutex
	counts   map[string]int64
	timeline []models.TimelineItem // oldest first
}

func NewMemoryStore(cfg Config) *MemoryStore {
	return &MemoryStore{
		cfg:    cfg,
		counts: make(map[string]int64, len(cfg.Options)),
	}
}

func (s *MemoryStore) RecordVote(ctx context.Context, option string) error {
	if err := s.cfg.check(option); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.counts[option]++

	if size := s.cfg.TimelineSize; size > 0 {
		s.timeline = append(s.timeline, models.TimelineItem{Option: option, Timestamp: s.cfg.now()})
		if n := len(s.timeline) - size; n > 0 {
			s.timeline = append(s.timeline[:0], s.timeline[n:]...)
		}
	}

	return nil
}

func (s *MemoryStore) Snapshot(ctx context.Context) (models.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return BuildSnapshot(s.cfg.Options, s.counts, slices.Clone(s.timeline)), nil
}
