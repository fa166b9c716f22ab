// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"
	"log/slog"

	"github.com/danielhkuo/twosevenths/danmaku"
	"github.com/danielhkuo/twosevenths/models"
	"github.com/danielhkuo/twosevenths/tally"
)

// Service is the single owner of the tally and message stores. Votes and
// messages never change together, so each store serializes its own
// mutations and the service holds no lock.
type Service struct {
	tally    tally.Store
	messages danmaku.Store
}

func New(t tally.Store, m danmaku.Store) *Service {
	return &Service{tally: t, messages: m}
}

// Vote records one anonymous vote. Repeat votes are counted.
func (s *Service) Vote(ctx context.Context, option string) error {
	if err := s.tally.RecordVote(ctx, option); err != nil {
		return err
	}
	slog.Debug("vote recorded", "option", option)
	return nil
}

func (s *Service) Stats(ctx context.Context) (models.Snapshot, error) {
	return s.tally.Snapshot(ctx)
}

func (s *Service) PostMessage(ctx context.Context, content, option string) (models.Message, error) {
	msg, err := s.messages.Append(ctx, content, option)
	if err != nil {
		return models.Message{}, err
	}
	slog.Info("message posted", "message_id", msg.ID, "option", msg.Option)
	return msg, nil
}

func (s *Service) ListMessages(ctx context.Context, limit, offset int) (models.MessagesResponse, error) {
	page, err := s.messages.List(ctx, limit, offset)
	if err != nil {
		return models.MessagesResponse{}, err
	}
	return models.MessagesResponse{
		Messages: page.Messages,
		Total:    page.Total,
	}, nil
}

func (s *Service) LikeMessage(ctx context.Context, id string) (int64, error) {
	return s.messages.Like(ctx, id)
}
