// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Request types

type VoteRequest struct {
	Option string `json:"option"`
}

type MessageRequest struct {
	Content string `json:"content"`
	Option  string `json:"option"`
}

// Response types

type VoteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

type MessagesResponse struct {
	Messages []Message `json:"messages"`
	Total    int       `json:"total"`
}

type LikeResponse struct {
	Success bool  `json:"success"`
	Likes   int64 `json:"likes"`
}

// Domain types

type OptionStats struct {
	Count      int64 `json:"count"`
	Percentage int   `json:"percentage"`
}

type TimelineItem struct {
	Option    string    `json:"option"`
	Timestamp time.Time `json:"timestamp"`
}

// Snapshot is a point-in-time view of the tally. Options holds an entry for
// every option of the poll, including those without votes.
type Snapshot struct {
	Total    int64                  `json:"total"`
	Options  map[string]OptionStats `json:"options"`
	Timeline []TimelineItem         `json:"timeline"`
}

type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Option    string    `json:"option"`
	Likes     int64     `json:"likes"`
	Timestamp time.Time `json:"timestamp"`
}

// MessagePage is one newest-first slice of the stored messages.
// Total counts every stored message, not just the page.
type MessagePage struct {
	Messages []Message
	Total    int
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
