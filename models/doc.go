// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - VoteRequest: option
  - MessageRequest: content, option

# Response Types

  - VoteResponse: success, message
  - MessageResponse: success, id
  - MessagesResponse: messages, total
  - LikeResponse: success, likes
  - ErrorResponse: error, message

# Domain Types

  - OptionSet: the closed list of poll choices
  - Snapshot: total, per-option count and percentage, recent vote timeline
  - Message: a danmaku comment with its like counter
  - MessagePage: one page of messages plus the stored total

# Errors

Stores and the service wrap these sentinels with %w; match them with
errors.Is:

	ErrInvalidOption  - option outside the OptionSet
	ErrInvalidContent - empty or over-long message content
	ErrNotFound       - like on an unknown message id
	ErrUnavailable    - storage failure, nothing was applied
*/
package models
