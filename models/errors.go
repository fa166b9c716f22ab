// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "errors"

var (
	ErrInvalidOption  = errors.New("invalid option")
	ErrInvalidContent = errors.New("invalid content")
	ErrNotFound       = errors.New("message not found")

	// ErrUnavailable wraps storage failures. A store returning it has not
	// applied any part of the operation.
	ErrUnavailable = errors.New("storage unavailable")
)
