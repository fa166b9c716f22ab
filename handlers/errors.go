// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/twosevenths/middleware"
	"github.com/danielhkuo/twosevenths/models"
)

// writeServiceError maps a service error onto its HTTP status.
// Validation messages are safe to return; storage errors are logged and hidden.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidOption), errors.Is(err, models.ErrInvalidContent):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Message not found")
	case errors.Is(err, models.ErrUnavailable):
		slog.Error("storage unavailable", "method", r.Method, "path", r.URL.Path, "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Storage unavailable, try again")
	default:
		slog.Error("unexpected service error", "method", r.Method, "path", r.URL.Path, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Internal error")
	}
}
