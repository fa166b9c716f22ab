// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/twosevenths/middleware"
	"github.com/danielhkuo/twosevenths/models"
	"github.com/danielhkuo/twosevenths/service"
)

type VoteHandler struct {
	svc *service.Service
}

func NewVoteHandler(svc *service.Service) *VoteHandler {
	return &VoteHandler{svc: svc}
}

// Vote handles POST /api/vote
func (h *VoteHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.svc.Vote(r.Context(), req.Option); err != nil {
		writeServiceError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		Success: true,
		Message: "Vote recorded",
	})
}

// Stats handles GET /api/stats
func (h *VoteHandler) Stats(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.svc.Stats(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, snapshot)
}
