// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/danielhkuo/twosevenths/middleware"
	"github.com/danielhkuo/twosevenths/models"
	"github.com/danielhkuo/twosevenths/service"
)

type MessageHandler struct {
	svc *service.Service
}

func NewMessageHandler(svc *service.Service) *MessageHandler {
	return &MessageHandler{svc: svc}
}

// PostMessage handles POST /api/messages
func (h *MessageHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	var req models.MessageRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	msg, err := h.svc.PostMessage(r.Context(), req.Content, req.Option)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{
		Success: true,
		ID:      msg.ID,
	})
}

// ListMessages handles GET /api/messages?limit=&offset=
// Missing or malformed values fall back to the defaults; the store clamps the rest.
func (h *MessageHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	limit := queryInt(query.Get("limit"))
	offset := queryInt(query.Get("offset"))

	resp, err := h.svc.ListMessages(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// LikeMessage handles POST /api/messages/{id}/like
func (h *MessageHandler) LikeMessage(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	likes, err := h.svc.LikeMessage(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.LikeResponse{
		Success: true,
		Likes:   likes,
	})
}

func queryInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}
