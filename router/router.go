// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/twosevenths/cliparse"
	"github.com/danielhkuo/twosevenths/handlers"
	"github.com/danielhkuo/twosevenths/middleware"
	"github.com/danielhkuo/twosevenths/service"
)

// Route prefixes. The unversioned one is what the browser client calls.
var apiBases = []string{"/api", "/api/v1"}

func NewRouter(svc *service.Service, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	voteHandler := handlers.NewVoteHandler(svc)
	messageHandler := handlers.NewMessageHandler(svc)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	for _, base := range apiBases {
		// Votes
		mux.HandleFunc("POST "+base+"/vote", middleware.WithLogging(voteHandler.Vote))
		mux.HandleFunc("GET "+base+"/stats", middleware.WithLogging(voteHandler.Stats))

		// Danmaku
		mux.HandleFunc("POST "+base+"/messages", middleware.WithLogging(messageHandler.PostMessage))
		mux.HandleFunc("GET "+base+"/messages", middleware.WithLogging(messageHandler.ListMessages))
		mux.HandleFunc("POST "+base+"/messages/{id}/like", middleware.WithLogging(messageHandler.LikeMessage))
	}

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("twosevenths API v1"))
	})

	return middleware.CORS(cfg.AllowedOrigins)(mux)
}
