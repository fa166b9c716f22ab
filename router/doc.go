// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the TwoSevenths API.

# Route Registration

NewRouter wires the handlers onto an http.ServeMux and wraps it in CORS:

	handler := router.NewRouter(svc, cfg)

# Endpoints

Every API route is served under both /api and /api/v1:

	POST {base}/vote                - Record a vote
	GET  {base}/stats               - Live tally and recent votes
	POST {base}/messages            - Post a danmaku message
	GET  {base}/messages            - List messages, newest first
	POST {base}/messages/{id}/like  - Like a message

Plus:

	GET /health - Liveness probe
	GET /       - Banner
*/
package router
