// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the TwoSevenths API.

# Handler Types

Handlers are thin adapters over *service.Service:

  - VoteHandler: vote submission and live stats
  - MessageHandler: danmaku posting, listing and likes

	voteHandler := handlers.NewVoteHandler(svc)

# Endpoints

	POST /api/vote                  → Vote (200)
	GET  /api/stats                 → Stats (200)
	POST /api/messages              → PostMessage (201)
	GET  /api/messages?limit&offset → ListMessages (200)
	POST /api/messages/{id}/like    → LikeMessage (200)

# Errors

Service errors are mapped in one place:

	models.ErrInvalidOption, models.ErrInvalidContent → 400
	models.ErrNotFound                               → 404
	models.ErrUnavailable                            → 503

Malformed JSON is a 400. Listing never fails on bad query input; a
missing or malformed limit or offset selects the default.
*/
package handlers
