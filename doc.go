// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the TwoSevenths API server.

TwoSevenths runs a live poll on how to split a 2/7 course schedule
(double, single or alternate). Anyone can vote as often as they like and
post short danmaku comments tagged with their pick, which others can like.

# Starting the Server

With no configuration the server keeps everything in memory:

	go run .

Or with flags:

	go run . -p 3318 -t sqlite -d "file:twosevenths.db"

A .env file in the working directory is loaded first, if present.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): memory, sqlite, postgres or redis (default: memory)
  - DATABASE_URL (-d): DSN or URL, required unless memory
  - POLL_OPTIONS (-options): Comma separated option labels
  - MAX_MESSAGE_LENGTH (-max-message-length): default 200
  - DEFAULT_LIST_LIMIT (-default-limit): default 20
  - MAX_LIST_LIMIT (-max-limit): default 100
  - TIMELINE_SIZE (-timeline): recent votes in stats, default 100
  - ALLOWED_ORIGINS (-origins): CORS allow-list, empty reflects any origin

# Architecture

  - tally: vote counts and percentages (memory, SQL, Redis)
  - danmaku: comment storage, listing and likes (memory, SQL, Redis)
  - service: the operations the API exposes
  - backend: picks the store pair for the configured database
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Domain and request/response types
  - db: SQL connection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
