// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	if err := cliparse.LoadEnv(".env"); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags and Environment Variables

Flags fall back to environment variables, then to defaults:

	-p                   PORT                (3318)
	-t                   DATABASE_TYPE       (memory; sqlite, postgres, redis)
	-d                   DATABASE_URL        (required unless memory)
	-options             POLL_OPTIONS        (double,single,alternate)
	-max-message-length  MAX_MESSAGE_LENGTH  (200)
	-default-limit       DEFAULT_LIST_LIMIT  (20)
	-max-limit           MAX_LIST_LIMIT      (100)
	-timeline            TIMELINE_SIZE       (100, 0 disables)
	-origins             ALLOWED_ORIGINS     (empty allows any origin)

CLI flags take precedence over environment variables, and environment
variables take precedence over a .env file.

# Validation

ParseFlags returns an error when:

  - the database type is unknown, or a URL is missing for a non-memory type
  - the option list has empty or duplicate labels
  - the message length or default limit is not positive
  - the max limit is below the default limit
*/
package cliparse
