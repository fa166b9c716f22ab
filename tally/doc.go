// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally counts anonymous votes over a closed set of options.

# Stores

Three Store implementations share the same semantics:

  - MemoryStore: counts and timeline behind one RWMutex
  - SQLStore: one vote row per vote, counted with GROUP BY
  - RedisStore: HINCRBY on a hash plus a capped list, in one Lua script

	store := tally.NewMemoryStore(tally.Config{
		Options:      models.DefaultOptionSet(),
		TimelineSize: 100,
	})

A vote for an option outside the set fails with models.ErrInvalidOption
and changes nothing. A snapshot always lists every option, and its total
equals the sum of the counts.

# Percentages

Percentages are whole numbers rounded half away from zero:

	tally.Percentage(1, 8) // 13
	tally.Percentage(7, 8) // 88
	tally.Percentage(0, 0) // 0

They are rounded independently and need not sum to 100.
*/
package tally
