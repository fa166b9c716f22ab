// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package danmaku stores the short comments viewers post alongside their
vote, and counts likes on them.

Content is trimmed and must be 1 to Config.MaxLength characters; the
option must belong to the poll. Ids, timestamps and the initial like
count are assigned by the store. Listing is newest first and page sizes
are clamped, never rejected:

	page, err := store.List(ctx, 0, 0)   // DefaultLimit newest messages
	page, err = store.List(ctx, 500, 20) // at most MaxLimit, skipping 20

Likes are atomic per message. Liking an unknown id returns
models.ErrNotFound and creates nothing.
*/
package danmaku
