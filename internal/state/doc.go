// Package state reconciles OpenLP polls into a stable view of the live item.
//
// # Overview
//
// The remote reports its live item id and slide index on every poll, but the
// item details come from two further requests that can lag behind. Tracker
// only commits an item once it has been fetched in full and the reported
// slide fits it, so the overlay never sees an out-of-range slide and never
// swaps a settled item for a half-propagated one.
//
// # Reconciliation
//
// Each Refresh runs one pass:
//
//  1. Poll the remote. On failure nothing changes.
//  2. Record the blank status (desktop, black, theme) from the poll.
//  3. If the item id changed, fetch it. Commit it with no slide when it has
//     no slides, with the reported slide when that slide exists, otherwise
//     keep the previous item and wait for the next poll.
//  4. If only the slide changed, move to it when it exists in the current
//     item; an item without slides always has NoSlide.
//
// # Concurrency Model
//
// Tracker is driven by a single loop and is not safe for concurrent use.
// Display returns a copy, so callers may hold on to it across ticks.
package state
