// Package store provides SQLite-backed storage for the playsheet.
//
// Tables:
//   - my_plays: plays the user has put on the playsheet
//   - game_context: the single down/distance/field-position record
//   - game_sessions, play_performance: post-game review data
//
// # Schema generations
//
// The schema generation is kept in PRAGMA user_version. Each generation is
// an additive step applied in its own transaction, in order, and only the
// steps above the stored generation run:
//
//  1. my_plays, game_sessions, play_performance
//  2. game_context
//  3. my_plays.side (nullable; rows from earlier generations keep NULL)
//
// A database written by a newer binary is rejected.
//
// # Live queries
//
// Watch registers a query that is evaluated once immediately and again
// after every successful write, before the write returns. Queries order
// rows by id so repeated evaluations of the same state are identical.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// A Store assumes a single logical writer. There is no locking against
// other processes writing the same file beyond SQLite's own.
package store
