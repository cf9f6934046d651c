// Package domain provides the playsheet value types shared by every other
// package: sides, playsheet entries and their patches, tag sets, defensive
// adjustments, the game context singleton and the situation taxonomy.
//
// This package contains types and pure helpers only. It imports nothing
// internal, so catalog, store, search and selection can all depend on it.
//
// Key design constraints:
//   - TagSet is the only representation of tags (ordered, duplicate-free)
//   - Entry.Rating uses 0 for "no rating"; valid ratings are 1..5
//   - All JSON tags use snake_case
package domain
