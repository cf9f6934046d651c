// Package catalog loads the static play catalog and indexes it for lookup.
//
// The catalog is a read-only hierarchy:
//
//	Playbook -> FormationGroup -> Formation -> Play
//
// A Store wraps a Source and loads it at most once. Concurrent Load calls
// share a single in-flight fetch; a failed load is not cached, so the next
// call fetches again. There is no built-in retry or backoff.
//
// # Validation
//
// The fetched JSON is unified against an embedded CUE schema (schema.cue)
// before it is decoded. Structural problems, duplicate play ids and duplicate
// formation slugs inside a playbook all surface as *LoadError.
//
// Values returned from a Catalog must be treated as read-only; no mutation
// API is exposed.
package catalog
