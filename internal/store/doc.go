// Package store implements the key-value persistence layer backing the repositories.
//
// All application state (courses, notes, credentials) is stored as JSON strings
// under well-known keys in a single SQLite table, mirroring a browser-style
// local store. The [KV] interface decouples callers from the backing engine:
//   - [SQLiteKV] : durable store over the kv table
//   - [MemoryKV] : in-memory double for tests
package store
