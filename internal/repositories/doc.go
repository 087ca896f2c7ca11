// Package repositories implements persistence for all domain entities over the key-value store.
//
// Courses are stored together as one JSON array under a single key, so every
// mutation is a read-modify-write of the whole collection. Notes live under
// per-video keys so deleting a course can leave its notes intact.
//
// Key Implementations:
//   - [CourseRepository] : Course collection with per-video completion updates
//   - [NotesRepository] : Free-form notes keyed by video ID
//   - [CredentialRepository] : API key and OAuth token storage
//
// A corrupt courses document is treated as empty rather than fatal: the
// repository logs a warning and lets the next write replace it.
package repositories
