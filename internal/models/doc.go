// Package models defines the domain entities for the PathFound course tracker.
//
// The JSON field names on [Course] and [Video] are the persisted wire format:
// courses are stored as a JSON array in the local store, so renaming a field
// is a breaking change for existing databases.
//
// Key Types:
//   - [Course] : An imported playlist with its videos and completion state
//   - [Video] : A single lesson with completion flag
package models
