// Package tasks implements course lifecycle operations.
//
// The core abstraction is [CourseEngine], which orchestrates imports, deletes,
// and exports over the repositories and the playlist source. Operations emit
// progress updates via channels for non-blocking status reporting to CLI/UI
// layers.
package tasks
