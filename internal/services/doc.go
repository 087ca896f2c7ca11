// Package services wraps the YouTube Data API for playlist imports.
//
// [YouTubeService] implements [PlaylistSource] over the official
// google.golang.org/api client. Page requests are paced by a rate limiter
// and honor context cancellation between pages, so a slow import can be
// aborted cleanly without a partial course ever being committed.
//
// Authentication is credential-agnostic: callers inject either an API key or
// an OAuth-authenticated HTTP client via client options.
package services
