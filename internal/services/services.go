// package services defines interface PlaylistSource for fetching playlist contents
package services

import (
	"context"
	"fmt"
	"regexp"

	"github.com/desertthunder/pathfound/internal/models"
	"github.com/desertthunder/pathfound/internal/shared"
)

// PlaylistSource defines the interface for providers that can resolve a
// playlist ID into an ordered list of videos.
type PlaylistSource interface {
	// FetchPlaylist retrieves every video in the playlist, in playlist order.
	// Any page failure aborts the whole fetch with no partial result.
	FetchPlaylist(ctx context.Context, playlistID string) ([]models.Video, error)

	// PlaylistTitle returns the playlist's own title, used as the default
	// course name when the user doesn't supply one.
	PlaylistTitle(ctx context.Context, playlistID string) (string, error)

	// Name returns the name of the provider (e.g., "YouTube")
	Name() string
}

var playlistIDPattern = regexp.MustCompile(`[?&]list=([a-zA-Z0-9_-]+)`)

// ExtractPlaylistID pulls the playlist ID out of a YouTube URL.
//
// Any URL carrying a list query parameter works, including watch URLs.
// A URL without one (e.g. a bare watch?v= link) is rejected.
func ExtractPlaylistID(rawURL string) (string, error) {
	matches := playlistIDPattern.FindStringSubmatch(rawURL)
	if matches == nil {
		return "", fmt.Errorf("%w: no list parameter in %q", shared.ErrInvalidPlaylistURL, rawURL)
	}
	return matches[1], nil
}

// WatchURL returns the youtube.com watch URL for a video.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
