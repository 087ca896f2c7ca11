// YouTube Data API v3 [PlaylistSource] implementation
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/desertthunder/pathfound/internal/models"
	"github.com/desertthunder/pathfound/internal/shared"
	"golang.org/x/time/rate"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const (
	defaultPageSize  int64   = 50
	defaultRateLimit float64 = 5.0
)

// YouTubeService implements [PlaylistSource] against the YouTube Data API.
type YouTubeService struct {
	yt       *youtube.Service
	limiter  *rate.Limiter
	pageSize int64
}

// NewYouTubeService creates a YouTube client from the importer config.
//
// Credentials come in through opts: option.WithAPIKey for key-based access
// or option.WithHTTPClient wrapping an OAuth token source.
func NewYouTubeService(ctx context.Context, cfg shared.ImporterConfig, opts ...option.ClientOption) (*YouTubeService, error) {
	yt, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube client: %w", err)
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 || pageSize > 50 {
		pageSize = defaultPageSize
	}
	limit := cfg.RateLimit
	if limit <= 0 {
		limit = defaultRateLimit
	}

	return &YouTubeService{
		yt:       yt,
		limiter:  rate.NewLimiter(rate.Limit(limit), 1),
		pageSize: pageSize,
	}, nil
}

// Name returns the provider name.
func (y *YouTubeService) Name() string {
	return "YouTube"
}

// FetchPlaylist retrieves all videos in a playlist via playlistItems.list,
// following nextPageToken until exhausted.
//
// Pages are fetched strictly in order. The limiter wait doubles as the
// cancellation point between pages, so an aborted context never produces a
// partially imported course.
func (y *YouTubeService) FetchPlaylist(ctx context.Context, playlistID string) ([]models.Video, error) {
	var videos []models.Video
	pageToken := ""

	for {
		if err := y.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("import cancelled: %w", err)
		}

		call := y.yt.PlaylistItems.List([]string{"snippet"}).
			PlaylistId(playlistID).
			MaxResults(y.pageSize).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, wrapAPIError(err, playlistID)
		}

		for _, item := range resp.Items {
			if item.Snippet == nil || item.Snippet.ResourceId == nil {
				continue
			}
			videos = append(videos, models.Video{
				VideoID:     item.Snippet.ResourceId.VideoId,
				Title:       item.Snippet.Title,
				Description: item.Snippet.Description,
			})
		}

		if resp.NextPageToken == "" {
			return videos, nil
		}
		pageToken = resp.NextPageToken
	}
}

// PlaylistTitle fetches the playlist's title via playlists.list.
func (y *YouTubeService) PlaylistTitle(ctx context.Context, playlistID string) (string, error) {
	if err := y.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("lookup cancelled: %w", err)
	}

	resp, err := y.yt.Playlists.List([]string{"snippet"}).
		Id(playlistID).
		Context(ctx).
		Do()
	if err != nil {
		return "", wrapAPIError(err, playlistID)
	}
	if len(resp.Items) == 0 || resp.Items[0].Snippet == nil {
		return "", fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, playlistID)
	}
	return resp.Items[0].Snippet.Title, nil
}

func wrapAPIError(err error, playlistID string) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == 404 {
		return fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, playlistID)
	}
	return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
}
