package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/desertthunder/pathfound/internal/shared"
	"google.golang.org/api/option"
)

// newTestService points the YouTube client at a local test server.
//
// The real client refuses an API key over a custom HTTP client, so the test
// server is injected via the endpoint option instead.
func newTestService(t *testing.T, handler http.HandlerFunc) *YouTubeService {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc, err := NewYouTubeService(context.Background(),
		shared.ImporterConfig{PageSize: 50, RateLimit: 1000},
		option.WithEndpoint(server.URL),
		option.WithAPIKey("test-key"),
	)
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}
	return svc
}

func playlistItemsPage(videoIDs []string, nextToken string) map[string]any {
	items := make([]map[string]any, len(videoIDs))
	for i, id := range videoIDs {
		items[i] = map[string]any{
			"snippet": map[string]any{
				"title":       "Lesson " + id,
				"description": "About " + id,
				"resourceId":  map[string]any{"videoId": id},
			},
		}
	}
	page := map[string]any{"items": items}
	if nextToken != "" {
		page["nextPageToken"] = nextToken
	}
	return page
}

func TestFetchPlaylist(t *testing.T) {
	t.Run("single page", func(t *testing.T) {
		svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("playlistId"); got != "PL123" {
				t.Errorf("unexpected playlistId: %s", got)
			}
			json.NewEncoder(w).Encode(playlistItemsPage([]string{"a", "b", "c"}, ""))
		})

		videos, err := svc.FetchPlaylist(context.Background(), "PL123")
		if err != nil {
			t.Fatalf("failed to fetch: %v", err)
		}
		if len(videos) != 3 {
			t.Fatalf("expected 3 videos, got %d", len(videos))
		}
		if videos[0].VideoID != "a" || videos[2].VideoID != "c" {
			t.Errorf("videos out of order: %v", videos)
		}
		if videos[0].Title != "Lesson a" || videos[0].Description != "About a" {
			t.Errorf("snippet fields not mapped: %+v", videos[0])
		}
		if videos[0].Complete {
			t.Error("imported videos should start incomplete")
		}
	})

	t.Run("follows page tokens in order", func(t *testing.T) {
		page1 := make([]string, 50)
		for i := range page1 {
			page1[i] = fmt.Sprintf("p1-%02d", i)
		}
		page2 := make([]string, 10)
		for i := range page2 {
			page2[i] = fmt.Sprintf("p2-%02d", i)
		}

		svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Query().Get("pageToken") {
			case "":
				json.NewEncoder(w).Encode(playlistItemsPage(page1, "tokA"))
			case "tokA":
				json.NewEncoder(w).Encode(playlistItemsPage(page2, ""))
			default:
				t.Errorf("unexpected page token: %s", r.URL.Query().Get("pageToken"))
				http.Error(w, "bad token", http.StatusBadRequest)
			}
		})

		videos, err := svc.FetchPlaylist(context.Background(), "PL123")
		if err != nil {
			t.Fatalf("failed to fetch: %v", err)
		}
		if len(videos) != 60 {
			t.Fatalf("expected 60 videos, got %d", len(videos))
		}
		if videos[0].VideoID != "p1-00" || videos[49].VideoID != "p1-49" || videos[50].VideoID != "p2-00" {
			t.Error("pages not flattened in order")
		}
	})

	t.Run("empty playlist", func(t *testing.T) {
		svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(playlistItemsPage(nil, ""))
		})

		videos, err := svc.FetchPlaylist(context.Background(), "PL123")
		if err != nil {
			t.Fatalf("failed to fetch: %v", err)
		}
		if len(videos) != 0 {
			t.Errorf("expected no videos, got %d", len(videos))
		}
	})

	t.Run("page failure aborts whole fetch", func(t *testing.T) {
		svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("pageToken") == "" {
				json.NewEncoder(w).Encode(playlistItemsPage([]string{"a"}, "tokA"))
				return
			}
			http.Error(w, `{"error":{"code":500,"message":"boom"}}`, http.StatusInternalServerError)
		})

		videos, err := svc.FetchPlaylist(context.Background(), "PL123")
		if !errors.Is(err, shared.ErrAPIRequest) {
			t.Errorf("expected ErrAPIRequest, got %v", err)
		}
		if videos != nil {
			t.Errorf("expected no partial result, got %d videos", len(videos))
		}
	})

	t.Run("missing playlist", func(t *testing.T) {
		svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":{"code":404,"message":"playlist not found"}}`, http.StatusNotFound)
		})

		_, err := svc.FetchPlaylist(context.Background(), "PLgone")
		if !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound, got %v", err)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(playlistItemsPage([]string{"a"}, ""))
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := svc.FetchPlaylist(ctx, "PL123"); err == nil {
			t.Error("expected error from cancelled context")
		}
	})
}

func TestPlaylistTitle(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			if !strings.Contains(r.URL.Path, "playlists") {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			json.NewEncoder(w).Encode(map[string]any{
				"items": []map[string]any{
					{"snippet": map[string]any{"title": "Go Course"}},
				},
			})
		})

		title, err := svc.PlaylistTitle(context.Background(), "PL123")
		if err != nil {
			t.Fatalf("failed to fetch title: %v", err)
		}
		if title != "Go Course" {
			t.Errorf("unexpected title: %s", title)
		}
	})

	t.Run("no items", func(t *testing.T) {
		svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"items": []map[string]any{}})
		})

		_, err := svc.PlaylistTitle(context.Background(), "PLgone")
		if !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound, got %v", err)
		}
	})
}
