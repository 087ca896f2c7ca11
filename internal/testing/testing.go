// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/desertthunder/pathfound/internal/models"
)

// MockPlaylistSource is a test double for [services.PlaylistSource]
type MockPlaylistSource struct {
	Videos   []models.Video
	Title    string
	FetchErr error
	TitleErr error

	// FetchCalls records the playlist IDs requested
	FetchCalls []string
}

func (m *MockPlaylistSource) FetchPlaylist(ctx context.Context, playlistID string) ([]models.Video, error) {
	m.FetchCalls = append(m.FetchCalls, playlistID)
	if m.FetchErr != nil {
		return nil, m.FetchErr
	}
	videos := make([]models.Video, len(m.Videos))
	copy(videos, m.Videos)
	return videos, nil
}

func (m *MockPlaylistSource) PlaylistTitle(ctx context.Context, playlistID string) (string, error) {
	if m.TitleErr != nil {
		return "", m.TitleErr
	}
	if m.Title == "" {
		return "Untitled Playlist", nil
	}
	return m.Title, nil
}

func (m *MockPlaylistSource) Name() string { return "mock" }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("Directory does not exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("Path is not a directory: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
