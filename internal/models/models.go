// package models defines the data model for the course tracking service
package models

import (
	"fmt"
	"math"
	"strings"

	"github.com/desertthunder/pathfound/internal/shared"
)

// Video represents a single lesson in a course.
type Video struct {
	VideoID     string `json:"videoId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Complete    bool   `json:"complete"`
}

// Course represents an imported playlist with per-video completion state.
type Course struct {
	CourseName string  `json:"courseName"`
	PlayList   []Video `json:"playList"`
}

// Validate checks that the course has a name and that every video has an ID.
func (c *Course) Validate() error {
	if strings.TrimSpace(c.CourseName) == "" {
		return fmt.Errorf("%w: course name is required", shared.ErrInvalidInput)
	}
	for i, video := range c.PlayList {
		if video.VideoID == "" {
			return fmt.Errorf("%w: video %d has no ID", shared.ErrInvalidInput, i)
		}
	}
	return nil
}

// CompletedCount returns the number of completed videos.
func (c *Course) CompletedCount() int {
	count := 0
	for _, video := range c.PlayList {
		if video.Complete {
			count++
		}
	}
	return count
}

// Progress returns the completion percentage rounded to the nearest integer.
// An empty course reports 0.
func (c *Course) Progress() int {
	if len(c.PlayList) == 0 {
		return 0
	}
	return int(math.Round(100 * float64(c.CompletedCount()) / float64(len(c.PlayList))))
}

// FindVideo returns a pointer to the video with the given ID, or nil.
func (c *Course) FindVideo(videoID string) *Video {
	for i := range c.PlayList {
		if c.PlayList[i].VideoID == videoID {
			return &c.PlayList[i]
		}
	}
	return nil
}

// FilterVideos returns the videos whose titles contain the query,
// case-insensitively. An empty query matches everything.
func (c *Course) FilterVideos(query string) []Video {
	if query == "" {
		return c.PlayList
	}
	query = strings.ToLower(query)
	var matched []Video
	for _, video := range c.PlayList {
		if strings.Contains(strings.ToLower(video.Title), query) {
			matched = append(matched, video)
		}
	}
	return matched
}
