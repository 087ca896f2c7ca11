package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/pathfound/internal/models"
)

var (
	_ list.Item = courseItem{}
	_ list.Item = lessonItem{}
)

// courseItem wraps [models.Course] to implement [list.Item].
type courseItem struct {
	course models.Course
}

func (i courseItem) FilterValue() string { return i.course.CourseName }
func (i courseItem) Title() string       { return i.course.CourseName }
func (i courseItem) Description() string {
	return fmt.Sprintf("%d lessons • %d%% complete", len(i.course.PlayList), i.course.Progress())
}

// lessonItem wraps [models.Video] to implement [list.Item].
//
// FilterValue is the lesson title, so the list's live filter is the
// title search.
type lessonItem struct {
	video models.Video
}

func (i lessonItem) FilterValue() string { return i.video.Title }
func (i lessonItem) Title() string {
	if i.video.Complete {
		return fmt.Sprintf("✓ %s", i.video.Title)
	}
	return fmt.Sprintf("○ %s", i.video.Title)
}
func (i lessonItem) Description() string {
	if i.video.Complete {
		return "completed"
	}
	return "not started"
}
