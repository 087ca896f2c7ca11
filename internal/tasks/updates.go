package tasks

import (
	"fmt"

	"github.com/desertthunder/pathfound/internal/models"
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	ExtractID Phase = iota
	FetchTitle
	FetchPlaylist
	SaveCourse
	DeleteCourse
	PurgeNotes
	ExportCourse
)

func (p Phase) String() string {
	switch p {
	case ExtractID:
		return "extract_id"
	case FetchTitle:
		return "fetch_title"
	case FetchPlaylist:
		return "fetch_playlist"
	case SaveCourse:
		return "save_course"
	case DeleteCourse:
		return "delete_course"
	case PurgeNotes:
		return "purge_notes"
	case ExportCourse:
		return "export_course"
	default:
		return ""
	}
}

func extractingUpdate(rawURL string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExtractID,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Reading playlist URL: %s", rawURL),
	}
}

func fetchingTitleUpdate(playlistID string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchTitle,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Looking up playlist title (%s)...", playlistID),
	}
}

func fetchingPlaylistUpdate(playlistID string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchPlaylist,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Fetching playlist %s from YouTube...", playlistID),
	}
}

func savingCourseUpdate(course *models.Course) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SaveCourse,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Saving course: %s (%d lessons)", course.CourseName, len(course.PlayList)),
		Data:    course,
	}
}

func savedCourseUpdate(course *models.Course) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SaveCourse,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Course saved: %s", course.CourseName),
		Data:    course,
	}
}

func deletingCourseUpdate(name string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   DeleteCourse,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Deleting course: %s", name),
	}
}

func purgingNotesUpdate(step, total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   PurgeNotes,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Purging notes...", step, total),
	}
}

func exportingCourseUpdate(step, total int, name string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportCourse,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Exporting: %s...", step, total, name),
	}
}

func exportCompletedUpdate(step, total int, name string, filesCount int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportCourse,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✓ %s (%d files)", step, total, name, filesCount),
	}
}

func exportFailedUpdate(step, total int, name string, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExportCourse,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✗ %s: %v", step, total, name, err),
	}
}
