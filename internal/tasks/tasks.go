// package tasks implements course import, delete and export operations.
package tasks

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/desertthunder/pathfound/internal/formatter"
	"github.com/desertthunder/pathfound/internal/models"
	"github.com/desertthunder/pathfound/internal/repositories"
	"github.com/desertthunder/pathfound/internal/services"
	"github.com/desertthunder/pathfound/internal/shared"
)

// CourseEngine orchestrates course operations over the repositories and the
// playlist source.
type CourseEngine struct {
	courses *repositories.CourseRepository
	notes   *repositories.NotesRepository
	source  services.PlaylistSource
}

// NewCourseEngine creates a new CourseEngine with the provided dependencies.
// The source may be nil for engines that only operate on stored data.
func NewCourseEngine(courses *repositories.CourseRepository, notes *repositories.NotesRepository, source services.PlaylistSource) *CourseEngine {
	return &CourseEngine{
		courses: courses,
		notes:   notes,
		source:  source,
	}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *CourseEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
		// Sent successfully
	default:
		// Channel full or closed, skip this update
	}
}

// CreateCourse imports a playlist URL as a new course.
//
// The playlist ID is extracted first so a malformed URL fails before any
// network traffic. When name is empty the playlist's own title is used. The
// fetch is all-or-nothing: a page failure aborts the import and nothing is
// appended to the store.
func (e *CourseEngine) CreateCourse(ctx context.Context, progress chan<- ProgressUpdate, rawURL, name string) (*models.Course, error) {
	if e.source == nil {
		return nil, fmt.Errorf("%w: playlist source not initialized", shared.ErrMissingAPIKey)
	}

	e.sendProgress(progress, extractingUpdate(rawURL))
	playlistID, err := services.ExtractPlaylistID(rawURL)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		e.sendProgress(progress, fetchingTitleUpdate(playlistID))
		name, err = e.source.PlaylistTitle(ctx, playlistID)
		if err != nil {
			return nil, err
		}
	}

	e.sendProgress(progress, fetchingPlaylistUpdate(playlistID))
	videos, err := e.source.FetchPlaylist(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	course := &models.Course{
		CourseName: name,
		PlayList:   videos,
	}

	e.sendProgress(progress, savingCourseUpdate(course))
	if err := e.courses.Append(course); err != nil {
		return nil, err
	}

	e.sendProgress(progress, savedCourseUpdate(course))
	return course, nil
}

// DeleteCourse removes a stored course.
//
// Notes survive by default so re-importing the same playlist finds them
// again; purgeNotes removes them along with the course.
func (e *CourseEngine) DeleteCourse(progress chan<- ProgressUpdate, name string, purgeNotes bool) error {
	course, err := e.courses.Find(name)
	if err != nil {
		return err
	}

	e.sendProgress(progress, deletingCourseUpdate(name))
	if err := e.courses.Delete(name); err != nil {
		return err
	}

	if purgeNotes {
		for i, video := range course.PlayList {
			e.sendProgress(progress, purgingNotesUpdate(i+1, len(course.PlayList)))
			if err := e.notes.Delete(video.VideoID); err != nil {
				return fmt.Errorf("course deleted but notes purge failed: %w", err)
			}
		}
	}

	return nil
}

// ExportCourse writes a single stored course to disk in the given format.
// Returns the files created.
func (e *CourseEngine) ExportCourse(progress chan<- ProgressUpdate, name, format, outputPath string) ([]string, error) {
	course, err := e.courses.Find(name)
	if err != nil {
		return nil, err
	}

	e.sendProgress(progress, exportingCourseUpdate(1, 1, name))
	files, err := e.writeCourse(course, format, outputPath)
	if err != nil {
		e.sendProgress(progress, exportFailedUpdate(1, 1, name, err))
		return nil, err
	}

	e.sendProgress(progress, exportCompletedUpdate(1, 1, name, len(files)))
	return files, nil
}

// ExportNotes writes every saved note to a single Markdown file, grouped by
// course in lesson order.
func (e *CourseEngine) ExportNotes(outputPath string) (string, error) {
	courses, err := e.courses.List()
	if err != nil {
		return "", err
	}
	notes, err := e.notes.All()
	if err != nil {
		return "", err
	}
	return formatter.WriteNotesExport(courses, notes, outputPath)
}

// writeCourse dispatches to the formatter for one course.
func (e *CourseEngine) writeCourse(course *models.Course, format, outputPath string) ([]string, error) {
	switch format {
	case "csv":
		res, err := formatter.WriteCSVExport(course, outputPath)
		if err != nil {
			return nil, err
		}
		return []string{res.LessonsFile, res.MetadataFile}, nil

	case "markdown":
		notes, err := e.notes.All()
		if err != nil {
			return nil, err
		}
		res, err := formatter.WriteMarkdownExport(course, notes, outputPath)
		if err != nil {
			return nil, err
		}
		return res.Files, nil

	case "txt":
		path, err := formatter.WriteTextExport(course, outputPath)
		if err != nil {
			return nil, err
		}
		return []string{path}, nil

	case "json", "":
		path, err := formatter.WriteJSONExport(course, outputPath)
		if err != nil {
			return nil, err
		}
		return []string{path}, nil

	default:
		return nil, fmt.Errorf("%w: unknown export format %q", shared.ErrInvalidArgument, format)
	}
}

// courseOutputPath picks the per-course output target inside the bulk
// export directory.
func courseOutputPath(outputDir, format string, course *models.Course) string {
	slug := formatter.Slug(course.CourseName)
	switch format {
	case "csv":
		return filepath.Join(outputDir, slug)
	case "markdown":
		return filepath.Join(outputDir, slug)
	case "txt":
		return filepath.Join(outputDir, slug+"_lessons.txt")
	default:
		return filepath.Join(outputDir, slug+".json")
	}
}
