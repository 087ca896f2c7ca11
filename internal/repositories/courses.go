package repositories

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/pathfound/internal/models"
	"github.com/desertthunder/pathfound/internal/shared"
	"github.com/desertthunder/pathfound/internal/store"
)

// CourseRepository persists the course collection in the key-value store.
type CourseRepository struct {
	kv     store.KV
	logger *log.Logger
}

// NewCourseRepository creates a [CourseRepository] backed by the given store.
func NewCourseRepository(kv store.KV) *CourseRepository {
	return &CourseRepository{kv: kv, logger: shared.NewLogger(os.Stderr)}
}

// WithLogger replaces the repository's logger and returns the repository.
func (r *CourseRepository) WithLogger(logger *log.Logger) *CourseRepository {
	r.logger = logger
	return r
}

// List returns all stored courses.
//
// A missing key yields an empty slice. A document that fails to decode is
// logged and treated as empty so a bad write can't brick the whole app.
func (r *CourseRepository) List() ([]models.Course, error) {
	raw, found, err := r.kv.Get(store.KeyCourses)
	if err != nil {
		return nil, fmt.Errorf("failed to load courses: %w", err)
	}
	if !found {
		return []models.Course{}, nil
	}

	var courses []models.Course
	if err := json.Unmarshal([]byte(raw), &courses); err != nil {
		r.logger.Warn("course data is corrupt, starting fresh", "error", err)
		return []models.Course{}, nil
	}
	return courses, nil
}

// Find returns the course with the given name.
func (r *CourseRepository) Find(name string) (*models.Course, error) {
	courses, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range courses {
		if courses[i].CourseName == name {
			return &courses[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", shared.ErrCourseNotFound, name)
}

// Append adds a new course to the collection.
// Course names are unique; adding a duplicate fails.
func (r *CourseRepository) Append(course *models.Course) error {
	if err := course.Validate(); err != nil {
		return err
	}

	courses, err := r.List()
	if err != nil {
		return err
	}
	for _, existing := range courses {
		if existing.CourseName == course.CourseName {
			return fmt.Errorf("%w: %s", shared.ErrDuplicateCourse, course.CourseName)
		}
	}

	return r.save(append(courses, *course))
}

// Delete removes the course with the given name.
func (r *CourseRepository) Delete(name string) error {
	courses, err := r.List()
	if err != nil {
		return err
	}

	remaining := courses[:0]
	found := false
	for _, course := range courses {
		if course.CourseName == name {
			found = true
			continue
		}
		remaining = append(remaining, course)
	}
	if !found {
		return fmt.Errorf("%w: %s", shared.ErrCourseNotFound, name)
	}

	return r.save(remaining)
}

// SetVideoComplete marks a video's completion state.
func (r *CourseRepository) SetVideoComplete(courseName, videoID string, complete bool) error {
	_, err := r.updateVideo(courseName, videoID, func(v *models.Video) {
		v.Complete = complete
	})
	return err
}

// ToggleVideoComplete flips a video's completion state and returns the new value.
func (r *CourseRepository) ToggleVideoComplete(courseName, videoID string) (bool, error) {
	return r.updateVideo(courseName, videoID, func(v *models.Video) {
		v.Complete = !v.Complete
	})
}

// updateVideo re-reads the collection, applies the mutation to one video and
// writes the collection back. Re-reading keeps concurrent callers from
// clobbering each other's completed flags with stale copies.
func (r *CourseRepository) updateVideo(courseName, videoID string, mutate func(*models.Video)) (bool, error) {
	courses, err := r.List()
	if err != nil {
		return false, err
	}

	for i := range courses {
		if courses[i].CourseName != courseName {
			continue
		}
		video := courses[i].FindVideo(videoID)
		if video == nil {
			return false, fmt.Errorf("%w: %s in course %s", shared.ErrVideoNotFound, videoID, courseName)
		}
		mutate(video)
		if err := r.save(courses); err != nil {
			return false, err
		}
		return video.Complete, nil
	}

	return false, fmt.Errorf("%w: %s", shared.ErrCourseNotFound, courseName)
}

func (r *CourseRepository) save(courses []models.Course) error {
	data, err := json.Marshal(courses)
	if err != nil {
		return fmt.Errorf("failed to encode courses: %w", err)
	}
	if err := r.kv.Set(store.KeyCourses, string(data)); err != nil {
		return fmt.Errorf("failed to store courses: %w", err)
	}
	return nil
}
