package ui

import "github.com/desertthunder/pathfound/internal/models"

// coursesLoadedMsg carries the stored course list into the model.
type coursesLoadedMsg struct {
	courses []models.Course
	err     error
}

// lessonToggledMsg reports a persisted completion toggle.
type lessonToggledMsg struct {
	videoID  string
	complete bool
	err      error
}

// notesLoadedMsg carries a lesson's saved notes into the editor.
type notesLoadedMsg struct {
	videoID string
	text    string
	err     error
}

// notesSavedMsg reports the outcome of a notes save.
type notesSavedMsg struct {
	err error
}

// browserOpenedMsg reports the outcome of launching the watch URL.
type browserOpenedMsg struct {
	err error
}
