// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for working through a course:
//  1. [CourseListView] : Browse stored courses with their progress
//  2. [LessonListView] : Filter lessons, toggle completion, open videos
//  3. [NotesView] : Edit per-lesson notes in a textarea
//  4. [DescriptionView] : Read a lesson's description, folded past 300 chars
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Mutations (completion toggles, notes saves) go through the repositories so
// the TUI and CLI always see the same persisted state.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with contextual help displayed via charmbracelet/bubbles/help.
// The lesson list's live filter ("/") doubles as the title search.
package ui
