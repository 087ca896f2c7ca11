package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/pathfound/internal/models"
	"github.com/desertthunder/pathfound/internal/repositories"
	"github.com/desertthunder/pathfound/internal/services"
	"github.com/desertthunder/pathfound/internal/shared"
)

// descriptionFold is where long descriptions are cut in the folded view.
const descriptionFold = 300

// ViewState represents the current view in the TUI.
type ViewState int

const (
	CourseListView ViewState = iota
	LessonListView
	NotesView
	DescriptionView
)

// Model represents the TUI application state.
type Model struct {
	view    ViewState
	courses *repositories.CourseRepository
	notes   *repositories.NotesRepository

	width  int
	height int

	courseList     list.Model
	lessonList     list.Model
	selectedCourse *models.Course
	selectedVideo  *models.Video

	editor   textarea.Model
	fullDesc bool

	status string
	err    error
	help   help.Model
	keys   keyMap
}

// NewModel creates a new TUI model with the provided repositories.
func NewModel(courses *repositories.CourseRepository, notes *repositories.NotesRepository) *Model {
	editor := textarea.New()
	editor.Placeholder = "Write your notes here..."

	return &Model{
		view:    CourseListView,
		courses: courses,
		notes:   notes,
		editor:  editor,
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

// Init initializes the TUI by loading stored courses.
func (m *Model) Init() tea.Cmd {
	return m.loadCourses()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.courseList.Width() == 0 {
			m.courseList.SetSize(msg.Width-4, msg.Height-8)
		}
		if m.lessonList.Width() == 0 {
			m.lessonList.SetSize(msg.Width-4, msg.Height-8)
		}
		m.editor.SetWidth(msg.Width - 4)
		m.editor.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case CourseListView:
			return m.handleCourseListKeys(msg)
		case LessonListView:
			return m.handleLessonListKeys(msg)
		case NotesView:
			return m.handleNotesKeys(msg)
		case DescriptionView:
			return m.handleDescriptionKeys(msg)
		}

	case coursesLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		items := make([]list.Item, len(msg.courses))
		for i, course := range msg.courses {
			items[i] = courseItem{course: course}
		}
		m.courseList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.courseList.Title = "Courses"
		m.courseList.SetSize(m.width-4, m.height-8)
		return m, nil

	case lessonToggledMsg:
		if msg.err != nil {
			m.status = styles.err.Render(fmt.Sprintf("toggle failed: %v", msg.err))
			return m, nil
		}
		m.applyToggle(msg.videoID, msg.complete)
		if msg.complete {
			m.status = styles.ok.Render("marked complete")
		} else {
			m.status = "marked not started"
		}
		return m, nil

	case notesLoadedMsg:
		if msg.err != nil {
			m.status = styles.err.Render(fmt.Sprintf("notes load failed: %v", msg.err))
			return m, nil
		}
		m.editor.SetValue(msg.text)
		m.editor.Focus()
		m.view = NotesView
		return m, textarea.Blink

	case notesSavedMsg:
		if msg.err != nil {
			m.status = styles.err.Render(fmt.Sprintf("notes save failed: %v", msg.err))
		} else {
			m.status = styles.ok.Render("notes saved")
		}
		m.view = LessonListView
		return m, nil

	case browserOpenedMsg:
		if msg.err != nil {
			m.status = styles.err.Render(fmt.Sprintf("could not open browser: %v", msg.err))
		} else {
			m.status = "opened in browser"
		}
		return m, nil
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case CourseListView:
		return m.renderCourseList()
	case LessonListView:
		return m.renderLessonList()
	case NotesView:
		return m.renderNotes()
	case DescriptionView:
		return m.renderDescription()
	default:
		return ""
	}
}

func (m *Model) handleCourseListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Don't swallow keys while the filter input is active.
	if m.courseList.FilterState() == list.Filtering {
		return m.updateLists(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		selected := m.courseList.SelectedItem()
		if selected != nil {
			if item, ok := selected.(courseItem); ok {
				m.openCourse(item.course)
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.courseList, cmd = m.courseList.Update(msg)
	return m, cmd
}

func (m *Model) handleLessonListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.lessonList.FilterState() == list.Filtering {
		return m.updateLists(msg)
	}

	switch {
	case msg.String() == "q" || msg.String() == "ctrl+c":
		return m, tea.Quit

	case msg.String() == "esc":
		m.view = CourseListView
		m.status = ""
		return m, m.loadCourses()

	case key.Matches(msg, m.keys.toggle):
		if video := m.currentLesson(); video != nil {
			return m, m.toggleLesson(video.VideoID)
		}

	case key.Matches(msg, m.keys.notes):
		if video := m.currentLesson(); video != nil {
			m.selectedVideo = video
			return m, m.loadNotes(video.VideoID)
		}

	case key.Matches(msg, m.keys.open):
		if video := m.currentLesson(); video != nil {
			return m, m.openInBrowser(video.VideoID)
		}

	case key.Matches(msg, m.keys.detail):
		if video := m.currentLesson(); video != nil {
			m.selectedVideo = video
			m.fullDesc = false
			m.view = DescriptionView
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.lessonList, cmd = m.lessonList.Update(msg)
	return m, cmd
}

func (m *Model) handleNotesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editor.Blur()
		m.view = LessonListView
		m.status = "notes discarded"
		return m, nil
	case "ctrl+s":
		m.editor.Blur()
		return m, m.saveNotes(m.selectedVideo.VideoID, m.editor.Value())
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *Model) handleDescriptionKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = LessonListView
		return m, nil
	case "m":
		m.fullDesc = !m.fullDesc
		return m, nil
	}
	return m, nil
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case CourseListView:
		m.courseList, cmd = m.courseList.Update(msg)
	case LessonListView:
		m.lessonList, cmd = m.lessonList.Update(msg)
	}
	return m, cmd
}

// openCourse switches to the lesson list for a course.
func (m *Model) openCourse(course models.Course) {
	m.selectedCourse = &course
	items := make([]list.Item, len(course.PlayList))
	for i, video := range course.PlayList {
		items[i] = lessonItem{video: video}
	}
	m.lessonList = list.New(items, list.NewDefaultDelegate(), 0, 0)
	m.lessonList.Title = fmt.Sprintf("%s — %d%%", course.CourseName, course.Progress())
	m.lessonList.SetSize(m.width-4, m.height-8)
	m.view = LessonListView
	m.status = ""
}

// currentLesson returns the video under the cursor, or nil.
func (m *Model) currentLesson() *models.Video {
	selected := m.lessonList.SelectedItem()
	if selected == nil {
		return nil
	}
	item, ok := selected.(lessonItem)
	if !ok {
		return nil
	}
	return m.selectedCourse.FindVideo(item.video.VideoID)
}

// applyToggle updates the in-memory course and list item after a persisted toggle.
func (m *Model) applyToggle(videoID string, complete bool) {
	if video := m.selectedCourse.FindVideo(videoID); video != nil {
		video.Complete = complete
	}
	for i, item := range m.lessonList.Items() {
		if lesson, ok := item.(lessonItem); ok && lesson.video.VideoID == videoID {
			lesson.video.Complete = complete
			m.lessonList.SetItem(i, lesson)
			break
		}
	}
	m.lessonList.Title = fmt.Sprintf("%s — %d%%", m.selectedCourse.CourseName, m.selectedCourse.Progress())
}

func (m *Model) loadCourses() tea.Cmd {
	return func() tea.Msg {
		courses, err := m.courses.List()
		return coursesLoadedMsg{courses: courses, err: err}
	}
}

func (m *Model) toggleLesson(videoID string) tea.Cmd {
	courseName := m.selectedCourse.CourseName
	return func() tea.Msg {
		complete, err := m.courses.ToggleVideoComplete(courseName, videoID)
		return lessonToggledMsg{videoID: videoID, complete: complete, err: err}
	}
}

func (m *Model) loadNotes(videoID string) tea.Cmd {
	return func() tea.Msg {
		text, err := m.notes.Get(videoID)
		return notesLoadedMsg{videoID: videoID, text: text, err: err}
	}
}

func (m *Model) saveNotes(videoID, text string) tea.Cmd {
	return func() tea.Msg {
		return notesSavedMsg{err: m.notes.Set(videoID, text)}
	}
}

func (m *Model) openInBrowser(videoID string) tea.Cmd {
	return func() tea.Msg {
		return browserOpenedMsg{err: shared.OpenBrowser(services.WatchURL(videoID))}
	}
}

func (m *Model) renderCourseList() string {
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.enter, m.keys.quit})
	return fmt.Sprintf("%s\n\n%s", m.courseList.View(), helpView)
}

func (m *Model) renderLessonList() string {
	helpKeys := []key.Binding{m.keys.toggle, m.keys.notes, m.keys.open, m.keys.detail, m.keys.back}
	helpView := m.help.ShortHelpView(helpKeys)

	body := fmt.Sprintf("%s\n\n%s", m.lessonList.View(), helpView)
	if m.status != "" {
		body = fmt.Sprintf("%s\n%s", body, m.status)
	}
	return body
}

func (m *Model) renderNotes() string {
	title := styles.title.Render(fmt.Sprintf("Notes: %s", m.selectedVideo.Title))
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.save, m.keys.back})
	return fmt.Sprintf("%s\n%s\n\n%s", title, m.editor.View(), helpView)
}

func (m *Model) renderDescription() string {
	title := styles.title.Render(m.selectedVideo.Title)

	desc := m.selectedVideo.Description
	if desc == "" {
		desc = styles.help.Render("No description.")
	} else if !m.fullDesc && len(desc) > descriptionFold {
		desc = desc[:descriptionFold] + "…\n\n" + styles.help.Render("m to show more")
	} else if m.fullDesc && len(m.selectedVideo.Description) > descriptionFold {
		desc = desc + "\n\n" + styles.help.Render("m to show less")
	}

	helpView := m.help.ShortHelpView([]key.Binding{m.keys.back, m.keys.quit})
	return fmt.Sprintf("%s\n%s\n\n%s", title, desc, helpView)
}
