package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/pathfound/internal/shared"
	"github.com/desertthunder/pathfound/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI for course tracking.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	courses, err := r.courseRepo()
	if err != nil {
		return err
	}
	notes, err := r.notesRepo()
	if err != nil {
		return err
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/pathfound-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	model := ui.NewModel(courses, notes)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
