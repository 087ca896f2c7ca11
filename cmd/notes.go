package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/pathfound/internal/shared"
	"github.com/urfave/cli/v3"
)

// NotesShow prints the notes saved for a lesson.
func (r *Runner) NotesShow(ctx context.Context, cmd *cli.Command) error {
	videoID := cmd.StringArg("video-id")
	if videoID == "" {
		return fmt.Errorf("%w: video id", shared.ErrMissingArgument)
	}

	repo, err := r.notesRepo()
	if err != nil {
		return err
	}

	text, err := repo.Get(videoID)
	if err != nil {
		return err
	}

	if text == "" {
		return r.writePlain("No notes saved for %s\n", videoID)
	}
	return r.writePlain("%s\n", text)
}

// NotesSet saves notes for a lesson. Empty text clears the saved notes.
func (r *Runner) NotesSet(ctx context.Context, cmd *cli.Command) error {
	videoID := cmd.StringArg("video-id")
	if videoID == "" {
		return fmt.Errorf("%w: video id", shared.ErrMissingArgument)
	}
	text := cmd.StringArg("text")

	repo, err := r.notesRepo()
	if err != nil {
		return err
	}

	if err := repo.Set(videoID, text); err != nil {
		return err
	}

	if text == "" {
		return r.writePlain("✓ Notes cleared for %s\n", videoID)
	}
	return r.writePlain("✓ Notes saved for %s\n", videoID)
}

// NotesExport writes all saved notes to a markdown file grouped by course.
func (r *Runner) NotesExport(ctx context.Context, cmd *cli.Command) error {
	engine, err := r.engine(nil)
	if err != nil {
		return err
	}

	path, err := engine.ExportNotes(cmd.String("output"))
	if err != nil {
		return err
	}

	return r.writePlain("✓ Notes exported to %s\n", path)
}
