package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/pathfound/internal/shared"
	"github.com/urfave/cli/v3"
)

// VideoToggle flips a lesson's completion state and reports the new state.
func (r *Runner) VideoToggle(ctx context.Context, cmd *cli.Command) error {
	courseName := cmd.StringArg("course")
	videoID := cmd.StringArg("video-id")
	if courseName == "" || videoID == "" {
		return fmt.Errorf("%w: course name and video id", shared.ErrMissingArgument)
	}

	repo, err := r.courseRepo()
	if err != nil {
		return err
	}

	complete, err := repo.ToggleVideoComplete(courseName, videoID)
	if err != nil {
		return err
	}

	if complete {
		return r.writePlain("✓ Lesson %s marked complete\n", videoID)
	}
	return r.writePlain("○ Lesson %s marked not complete\n", videoID)
}

// VideoDone marks a lesson complete.
func (r *Runner) VideoDone(ctx context.Context, cmd *cli.Command) error {
	return r.setVideoComplete(cmd, true)
}

// VideoUndone marks a lesson not complete.
func (r *Runner) VideoUndone(ctx context.Context, cmd *cli.Command) error {
	return r.setVideoComplete(cmd, false)
}

func (r *Runner) setVideoComplete(cmd *cli.Command, complete bool) error {
	courseName := cmd.StringArg("course")
	videoID := cmd.StringArg("video-id")
	if courseName == "" || videoID == "" {
		return fmt.Errorf("%w: course name and video id", shared.ErrMissingArgument)
	}

	repo, err := r.courseRepo()
	if err != nil {
		return err
	}

	if err := repo.SetVideoComplete(courseName, videoID, complete); err != nil {
		return err
	}

	if complete {
		return r.writePlain("✓ Lesson %s marked complete\n", videoID)
	}
	return r.writePlain("○ Lesson %s marked not complete\n", videoID)
}
