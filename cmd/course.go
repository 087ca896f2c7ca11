package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/pathfound/internal/shared"
	"github.com/desertthunder/pathfound/internal/tasks"
	"github.com/urfave/cli/v3"
)

// progressPrinter drains a progress channel, writing one line per update.
//
// Returns a channel that closes once the printer goroutine has drained
// everything, so callers can close the progress channel and wait before
// writing their summary.
func (r *Runner) progressPrinter(progressCh <-chan tasks.ProgressUpdate) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progressCh {
			switch update.Phase {
			case tasks.ExtractID, tasks.FetchTitle:
				r.writePlain("🔎 %s\n", update.Message)
			case tasks.FetchPlaylist:
				r.writePlain("📥 %s\n", update.Message)
			case tasks.SaveCourse, tasks.DeleteCourse, tasks.PurgeNotes:
				r.writePlain("💾 %s\n", update.Message)
			case tasks.ExportCourse:
				r.writePlain("📝 %s\n", update.Message)
			default:
				r.writePlain("   %s\n", update.Message)
			}
		}
	}()
	return done
}

// CourseAdd imports a YouTube playlist as a course.
func (r *Runner) CourseAdd(ctx context.Context, cmd *cli.Command) error {
	rawURL := cmd.StringArg("url")
	name := cmd.String("name")

	if rawURL == "" {
		return fmt.Errorf("%w: playlist URL", shared.ErrMissingArgument)
	}

	source, err := r.playlistSource(ctx)
	if err != nil {
		return err
	}
	engine, err := r.engine(source)
	if err != nil {
		return err
	}

	r.logger.Info("importing playlist", "url", rawURL, "name", name)

	progressCh := make(chan tasks.ProgressUpdate, 50)
	done := r.progressPrinter(progressCh)

	course, err := engine.CreateCourse(ctx, progressCh, rawURL, name)
	close(progressCh)
	<-done

	if err != nil {
		return err
	}

	r.writePlain("\n")
	r.writePlainHeader("Course Created")
	r.writePlain("Name: %s\n", course.CourseName)
	r.writePlain("Lessons: %d\n", len(course.PlayList))
	return nil
}

// CourseList lists stored courses with lesson counts and progress.
func (r *Runner) CourseList(ctx context.Context, cmd *cli.Command) error {
	repo, err := r.courseRepo()
	if err != nil {
		return err
	}

	courses, err := repo.List()
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(courses, cmd.Bool("pretty"))
	}

	if len(courses) == 0 {
		return r.writePlain("No courses yet. Import one with 'pathfound course add <url>'\n")
	}

	r.writePlainHeader(fmt.Sprintf("Courses (%d)", len(courses)))
	for _, course := range courses {
		r.writePlain("%s — %d/%d lessons (%d%%)\n",
			course.CourseName, course.CompletedCount(), len(course.PlayList), course.Progress())
	}
	return nil
}

// CourseShow prints one course's lessons and completion state.
func (r *Runner) CourseShow(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("%w: course name", shared.ErrMissingArgument)
	}

	repo, err := r.courseRepo()
	if err != nil {
		return err
	}

	course, err := repo.Find(name)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(course, cmd.Bool("pretty"))
	}

	r.writePlainHeader(course.CourseName)
	r.writePlain("Progress: %d/%d lessons (%d%%)\n\n",
		course.CompletedCount(), len(course.PlayList), course.Progress())

	for i, video := range course.PlayList {
		marker := "○"
		if video.Complete {
			marker = "✓"
		}
		r.writePlain("%s %3d. %s (%s)\n", marker, i+1, video.Title, video.VideoID)
	}
	return nil
}

// CourseDelete removes a stored course, optionally purging its notes.
func (r *Runner) CourseDelete(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("%w: course name", shared.ErrMissingArgument)
	}

	engine, err := r.engine(nil)
	if err != nil {
		return err
	}

	progressCh := make(chan tasks.ProgressUpdate, 10)
	done := r.progressPrinter(progressCh)

	err = engine.DeleteCourse(progressCh, name, cmd.Bool("purge-notes"))
	close(progressCh)
	<-done

	if err != nil {
		return err
	}

	return r.writePlain("✓ Deleted course %q\n", name)
}

// CourseExport writes one course to disk in the requested format.
func (r *Runner) CourseExport(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("%w: course name", shared.ErrMissingArgument)
	}

	engine, err := r.engine(nil)
	if err != nil {
		return err
	}

	progressCh := make(chan tasks.ProgressUpdate, 10)
	done := r.progressPrinter(progressCh)

	files, err := engine.ExportCourse(progressCh, name, cmd.String("format"), cmd.String("output"))
	close(progressCh)
	<-done

	if err != nil {
		return err
	}

	r.writePlainln("Export complete:")
	for _, file := range files {
		r.writePlain("  %s\n", file)
	}
	return nil
}

// CourseExportAll exports every stored course concurrently and prints the summary.
func (r *Runner) CourseExportAll(ctx context.Context, cmd *cli.Command) error {
	engine, err := r.engine(nil)
	if err != nil {
		return err
	}

	opts := tasks.BulkExportOpts{
		Format:     cmd.String("format"),
		OutputDir:  cmd.String("output-dir"),
		NumWorkers: cmd.Int("workers"),
	}

	progressCh := make(chan tasks.ProgressUpdate, 50)
	done := r.progressPrinter(progressCh)

	summary, err := engine.BulkExport(ctx, progressCh, opts)
	close(progressCh)
	<-done

	if err != nil {
		return err
	}

	r.writePlain("\n")
	r.writePlainHeader("Bulk Export Complete")
	r.writePlain("Output: %s\n", summary.OutputDirectory)
	r.writePlain("Exported: %d/%d courses\n", summary.SuccessfulExports, summary.TotalCourses)
	r.writePlain("Manifest: %s\n", summary.ManifestPath)
	if summary.FailedExports > 0 {
		r.writePlain("\nFailed courses:\n")
		for _, record := range summary.Results {
			if !record.Success {
				r.writePlain("  - %s: %v\n", record.CourseName, record.Error)
			}
		}
	}
	return nil
}
