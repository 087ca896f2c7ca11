package tasks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/desertthunder/pathfound/internal/formatter"
	"github.com/desertthunder/pathfound/internal/models"
	"github.com/desertthunder/pathfound/internal/shared"
)

// BulkExportOpts contains configuration for bulk course exports.
type BulkExportOpts struct {
	Format     string // Export format: json, csv, markdown, txt
	OutputDir  string // Base output directory (default: pathfound_export_{id})
	NumWorkers int    // Concurrent workers (default: 5)
}

// BulkExport exports every stored course concurrently.
//
// This method implements a worker pool pattern: courses are read once up
// front, written by a bounded set of workers, and summarized in a manifest
// file. Partial failures are recorded rather than aborting the run.
func (e *CourseEngine) BulkExport(ctx context.Context, prog chan<- ProgressUpdate, opts BulkExportOpts) (*formatter.BulkExportSummary, error) {
	courses, err := e.courses.List()
	if err != nil {
		return nil, err
	}

	if opts.OutputDir == "" {
		opts.OutputDir = fmt.Sprintf("pathfound_export_%s", shared.GenerateID()[:8])
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 5
	}
	if opts.NumWorkers > 10 {
		opts.NumWorkers = 10
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	summary := &formatter.BulkExportSummary{
		TotalCourses:    len(courses),
		OutputDirectory: opts.OutputDir,
		Results:         make([]formatter.CourseExportRecord, 0, len(courses)),
	}

	jobs := make(chan models.Course, len(courses))
	results := make(chan formatter.CourseExportRecord, len(courses))

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go e.exportWorker(ctx, &wg, jobs, results, opts)
	}

	for _, course := range courses {
		jobs <- course
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	completed := 0
	for res := range results {
		completed++
		summary.Results = append(summary.Results, res)

		if res.Success {
			summary.SuccessfulExports++
			e.sendProgress(prog, exportCompletedUpdate(completed, len(courses), res.CourseName, len(res.Files)))
		} else {
			summary.FailedExports++
			e.sendProgress(prog, exportFailedUpdate(completed, len(courses), res.CourseName, res.Error))
		}
	}

	manifestPath := filepath.Join(opts.OutputDir, "export_manifest.json")
	if err := formatter.WriteBulkExportManifest(summary, opts.Format, manifestPath); err != nil {
		return summary, fmt.Errorf("export completed but failed to write manifest: %w", err)
	}
	summary.ManifestPath = manifestPath
	return summary, nil
}

// exportWorker is a worker goroutine that exports courses from the jobs channel.
func (e *CourseEngine) exportWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	jobs <-chan models.Course,
	results chan<- formatter.CourseExportRecord,
	opts BulkExportOpts,
) {
	defer wg.Done()

	for course := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		record := formatter.CourseExportRecord{CourseName: course.CourseName}
		files, err := e.writeCourse(&course, opts.Format, courseOutputPath(opts.OutputDir, opts.Format, &course))
		if err != nil {
			record.Error = err
		} else {
			record.Files = files
			record.Success = true
		}
		results <- record
	}
}
