// package formatter provides functions to export course data to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/desertthunder/pathfound/internal/models"
	"github.com/desertthunder/pathfound/internal/shared"
)

// Slug converts a course name into a filename-safe base.
func Slug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "course"
	}
	return b.String()
}

// WriteCourseCSV writes a course as CSV with columns: videoId, title, complete.
func WriteCourseCSV(w io.Writer, course *models.Course) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"videoId", "title", "complete"}); err != nil {
		return fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, video := range course.PlayList {
		record := []string{
			video.VideoID,
			video.Title,
			strconv.FormatBool(video.Complete),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("CSV writer error: %w", err)
	}
	return nil
}

// ExportToCSV converts a course to CSV bytes.
func ExportToCSV(course *models.Course) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCourseCSV(&buf, course); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportToMarkdown converts a course to a Markdown checklist.
//
// Completed lessons render as checked boxes. Notes, when present for a
// lesson, follow it as a blockquote.
func ExportToMarkdown(course *models.Course, notes map[string]string) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", course.CourseName))
	buf.WriteString(fmt.Sprintf("**Progress**: %d%% (%d/%d lessons)\n\n",
		course.Progress(), course.CompletedCount(), len(course.PlayList)))

	buf.WriteString("## Lessons\n\n")
	for _, video := range course.PlayList {
		box := " "
		if video.Complete {
			box = "x"
		}
		buf.WriteString(fmt.Sprintf("- [%s] [%s](https://www.youtube.com/watch?v=%s)\n", box, video.Title, video.VideoID))

		if text, ok := notes[video.VideoID]; ok && text != "" {
			for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
				buf.WriteString(fmt.Sprintf("  > %s\n", line))
			}
		}
	}

	return buf.Bytes(), nil
}

// ExportToText converts a course to plain text format
func ExportToText(course *models.Course) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Course: %s\n", course.CourseName))
	buf.WriteString(fmt.Sprintf("Progress: %d%%\n", course.Progress()))
	buf.WriteString(fmt.Sprintf("Lessons: %d\n\n", len(course.PlayList)))

	for i, video := range course.PlayList {
		mark := " "
		if video.Complete {
			mark = "x"
		}
		buf.WriteString(fmt.Sprintf("[%s] %d. %s\n", mark, i+1, video.Title))
	}

	return buf.Bytes(), nil
}

// ToMetadataJSON generates a JSON representation of course metadata (without the lesson list)
func ToMetadataJSON(course *models.Course) ([]byte, error) {
	metadata := struct {
		CourseName string `json:"courseName"`
		Lessons    int    `json:"lessons"`
		Completed  int    `json:"completed"`
		Progress   int    `json:"progress"`
	}{
		CourseName: course.CourseName,
		Lessons:    len(course.PlayList),
		Completed:  course.CompletedCount(),
		Progress:   course.Progress(),
	}
	return shared.MarshalJSON(metadata, true)
}

// CSVExportResult contains the paths of files created by WriteCSVExport
type CSVExportResult struct {
	LessonsFile  string
	MetadataFile string
}

// WriteCSVExport exports a course to CSV with an accompanying metadata JSON file.
//
// Defaults to the slugged course name as the base filename & creates
// {base}_lessons.csv and {base}_metadata.json
func WriteCSVExport(course *models.Course, baseFilepath string) (*CSVExportResult, error) {
	if baseFilepath == "" {
		baseFilepath = Slug(course.CourseName)
	}

	csvData, err := ExportToCSV(course)
	if err != nil {
		return nil, fmt.Errorf("failed to generate CSV: %w", err)
	}

	lessonsFile := baseFilepath + "_lessons.csv"
	if err := os.WriteFile(lessonsFile, csvData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write CSV file: %w", err)
	}

	metadataJSON, err := ToMetadataJSON(course)
	if err != nil {
		return nil, fmt.Errorf("failed to generate metadata JSON: %w", err)
	}

	metadataFile := baseFilepath + "_metadata.json"
	if err := os.WriteFile(metadataFile, metadataJSON, 0644); err != nil {
		return nil, fmt.Errorf("failed to write metadata file: %w", err)
	}

	return &CSVExportResult{
		LessonsFile:  lessonsFile,
		MetadataFile: metadataFile,
	}, nil
}

// MarkdownExportResult contains information about files created by WriteMarkdownExport
type MarkdownExportResult struct {
	Directory string
	Files     []string
}

// WriteMarkdownExport exports a course to Markdown in a dedicated directory.
//
// Directory name defaults to the slugged course name.
// Creates {dir}/README.md with the checklist and inline notes.
func WriteMarkdownExport(course *models.Course, notes map[string]string, outputDir string) (*MarkdownExportResult, error) {
	if outputDir == "" {
		outputDir = Slug(course.CourseName)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	mdData, err := ExportToMarkdown(course, notes)
	if err != nil {
		return nil, fmt.Errorf("failed to generate Markdown: %w", err)
	}

	mdFile := fmt.Sprintf("%s/README.md", outputDir)
	if err := os.WriteFile(mdFile, mdData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write Markdown file: %w", err)
	}

	return &MarkdownExportResult{
		Directory: outputDir,
		Files:     []string{mdFile},
	}, nil
}

// WriteTextExport exports a course to plain text format.
//
// Defaults to {slug}_lessons.txt as the filename.
func WriteTextExport(course *models.Course, filepath string) (string, error) {
	if filepath == "" {
		filepath = fmt.Sprintf("%s_lessons.txt", Slug(course.CourseName))
	}

	textData, err := ExportToText(course)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if err := os.WriteFile(filepath, textData, 0644); err != nil {
		return "", fmt.Errorf("failed to write text file: %w", err)
	}

	return filepath, nil
}

// WriteJSONExport exports the full course record as pretty-printed JSON.
//
// Defaults to {slug}.json as the filename. The output uses the persisted
// wire shape, so an exported file can be inspected or re-imported as-is.
func WriteJSONExport(course *models.Course, filepath string) (string, error) {
	if filepath == "" {
		filepath = fmt.Sprintf("%s.json", Slug(course.CourseName))
	}

	data, err := shared.MarshalJSON(course, true)
	if err != nil {
		return "", fmt.Errorf("failed to generate JSON: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write JSON file: %w", err)
	}

	return filepath, nil
}

// WriteNotesExport writes every saved note to a single Markdown file.
//
// Lessons appear in course order; notes without a matching lesson are listed
// under an "Other" section so nothing saved is silently dropped.
func WriteNotesExport(courses []models.Course, notes map[string]string, filepath string) (string, error) {
	if filepath == "" {
		filepath = "notes.md"
	}

	var buf bytes.Buffer
	buf.WriteString("# Notes\n")

	seen := make(map[string]bool)
	for _, course := range courses {
		wroteHeader := false
		for _, video := range course.PlayList {
			text, ok := notes[video.VideoID]
			if !ok || text == "" {
				continue
			}
			if !wroteHeader {
				buf.WriteString(fmt.Sprintf("\n## %s\n", course.CourseName))
				wroteHeader = true
			}
			seen[video.VideoID] = true
			buf.WriteString(fmt.Sprintf("\n### %s\n\n%s\n", video.Title, strings.TrimRight(text, "\n")))
		}
	}

	wroteOther := false
	for videoID, text := range notes {
		if seen[videoID] || text == "" {
			continue
		}
		if !wroteOther {
			buf.WriteString("\n## Other\n")
			wroteOther = true
		}
		buf.WriteString(fmt.Sprintf("\n### %s\n\n%s\n", videoID, strings.TrimRight(text, "\n")))
	}

	if err := os.WriteFile(filepath, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write notes file: %w", err)
	}

	return filepath, nil
}

// CourseExportRecord describes the outcome of exporting one course.
type CourseExportRecord struct {
	CourseName string   `json:"course_name"`
	Success    bool     `json:"-"`
	Files      []string `json:"files,omitempty"`
	Error      error    `json:"-"`
}

// BulkExportSummary aggregates the results of a bulk course export.
type BulkExportSummary struct {
	TotalCourses      int                  `json:"total_courses"`
	SuccessfulExports int                  `json:"successful_exports"`
	FailedExports     int                  `json:"failed_exports"`
	OutputDirectory   string               `json:"output_directory"`
	ManifestPath      string               `json:"-"`
	Results           []CourseExportRecord `json:"-"`
}

// WriteBulkExportManifest writes a JSON summary of a bulk export.
func WriteBulkExportManifest(summary *BulkExportSummary, format, filepath string) error {
	type manifestEntry struct {
		CourseName string   `json:"course_name"`
		Status     string   `json:"status"`
		Files      []string `json:"files,omitempty"`
		Error      string   `json:"error,omitempty"`
	}

	entries := make([]manifestEntry, len(summary.Results))
	for i, res := range summary.Results {
		entry := manifestEntry{
			CourseName: res.CourseName,
			Status:     "success",
			Files:      res.Files,
		}
		if !res.Success {
			entry.Status = "failed"
			if res.Error != nil {
				entry.Error = res.Error.Error()
			}
		}
		entries[i] = entry
	}

	manifest := struct {
		Format            string          `json:"format"`
		ExportedAt        string          `json:"exported_at"`
		TotalCourses      int             `json:"total_courses"`
		SuccessfulExports int             `json:"successful_exports"`
		FailedExports     int             `json:"failed_exports"`
		OutputDirectory   string          `json:"output_directory"`
		Results           []manifestEntry `json:"results"`
	}{
		Format:            format,
		ExportedAt:        time.Now().UTC().Format(time.RFC3339),
		TotalCourses:      summary.TotalCourses,
		SuccessfulExports: summary.SuccessfulExports,
		FailedExports:     summary.FailedExports,
		OutputDirectory:   summary.OutputDirectory,
		Results:           entries,
	}

	data, err := shared.MarshalJSON(manifest, true)
	if err != nil {
		return fmt.Errorf("failed to generate manifest: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}
