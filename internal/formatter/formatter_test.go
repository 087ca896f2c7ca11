package formatter

import (
	"strings"
	"testing"

	"github.com/desertthunder/pathfound/internal/models"
	th "github.com/desertthunder/pathfound/internal/testing"
)

func sampleCourse() *models.Course {
	return &models.Course{
		CourseName: "Go Basics",
		PlayList: []models.Video{
			{VideoID: "v1", Title: "Introduction", Complete: true},
			{VideoID: "v2", Title: "Variables, with commas", Complete: false},
			{VideoID: "v3", Title: "Control Flow", Complete: true},
		},
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Go Basics", "go_basics"},
		{"punctuation stripped", "C++ (Advanced)!", "c_advanced"},
		{"empty fallback", "???", "course"},
		{"trimmed", "  Rust  ", "rust"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slug(tt.in); got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExportToCSV(t *testing.T) {
	data, err := ExportToCSV(sampleCourse())
	if err != nil {
		t.Fatalf("ExportToCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 records, got %d lines", len(lines))
	}
	if lines[0] != "videoId,title,complete" {
		t.Errorf("unexpected header: %s", lines[0])
	}
	if lines[1] != "v1,Introduction,true" {
		t.Errorf("unexpected first record: %s", lines[1])
	}
	if !strings.Contains(lines[2], `"Variables, with commas"`) {
		t.Errorf("comma in title should be quoted: %s", lines[2])
	}
}

func TestWriteCourseCSV(t *testing.T) {
	t.Run("write failure", func(t *testing.T) {
		if err := WriteCourseCSV(&th.FWriter{}, sampleCourse()); err == nil {
			t.Error("expected error from failing writer")
		}
	})
}

func TestExportToMarkdown(t *testing.T) {
	notes := map[string]string{
		"v2": "remember := declares\nand = assigns",
	}

	data, err := ExportToMarkdown(sampleCourse(), notes)
	if err != nil {
		t.Fatalf("ExportToMarkdown failed: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "# Go Basics") {
		t.Error("missing course heading")
	}
	if !strings.Contains(content, "**Progress**: 67% (2/3 lessons)") {
		t.Errorf("missing progress line:\n%s", content)
	}
	if !strings.Contains(content, "- [x] [Introduction](https://www.youtube.com/watch?v=v1)") {
		t.Error("completed lesson should be checked")
	}
	if !strings.Contains(content, "- [ ] [Variables, with commas]") {
		t.Error("incomplete lesson should be unchecked")
	}
	if !strings.Contains(content, "  > remember := declares\n  > and = assigns") {
		t.Error("notes should render as a blockquote")
	}
}

func TestExportToText(t *testing.T) {
	data, err := ExportToText(sampleCourse())
	if err != nil {
		t.Fatalf("ExportToText failed: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "Course: Go Basics") {
		t.Error("missing course line")
	}
	if !strings.Contains(content, "Progress: 67%") {
		t.Error("missing progress line")
	}
	if !strings.Contains(content, "[x] 1. Introduction") || !strings.Contains(content, "[ ] 2. Variables") {
		t.Errorf("lessons not rendered:\n%s", content)
	}
}

func TestWriteExports(t *testing.T) {
	export := sampleCourse()

	t.Run("WriteCSVExport", func(t *testing.T) {
		tempDir := t.TempDir()
		originalDir := th.MustGetwd(t)
		th.MustChdir(t, tempDir)
		defer th.MustChdir(t, originalDir)

		result, err := WriteCSVExport(export, "")
		if err != nil {
			t.Fatalf("WriteCSVExport failed: %v", err)
		}

		if result.LessonsFile != "go_basics_lessons.csv" {
			t.Errorf("unexpected lessons file: %s", result.LessonsFile)
		}
		th.AssertFileExists(t, result.LessonsFile)
		th.AssertFileExists(t, result.MetadataFile)

		metadata := th.MustReadFile(t, result.MetadataFile)
		if !strings.Contains(metadata, `"courseName": "Go Basics"`) {
			t.Errorf("metadata missing course name:\n%s", metadata)
		}
		if !strings.Contains(metadata, `"progress": 67`) {
			t.Errorf("metadata missing progress:\n%s", metadata)
		}
	})

	t.Run("WriteMarkdownExport", func(t *testing.T) {
		tempDir := t.TempDir()
		originalDir := th.MustGetwd(t)
		th.MustChdir(t, tempDir)
		defer th.MustChdir(t, originalDir)

		result, err := WriteMarkdownExport(export, nil, "")
		if err != nil {
			t.Fatalf("WriteMarkdownExport failed: %v", err)
		}

		th.AssertDirExists(t, result.Directory)
		if len(result.Files) != 1 {
			t.Fatalf("expected one file, got %v", result.Files)
		}
		th.AssertFileExists(t, result.Files[0])
	})

	t.Run("WriteTextExport", func(t *testing.T) {
		tempDir := t.TempDir()
		originalDir := th.MustGetwd(t)
		th.MustChdir(t, tempDir)
		defer th.MustChdir(t, originalDir)

		path, err := WriteTextExport(export, "")
		if err != nil {
			t.Fatalf("WriteTextExport failed: %v", err)
		}
		if path != "go_basics_lessons.txt" {
			t.Errorf("unexpected path: %s", path)
		}
		th.AssertFileExists(t, path)
	})

	t.Run("WriteJSONExport", func(t *testing.T) {
		tempDir := t.TempDir()
		originalDir := th.MustGetwd(t)
		th.MustChdir(t, tempDir)
		defer th.MustChdir(t, originalDir)

		path, err := WriteJSONExport(export, "my_course.json")
		if err != nil {
			t.Fatalf("WriteJSONExport failed: %v", err)
		}
		if path != "my_course.json" {
			t.Errorf("unexpected path: %s", path)
		}

		content := th.MustReadFile(t, path)
		if !strings.Contains(content, `"courseName"`) || !strings.Contains(content, `"videoId"`) {
			t.Errorf("JSON export missing persisted field names:\n%s", content)
		}
	})
}

func TestWriteNotesExport(t *testing.T) {
	tempDir := t.TempDir()
	originalDir := th.MustGetwd(t)
	th.MustChdir(t, tempDir)
	defer th.MustChdir(t, originalDir)

	courses := []models.Course{*sampleCourse()}
	notes := map[string]string{
		"v1":       "intro note",
		"orphaned": "note for a deleted course",
	}

	path, err := WriteNotesExport(courses, notes, "")
	if err != nil {
		t.Fatalf("WriteNotesExport failed: %v", err)
	}

	content := th.MustReadFile(t, path)
	if !strings.Contains(content, "## Go Basics") {
		t.Error("missing course section")
	}
	if !strings.Contains(content, "### Introduction") || !strings.Contains(content, "intro note") {
		t.Error("missing lesson note")
	}
	if !strings.Contains(content, "## Other") || !strings.Contains(content, "orphaned") {
		t.Error("orphaned notes should land in the Other section")
	}
}

func TestWriteBulkExportManifest(t *testing.T) {
	tempDir := t.TempDir()
	originalDir := th.MustGetwd(t)
	th.MustChdir(t, tempDir)
	defer th.MustChdir(t, originalDir)

	summary := &BulkExportSummary{
		TotalCourses:      2,
		SuccessfulExports: 1,
		FailedExports:     1,
		OutputDirectory:   "exports",
		Results: []CourseExportRecord{
			{
				CourseName: "Go Basics",
				Success:    true,
				Files:      []string{"go_basics_lessons.csv"},
			},
			{
				CourseName: "Rust Basics",
				Success:    false,
				Error:      errAlwaysFails,
			},
		},
	}

	if err := WriteBulkExportManifest(summary, "csv", "manifest.json"); err != nil {
		t.Fatalf("WriteBulkExportManifest failed: %v", err)
	}

	content := th.MustReadFile(t, "manifest.json")
	for _, want := range []string{
		`"format": "csv"`,
		`"total_courses": 2`,
		`"successful_exports": 1`,
		`"status": "success"`,
		`"status": "failed"`,
		`"error": "always fails"`,
	} {
		if !strings.Contains(content, want) {
			t.Errorf("manifest missing %s:\n%s", want, content)
		}
	}
}

var errAlwaysFails = errTest("always fails")

type errTest string

func (e errTest) Error() string { return string(e) }
