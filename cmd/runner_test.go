package main

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/desertthunder/pathfound/internal/models"
	"github.com/desertthunder/pathfound/internal/repositories"
	"github.com/desertthunder/pathfound/internal/shared"
	"github.com/desertthunder/pathfound/internal/store"
	tu "github.com/desertthunder/pathfound/internal/testing"
	"github.com/urfave/cli/v3"
)

// newTestRunner builds a runner backed by an in-memory store with
// output captured in a buffer.
func newTestRunner() (*Runner, *store.MemoryKV, *bytes.Buffer) {
	kv := store.NewMemoryKV()
	output := &bytes.Buffer{}
	runner := NewRunner(RunnerOpts{
		KV:     kv,
		Output: output,
	})
	return runner, kv, output
}

// runApp executes a CLI invocation against the runner's command tree.
func runApp(t *testing.T, runner *Runner, args ...string) error {
	t.Helper()
	app := &cli.Command{
		Name:     "pathfound",
		Commands: runner.register(),
	}
	return app.Run(context.Background(), append([]string{"pathfound"}, args...))
}

func seedCourse(t *testing.T, kv store.KV, name string, videos ...models.Video) {
	t.Helper()
	repo := repositories.NewCourseRepository(kv)
	if err := repo.Append(&models.Course{CourseName: name, PlayList: videos}); err != nil {
		t.Fatalf("failed to seed course: %v", err)
	}
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			kv := store.NewMemoryKV()

			runner := NewRunner(RunnerOpts{
				Config:     config,
				ConfigPath: "/test/path/config.toml",
				KV:         kv,
				Logger:     logger,
				Output:     output,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.configPath != "/test/path/config.toml" {
				t.Errorf("expected configPath to be set, got %s", runner.configPath)
			}
			if runner.kv != store.KV(kv) {
				t.Error("expected kv to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Config: nil})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil logger uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Logger: nil})

			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: nil})

			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes formatted JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			data := map[string]string{"key": "value"}
			err := runner.writeJSON(data, true)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if !strings.Contains(result, `"key": "value"`) {
				t.Errorf("expected formatted JSON, got %s", result)
			}
			if !strings.HasSuffix(result, "\n") {
				t.Error("expected output to end with newline")
			}
		})

		t.Run("writes compact JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			data := map[string]string{"key": "value"}
			err := runner.writeJSON(data, false)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			expected := `{"key":"value"}` + "\n"
			if result != expected {
				t.Errorf("expected %q, got %q", expected, result)
			}
		})

		t.Run("handles marshal error with non-serializable data", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			// channels cannot be marshaled to JSON
			data := make(chan int)
			err := runner.writeJSON(data, false)

			if err == nil {
				t.Fatal("expected error for non-serializable data")
			}
			if !strings.Contains(err.Error(), "failed to marshal JSON") {
				t.Errorf("expected marshal error, got %v", err)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			failing := &tu.FWriter{}
			runner := NewRunner(RunnerOpts{Output: failing})

			data := map[string]string{"key": "value"}
			err := runner.writeJSON(data, false)

			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		t.Run("writes plain text successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			err := runner.writePlain("hello %s", "world")

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if result != "hello world" {
				t.Errorf("expected 'hello world', got %q", result)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			failing := &tu.FWriter{}
			runner := NewRunner(RunnerOpts{Output: failing})

			err := runner.writePlain("test")

			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})
	})

	t.Run("register", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		commands := runner.register()

		if len(commands) == 0 {
			t.Error("expected at least one command to be registered")
		}

		for i, cmd := range commands {
			if cmd == nil {
				t.Errorf("command at index %d is nil", i)
			}
		}
	})

	t.Run("maskKey", func(t *testing.T) {
		if got := maskKey("AIzaSyExample1234"); got != "AIza*********1234" {
			t.Errorf("unexpected masked key: %q", got)
		}
		if got := maskKey("short"); got != "*****" {
			t.Errorf("expected short keys fully masked, got %q", got)
		}
	})
}

func TestKeyCommands(t *testing.T) {
	runner, _, output := newTestRunner()

	if err := runApp(t, runner, "key", "save", "AIzaSyExample1234"); err != nil {
		t.Fatalf("key save failed: %v", err)
	}
	if !strings.Contains(output.String(), "API key saved") {
		t.Errorf("expected save confirmation, got %q", output.String())
	}

	output.Reset()
	if err := runApp(t, runner, "key", "show"); err != nil {
		t.Fatalf("key show failed: %v", err)
	}
	if strings.Contains(output.String(), "AIzaSyExample1234") {
		t.Error("expected key to be masked in output")
	}
	if !strings.Contains(output.String(), "AIza") {
		t.Errorf("expected masked key edges, got %q", output.String())
	}

	if err := runApp(t, runner, "key", "reset"); err != nil {
		t.Fatalf("key reset failed: %v", err)
	}

	if err := runApp(t, runner, "key", "show"); err == nil {
		t.Error("expected error showing key after reset")
	}
}

func TestNotesCommands(t *testing.T) {
	runner, _, output := newTestRunner()

	if err := runApp(t, runner, "notes", "set", "vid123", "remember the refactor"); err != nil {
		t.Fatalf("notes set failed: %v", err)
	}

	output.Reset()
	if err := runApp(t, runner, "notes", "show", "vid123"); err != nil {
		t.Fatalf("notes show failed: %v", err)
	}
	if !strings.Contains(output.String(), "remember the refactor") {
		t.Errorf("expected saved notes in output, got %q", output.String())
	}

	if err := runApp(t, runner, "notes", "set", "vid123", ""); err != nil {
		t.Fatalf("notes clear failed: %v", err)
	}

	output.Reset()
	if err := runApp(t, runner, "notes", "show", "vid123"); err != nil {
		t.Fatalf("notes show after clear failed: %v", err)
	}
	if !strings.Contains(output.String(), "No notes saved") {
		t.Errorf("expected empty notes message, got %q", output.String())
	}
}

func TestVideoCommands(t *testing.T) {
	runner, kv, output := newTestRunner()
	seedCourse(t, kv, "Go Basics",
		models.Video{VideoID: "vid1", Title: "Intro"},
		models.Video{VideoID: "vid2", Title: "Types"},
	)

	if err := runApp(t, runner, "video", "toggle", "Go Basics", "vid1"); err != nil {
		t.Fatalf("video toggle failed: %v", err)
	}
	if !strings.Contains(output.String(), "marked complete") {
		t.Errorf("expected completion message, got %q", output.String())
	}

	output.Reset()
	if err := runApp(t, runner, "video", "toggle", "Go Basics", "vid1"); err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if !strings.Contains(output.String(), "not complete") {
		t.Errorf("expected reverted message, got %q", output.String())
	}

	if err := runApp(t, runner, "video", "done", "Go Basics", "vid2"); err != nil {
		t.Fatalf("video done failed: %v", err)
	}

	course, err := repositories.NewCourseRepository(kv).Find("Go Basics")
	if err != nil {
		t.Fatalf("failed to reload course: %v", err)
	}
	if course.PlayList[0].Complete {
		t.Error("expected vid1 to be not complete after two toggles")
	}
	if !course.PlayList[1].Complete {
		t.Error("expected vid2 to be complete")
	}

	if err := runApp(t, runner, "video", "undone", "Go Basics", "vid2"); err != nil {
		t.Fatalf("video undone failed: %v", err)
	}

	if err := runApp(t, runner, "video", "toggle", "Go Basics", "missing"); err == nil {
		t.Error("expected error toggling unknown video")
	}
}

func TestCourseCommands(t *testing.T) {
	t.Run("list with no courses", func(t *testing.T) {
		runner, _, output := newTestRunner()

		if err := runApp(t, runner, "course", "list"); err != nil {
			t.Fatalf("course list failed: %v", err)
		}
		if !strings.Contains(output.String(), "No courses yet") {
			t.Errorf("expected empty message, got %q", output.String())
		}
	})

	t.Run("list and show", func(t *testing.T) {
		runner, kv, output := newTestRunner()
		seedCourse(t, kv, "Go Basics",
			models.Video{VideoID: "vid1", Title: "Intro", Complete: true},
			models.Video{VideoID: "vid2", Title: "Types"},
		)

		if err := runApp(t, runner, "course", "list"); err != nil {
			t.Fatalf("course list failed: %v", err)
		}
		if !strings.Contains(output.String(), "Go Basics — 1/2 lessons (50%)") {
			t.Errorf("expected progress line, got %q", output.String())
		}

		output.Reset()
		if err := runApp(t, runner, "course", "show", "Go Basics"); err != nil {
			t.Fatalf("course show failed: %v", err)
		}
		result := output.String()
		if !strings.Contains(result, "✓") || !strings.Contains(result, "○") {
			t.Errorf("expected completion markers, got %q", result)
		}
		if !strings.Contains(result, "Intro") || !strings.Contains(result, "Types") {
			t.Errorf("expected lesson titles, got %q", result)
		}
	})

	t.Run("list as JSON", func(t *testing.T) {
		runner, kv, output := newTestRunner()
		seedCourse(t, kv, "Go Basics", models.Video{VideoID: "vid1", Title: "Intro"})

		if err := runApp(t, runner, "course", "list", "--json"); err != nil {
			t.Fatalf("course list --json failed: %v", err)
		}
		if !strings.Contains(output.String(), `"courseName"`) {
			t.Errorf("expected JSON output, got %q", output.String())
		}
	})

	t.Run("show unknown course", func(t *testing.T) {
		runner, _, _ := newTestRunner()

		err := runApp(t, runner, "course", "show", "Nope")
		if err == nil {
			t.Fatal("expected error for unknown course")
		}
		if !strings.Contains(err.Error(), shared.ErrCourseNotFound.Error()) {
			t.Errorf("expected course not found error, got %v", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		runner, kv, _ := newTestRunner()
		seedCourse(t, kv, "Go Basics", models.Video{VideoID: "vid1", Title: "Intro"})

		if err := runApp(t, runner, "course", "delete", "Go Basics"); err != nil {
			t.Fatalf("course delete failed: %v", err)
		}

		courses, err := repositories.NewCourseRepository(kv).List()
		if err != nil {
			t.Fatalf("failed to list courses: %v", err)
		}
		if len(courses) != 0 {
			t.Errorf("expected no courses after delete, got %d", len(courses))
		}
	})

	t.Run("export to json", func(t *testing.T) {
		runner, kv, output := newTestRunner()
		seedCourse(t, kv, "Go Basics", models.Video{VideoID: "vid1", Title: "Intro"})

		tmpDir := t.TempDir()
		outPath := tmpDir + "/course.json"
		if err := runApp(t, runner, "course", "export", "Go Basics", "--format", "json", "--output", outPath); err != nil {
			t.Fatalf("course export failed: %v", err)
		}
		tu.AssertFileExists(t, outPath)
		if !strings.Contains(output.String(), outPath) {
			t.Errorf("expected output path in summary, got %q", output.String())
		}
	})

	t.Run("add without credentials", func(t *testing.T) {
		runner, _, _ := newTestRunner()

		err := runApp(t, runner, "course", "add", "https://www.youtube.com/playlist?list=PLabc123")
		if err == nil {
			t.Fatal("expected error without stored credentials")
		}
		if !strings.Contains(err.Error(), shared.ErrMissingAPIKey.Error()) {
			t.Errorf("expected missing API key error, got %v", err)
		}
	})
}
