package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/pathfound/internal/repositories"
	"github.com/desertthunder/pathfound/internal/services"
	"github.com/desertthunder/pathfound/internal/shared"
	"github.com/desertthunder/pathfound/internal/store"
	"github.com/desertthunder/pathfound/internal/tasks"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/option"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	kv         store.KV
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
//
// KV is injectable for tests; when nil the runner opens the SQLite
// store from the config lazily on first use.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	KV         store.KV
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		kv:         opts.KV,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

// SetLogger swaps the runner's logger, e.g. to a file logger while the TUI owns the terminal.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

// Close releases the backing store if one was opened.
func (r *Runner) Close() error {
	if r.kv == nil {
		return nil
	}
	return r.kv.Close()
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, keyCommand, courseCommand, videoCommand, notesCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// openKV returns the backing key/value store, opening the SQLite
// database from the config on first use.
func (r *Runner) openKV() (store.KV, error) {
	if r.kv != nil {
		return r.kv, nil
	}

	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)

	r.kv = store.NewSQLiteKV(db)
	return r.kv, nil
}

func (r *Runner) courseRepo() (*repositories.CourseRepository, error) {
	kv, err := r.openKV()
	if err != nil {
		return nil, err
	}
	return repositories.NewCourseRepository(kv).WithLogger(r.logger), nil
}

func (r *Runner) notesRepo() (*repositories.NotesRepository, error) {
	kv, err := r.openKV()
	if err != nil {
		return nil, err
	}
	return repositories.NewNotesRepository(kv), nil
}

func (r *Runner) credentialRepo() (*repositories.CredentialRepository, error) {
	kv, err := r.openKV()
	if err != nil {
		return nil, err
	}
	return repositories.NewCredentialRepository(kv), nil
}

// playlistSource builds a YouTube client from stored credentials,
// preferring the API key and falling back to a saved OAuth token.
func (r *Runner) playlistSource(ctx context.Context) (services.PlaylistSource, error) {
	creds, err := r.credentialRepo()
	if err != nil {
		return nil, err
	}

	if key, err := creds.APIKey(); err == nil {
		return services.NewYouTubeService(ctx, r.config.Importer, option.WithAPIKey(key))
	}

	if token, err := creds.Token(); err == nil {
		oauthConfig, err := services.NewGoogleOAuthConfig(r.config.Credentials.YouTube)
		if err != nil {
			return nil, err
		}
		client := oauthConfig.Client(ctx, token)
		return services.NewYouTubeService(ctx, r.config.Importer, option.WithHTTPClient(client))
	}

	return nil, fmt.Errorf("%w: save one with 'pathfound key save' or run 'pathfound auth login'", shared.ErrMissingAPIKey)
}

// engine builds a CourseEngine. The playlist source may be nil for
// operations that never fetch (delete, export).
func (r *Runner) engine(source services.PlaylistSource) (*tasks.CourseEngine, error) {
	courses, err := r.courseRepo()
	if err != nil {
		return nil, err
	}
	notes, err := r.notesRepo()
	if err != nil {
		return nil, err
	}
	return tasks.NewCourseEngine(courses, notes, source), nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
