// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// courseCommand handles course lifecycle operations
func courseCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "course",
		Aliases: []string{"c"},
		Usage:   "Manage playlist courses",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Import a YouTube playlist as a course",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "url",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "name",
						Aliases: []string{"n"},
						Usage:   "Course name (defaults to the playlist title)",
					},
				},
				Action: r.CourseAdd,
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List stored courses with progress",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.CourseList,
			},
			{
				Name:  "show",
				Usage: "Show a course's lessons and completion state",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "name",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.CourseShow,
			},
			{
				Name:    "delete",
				Aliases: []string{"rm"},
				Usage:   "Delete a stored course",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "name",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "purge-notes",
						Usage: "Also delete notes for the course's lessons",
					},
				},
				Action: r.CourseDelete,
			},
			{
				Name:  "export",
				Usage: "Export a course to a file",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "name",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format (json, csv, markdown, txt)",
						Value:   "json",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
					},
				},
				Action: r.CourseExport,
			},
			{
				Name:  "export-all",
				Usage: "Export every stored course concurrently",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format (json, csv, markdown, txt)",
						Value:   "json",
					},
					&cli.StringFlag{
						Name:    "output-dir",
						Aliases: []string{"o"},
						Usage:   "Output directory (default: generated)",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of concurrent export workers",
						Value: 5,
					},
				},
				Action: r.CourseExportAll,
			},
		},
	}
}

// videoCommand handles per-lesson completion operations
func videoCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "video",
		Aliases: []string{"lesson", "v"},
		Usage:   "Update lesson completion state",
		Commands: []*cli.Command{
			{
				Name:  "toggle",
				Usage: "Flip a lesson's completion state",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "course",
					},
					&cli.StringArg{
						Name: "video-id",
					},
				},
				Action: r.VideoToggle,
			},
			{
				Name:  "done",
				Usage: "Mark a lesson complete",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "course",
					},
					&cli.StringArg{
						Name: "video-id",
					},
				},
				Action: r.VideoDone,
			},
			{
				Name:  "undone",
				Usage: "Mark a lesson not complete",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "course",
					},
					&cli.StringArg{
						Name: "video-id",
					},
				},
				Action: r.VideoUndone,
			},
		},
	}
}

// notesCommand handles per-lesson notes
func notesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "notes",
		Usage: "Manage lesson notes",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Print the notes saved for a lesson",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "video-id",
					},
				},
				Action: r.NotesShow,
			},
			{
				Name:  "set",
				Usage: "Save notes for a lesson (empty text clears)",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "video-id",
					},
					&cli.StringArg{
						Name: "text",
					},
				},
				Action: r.NotesSet,
			},
			{
				Name:  "export",
				Usage: "Export all notes to a markdown file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
					},
				},
				Action: r.NotesExport,
			},
		},
	}
}

// keyCommand handles YouTube Data API key storage
func keyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "key",
		Usage: "Manage the YouTube Data API key",
		Commands: []*cli.Command{
			{
				Name:  "save",
				Usage: "Store an API key",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "key",
					},
				},
				Action: r.KeySave,
			},
			{
				Name:   "show",
				Usage:  "Show the stored API key (masked)",
				Action: r.KeyShow,
			},
			{
				Name:   "reset",
				Usage:  "Remove the stored API key",
				Action: r.KeyReset,
			},
		},
	}
}

// authCommand handles Google OAuth operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage Google authentication",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Authorize via Google OAuth2 and store the token",
				Flags: []cli.Flag{
					&cli.DurationFlag{
						Name:  "timeout",
						Usage: "How long to wait for the browser callback",
						Value: defaultAuthTimeout,
					},
					&cli.BoolFlag{
						Name:  "no-browser",
						Usage: "Print the authorization URL instead of opening a browser",
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:   "status",
				Usage:  "Check stored credentials",
				Action: r.AuthStatus,
			},
		},
	}
}

// setupCommand handles setup operations for database and configuration.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive course tracking.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive TUI for course tracking",
		Action:  r.TUI,
	}
}
