package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/pathfound/internal/shared"
	"github.com/urfave/cli/v3"
)

// KeySave stores a YouTube Data API key.
func (r *Runner) KeySave(ctx context.Context, cmd *cli.Command) error {
	key := strings.TrimSpace(cmd.StringArg("key"))
	if key == "" {
		return fmt.Errorf("%w: API key", shared.ErrMissingArgument)
	}

	creds, err := r.credentialRepo()
	if err != nil {
		return err
	}

	if err := creds.SaveAPIKey(key); err != nil {
		return err
	}

	r.logger.Info("API key saved")
	return r.writePlain("✓ API key saved\n")
}

// KeyShow prints the stored API key, masked to its edges.
func (r *Runner) KeyShow(ctx context.Context, cmd *cli.Command) error {
	creds, err := r.credentialRepo()
	if err != nil {
		return err
	}

	key, err := creds.APIKey()
	if err != nil {
		return err
	}

	return r.writePlain("API key: %s\n", maskKey(key))
}

// KeyReset removes the stored API key.
func (r *Runner) KeyReset(ctx context.Context, cmd *cli.Command) error {
	creds, err := r.credentialRepo()
	if err != nil {
		return err
	}

	if err := creds.ResetAPIKey(); err != nil {
		return err
	}

	return r.writePlain("✓ API key removed\n")
}

// maskKey hides the middle of a credential, keeping enough of the
// edges to recognize which key is stored.
func maskKey(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
}
