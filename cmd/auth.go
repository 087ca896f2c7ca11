package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/desertthunder/pathfound/internal/server"
	"github.com/desertthunder/pathfound/internal/services"
	"github.com/desertthunder/pathfound/internal/shared"
	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"
)

const defaultAuthTimeout = 3 * time.Minute

// AuthLogin runs the Google OAuth2 authorization code flow.
//
// Starts a local callback server, opens the consent page in a browser,
// and stores the exchanged token.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	oauthConfig, err := services.NewGoogleOAuthConfig(r.config.Credentials.YouTube)
	if err != nil {
		return err
	}

	creds, err := r.credentialRepo()
	if err != nil {
		return err
	}

	state, err := shared.GenerateState()
	if err != nil {
		return fmt.Errorf("failed to generate state token: %w", err)
	}

	handler := server.NewOAuthHandler(oauthConfig, state)
	router := server.NewBasicRouter()
	router.Handler(handler)

	addr := fmt.Sprintf("%s:%d", r.config.Server.Host, r.config.Server.Port)
	srv := &http.Server{Addr: addr, Handler: router}

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	r.logger.Info("waiting for OAuth callback", "addr", addr)

	authURL := oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
	if cmd.Bool("no-browser") {
		r.writePlain("Open this URL to authorize:\n\n%s\n", authURL)
	} else {
		r.writePlain("Opening browser for authorization...\n")
		if err := shared.OpenBrowser(authURL); err != nil {
			r.logger.Warn("failed to open browser", "error", err)
			r.writePlain("Open this URL to authorize:\n\n%s\n", authURL)
		}
	}

	select {
	case result := <-handler.Result():
		if result.Error() != nil {
			return result.Error()
		}
		if err := creds.SaveToken(result.Token); err != nil {
			return err
		}
		r.logger.Info("OAuth token stored")
		return r.writePlain("✓ Authentication successful\n")
	case err := <-serverErr:
		return fmt.Errorf("%w: callback server: %v", shared.ErrAuthFailed, err)
	case <-time.After(cmd.Duration("timeout")):
		return fmt.Errorf("%w: no OAuth callback received", shared.ErrTimeout)
	case <-ctx.Done():
		return ctx.Err()
	}
}

// AuthStatus reports which credentials are stored and whether the
// OAuth token is still valid.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	creds, err := r.credentialRepo()
	if err != nil {
		return err
	}

	if key, err := creds.APIKey(); err == nil {
		r.writePlain("API key: ✓ %s\n", maskKey(key))
	} else {
		r.writePlain("API key: ✗ not set\n")
	}

	token, err := creds.Token()
	switch {
	case errors.Is(err, shared.ErrNotAuthenticated):
		r.writePlain("OAuth token: ✗ not authenticated\n")
	case err != nil:
		return err
	case token.Valid():
		r.writePlain("OAuth token: ✓ valid\n")
	case token.RefreshToken != "":
		r.writePlain("OAuth token: ✓ expired, refresh token present\n")
	default:
		r.writePlain("OAuth token: ✗ expired\n")
	}

	return nil
}
