// Google OAuth configuration for the fallback login flow
package services

import (
	"fmt"

	"github.com/desertthunder/pathfound/internal/shared"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// youtubeReadonlyScope grants read access to playlists, which is all the
// importer ever needs.
const youtubeReadonlyScope = "https://www.googleapis.com/auth/youtube.readonly"

// NewGoogleOAuthConfig builds the oauth2 config for the authorization-code
// login flow from the stored credentials.
func NewGoogleOAuthConfig(cfg shared.YouTubeConfig) (*oauth2.Config, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("%w: client_id and client_secret are required for OAuth login", shared.ErrMissingConfig)
	}

	redirectURI := cfg.RedirectURI
	if redirectURI == "" {
		redirectURI = "http://localhost:3000/callback"
	}

	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  redirectURI,
		Scopes:       []string{youtubeReadonlyScope},
		Endpoint:     google.Endpoint,
	}, nil
}
