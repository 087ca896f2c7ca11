package repositories

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/desertthunder/pathfound/internal/shared"
	"github.com/desertthunder/pathfound/internal/store"
	"golang.org/x/oauth2"
)

// CredentialRepository persists the YouTube API key and OAuth token.
type CredentialRepository struct {
	kv store.KV
}

// NewCredentialRepository creates a [CredentialRepository] backed by the given store.
func NewCredentialRepository(kv store.KV) *CredentialRepository {
	return &CredentialRepository{kv: kv}
}

// APIKey returns the stored API key, or [shared.ErrMissingAPIKey] if none is saved.
func (r *CredentialRepository) APIKey() (string, error) {
	key, found, err := r.kv.Get(store.KeyAPIKey)
	if err != nil {
		return "", fmt.Errorf("failed to load API key: %w", err)
	}
	if !found || key == "" {
		return "", shared.ErrMissingAPIKey
	}
	return key, nil
}

// SaveAPIKey stores the API key, replacing any previous value.
func (r *CredentialRepository) SaveAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("%w: API key is empty", shared.ErrInvalidInput)
	}
	if err := r.kv.Set(store.KeyAPIKey, key); err != nil {
		return fmt.Errorf("failed to save API key: %w", err)
	}
	return nil
}

// ResetAPIKey removes the stored API key.
func (r *CredentialRepository) ResetAPIKey() error {
	if err := r.kv.Delete(store.KeyAPIKey); err != nil {
		return fmt.Errorf("failed to reset API key: %w", err)
	}
	return nil
}

// Token returns the stored OAuth token, or [shared.ErrNotAuthenticated] if none is saved.
func (r *CredentialRepository) Token() (*oauth2.Token, error) {
	raw, found, err := r.kv.Get(store.KeyToken)
	if err != nil {
		return nil, fmt.Errorf("failed to load token: %w", err)
	}
	if !found {
		return nil, shared.ErrNotAuthenticated
	}

	var token oauth2.Token
	if err := json.Unmarshal([]byte(raw), &token); err != nil {
		return nil, fmt.Errorf("%w: stored token is corrupt: %v", shared.ErrNotAuthenticated, err)
	}
	return &token, nil
}

// SaveToken stores the OAuth token as JSON.
func (r *CredentialRepository) SaveToken(token *oauth2.Token) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}
	if err := r.kv.Set(store.KeyToken, string(data)); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

// ResetToken removes the stored OAuth token.
func (r *CredentialRepository) ResetToken() error {
	if err := r.kv.Delete(store.KeyToken); err != nil {
		return fmt.Errorf("failed to reset token: %w", err)
	}
	return nil
}
