package repositories

import (
	"fmt"
	"strings"

	"github.com/desertthunder/pathfound/internal/store"
)

// NotesRepository persists free-form notes keyed by video ID.
//
// Notes live under their own keys, independent of the course document, so a
// deleted course's notes survive unless explicitly purged.
type NotesRepository struct {
	kv store.KV
}

// NewNotesRepository creates a [NotesRepository] backed by the given store.
func NewNotesRepository(kv store.KV) *NotesRepository {
	return &NotesRepository{kv: kv}
}

// Get returns the notes for a video, or "" when none were saved.
func (r *NotesRepository) Get(videoID string) (string, error) {
	notes, _, err := r.kv.Get(store.NotesKey(videoID))
	if err != nil {
		return "", fmt.Errorf("failed to load notes for %s: %w", videoID, err)
	}
	return notes, nil
}

// Set writes the notes for a video. Empty text removes the entry.
func (r *NotesRepository) Set(videoID, text string) error {
	if text == "" {
		return r.Delete(videoID)
	}
	if err := r.kv.Set(store.NotesKey(videoID), text); err != nil {
		return fmt.Errorf("failed to save notes for %s: %w", videoID, err)
	}
	return nil
}

// Delete removes a video's notes.
func (r *NotesRepository) Delete(videoID string) error {
	if err := r.kv.Delete(store.NotesKey(videoID)); err != nil {
		return fmt.Errorf("failed to delete notes for %s: %w", videoID, err)
	}
	return nil
}

// All returns every saved note keyed by video ID.
func (r *NotesRepository) All() (map[string]string, error) {
	keys, err := r.kv.Keys(store.NotesKeyStem)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	notes := make(map[string]string, len(keys))
	for _, key := range keys {
		text, found, err := r.kv.Get(key)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", key, err)
		}
		if found {
			notes[strings.TrimPrefix(key, store.NotesKeyStem)] = text
		}
	}
	return notes, nil
}
