// Package repolist persists the dashboard's saved repositories as one
// JSON-encoded value under a fixed key.
package repolist

import (
	"context"
	"encoding/json"
	"log/slog"

	apperrors "github.com/stahnma/github-explorer/internal/errors"
	"github.com/stahnma/github-explorer/internal/github"
	"github.com/stahnma/github-explorer/internal/storage"
)

// StorageKey is the key the list is stored under.
const StorageKey = "github repositories"

// List is the ordered sequence of saved repositories, oldest first.
type List []github.RepositorySummary

// Service loads and saves the list in a storage.Store.
type Service struct {
	store storage.Store
}

// NewService creates a Service backed by store.
func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// Load returns the saved list. A missing key, an unreadable store or a value
// that does not decode all yield an empty list.
func (s *Service) Load(ctx context.Context) List {
	raw, found, err := s.store.Get(ctx, StorageKey)
	if err != nil {
		slog.Warn("reading saved repositories", "error", err)
		return List{}
	}
	if !found {
		return List{}
	}
	var list List
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		slog.Warn("saved repositories are not valid JSON, starting empty", "error", err)
		return List{}
	}
	if list == nil {
		list = List{}
	}
	return list
}

// Append returns a new list with item at the end. list is not modified.
// Duplicates are kept: adding the same repository twice yields two entries.
func Append(list List, item github.RepositorySummary) List {
	out := make(List, len(list), len(list)+1)
	copy(out, list)
	return append(out, item)
}

// Save replaces the stored list with list.
func (s *Service) Save(ctx context.Context, list List) error {
	if list == nil {
		list = List{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return apperrors.NewStorageError("encoding saved repositories", err)
	}
	if err := s.store.Set(ctx, StorageKey, string(data)); err != nil {
		return apperrors.NewStorageError("writing saved repositories", err)
	}
	return nil
}

// Clear removes the stored list.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, StorageKey); err != nil {
		return apperrors.NewStorageError("clearing saved repositories", err)
	}
	return nil
}
