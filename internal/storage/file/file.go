package file

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	gocache "github.com/patrickmn/go-cache"

	"github.com/stahnma/github-explorer/internal/storage"
)

// fileStorage keeps entries in a go-cache map with no expiration and writes
// the whole map to a GOB file after each mutation.
type fileStorage struct {
	mu    sync.Mutex
	path  string
	inner *gocache.Cache
}

// NewFileStorage opens the store backed by path. A missing file yields an
// empty store; so does a file that fails to decode.
func NewFileStorage(path string) (storage.Store, error) {
	items, err := load(path)
	if err != nil {
		return nil, err
	}
	return &fileStorage{
		path:  path,
		inner: gocache.NewFrom(gocache.NoExpiration, 0, items),
	}, nil
}

func load(path string) (map[string]gocache.Item, error) {
	items := map[string]gocache.Item{}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return items, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&items); err != nil {
		slog.Warn("store decode error, starting fresh", "path", path, "error", err)
		return map[string]gocache.Item{}, nil
	}
	return items, nil
}

func (s *fileStorage) Get(_ context.Context, key string) (string, bool, error) {
	val, found := s.inner.Get(key)
	if !found {
		return "", false, nil
	}
	str, ok := val.(string)
	if !ok {
		return "", false, fmt.Errorf("key %q holds %T, not string", key, val)
	}
	return str, true, nil
}

func (s *fileStorage) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Set(key, value, gocache.NoExpiration)
	return s.flush()
}

func (s *fileStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Delete(key)
	return s.flush()
}

func (s *fileStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flush()
}

// flush writes to a sibling temp file and renames it over path so a crash
// mid-write never leaves a truncated store behind.
func (s *fileStorage) flush() error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(s.inner.Items()); err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0600); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
