package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/preston-bernstein/nba-roster-service/internal/cache"
)

const (
	// DefaultFileDir is where the file backend keeps its entry when no directory is configured.
	DefaultFileDir = "data/cache"
	rosterFileName = "roster.json"
)

// FileStore keeps the cached roster on disk so a restart can serve the last
// assembled roster without a cold fetch.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore constructs a store writing {dir}/roster.json.
func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = DefaultFileDir
	}
	return &FileStore{path: filepath.Join(dir, rosterFileName)}
}

// Path exposes the entry file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the entry file. A missing file is a miss.
func (s *FileStore) Load(ctx context.Context) (cache.Entry, bool, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return cache.Entry{}, false, nil
	}
	if err != nil {
		return cache.Entry{}, false, fmt.Errorf("read cached roster: %w", err)
	}

	var entry cache.Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return cache.Entry{}, false, fmt.Errorf("decode cached roster: %w", err)
	}
	return entry, true, nil
}

// Save writes the entry through a temp file and rename so readers never see a partial file.
func (s *FileStore) Save(ctx context.Context, entry cache.Entry) error {
	_ = ctx
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cached roster: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, err := os.ReadFile(s.path); err == nil && bytes.Equal(existing, data) {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Clear removes the entry file.
func (s *FileStore) Clear(ctx context.Context) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
