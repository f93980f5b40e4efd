package session

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// FileCredentialStore persists the token pair as a small JSON file,
// the single-host analog of the browser's localStorage.
type FileCredentialStore struct {
	path   string
	logger *slog.Logger

	mu      sync.Mutex
	entries map[string]string
}

func NewFileCredentialStore(path string, logger *slog.Logger) (*FileCredentialStore, error) {
	s := &FileCredentialStore{
		path:    path,
		logger:  logger,
		entries: make(map[string]string),
	}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// first run
	case err != nil:
		return nil, err
	default:
		if err := json.Unmarshal(raw, &s.entries); err != nil {
			logger.Warn("credential file is corrupt, starting empty", "path", path, "error", err)
			s.entries = make(map[string]string)
		}
	}

	return s, nil
}

func (s *FileCredentialStore) Get(ctx context.Context, key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.entries[key]
	return value, ok
}

func (s *FileCredentialStore) Set(ctx context.Context, key, value string) error {
	if !validCredentialKey(key) {
		return errUnknownCredentialKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = value
	return s.flushLocked()
}

func (s *FileCredentialStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return s.flushLocked()
}

func (s *FileCredentialStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]string)
	return s.flushLocked()
}

// flushLocked writes the entries through a rename so a crash mid-write
// never truncates the previous credentials.
func (s *FileCredentialStore) flushLocked() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}

	data, err := json.Marshal(s.entries)
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}

	return os.Rename(tmp, s.path)
}
