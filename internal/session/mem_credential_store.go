package session

import (
	"context"
	"sync"
)

// MemCredentialStore keeps the token pair in memory only. Used for
// tests and ephemeral runs; nothing survives a restart.
type MemCredentialStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewMemCredentialStore() *MemCredentialStore {
	return &MemCredentialStore{
		entries: make(map[string]string),
	}
}

func (s *MemCredentialStore) Get(ctx context.Context, key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	return value, ok
}

func (s *MemCredentialStore) Set(ctx context.Context, key, value string) error {
	if !validCredentialKey(key) {
		return errUnknownCredentialKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	return nil
}

func (s *MemCredentialStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

func (s *MemCredentialStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]string)
	return nil
}
