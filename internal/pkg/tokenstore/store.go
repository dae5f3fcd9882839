// Package tokenstore persists the current credential pair and last-known
// user across process restarts, the way the web client keeps them in
// localStorage under the access_token, refresh_token and user keys.
package tokenstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/okul/schoolhub/internal/pkg/auth"
)

// Store is the shared mutable credential state. Save and Clear are the only
// mutating operations; both tokens are always written together so concurrent
// readers never observe a partial pair.
type Store interface {
	// Save overwrites the stored token pair. No expiry validation is
	// performed locally.
	Save(pair auth.TokenPair) error
	// SaveAccess replaces only the access token, keeping the stored refresh
	// token. Used after a successful refresh call.
	SaveAccess(access string) error
	// Read returns whatever is present; an empty pair is a valid state.
	Read() (auth.TokenPair, error)
	// SaveUser caches the last-known authenticated user as raw JSON.
	SaveUser(user json.RawMessage) error
	// User returns the cached user JSON, or nil when none is stored.
	User() (json.RawMessage, error)
	// Clear removes tokens and the cached user in one step.
	Clear() error
}

// persisted is the on-disk document layout.
type persisted struct {
	AccessToken  string          `json:"access_token,omitempty"`
	RefreshToken string          `json:"refresh_token,omitempty"`
	User         json.RawMessage `json:"user,omitempty"`
}

// FileStore keeps the credential document in a single JSON file, written
// atomically via a temp file and rename.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a FileStore at path, creating parent directories as
// needed.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("tokenstore: path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("tokenstore: create dir: %w", err)
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) load() (persisted, error) {
	var doc persisted
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return doc, nil
		}
		return doc, fmt.Errorf("tokenstore: read: %w", err)
	}
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return persisted{}, fmt.Errorf("tokenstore: decode: %w", err)
	}
	return doc, nil
}

func (s *FileStore) write(doc persisted) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("tokenstore: encode: %w", err)
	}

	// Write-then-rename keeps readers from ever seeing a half-written file.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("tokenstore: write: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("tokenstore: rename: %w", err)
	}
	return nil
}

// Save overwrites the stored token pair.
func (s *FileStore) Save(pair auth.TokenPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	doc.AccessToken = pair.Access
	doc.RefreshToken = pair.Refresh
	return s.write(doc)
}

// SaveAccess replaces only the access token.
func (s *FileStore) SaveAccess(access string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	doc.AccessToken = access
	return s.write(doc)
}

// Read returns the stored token pair.
func (s *FileStore) Read() (auth.TokenPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return auth.TokenPair{}, err
	}
	return auth.TokenPair{Access: doc.AccessToken, Refresh: doc.RefreshToken}, nil
}

// SaveUser caches the last-known user.
func (s *FileStore) SaveUser(user json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	doc.User = user
	return s.write(doc)
}

// User returns the cached user JSON.
func (s *FileStore) User() (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.User, nil
}

// Clear removes all stored keys in one write.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(persisted{})
}

// MemStore is an in-memory Store for tests and ephemeral sessions.
type MemStore struct {
	mu   sync.Mutex
	pair auth.TokenPair
	user json.RawMessage
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Save overwrites the stored token pair.
func (s *MemStore) Save(pair auth.TokenPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair = pair
	return nil
}

// SaveAccess replaces only the access token.
func (s *MemStore) SaveAccess(access string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair.Access = access
	return nil
}

// Read returns the stored token pair.
func (s *MemStore) Read() (auth.TokenPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pair, nil
}

// SaveUser caches the last-known user.
func (s *MemStore) SaveUser(user json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	return nil
}

// User returns the cached user JSON.
func (s *MemStore) User() (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user, nil
}

// Clear removes tokens and the cached user.
func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair = auth.TokenPair{}
	s.user = nil
	return nil
}
