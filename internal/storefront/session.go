package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sync"

	"storefront/internal/models"
)

// CookieCarrier is implemented by API transports whose sessions ride on
// cookies. The offline backend has no cookies and returns nil.
type CookieCarrier interface {
	Cookies() []*http.Cookie
	SetCookies([]*http.Cookie)
}

// UserCarrier is implemented by transports that track the signed-in user
// directly instead of in cookies, so a saved session can be handed back to
// them on restore.
type UserCarrier interface {
	SetUser(*models.User)
}

// SessionState is the persisted session snapshot.
type SessionState struct {
	User    *models.User   `json:"user"`
	Cookies []*http.Cookie `json:"cookies"`
}

// Store persists session state between runs.
type Store interface {
	Load() (*SessionState, error)
	Save(state SessionState) error
	Clear() error
}

// FileStore keeps the session snapshot in a single JSON file.
type FileStore struct {
	Path string
}

// Load reads the saved state. A missing file returns an empty state.
func (s *FileStore) Load() (*SessionState, error) {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return &SessionState{}, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}
	var state SessionState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("failed to decode session file: %w", err)
	}
	return &state, nil
}

// Save writes the state, readable only by the owner.
func (s *FileStore) Save(state SessionState) error {
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session state: %w", err)
	}
	if err := os.WriteFile(s.Path, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Clear deletes the saved state.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// Session tracks the signed-in user and keeps the store in sync. When the
// backend rejects the session mid-flight the in-memory user is dropped,
// while the stored snapshot survives so the UI can still show who was
// signed in and prompt for re-authentication.
type Session struct {
	api   AuthAPI
	store Store

	mu   sync.Mutex
	user *models.User
}

// NewSession creates a Session. store may be nil for purely in-memory use.
func NewSession(api AuthAPI, store Store) *Session {
	return &Session{api: api, store: store}
}

// User returns the currently signed-in user, or nil.
func (s *Session) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Restore loads a saved session into the transport and memory. It does
// not validate the session against the backend; the first authenticated
// call does that.
func (s *Session) Restore(carrier CookieCarrier) error {
	if s.store == nil {
		return nil
	}
	state, err := s.store.Load()
	if err != nil {
		return err
	}
	if carrier != nil {
		if len(state.Cookies) > 0 {
			carrier.SetCookies(state.Cookies)
		}
		if uc, ok := carrier.(UserCarrier); ok && state.User != nil {
			uc.SetUser(state.User)
		}
	}

	s.mu.Lock()
	s.user = state.User
	s.mu.Unlock()
	return nil
}

// Login authenticates and persists the fresh session.
func (s *Session) Login(ctx context.Context, carrier CookieCarrier, email, password string) (*models.User, error) {
	user, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	if s.store != nil {
		state := SessionState{User: user}
		if carrier != nil {
			state.Cookies = carrier.Cookies()
		}
		if err := s.store.Save(state); err != nil {
			return user, err
		}
	}
	return user, nil
}

// Logout ends the session everywhere: backend, memory, and store.
func (s *Session) Logout(ctx context.Context) error {
	err := s.api.Logout(ctx)

	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	if s.store != nil {
		if clearErr := s.store.Clear(); clearErr != nil && err == nil {
			err = clearErr
		}
	}
	return err
}

// HandleUnauthorized drops the in-memory user after the backend rejected
// the session. The stored snapshot is kept for the re-login prompt.
func (s *Session) HandleUnauthorized() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}
