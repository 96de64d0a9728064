package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/misterclayt0n/dugout/internal/models"
)

const (
	KeyAuthToken   = "authToken"
	KeyCurrentUser = "currentUser"
)

// SessionStore persists the auth token and the serialized current user.
type SessionStore struct {
	kv  KV
	log *slog.Logger
}

func NewSessionStore(kv KV, log *slog.Logger) *SessionStore {
	if log == nil {
		log = slog.Default()
	}
	return &SessionStore{kv: kv, log: log}
}

// Load returns the persisted session. Anything unreadable counts as no
// session.
func (s *SessionStore) Load() (*models.Session, bool) {
	token, ok, err := s.kv.Get(KeyAuthToken)
	if err != nil || !ok || token == "" {
		if err != nil {
			s.log.Debug("session_load_failed", "key", KeyAuthToken, "error", err)
		}
		return nil, false
	}

	raw, ok, err := s.kv.Get(KeyCurrentUser)
	if err != nil || !ok || raw == "" {
		if err != nil {
			s.log.Debug("session_load_failed", "key", KeyCurrentUser, "error", err)
		}
		return nil, false
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.log.Debug("session_load_failed", "key", KeyCurrentUser, "error", err)
		return nil, false
	}

	return &models.Session{Token: token, User: user}, true
}

func (s *SessionStore) Save(session models.Session) error {
	user, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("encoding user: %w", err)
	}
	if err := s.kv.Set(KeyAuthToken, session.Token); err != nil {
		return err
	}
	if err := s.kv.Set(KeyCurrentUser, string(user)); err != nil {
		return err
	}
	return nil
}

func (s *SessionStore) Clear() error {
	return s.kv.Delete(KeyAuthToken, KeyCurrentUser)
}
