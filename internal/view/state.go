package view

import (
	"sync"

	"github.com/misterclayt0n/dugout/internal/models"
)

// State is the in-memory session and the selected player. It mirrors the
// session store; the app updates both together.
type State struct {
	mu       sync.RWMutex
	session  *models.Session
	selected *models.Player
}

func (s *State) Session() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return models.Session{}, false
	}
	return *s.session, true
}

func (s *State) SetSession(session models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = &session
}

func (s *State) ClearSession() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
}

// Token returns the bearer token, or "" without a session.
func (s *State) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return ""
	}
	return s.session.Token
}

// Selected returns a snapshot of the selected player.
func (s *State) Selected() (models.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		return models.Player{}, false
	}
	return *s.selected, true
}

func (s *State) Select(p models.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = &p
}

func (s *State) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}
