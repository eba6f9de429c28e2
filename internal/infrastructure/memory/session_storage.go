package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/fumimanager/internal/domain/repository"
)

var _ repository.SessionStorage = (*SessionStorage)(nil)

// SessionStorage almacenamiento de sesiones en el proceso.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[string]map[string]string
}

// NewSessionStorage crea un almacenamiento vacío.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{sessions: make(map[string]map[string]string)}
}

func (s *SessionStorage) Get(_ context.Context, sessionID, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.sessions[sessionID][key]
	return v, ok, nil
}

func (s *SessionStorage) Set(_ context.Context, sessionID string, values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.sessions[sessionID]
	if !ok {
		m = make(map[string]string, len(values))
		s.sessions[sessionID] = m
	}
	for k, v := range values {
		m[k] = v
	}
	return nil
}

func (s *SessionStorage) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
