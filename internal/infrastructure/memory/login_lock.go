package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/fumimanager/internal/domain"
)

// LoginLock guarda de reentrada dentro del proceso.
type LoginLock struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewLoginLock crea la guarda.
func NewLoginLock() *LoginLock {
	return &LoginLock{held: make(map[string]struct{})}
}

// Acquire toma la clave o devuelve ErrLoginInProgress si ya está tomada.
func (l *LoginLock) Acquire(_ context.Context, key string) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, busy := l.held[key]; busy {
		return nil, domain.ErrLoginInProgress
	}
	l.held[key] = struct{}{}
	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.held, key)
			l.mu.Unlock()
		})
	}, nil
}
