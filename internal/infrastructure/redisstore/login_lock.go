package redisstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bsm/redislock"
	"github.com/rs/zerolog"

	"github.com/jhoicas/fumimanager/internal/domain"
)

// LoginLock guarda de reentrada compartida entre instancias, con un lock Redis por clave de login.
type LoginLock struct {
	locker *redislock.Client
	prefix string
	ttl    time.Duration
	log    zerolog.Logger
}

// NewLoginLock construye la guarda. ttl debe superar la latencia del login.
func NewLoginLock(locker *redislock.Client, prefix string, ttl time.Duration, log zerolog.Logger) *LoginLock {
	return &LoginLock{locker: locker, prefix: prefix + "login:", ttl: ttl, log: log}
}

// Acquire no reintenta: un lock tomado devuelve ErrLoginInProgress.
func (l *LoginLock) Acquire(ctx context.Context, key string) (func(), error) {
	lock, err := l.locker.Obtain(ctx, l.prefix+key, l.ttl, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, domain.ErrLoginInProgress
	}
	if err != nil {
		return nil, fmt.Errorf("redislock: obtain: %w", err)
	}
	var once sync.Once
	return func() {
		once.Do(func() {
			if err := lock.Release(context.Background()); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
				l.log.Warn().Err(err).Str("key", lock.Key()).Msg("no se pudo liberar el lock de login")
			}
		})
	}, nil
}
