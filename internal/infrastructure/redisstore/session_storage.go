package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/fumimanager/internal/domain/repository"
)

var _ repository.SessionStorage = (*SessionStorage)(nil)

// SessionStorage un hash por sesión (userRole, userName) con expiración deslizante.
type SessionStorage struct {
	rdb    redis.Cmdable
	prefix string
	ttl    time.Duration
}

// NewSessionStorage construye el almacenamiento. ttl <= 0 deja las claves sin expiración.
func NewSessionStorage(rdb redis.Cmdable, prefix string, ttl time.Duration) *SessionStorage {
	return &SessionStorage{rdb: rdb, prefix: prefix, ttl: ttl}
}

// Key clave Redis de la sesión.
func (s *SessionStorage) Key(sessionID string) string {
	return s.prefix + sessionID
}

func (s *SessionStorage) Get(ctx context.Context, sessionID, key string) (string, bool, error) {
	v, err := s.rdb.HGet(ctx, s.Key(sessionID), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis: hget %s: %w", key, err)
	}
	return v, true, nil
}

// Set escribe todos los valores y renueva la expiración en una sola transacción.
func (s *SessionStorage) Set(ctx context.Context, sessionID string, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	key := s.Key(sessionID)
	fields := make([]interface{}, 0, len(values)*2)
	for k, v := range values {
		fields = append(fields, k, v)
	}
	_, err := s.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HSet(ctx, key, fields...)
		if s.ttl > 0 {
			p.Expire(ctx, key, s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis: hset: %w", err)
	}
	return nil
}

func (s *SessionStorage) Clear(ctx context.Context, sessionID string) error {
	if err := s.rdb.Del(ctx, s.Key(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis: del: %w", err)
	}
	return nil
}
