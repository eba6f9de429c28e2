package redisstore

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/bsm/redislock"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fumimanager/internal/domain"
)

// Estos tests necesitan un Redis real: REDIS_TEST_URL=redis://localhost:6379/15
func testClient(t *testing.T) (*SessionStorage, *redis.Client) {
	t.Helper()
	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("REDIS_TEST_URL no definido")
	}
	rdb, err := NewClient(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })
	return NewSessionStorage(rdb, "fumimanager-test:"+uuid.NewString()+":", time.Minute), rdb
}

func TestSessionStorage_Key(t *testing.T) {
	s := NewSessionStorage(nil, "fumimanager:session:", 0)
	assert.Equal(t, "fumimanager:session:abc", s.Key("abc"))
}

func TestSessionStorage_SetGetClear(t *testing.T) {
	s, rdb := testClient(t)
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "sid", "userRole")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "sid", map[string]string{"userRole": "admin", "userName": "Super Admin"}))
	v, ok, err := s.Get(ctx, "sid", "userName")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Super Admin", v)

	ttl, err := rdb.TTL(ctx, s.Key("sid")).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, s.Clear(ctx, "sid"))
	_, ok, err = s.Get(ctx, "sid", "userRole")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoginLock_Reentrada(t *testing.T) {
	s, rdb := testClient(t)
	ctx := context.Background()
	lock := NewLoginLock(redislock.New(rdb), s.prefix, 5*time.Second, zerolog.Nop())

	release, err := lock.Acquire(ctx, "sid")
	require.NoError(t, err)

	_, err = lock.Acquire(ctx, "sid")
	assert.ErrorIs(t, err, domain.ErrLoginInProgress)

	release()
	release()
	again, err := lock.Acquire(ctx, "sid")
	require.NoError(t, err)
	again()
}
