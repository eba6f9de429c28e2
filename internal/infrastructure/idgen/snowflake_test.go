package idgen_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fumimanager/internal/infrastructure/idgen"
)

func TestSnowflake_UnicosYCrecientes(t *testing.T) {
	gen, err := idgen.NewSnowflake(1)
	require.NoError(t, err)

	prev := gen.Next()
	for i := 0; i < 1000; i++ {
		id := gen.Next()
		assert.Greater(t, id, prev)
		prev = id
	}
}

func TestSnowflake_Concurrente(t *testing.T) {
	gen, err := idgen.NewSnowflake(7)
	require.NoError(t, err)

	const n = 50
	ids := make(chan int64, n*20)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				ids <- gen.Next()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "id repetido %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n*20)
}

func TestSnowflake_NodoInvalido(t *testing.T) {
	_, err := idgen.NewSnowflake(5000)
	assert.Error(t, err)
}
