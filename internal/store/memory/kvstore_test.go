package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/taskboard/internal/core/kv"
)

func TestKVStore_GetSet(t *testing.T) {
	ctx := context.Background()
	s := NewKVStore()

	require.NoError(t, s.Set(ctx, "foo", "42"))
	val, err := s.Get(ctx, "foo")
	require.NoError(t, err)
	assert.Equal(t, "42", val)

	_, err = s.Get(ctx, "bar")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestKVStore_FromCopiesItems(t *testing.T) {
	ctx := context.Background()
	items := map[string]string{"a": "1", "b": "2"}
	s := NewKVStoreFrom(items)
	items["a"] = "changed"

	val, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "1", val)
	assert.Equal(t, 2, s.Len())
}

func TestKVStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewKVStore()
	var wg sync.WaitGroup

	for i := range 100 {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = s.Set(ctx, string(rune('a'+n%26))+string(rune('0'+n/26)), "v")
		}(i)
		go func() {
			defer wg.Done()
			_, _ = s.Get(ctx, "a0")
		}()
	}

	wg.Wait()

	assert.Equal(t, 100, s.Len())
}
