package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyDeterministic(t *testing.T) {
	a := Key("users", map[string]string{"page": "1", "search": "jo"})
	b := Key("users", map[string]string{"search": "jo", "page": "1"})
	assert.Equal(t, a, b, "identical parameter sets must share one key")
}

func TestKeyIsolation(t *testing.T) {
	page1 := PageKey("events", 1, 10, map[string]string{"status": "upcoming"})
	page2 := PageKey("events", 2, 10, map[string]string{"status": "upcoming"})
	filtered := PageKey("events", 1, 10, map[string]string{"status": "completed"})

	assert.NotEqual(t, page1, page2, "different pages must not collide")
	assert.NotEqual(t, page1, filtered, "different filters must not collide")
}

func TestKeySeparatorInValueCannotForgeKey(t *testing.T) {
	forged := Key("users", map[string]string{"search": "a|role=admin"})
	distinct := Key("users", map[string]string{"search": "a", "role": "admin"})

	assert.NotEqual(t, forged, distinct,
		"a separator inside a value must not collide with another parameter set")
}

func TestKeyEmptyFilterOmitted(t *testing.T) {
	bare := PageKey("notices", 1, 10, nil)
	withEmpty := PageKey("notices", 1, 10, map[string]string{"category": ""})
	assert.Equal(t, bare, withEmpty, "empty filter values must not fork the key")
}

func TestGetOrFetchCachesResult(t *testing.T) {
	qc := New(time.Minute)
	calls := 0
	fetch := func(ctx context.Context) (interface{}, error) {
		calls++
		return "payload", nil
	}

	for i := 0; i < 3; i++ {
		v, err := qc.GetOrFetch(context.Background(), "users|page=1", fetch)
		require.NoError(t, err)
		assert.Equal(t, "payload", v)
	}
	assert.Equal(t, 1, calls, "repeat reads must be served from cache")
}

func TestGetOrFetchErrorNotCached(t *testing.T) {
	qc := New(time.Minute)
	calls := 0
	fetch := func(ctx context.Context) (interface{}, error) {
		calls++
		if calls == 1 {
			return nil, assert.AnError
		}
		return "ok", nil
	}

	_, err := qc.GetOrFetch(context.Background(), "k", fetch)
	require.Error(t, err)

	v, err := qc.GetOrFetch(context.Background(), "k", fetch)
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, 2, calls)
}

func TestGetOrFetchDeduplicatesInFlight(t *testing.T) {
	qc := New(time.Minute)
	var calls int32
	release := make(chan struct{})
	fetch := func(ctx context.Context) (interface{}, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return "shared", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := qc.GetOrFetch(context.Background(), "events|page=1", fetch)
			assert.NoError(t, err)
			assert.Equal(t, "shared", v)
		}()
	}

	time.Sleep(50 * time.Millisecond) // let all goroutines reach the group
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "concurrent identical queries must share one fetch")
}

func TestInvalidateDropsResourceOnly(t *testing.T) {
	qc := New(time.Minute)
	qc.Set("users", "bare")
	qc.Set("users|page=1", "u1")
	qc.Set("users|page=2", "u2")
	qc.Set("events|page=1", "e1")

	qc.Invalidate("users")

	_, ok := qc.Get("users")
	assert.False(t, ok)
	_, ok = qc.Get("users|page=1")
	assert.False(t, ok)
	_, ok = qc.Get("users|page=2")
	assert.False(t, ok)

	v, ok := qc.Get("events|page=1")
	assert.True(t, ok, "other resources must survive invalidation")
	assert.Equal(t, "e1", v)
}

func TestInvalidatePrefixIsNotSubstring(t *testing.T) {
	qc := New(time.Minute)
	qc.Set("user|id=1", "keep") // "user" is not "users"
	qc.Invalidate("users")

	_, ok := qc.Get("user|id=1")
	assert.True(t, ok)
}

func TestExpiry(t *testing.T) {
	qc := New(10 * time.Millisecond)
	qc.Set("k", "v")

	_, ok := qc.Get("k")
	assert.True(t, ok)

	time.Sleep(20 * time.Millisecond)
	_, ok = qc.Get("k")
	assert.False(t, ok, "expired entries must miss")

	assert.Equal(t, 1, qc.Len())
	qc.sweep()
	assert.Equal(t, 0, qc.Len())
}
