package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGetExpire(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mc := NewMemoryCache()
	mc.now = func() time.Time { return now }

	require.NoError(t, mc.Set(ctx, "public:artists", []string{"a", "b"}, time.Minute))

	var got []string
	found, err := mc.Get(ctx, "public:artists", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"a", "b"}, got)

	now = now.Add(2 * time.Minute)
	found, err = mc.Get(ctx, "public:artists", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCache_CounterAndTTL(t *testing.T) {
	ctx := context.Background()
	mc := NewMemoryCache()

	ttl, _ := mc.TTL(ctx, "auth:failed:x")
	assert.Equal(t, time.Duration(-2), ttl)

	n, err := mc.Increment(ctx, "auth:failed:x")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	ttl, _ = mc.TTL(ctx, "auth:failed:x")
	assert.Equal(t, time.Duration(-1), ttl)

	require.NoError(t, mc.Expire(ctx, "auth:failed:x", time.Minute))
	n, _ = mc.Increment(ctx, "auth:failed:x")
	assert.EqualValues(t, 2, n)

	var count int64
	found, err := mc.Get(ctx, "auth:failed:x", &count)
	require.NoError(t, err)
	assert.True(t, found)
	assert.EqualValues(t, 2, count)

	ttl, _ = mc.TTL(ctx, "auth:failed:x")
	assert.Greater(t, ttl, time.Duration(0))
}

func TestMemoryCache_DeletePattern(t *testing.T) {
	ctx := context.Background()
	mc := NewMemoryCache()
	for _, k := range []string{"public:releases:all", "public:releases:Pop", "public:events"} {
		require.NoError(t, mc.Set(ctx, k, "x", 0))
	}

	require.NoError(t, mc.DeletePattern(ctx, "public:releases:*"))

	for k, want := range map[string]bool{
		"public:releases:all": false,
		"public:releases:Pop": false,
		"public:events":       true,
	} {
		ok, _ := mc.Exists(ctx, k)
		assert.Equal(t, want, ok, k)
	}
}

func TestReadThrough(t *testing.T) {
	ctx := context.Background()
	mc := NewMemoryCache()
	const ns Namespace = "public:numbers"
	calls := 0
	load := func(context.Context) ([]int, error) {
		calls++
		return []int{1, 2, 3}, nil
	}

	for i := 0; i < 2; i++ {
		got, err := ReadThrough(ctx, mc, ns, "all", time.Minute, load)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, got)
	}
	assert.Equal(t, 1, calls)

	Invalidate(ctx, mc, ns)
	_, _ = ReadThrough(ctx, mc, ns, "all", time.Minute, load)
	assert.Equal(t, 2, calls)

	_, err := ReadThrough(ctx, mc, "public:broken", "all", time.Minute, func(context.Context) ([]int, error) {
		return nil, errors.New("db down")
	})
	assert.Error(t, err)
	ok, _ := mc.Exists(ctx, "public:broken:g0:all")
	assert.False(t, ok)
}

func TestReadThrough_InvalidateDuringLoad(t *testing.T) {
	ctx := context.Background()
	mc := NewMemoryCache()
	const ns Namespace = "public:artists"

	value := "before"
	stale, err := ReadThrough(ctx, mc, ns, "list", time.Minute, func(ctx context.Context) (string, error) {
		snapshot := value
		// Ghi và invalidate xảy ra sau khi load đã đọc dữ liệu
		value = "after"
		Invalidate(ctx, mc, ns)
		return snapshot, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "before", stale)

	fresh, err := ReadThrough(ctx, mc, ns, "list", time.Minute, func(context.Context) (string, error) {
		return value, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "after", fresh)
}

func TestInvalidate_OnlyTouchesNamespace(t *testing.T) {
	ctx := context.Background()
	mc := NewMemoryCache()
	calls := map[Namespace]int{}
	read := func(ns Namespace) {
		_, _ = ReadThrough(ctx, mc, ns, "list", time.Minute, func(context.Context) (int, error) {
			calls[ns]++
			return calls[ns], nil
		})
	}

	read("public:events")
	read("public:promos")
	Invalidate(ctx, mc, "public:events")
	read("public:events")
	read("public:promos")

	assert.Equal(t, 2, calls["public:events"])
	assert.Equal(t, 1, calls["public:promos"])
}

func TestMemoryCache_PatternSpansSlash(t *testing.T) {
	ctx := context.Background()
	mc := NewMemoryCache()
	require.NoError(t, mc.Set(ctx, "public:releases:genre:Electronic / Dance", "x", 0))

	require.NoError(t, mc.DeletePattern(ctx, "public:releases:*"))

	ok, _ := mc.Exists(ctx, "public:releases:genre:Electronic / Dance")
	assert.False(t, ok)
}
