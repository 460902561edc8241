package readcache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_CachesFetchResult(t *testing.T) {
	t.Parallel()

	c := New(16, time.Minute)
	calls := 0
	fetch := func(context.Context) ([]string, error) {
		calls++
		return []string{"a", "b"}, nil
	}

	ctx := context.Background()
	for range 3 {
		got, err := Get(ctx, c, "staff", "all", fetch)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, got)
	}
	assert.Equal(t, 1, calls)
}

func TestGet_ErrorNotCached(t *testing.T) {
	t.Parallel()

	c := New(16, time.Minute)
	calls := 0
	fetch := func(context.Context) (int, error) {
		calls++
		if calls == 1 {
			return 0, errors.New("transient")
		}
		return 42, nil
	}

	ctx := context.Background()
	_, err := Get(ctx, c, "s", "k", fetch)
	require.Error(t, err)

	got, err := Get(ctx, c, "s", "k", fetch)
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, 2, calls)
}

func TestInvalidate_DropsOnlyScope(t *testing.T) {
	t.Parallel()

	c := New(16, time.Minute)
	ctx := context.Background()

	fetchCount := map[string]int{}
	fetcher := func(name string) func(context.Context) (string, error) {
		return func(context.Context) (string, error) {
			fetchCount[name]++
			return name, nil
		}
	}

	_, err := Get(ctx, c, "attendance:2024-03-01", "all", fetcher("day1"))
	require.NoError(t, err)
	_, err = Get(ctx, c, "attendance:2024-03-02", "all", fetcher("day2"))
	require.NoError(t, err)

	c.Invalidate("attendance:2024-03-01")

	// day1 refetches, day2 stays cached.
	_, err = Get(ctx, c, "attendance:2024-03-01", "all", fetcher("day1"))
	require.NoError(t, err)
	_, err = Get(ctx, c, "attendance:2024-03-02", "all", fetcher("day2"))
	require.NoError(t, err)

	assert.Equal(t, 2, fetchCount["day1"])
	assert.Equal(t, 1, fetchCount["day2"])
}

func TestGet_InvalidateDuringFetchDiscardsResult(t *testing.T) {
	t.Parallel()

	c := New(16, time.Minute)
	ctx := context.Background()

	// The first fetch observes pre-write state; the write invalidates
	// the scope while it is still in flight.
	calls := 0
	fetch := func(context.Context) (string, error) {
		calls++
		if calls == 1 {
			c.Invalidate("attendance")
			return "stale", nil
		}
		return "fresh", nil
	}

	got, err := Get(ctx, c, "attendance", "2024-03-01", fetch)
	require.NoError(t, err)
	assert.Equal(t, "stale", got, "the in-flight caller still gets its result")

	got, err = Get(ctx, c, "attendance", "2024-03-01", fetch)
	require.NoError(t, err)
	assert.Equal(t, "fresh", got, "the stale result must not have been cached")
	assert.Equal(t, 2, calls)
}

func TestInvalidate_ScopeIsNotPrefixOfSibling(t *testing.T) {
	t.Parallel()

	c := New(16, time.Minute)
	ctx := context.Background()

	calls := 0
	fetch := func(context.Context) (string, error) {
		calls++
		return "v", nil
	}

	_, err := Get(ctx, c, "staff", "all", fetch)
	require.NoError(t, err)

	c.Invalidate("staf")

	_, err = Get(ctx, c, "staff", "all", fetch)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}
