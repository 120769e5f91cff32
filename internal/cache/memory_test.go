package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeClock is a manually advanced clock safe for concurrent use.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

// countingFactory returns value and counts its invocations.
func countingFactory(value any, calls *atomic.Int32) Factory {
	return func(ctx context.Context) (any, error) {
		calls.Add(1)
		return value, nil
	}
}

func newTestCache(t *testing.T, opts ...Option) *MemoryCache {
	t.Helper()
	c := NewMemoryCache(opts...)
	t.Cleanup(c.Close)
	return c
}

func TestMemoryCache_GetOrSet(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_ComputesOnceThenHits", func(t *testing.T) {
		c := newTestCache(t)
		var calls atomic.Int32

		first, err := c.GetOrSet(ctx, "text", countingFactory("hello world", &calls), time.Minute)
		require.NoError(t, err)
		second, err := c.GetOrSet(ctx, "text", countingFactory("other", &calls), time.Minute)
		require.NoError(t, err)

		assert.Equal(t, "hello world", first)
		assert.Equal(t, "hello world", second)
		assert.Equal(t, int32(1), calls.Load())
		assert.Equal(t, 1, c.Len())
	})

	t.Run("Success_SlidingExpiration", func(t *testing.T) {
		clock := newFakeClock()
		c := newTestCache(t, WithClock(clock.Now), WithJanitorInterval(0))
		var calls atomic.Int32

		_, err := c.GetOrSet(ctx, "k", countingFactory("v", &calls), time.Minute)
		require.NoError(t, err)

		// each hit within the window pushes expiry a full ttl ahead
		for i := 0; i < 3; i++ {
			clock.Advance(50 * time.Second)
			value, err := c.GetOrSet(ctx, "k", countingFactory("new", &calls), time.Minute)
			require.NoError(t, err)
			assert.Equal(t, "v", value)
		}
		assert.Equal(t, int32(1), calls.Load())

		clock.Advance(time.Minute)
		value, err := c.GetOrSet(ctx, "k", countingFactory("new", &calls), time.Minute)
		require.NoError(t, err)
		assert.Equal(t, "new", value)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("Error_FactoryErrorNotCached", func(t *testing.T) {
		c := newTestCache(t)
		factoryErr := errors.New("backend unavailable")
		var calls atomic.Int32

		failing := func(ctx context.Context) (any, error) {
			calls.Add(1)
			return nil, factoryErr
		}

		_, err := c.GetOrSet(ctx, "k", failing, time.Minute)
		assert.ErrorIs(t, err, factoryErr)
		assert.Equal(t, 0, c.Len())

		value, err := c.GetOrSet(ctx, "k", countingFactory("v", &calls), time.Minute)
		require.NoError(t, err)
		assert.Equal(t, "v", value)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("Success_NonPositiveTTLNotStored", func(t *testing.T) {
		c := newTestCache(t)
		var calls atomic.Int32

		for i := 0; i < 2; i++ {
			value, err := c.GetOrSet(ctx, "k", countingFactory("v", &calls), 0)
			require.NoError(t, err)
			assert.Equal(t, "v", value)
		}
		assert.Equal(t, int32(2), calls.Load())
		assert.Equal(t, 0, c.Len())
	})

	t.Run("Success_ConcurrentCallersShareFactory", func(t *testing.T) {
		c := newTestCache(t)
		var calls atomic.Int32
		release := make(chan struct{})

		slow := func(ctx context.Context) (any, error) {
			calls.Add(1)
			<-release
			return "shared", nil
		}

		const callers = 20
		var wg sync.WaitGroup
		results := make([]any, callers)
		errs := make([]error, callers)
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], errs[i] = c.GetOrSet(ctx, "k", slow, time.Minute)
			}(i)
		}

		require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
		close(release)
		wg.Wait()

		for i := 0; i < callers; i++ {
			require.NoError(t, errs[i])
			assert.Equal(t, "shared", results[i])
		}
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("Error_CallerContextCanceled", func(t *testing.T) {
		c := newTestCache(t)
		release := make(chan struct{})
		started := make(chan struct{})

		slow := func(ctx context.Context) (any, error) {
			close(started)
			<-release
			// cancellation of the first caller does not reach the factory
			return "computed", ctx.Err()
		}

		callerCtx, cancel := context.WithCancel(ctx)
		errCh := make(chan error, 1)
		go func() {
			_, err := c.GetOrSet(callerCtx, "k", slow, time.Minute)
			errCh <- err
		}()

		<-started
		cancel()
		assert.ErrorIs(t, <-errCh, context.Canceled)

		close(release)
		require.Eventually(t, func() bool { return c.Len() == 1 }, time.Second, time.Millisecond)

		value, err := c.GetOrSet(ctx, "k", countingFactory("other", new(atomic.Int32)), time.Minute)
		require.NoError(t, err)
		assert.Equal(t, "computed", value)
	})
}

func TestMemoryCache_Remove(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)
	var calls atomic.Int32

	_, err := c.GetOrSet(ctx, "k", countingFactory("v1", &calls), time.Minute)
	require.NoError(t, err)

	c.Remove("k")
	assert.Equal(t, 0, c.Len())

	value, err := c.GetOrSet(ctx, "k", countingFactory("v2", &calls), time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "v2", value)
	assert.Equal(t, int32(2), calls.Load())

	assert.NotPanics(t, func() { c.Remove("missing") })
}

func TestMemoryCache_Janitor(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	c := newTestCache(t, WithClock(clock.Now), WithJanitorInterval(5*time.Millisecond))

	_, err := c.GetOrSet(ctx, "short", countingFactory("v", new(atomic.Int32)), time.Second)
	require.NoError(t, err)
	_, err = c.GetOrSet(ctx, "long", countingFactory("v", new(atomic.Int32)), time.Hour)
	require.NoError(t, err)

	clock.Advance(2 * time.Second)

	require.Eventually(t, func() bool { return c.Len() == 1 }, time.Second, 5*time.Millisecond)
}

func TestMemoryCache_Close(t *testing.T) {
	c := NewMemoryCache(WithJanitorInterval(time.Millisecond))

	assert.NotPanics(t, func() {
		c.Close()
		c.Close()
	})
}

func TestGetOrSetTyped(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		c := newTestCache(t)

		value, err := GetOrSetTyped(ctx, c, "k", func(ctx context.Context) (string, error) {
			return "typed", nil
		}, time.Minute)

		require.NoError(t, err)
		assert.Equal(t, "typed", value)
	})

	t.Run("Error_TypeMismatch", func(t *testing.T) {
		c := newTestCache(t)

		_, err := c.GetOrSet(ctx, "k", countingFactory(42, new(atomic.Int32)), time.Minute)
		require.NoError(t, err)

		value, err := GetOrSetTyped(ctx, c, "k", func(ctx context.Context) (string, error) {
			return "unused", nil
		}, time.Minute)

		assert.ErrorIs(t, err, ErrTypeMismatch)
		assert.Empty(t, value)
	})

	t.Run("Error_FactoryError", func(t *testing.T) {
		c := newTestCache(t)
		factoryErr := errors.New("boom")

		value, err := GetOrSetTyped(ctx, c, "k", func(ctx context.Context) (int, error) {
			return 0, factoryErr
		}, time.Minute)

		assert.ErrorIs(t, err, factoryErr)
		assert.Zero(t, value)
	})
}
