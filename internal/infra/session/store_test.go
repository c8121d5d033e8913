package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DLX-TourBookingService/internal/domain"
	"github.com/m04kA/DLX-TourBookingService/internal/wizard"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newMemory() (*MemoryBackend, *clock) {
	c := &clock{t: time.Date(2025, 8, 30, 10, 0, 0, 0, time.UTC)}
	b := NewMemoryBackend()
	b.now = c.now
	return b, c
}

func TestSessionStore_RoundTrip(t *testing.T) {
	backend, _ := newMemory()
	store := NewSessionStore(backend, time.Hour)
	ctx := context.Background()

	state := wizard.NewState()
	state.Selections = domain.Selections{"hotel": {Quantity: 2, Participants: 3}}
	state.CurrentIndex = 1
	require.NoError(t, store.Save(ctx, &wizard.Session{ID: "s1", State: state}))

	got, err := store.Get(ctx, "s1")

	require.NoError(t, err)
	assert.Equal(t, state.Selections, got.State.Selections)
	assert.Equal(t, 1, got.State.CurrentIndex)
	assert.Equal(t, []wizard.StepID{wizard.StepServices}, got.State.Visited)
}

func TestSessionStore_Expires(t *testing.T) {
	backend, c := newMemory()
	store := NewSessionStore(backend, 30*time.Minute)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, &wizard.Session{ID: "s1", State: wizard.NewState()}))

	c.t = c.t.Add(29 * time.Minute)
	_, err := store.Get(ctx, "s1")
	require.NoError(t, err)

	c.t = c.t.Add(time.Minute)
	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStore_Delete(t *testing.T) {
	backend, _ := newMemory()
	store := NewSessionStore(backend, time.Hour)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, &wizard.Session{ID: "s1"}))

	require.NoError(t, store.Delete(ctx, "s1"))

	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStore_CorruptPayload(t *testing.T) {
	backend, _ := newMemory()
	store := NewSessionStore(backend, time.Hour)
	ctx := context.Background()
	require.NoError(t, backend.Set(ctx, sessionKeyPrefix+"s1", []byte("{not json"), 0))

	_, err := store.Get(ctx, "s1")

	assert.ErrorIs(t, err, ErrCodec)
}

func TestRevocationStore(t *testing.T) {
	backend, c := newMemory()
	store := NewRevocationStore(backend)
	store.now = c.now
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "jti-1", c.t.Add(time.Hour)))
	require.NoError(t, store.Revoke(ctx, "jti-old", c.t.Add(-time.Minute)))

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = store.IsRevoked(ctx, "jti-old")
	require.NoError(t, err)
	assert.False(t, revoked)

	c.t = c.t.Add(time.Hour)
	revoked, err = store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestSessionStore_ClaimSubmit(t *testing.T) {
	backend, c := newMemory()
	store := NewSessionStore(backend, time.Hour)
	ctx := context.Background()

	first, err := store.ClaimSubmit(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, first)

	second, err := store.ClaimSubmit(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, second)

	other, err := store.ClaimSubmit(ctx, "s2")
	require.NoError(t, err)
	assert.True(t, other)

	require.NoError(t, store.ReleaseSubmit(ctx, "s1"))
	again, err := store.ClaimSubmit(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, again)

	c.t = c.t.Add(time.Hour)
	expired, err := store.ClaimSubmit(ctx, "s2")
	require.NoError(t, err)
	assert.True(t, expired)
}

func TestMemoryBackend_SetNXIsExclusive(t *testing.T) {
	backend, _ := newMemory()
	ctx := context.Background()

	const workers = 16
	results := make(chan bool, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := backend.SetNX(ctx, "k", []byte("v"), time.Minute)
			assert.NoError(t, err)
			results <- ok
		}()
	}
	wg.Wait()
	close(results)

	won := 0
	for ok := range results {
		if ok {
			won++
		}
	}
	assert.Equal(t, 1, won)
}

func TestMemoryBackend_CopiesValues(t *testing.T) {
	backend, _ := newMemory()
	ctx := context.Background()
	value := []byte("abc")
	require.NoError(t, backend.Set(ctx, "k", value, 0))

	value[0] = 'x'
	got, err := backend.Get(ctx, "k")
	require.NoError(t, err)
	got[1] = 'y'

	again, err := backend.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestRedisBackend_WrapsConnectionErrors(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	backend := NewRedisBackend(client)
	ctx := context.Background()

	_, err := backend.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrStore)
	assert.NotErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, backend.Set(ctx, "k", []byte("v"), time.Minute), ErrStore)
	_, err = backend.SetNX(ctx, "k", []byte("v"), time.Minute)
	assert.ErrorIs(t, err, ErrStore)
	assert.ErrorIs(t, backend.Ping(ctx), ErrStore)
}
