package redis

import (
	"context"
	"encoding/json"
	"net"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeroedge/hr-ui-api/internal/domain/identity"
	"github.com/aeroedge/hr-ui-api/internal/ports"
)

// setupTestRedis returns a client against the test Redis instance, skipping
// the test when none is reachable. The address comes from TEST_REDIS_ADDR,
// defaulting to localhost:6379.
func setupTestRedis(t *testing.T) *goredis.Client {
	t.Helper()

	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	conn, err := net.DialTimeout("tcp", addr, time.Second)
	if err != nil {
		t.Skipf("Redis not available for testing at %s: %v", addr, err)
	}
	_ = conn.Close()

	client := goredis.NewClient(&goredis.Options{Addr: addr, DB: 9})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if pingErr := client.Ping(ctx).Err(); pingErr != nil {
		t.Skipf("Redis not available for testing at %s: %v", addr, pingErr)
	}
	client.FlushDB(ctx)

	t.Cleanup(func() {
		if closeErr := client.Close(); closeErr != nil {
			t.Logf("warning: failed to close redis client: %v", closeErr)
		}
	})
	return client
}

func testSession() identity.Session {
	return identity.Session{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		TokenType:    "bearer",
		ExpiresAt:    time.Now().Add(time.Hour).UTC().Truncate(time.Second),
		IdentityID:   "identity-1",
		Email:        "hope@aeroedge.test",
	}
}

func TestSessionCache_SaveLoadClear(t *testing.T) {
	client := setupTestRedis(t)
	cache := NewSessionCache(client, "instance-1")
	ctx := context.Background()

	sess := testSession()
	require.NoError(t, cache.Save(ctx, sess))

	loaded, err := cache.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sess, loaded)

	require.NoError(t, cache.Clear(ctx))
	_, err = cache.Load(ctx)
	assert.ErrorIs(t, err, ports.ErrNoSession)
}

func TestSessionCache_LoadEmpty(t *testing.T) {
	client := setupTestRedis(t)
	cache := NewSessionCache(client, "instance-empty")

	_, err := cache.Load(context.Background())
	assert.ErrorIs(t, err, ports.ErrNoSession)
}

func TestSessionCache_InstanceIsolation(t *testing.T) {
	client := setupTestRedis(t)
	ctx := context.Background()

	first := NewSessionCache(client, "instance-a")
	second := NewSessionCache(client, "instance-b")

	require.NoError(t, first.Save(ctx, testSession()))

	_, err := second.Load(ctx)
	assert.ErrorIs(t, err, ports.ErrNoSession, "caches for different instances must not overlap")

	_, err = first.Load(ctx)
	assert.NoError(t, err)
}

func TestSessionCache_SaveRejectsEmptyToken(t *testing.T) {
	client := setupTestRedis(t)
	cache := NewSessionCache(client, "instance-1")

	err := cache.Save(context.Background(), identity.Session{})
	require.Error(t, err)
}

func TestSessionCache_SaveKeepsEntryPastAccessExpiry(t *testing.T) {
	client := setupTestRedis(t)
	cache := NewSessionCache(client, "instance-1")
	ctx := context.Background()

	sess := testSession()
	sess.ExpiresAt = time.Now().Add(time.Minute)
	require.NoError(t, cache.Save(ctx, sess))

	ttl, err := client.TTL(ctx, cache.key()).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 24*time.Hour, "TTL should outlive the access token so the refresh token stays usable")
}

func TestSessionCache_LoadDropsUnrestorableEntry(t *testing.T) {
	client := setupTestRedis(t)
	cache := NewSessionCache(client, "instance-1")
	ctx := context.Background()

	// Expired access token and no refresh token: nothing can restore this.
	stale := identity.Session{
		AccessToken: "access-stale",
		ExpiresAt:   time.Now().Add(-time.Hour),
		IdentityID:  "identity-1",
	}
	// Write the entry directly; Save refuses expired sessions.
	raw, err := json.Marshal(stale)
	require.NoError(t, err)
	require.NoError(t, client.Set(ctx, cache.key(), raw, 0).Err())

	_, err = cache.Load(ctx)
	assert.ErrorIs(t, err, ports.ErrNoSession)

	exists, err := client.Exists(ctx, cache.key()).Result()
	require.NoError(t, err)
	assert.Zero(t, exists, "unrestorable entry should be cleaned up")
}

func TestSessionCache_CustomPrefix(t *testing.T) {
	client := setupTestRedis(t)
	ctx := context.Background()

	cache := NewSessionCacheWithPrefix(client, "instance-1", "test:sessions:")
	require.NoError(t, cache.Save(ctx, testSession()))

	exists, err := client.Exists(ctx, "test:sessions:instance-1").Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), exists)
}
