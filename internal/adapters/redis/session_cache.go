package redis

// Package redis provides the Redis-backed session-restore cache. It is the
// only client-side persistence: token material for the single device
// session, keyed by client instance ID so parallel instances don't clobber
// each other.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aeroedge/hr-ui-api/internal/domain/identity"
	"github.com/aeroedge/hr-ui-api/internal/ports"
)

const defaultPrefix = "aeroedge:session:"

// SessionCache stores the current session under one key per client
// instance, with TTL derived from the session expiry.
type SessionCache struct {
	client     redis.UniversalClient
	instanceID string
	prefix     string
}

var _ ports.SessionCache = (*SessionCache)(nil)

// NewSessionCache creates a session cache scoped to the given client
// instance ID.
func NewSessionCache(client redis.UniversalClient, instanceID string) *SessionCache {
	return &SessionCache{
		client:     client,
		instanceID: instanceID,
		prefix:     defaultPrefix,
	}
}

// NewSessionCacheWithPrefix creates a session cache with a custom key
// prefix.
func NewSessionCacheWithPrefix(client redis.UniversalClient, instanceID, prefix string) *SessionCache {
	return &SessionCache{
		client:     client,
		instanceID: instanceID,
		prefix:     prefix,
	}
}

func (c *SessionCache) key() string { return c.prefix + c.instanceID }

func (c *SessionCache) Save(ctx context.Context, sess identity.Session) error {
	if sess.AccessToken == "" {
		return errors.New("session has no token")
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	// Keep the entry past access-token expiry so the refresh token can
	// still be used for restoration.
	var ttl time.Duration
	if !sess.ExpiresAt.IsZero() {
		ttl = time.Until(sess.ExpiresAt) + 30*24*time.Hour
		if ttl <= 0 {
			return errors.New("session is expired")
		}
	}

	return c.client.Set(ctx, c.key(), data, ttl).Err()
}

func (c *SessionCache) Load(ctx context.Context) (identity.Session, error) {
	data, err := c.client.Get(ctx, c.key()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return identity.Session{}, ports.ErrNoSession
		}
		return identity.Session{}, fmt.Errorf("redis get: %w", err)
	}

	var sess identity.Session
	if unmarshalErr := json.Unmarshal([]byte(data), &sess); unmarshalErr != nil {
		return identity.Session{}, fmt.Errorf("unmarshal session: %w", unmarshalErr)
	}

	// An entry without a refresh token and with an expired access token
	// cannot be restored; treat as absent and clean it up.
	if sess.RefreshToken == "" && !sess.Valid() {
		if deleteErr := c.Clear(ctx); deleteErr != nil {
			return identity.Session{}, fmt.Errorf("cleanup expired session: %w", deleteErr)
		}
		return identity.Session{}, ports.ErrNoSession
	}

	return sess, nil
}

func (c *SessionCache) Clear(ctx context.Context) error {
	return c.client.Del(ctx, c.key()).Err()
}
