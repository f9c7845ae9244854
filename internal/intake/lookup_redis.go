// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

package intake

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/F0ch1s/asistencia-jovenes/internal/platform/constants"
	"github.com/F0ch1s/asistencia-jovenes/internal/platform/ctxutil"
)

// CachedLookup wraps a [LookupProvider] with a Redis snapshot per key.
//
// Check-in traffic hammers the pickers; the option lists change rarely and a
// few minutes of staleness is acceptable, so reads are served from the last
// JSON snapshot while it lives. Cache failures degrade to the inner
// provider, never to an error.
type CachedLookup struct {
	inner  LookupProvider
	client *redis.Client
	ttl    time.Duration
}

// NewCachedLookup creates the caching decorator. ttl controls how long a
// snapshot is served before the database is consulted again.
func NewCachedLookup(inner LookupProvider, client *redis.Client, ttl time.Duration) *CachedLookup {
	return &CachedLookup{inner: inner, client: client, ttl: ttl}
}

/*
Events returns the event picker options, preferring the cached snapshot.

Parameters:
  - ctx: context.Context

Returns:
  - []Option: Picker options, newest event first
  - error: Inner provider failures only; cache failures are logged and skipped
*/
func (c *CachedLookup) Events(ctx context.Context) ([]Option, error) {
	return c.cached(ctx, constants.RedisPrefixLookupEvents, func() ([]Option, error) {
		return c.inner.Events(ctx)
	})
}

/*
Attendees returns the attendee picker options for a search term.

Description: Each distinct normalized search term gets its own snapshot key.

Parameters:
  - ctx: context.Context
  - search: string

Returns:
  - []Option: Matching attendees
  - error: Inner provider failures only
*/
func (c *CachedLookup) Attendees(ctx context.Context, search string) ([]Option, error) {
	key := fmt.Sprintf("%s:%s", constants.RedisPrefixLookupAttendees, search)
	return c.cached(ctx, key, func() ([]Option, error) {
		return c.inner.Attendees(ctx, search)
	})
}

// cached serves key from Redis, falling back to load and re-snapshotting.
func (c *CachedLookup) cached(ctx context.Context, key string, load func() ([]Option, error)) ([]Option, error) {
	logger := ctxutil.GetLogger(ctx)

	// Try the snapshot first
	payload, err := c.client.Get(ctx, key).Result()
	if err == nil {
		var options []Option
		if jsonErr := json.Unmarshal([]byte(payload), &options); jsonErr == nil {
			return options, nil
		}
		// A corrupt snapshot falls through to a fresh load
		logger.Warn("lookup snapshot corrupt, reloading", "key", key)
	} else if !errors.Is(err, redis.Nil) {
		logger.Warn("lookup snapshot read failed", "key", key, "error", err)
	}

	// Load from the inner provider
	options, err := load()
	if err != nil {
		return nil, err
	}

	// Snapshot for the next reader; failure here is not the caller's problem
	if payload, jsonErr := json.Marshal(options); jsonErr == nil {
		if setErr := c.client.Set(ctx, key, payload, c.ttl).Err(); setErr != nil {
			logger.Warn("lookup snapshot write failed", "key", key, "error", setErr)
		}
	}

	return options, nil
}
