package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// listThroughCache serves a reference list from Redis when present,
// loading and caching it on miss. Reference data changes rarely (seeded
// administratively), so a short TTL keeps staleness bounded. Cache
// failures degrade to a direct load.
func listThroughCache[T any](ctx context.Context, rdb *redis.Client, log zerolog.Logger, key string, ttl time.Duration, load func(context.Context) ([]T, error)) ([]T, error) {
	if cached, err := rdb.Get(ctx, key).Bytes(); err == nil {
		var items []T
		if err := json.Unmarshal(cached, &items); err == nil {
			return items, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		log.Warn().Err(err).Str("key", key).Msg("reference cache read failed")
	}

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(items); err == nil {
		if err := rdb.Set(ctx, key, payload, ttl).Err(); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("reference cache write failed")
		}
	}
	return items, nil
}
