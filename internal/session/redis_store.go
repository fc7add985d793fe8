package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	errx "github.com/agrosmart-advisor/server/internal/core/error"
	logx "github.com/agrosmart-advisor/server/pkg/logger"
	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	rdb    redis.Cmdable
	ttl    time.Duration
	prefix string
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(rdb redis.Cmdable, ttl time.Duration) *RedisStore {
	return &RedisStore{
		rdb:    rdb,
		ttl:    ttl,
		prefix: "session:",
	}
}

func (r *RedisStore) key(sessionID string) string {
	return r.prefix + sessionID
}

func (r *RedisStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	key := r.key(sessionID)
	val, err := r.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to load session from redis")
		return nil, errx.WrapRedis(err)
	}

	var s Session
	if err := json.Unmarshal(val, &s); err != nil {
		return nil, fmt.Errorf("session: failed to unmarshal: %w", err)
	}
	return &s, nil
}

func (r *RedisStore) Save(ctx context.Context, s Session) error {
	if s.ID == "" {
		return fmt.Errorf("session: missing session id")
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("session: failed to marshal: %w", err)
	}

	key := r.key(s.ID)
	if err := r.rdb.Set(ctx, key, data, r.ttl).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to save session to redis")
		return errx.WrapRedis(err)
	}
	return nil
}

func (r *RedisStore) Touch(ctx context.Context, sessionID string) error {
	key := r.key(sessionID)
	ok, err := r.rdb.Expire(ctx, key, r.ttl).Result()
	if err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to extend session ttl")
		return errx.WrapRedis(err)
	}
	if !ok {
		logx.Warn().Str("key", key).Dur("ttl", r.ttl).Msg("session vanished before ttl could be extended")
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := r.rdb.Del(ctx, r.key(sessionID)).Err(); err != nil {
		return errx.WrapRedis(err)
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
