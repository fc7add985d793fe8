package market

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	errx "github.com/agrosmart-advisor/server/internal/core/error"
	logx "github.com/agrosmart-advisor/server/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// staleRetention is how many TTLs a snapshot outlives its freshness in Redis,
// so that a failing upstream can still be answered with stale data.
const staleRetention = 48

// RedisSlot stores the snapshot as JSON so several advisor instances share it.
type RedisSlot struct {
	rdb       redis.Cmdable
	commodity string
	retention time.Duration
}

func NewRedisSlot(rdb redis.Cmdable, commodity string, ttl time.Duration) *RedisSlot {
	return &RedisSlot{rdb: rdb, commodity: commodity, retention: ttl * staleRetention}
}

func (s *RedisSlot) key() string {
	return fmt.Sprintf("market:prices:%s", strings.ToLower(s.commodity))
}

func (s *RedisSlot) Load(ctx context.Context) (Snapshot, bool, error) {
	key := s.key()
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Snapshot{}, false, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to load market snapshot from redis")
		return Snapshot{}, false, errx.WrapRedis(err)
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to unmarshal market snapshot")
		return Snapshot{}, false, fmt.Errorf("unmarshal market snapshot: %w", err)
	}
	return snap, true, nil
}

func (s *RedisSlot) Store(ctx context.Context, snap Snapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal market snapshot: %w", err)
	}
	key := s.key()
	if err := s.rdb.Set(ctx, key, b, s.retention).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to store market snapshot in redis")
		return errx.WrapRedis(err)
	}
	return nil
}

var _ Slot = (*RedisSlot)(nil)
