package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTL snapshot: sesi yang ditinggal begitu saja tidak boleh jadi key abadi.
// Snapshot yang sudah kedaluwarsa terbaca sebagai "tidak ada" dan sesi
// mulai fresh.
const snapshotTTL = 24 * time.Hour

// RedisStore adalah SnapshotStore produksi di atas go-redis.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.rdb.Set(ctx, key, value, snapshotTTL).Err()
}

func (s *RedisStore) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.rdb.Del(ctx, keys...).Err()
}
