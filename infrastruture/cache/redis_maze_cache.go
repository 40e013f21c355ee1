// Package cache implements the Redis-backed maze cache with a recency index.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/beka-birhanu/mazegen-api/domain"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// key prefix for cached maze values and the recency index
const defaultPrefix = "mazecache"

// RedisMazeCache stores encoded maze records in Redis with TTL support and a
// creation-time sorted set for recency queries. A redsync mutex per
// parameter key lets concurrent identical requests generate only once.
type RedisMazeCache struct {
	client *redis.Client
	locker *redsync.Redsync
	prefix string
	ttl    time.Duration
}

// NewRedisMazeCache initializes a RedisMazeCache with the provided Redis
// client and TTL.
func NewRedisMazeCache(client *redis.Client, ttlSeconds int) (*RedisMazeCache, error) {
	c := &RedisMazeCache{
		client: client,
		prefix: defaultPrefix,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	c.locker = redsync.New(pool)
	return c, nil
}

func (c *RedisMazeCache) valueKey(key string) string {
	return c.prefix + ":" + key
}

func (c *RedisMazeCache) recentKey() string {
	return c.prefix + ":recent"
}

// Put stores the record under its parameter key and indexes its ID by
// creation time.
func (c *RedisMazeCache) Put(ctx context.Context, key string, record *domain.MazeRecord) error {
	encoded, err := json.Marshal(record)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, c.valueKey(key), encoded, c.ttl).Err(); err != nil {
		return err
	}

	score := float64(record.CreatedAt.UnixNano())
	if err := c.client.ZAdd(ctx, c.recentKey(), redis.Z{Score: score, Member: record.ID.String()}).Err(); err != nil {
		return err
	}

	// Set expiration on the index only if it's not already set
	ttl, err := c.client.TTL(ctx, c.recentKey()).Result()
	if err == nil && ttl == -1 {
		_ = c.client.Expire(ctx, c.recentKey(), c.ttl).Err()
	}
	return nil
}

// Get returns the cached record for a parameter key, or nil on a miss.
func (c *RedisMazeCache) Get(ctx context.Context, key string) (*domain.MazeRecord, error) {
	encoded, err := c.client.Get(ctx, c.valueKey(key)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var record domain.MazeRecord
	if err := json.Unmarshal(encoded, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// Recent returns up to limit record IDs, newest first.
func (c *RedisMazeCache) Recent(ctx context.Context, limit int64) ([]uuid.UUID, error) {
	members, err := c.client.ZRevRange(ctx, c.recentKey(), 0, limit-1).Result()
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(members))
	for _, member := range members {
		id, err := uuid.Parse(member)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Lock acquires the generation mutex for a parameter key and returns its
// release function.
func (c *RedisMazeCache) Lock(key string) (func(), error) {
	mutex := c.locker.NewMutex(c.valueKey(key) + ":gen_lock")
	if err := mutex.Lock(); err != nil {
		return nil, err
	}
	return func() {
		_, _ = mutex.Unlock()
	}, nil
}
