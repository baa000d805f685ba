package auth

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisSessionPrefix = "sess:"

// RedisStore keeps sessions in Redis so they survive restarts and can be
// shared by multiple server processes.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	val, err := s.rdb.Get(ctx, redisSessionPrefix+id).Result()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *RedisStore) Set(ctx context.Context, id string, sess Session, ttl time.Duration) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, redisSessionPrefix+id, b, ttl).Err()
}

func (s *RedisStore) Touch(ctx context.Context, id string, ttl time.Duration) error {
	return s.rdb.Expire(ctx, redisSessionPrefix+id, ttl).Err()
}

func (s *RedisStore) Destroy(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, redisSessionPrefix+id).Err()
}
