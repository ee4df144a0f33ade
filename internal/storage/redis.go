package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// RedisStore keeps records in Redis so a session survives across hosts.
type RedisStore struct {
	redisClient *redis.Client
	keyPrefix   string
}

func NewRedisStore(redisClient *redis.Client, namespace string) *RedisStore {
	return &RedisStore{
		redisClient: redisClient,
		keyPrefix:   namespace + ":session:",
	}
}

func (s *RedisStore) Load(ctx context.Context, key string, v any) (bool, error) {
	raw, err := s.redisClient.Get(ctx, s.keyPrefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get record %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		log.Warnf("Discarding corrupt record %s: %v", key, err)
		return false, nil
	}
	return true, nil
}

func (s *RedisStore) Save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize record %s: %w", key, err)
	}
	if err := s.redisClient.Set(ctx, s.keyPrefix+key, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to set record %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.redisClient.Del(ctx, s.keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete record %s: %w", key, err)
	}
	return nil
}
