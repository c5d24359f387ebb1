package db

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis"
)

// Redis Client is bound to the caller's context on every call via WithContext.

// RedisStorage keeps each collection as a single string value in redis.
type RedisStorage struct {
	Redis *redis.Client
}

// NewRedisClient parses a redis:// url and pings the server.
func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping().Err(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}

// Load fetches key, reporting redis.Nil as an absent key.
func (s *RedisStorage) Load(ctx context.Context, key string) (string, bool, error) {
	v, err := s.Redis.WithContext(ctx).Get(key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", false, nil
		}
		return "", false, err
	}
	return v, true, nil
}

// Save writes value under key with no expiry.
func (s *RedisStorage) Save(ctx context.Context, key, value string) error {
	return s.Redis.WithContext(ctx).Set(key, value, 0).Err()
}

const sessionPrefix = "session:"

// RedisSessions stores a session token as a key that expires after the session ttl.
type RedisSessions struct {
	Redis *redis.Client
}

// Put takes a token and a user and saves it in redis for ttl
func (s *RedisSessions) Put(ctx context.Context, token string, u User, ttl time.Duration) error {
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return s.Redis.WithContext(ctx).Set(sessionPrefix+token, b, ttl).Err()
}

// Get takes a token and checks if it is registered via checking its existence in Redis.
func (s *RedisSessions) Get(ctx context.Context, token string) (User, bool, error) {
	var u User

	v, err := s.Redis.WithContext(ctx).Get(sessionPrefix + token).Bytes()
	if err != nil {
		if err == redis.Nil {
			return u, false, nil
		}
		return u, false, err
	}

	if err := json.Unmarshal(v, &u); err != nil {
		return u, false, err
	}
	return u, true, nil
}

func (s *RedisSessions) Delete(ctx context.Context, token string) error {
	return s.Redis.WithContext(ctx).Del(sessionPrefix + token).Err()
}
