package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/NehaP156/linkedln-clone-gemini/internal/domain/entities"
)

// RedisService is a read-through cache in front of the sessions table. When
// redis is unreachable the service degrades to disabled and every call is a
// no-op; the database stays the source of truth either way.
type RedisService struct {
	client *redis.Client
}

// NewDisabledRedisService returns a service that never caches; every lookup
// is a miss. Used when tests or deployments run without redis.
func NewDisabledRedisService() *RedisService {
	return &RedisService{client: nil}
}

func NewRedisService() *RedisService {
	host := GetEnvAsString("REDIS_HOST", "localhost")
	port := GetEnvAsString("REDIS_PORT", "6379")
	password := os.Getenv("REDIS_PASSWORD")
	db := GetEnvAsInt("REDIS_DB", 0)

	// Alternative: use REDIS_URL if provided
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		if opt, err := redis.ParseURL(redisURL); err == nil {
			client := redis.NewClient(opt)
			if err := client.Ping(context.Background()).Err(); err == nil {
				log.Printf("Connected to Redis using REDIS_URL")
				return &RedisService{client: client}
			}
			log.Printf("Warning: Redis connection failed with REDIS_URL")
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("Warning: Redis connection failed: %v", err)
		log.Printf("Redis disabled, session lookups will always hit the database")
		return &RedisService{client: nil}
	}

	log.Printf("Connected to Redis at %s:%s", host, port)
	return &RedisService{client: client}
}

func (r *RedisService) SetSession(ctx context.Context, session *entities.Session) error {
	if r.client == nil {
		return nil // Redis disabled
	}
	ttl := time.Until(session.Expires)
	if ttl <= 0 {
		return nil
	}
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, "session:"+session.SID, data, ttl).Err()
}

func (r *RedisService) GetSession(ctx context.Context, sid string) (*entities.Session, error) {
	if r.client == nil {
		return nil, redis.Nil // Redis disabled, behave as a cache miss
	}
	data, err := r.client.Get(ctx, "session:"+sid).Result()
	if err != nil {
		return nil, err
	}

	var session entities.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *RedisService) DeleteSession(ctx context.Context, sid string) error {
	if r.client == nil {
		return nil // Redis disabled
	}
	return r.client.Del(ctx, "session:"+sid).Err()
}

// IsMiss reports whether err from GetSession means the key was absent.
func IsMiss(err error) bool {
	return err == redis.Nil
}

func (r *RedisService) Close() error {
	if r.client == nil {
		return nil // Redis disabled
	}
	return r.client.Close()
}
