package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/volunteerbridge/matching-client/internal/core/domain"
)

const (
	defaultDialTimeout = 5 * time.Second
	defaultSessionTTL  = 24 * time.Hour
)

// RedisConfig captures the settings for the Redis-backed session cache.
type RedisConfig struct {
	Addr string
	DB   int
	// Key is the Redis key the session record lives under; distinct keys let
	// multiple workers on one Redis hold independent sessions.
	Key string
	// TTL bounds how long an untouched session record survives. Zero means
	// defaultSessionTTL.
	TTL time.Duration
}

// Dial initialises a Redis client and validates connectivity with a ping.
func Dial(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, defaultDialTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// RedisTokenStore keeps the session as one serialized record under a single
// key, so token and identity stay atomic the same way the file store's
// rename does.
type RedisTokenStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
	log    zerolog.Logger
}

func NewRedisTokenStore(client *redis.Client, cfg RedisConfig, log zerolog.Logger) *RedisTokenStore {
	key := cfg.Key
	if key == "" {
		key = "matching:session"
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &RedisTokenStore{client: client, key: key, ttl: ttl, log: log}
}

func (s *RedisTokenStore) Save(ctx context.Context, sess domain.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *RedisTokenStore) Load(ctx context.Context) (domain.Session, bool) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn().Err(err).Str("key", s.key).Msg("session cache unreachable, treating as logged out")
		}
		return domain.Session{}, false
	}

	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		s.log.Warn().Err(err).Str("key", s.key).Msg("session record corrupt, treating as logged out")
		return domain.Session{}, false
	}
	if sess.Token == "" || sess.User.ID == 0 {
		return domain.Session{}, false
	}
	return sess, true
}

func (s *RedisTokenStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
