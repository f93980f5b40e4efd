package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"storefront/internal/config"
)

// RedisCredentialStore keeps the token pair in redis, surviving host
// restarts and shared between dev setups pointed at the same instance.
type RedisCredentialStore struct {
	client *redis.Client
	logger *slog.Logger
}

func NewRedisCredentialStore(cfg *config.Config, logger *slog.Logger) (*RedisCredentialStore, error) {
	var client *redis.Client

	if cfg.Redis.Sentinel != nil {
		logger.Info("connecting to redis via sentinel",
			"master", cfg.Redis.Sentinel.MasterName,
			"sentinels", cfg.Redis.Sentinel.SentinelAddresses)

		client = redis.NewFailoverClient(&redis.FailoverOptions{
			MasterName:       cfg.Redis.Sentinel.MasterName,
			SentinelAddrs:    cfg.Redis.Sentinel.SentinelAddresses,
			SentinelPassword: cfg.Redis.Sentinel.SentinelPassword,
			Password:         cfg.Redis.Password,
			DB:               cfg.Redis.CredentialsIndex,
			MinIdleConns:     2,
		})
	} else {
		client = redis.NewClient(&redis.Options{
			Addr:         cfg.Redis.Address,
			Username:     cfg.Redis.Username,
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.CredentialsIndex,
			MinIdleConns: 2,
		})
	}

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &RedisCredentialStore{client: client, logger: logger}, nil
}

// NewRedisCredentialStoreWithClient wraps an existing client; used by
// tests and by callers sharing a connection.
func NewRedisCredentialStoreWithClient(client *redis.Client, logger *slog.Logger) *RedisCredentialStore {
	return &RedisCredentialStore{client: client, logger: logger}
}

// Client exposes the underlying connection for metric collectors.
func (s *RedisCredentialStore) Client() *redis.Client {
	return s.client
}

func (s *RedisCredentialStore) key(name string) string {
	return "credentials:" + name
}

func (s *RedisCredentialStore) Get(ctx context.Context, key string) (string, bool) {
	value, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Error("error executing redis GET", "key", key, "error", err)
		}
		return "", false
	}
	return value, true
}

func (s *RedisCredentialStore) Set(ctx context.Context, key, value string) error {
	if !validCredentialKey(key) {
		return errUnknownCredentialKey
	}
	return s.client.Set(ctx, s.key(key), value, 0).Err()
}

func (s *RedisCredentialStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.key(key)).Err()
}

func (s *RedisCredentialStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key(CredentialKeyToken), s.key(CredentialKeyRefreshToken)).Err()
}
