package cache

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"paseos-api/internal/pkg/config"
)

// NewRedisClient returns nil when Redis is not configured or does not answer the ping;
// callers then fall back to uncached reads and in-memory quiz sessions.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	if !cfg.Enabled() {
		slog.Info("redis disabled, using in-process fallbacks")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.PingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		slog.Warn("redis unreachable, using in-process fallbacks", "addr", cfg.Addr, "error", err.Error())
		_ = client.Close()
		return nil
	}

	slog.Info("redis connected", "addr", cfg.Addr)
	return client
}

func key(prefix string, parts ...string) string {
	k := prefix
	for _, p := range parts {
		k += ":" + p
	}
	return k
}
