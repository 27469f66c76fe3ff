package cache

import (
	"context"

	"github.com/redis/go-redis/v9"

	"walkingtube/infrastructure/logger"
)

// NewCache connects a Redis client. The returned client may still be handed
// to consumers as nil when the ping fails; caches degrade to pass-through.
func NewCache(ctx context.Context, addr, username, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{
			"error": err,
			"addr":  addr,
		}).Warn("Redis not reachable")
		return nil, err
	}
	return client, nil
}
