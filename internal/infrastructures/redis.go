package infrastructures

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// NewRedisClient connects to Redis. It returns nil when no address is
// configured, which disables rate limiting.
func NewRedisClient(config *AppConfig) *redis.Client {
	if config.REDIS_ADDRESS == "" {
		logrus.Warn("REDIS_ADDRESS is not set, rate limiting is disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.REDIS_ADDRESS,
		Password: config.REDIS_PASSWORD,
		DB:       0, // use default DB
	})

	// Test the connection
	if err := client.Ping(context.Background()).Err(); err != nil {
		logrus.Fatalf("failed to connect redis: %v", err)
	}

	return client
}
