package redisconn

import (
	"context"

	"campus_portal/internal/platform/config"
	"campus_portal/internal/platform/logging"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var RDB *redis.Client

// Connect opens the client backing session persistence. Redis is the portal's
// only durable store; every other entity lives behind the campus API.
func Connect() {
	RDB = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})

	ctx := context.Background()
	if _, err := RDB.Ping(ctx).Result(); err != nil {
		logging.L.Fatal("Could not connect to Redis", zap.Error(err))
	}
	logging.L.Info("Connected to Redis", zap.String("addr", config.AppConfig.RedisAddr))
}

func Close() {
	if RDB != nil {
		RDB.Close()
		logging.L.Info("Redis connection closed")
	}
}
