package db

import (
	"context"
	"fmt"
	"net"
	"time"

	"go-finance-api/config"
	"go-finance-api/logger"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const redisPingTimeout = 3 * time.Second

// ConnectRedis opens the view cache. Callers only invoke it when
// redis.enabled is set.
func ConnectRedis(ctx context.Context) (*redis.Client, error) {
	cfg := config.AppConfig.Redis
	addr := net.JoinHostPort(cfg.Host, cfg.Port)

	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		logger.Log.WithField("address", addr).WithError(err).Error("Failed to ping Redis")
		return nil, fmt.Errorf("ping redis at %s: %w", addr, err)
	}

	logger.Log.WithFields(logrus.Fields{
		"address":   addr,
		"db":        cfg.DB,
		"cache_ttl": cfg.CacheTTL.String(),
	}).Info("Redis cache connected")
	return rdb, nil
}
