package cache

import (
	"context"
	"fmt"

	"github.com/fredymanu76/lms-platform-sub001/internal/configs"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type CacheObject struct {
	connect *redis.Client
	logger  *zap.Logger
}

func NewRedisConnection(cfg configs.RedisConfig, logger *zap.Logger) (*CacheObject, error) {
	redisobject := &CacheObject{logger: logger}
	redisobject.Open(cfg.Host, cfg.Port, cfg.Password, cfg.DB)
	err := redisobject.Ping()
	if err != nil {
		redisobject.Close()
		logger.Debug("Failed to establish Redis-Client connection", zap.Error(err))
		return nil, err
	}
	logger.Debug("Successful connect to Redis-Client")
	return redisobject, nil
}

// NewCacheObject wraps an existing client.
func NewCacheObject(client *redis.Client, logger *zap.Logger) *CacheObject {
	return &CacheObject{connect: client, logger: logger}
}

func (r *CacheObject) Open(host string, port int, password string, db int) {
	r.connect = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: password,
		DB:       db,
	})
}

func (r *CacheObject) Ping() error {
	_, err := r.connect.Ping(context.Background()).Result()
	return err
}

func (r *CacheObject) Close() {
	r.connect.Close()
	r.logger.Debug("Successful close Redis-Client")
}
