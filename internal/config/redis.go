package config

import (
	"os"
	"strconv"
	"sync"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

var (
	redisConfig *RedisConfig
	redisOnce   sync.Once
)

func LoadRedisConfig() *RedisConfig {
	redisOnce.Do(func() {
		host := os.Getenv("REDIS_HOST")
		if host == "" {
			host = "localhost"
		}
		port := os.Getenv("REDIS_PORT")
		if port == "" {
			port = "6379"
		}
		db, err := strconv.Atoi(os.Getenv("REDIS_DB"))
		if err != nil {
			db = 0
		}
		redisConfig = &RedisConfig{
			Host:     host,
			Port:     port,
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       db,
		}
	})
	return redisConfig
}

func (c *RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}
