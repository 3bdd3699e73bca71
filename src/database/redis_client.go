package database

import (
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client
var RedisCtx = context.Background()

// InitRedis เชื่อมต่อ Redis ถ้ามี REDIS_URI; ว่าง = ทำงานแบบไม่มี cache
func InitRedis(addr string) error {
	if addr == "" {
		log.Println("⚠️ REDIS_URI not set. Running without cache and token blacklist.")
		return nil
	}

	c := redis.NewClient(&redis.Options{
		Addr:     addr, // เช่น localhost:6379
		Password: "",
		DB:       0,
	})
	if _, err := c.Ping(RedisCtx).Result(); err != nil {
		return fmt.Errorf("failed to connect Redis: %w", err)
	}
	RedisClient = c
	log.Println("✅ Redis connected successfully")
	return nil
}
