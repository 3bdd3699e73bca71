package utils

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	DB "Backend-Scholarship-Finder/src/database"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

// BlacklistToken เพิ่ม access token เข้า blacklist (ใช้ตอน logout)
// Returns nil if Redis is not available (development mode)
func BlacklistToken(token string, expiresIn time.Duration) error {
	client := DB.RedisClient
	if client == nil {
		log.Println("⚠️ redis client not initialized, token not blacklisted")
		return nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	if err := client.Set(Ctx, key, "1", expiresIn).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}

// IsTokenBlacklisted ตรวจสอบว่า token อยู่ใน blacklist หรือไม่
// Returns false if Redis is not available (development mode - allow all tokens)
func IsTokenBlacklisted(token string) (bool, error) {
	client := DB.RedisClient
	if client == nil {
		return false, nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	err := client.Get(Ctx, key).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check blacklist: %w", err)
	}
	return true, nil
}
