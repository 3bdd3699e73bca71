package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	StorageMongo    = "mongo"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config ค่าตั้งค่าทั้งหมดของระบบ อ่านจาก environment (และ .env ถ้ามี)
type Config struct {
	AppURI         string `env:"APP_URI" env-default:"8888"`
	AllowedOrigins string `env:"ALLOWED_ORIGINS" env-default:"*"`

	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `env:"LOG_FORMAT" env-default:"console"`

	StorageDriver     string `env:"STORAGE_DRIVER" env-default:"mongo"`
	MongoURI          string `env:"MONGO_URI" env-default:"mongodb://localhost:27017"`
	MongoDatabase     string `env:"MONGO_DATABASE" env-default:"scholarship"`
	MongoTransactions bool   `env:"MONGO_TRANSACTIONS" env-default:"false"`
	PostgresDSN       string `env:"POSTGRES_DSN" env-default:"postgres://localhost:5432/scholarship?sslmode=disable"`
	RedisURI          string `env:"REDIS_URI" env-default:""`

	JWTSecret     string        `env:"JWT_SECRET" env-default:""`
	JWTExpiration time.Duration `env:"JWT_EXPIRATION" env-default:"24h"`

	DefaultAdminUsername string `env:"DEFAULT_ADMIN_USERNAME" env-default:"admin"`
	DefaultAdminPassword string `env:"DEFAULT_ADMIN_PASSWORD" env-default:"1234"`

	UploadMaxBytes    int           `env:"UPLOAD_MAX_BYTES" env-default:"20971520"`
	CacheTTL          time.Duration `env:"CACHE_TTL" env-default:"5m"`
	WorkerConcurrency int           `env:"WORKER_CONCURRENCY" env-default:"5"`
	RunWorker         bool          `env:"RUN_WORKER" env-default:"true"`
}

// Load อ่าน .env (ถ้ามี) แล้วแปลง environment เป็น Config
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	c.StorageDriver = strings.ToLower(strings.TrimSpace(c.StorageDriver))
	switch c.StorageDriver {
	case StorageMongo, StoragePostgres, StorageMemory:
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.UploadMaxBytes <= 0 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be positive")
	}
	if c.WorkerConcurrency <= 0 {
		c.WorkerConcurrency = 1
	}
	return nil
}

// Origins แยก ALLOWED_ORIGINS เป็นรายการ สำหรับ CORS
func (c *Config) Origins() string {
	parts := strings.Split(c.AllowedOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return "*"
	}
	return strings.Join(out, ",")
}
