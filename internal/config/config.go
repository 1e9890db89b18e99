package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config carries the startup parameters. It is read once at process start;
// the core packages receive plain values, never the config itself.
type Config struct {
	Server ServerConfig
	Pool   PoolConfig
	Cache  CacheConfig
	DB     DBConfig
	Admin  AdminConfig
}

type ServerConfig struct {
	ListenAddr  string
	WaitTimeout time.Duration
	DefaultLang string
}

type PoolConfig struct {
	Workers int
}

type CacheConfig struct {
	// RedisAddr empty disables the result cache.
	RedisAddr string
	TTL       time.Duration
}

type DBConfig struct {
	// DSN empty disables the recognition log.
	DSN string
}

type AdminConfig struct {
	ListenAddr string
	// JWTSecret empty leaves the admin endpoints unauthenticated.
	JWTSecret   string
	JWTAudience string
}

// Load reads configuration from the environment with sane defaults.
func Load() (*Config, error) {
	viper.SetDefault("OCR_LISTEN_ADDR", ":50051")
	viper.SetDefault("OCR_ADMIN_ADDR", ":8080")
	viper.SetDefault("OCR_WORKERS", 4)
	viper.SetDefault("OCR_WAIT_TIMEOUT", "120s")
	viper.SetDefault("OCR_DEFAULT_LANG", "eng")
	viper.SetDefault("OCR_CACHE_TTL", "5m")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("DATABASE_DSN", "")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_AUDIENCE", "")

	viper.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			ListenAddr:  viper.GetString("OCR_LISTEN_ADDR"),
			WaitTimeout: viper.GetDuration("OCR_WAIT_TIMEOUT"),
			DefaultLang: viper.GetString("OCR_DEFAULT_LANG"),
		},
		Pool: PoolConfig{
			Workers: viper.GetInt("OCR_WORKERS"),
		},
		Cache: CacheConfig{
			RedisAddr: viper.GetString("REDIS_ADDR"),
			TTL:       viper.GetDuration("OCR_CACHE_TTL"),
		},
		DB: DBConfig{
			DSN: viper.GetString("DATABASE_DSN"),
		},
		Admin: AdminConfig{
			ListenAddr:  viper.GetString("OCR_ADMIN_ADDR"),
			JWTSecret:   viper.GetString("JWT_SECRET"),
			JWTAudience: viper.GetString("JWT_AUDIENCE"),
		},
	}
	return cfg, nil
}
