package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"slices"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultPath файл конфигурации по умолчанию
const DefaultPath = "config.toml"

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Telegram TelegramConfig `mapstructure:"telegram"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	HTTP     HTTPConfig     `mapstructure:"http"`
}

type AppConfig struct {
	Environment    string `mapstructure:"env"`
	UTCOffsetHours int    `mapstructure:"utc_offset_hours"`
}

type TelegramConfig struct {
	Token         string  `mapstructure:"token"`
	OwnerIDs      []int64 `mapstructure:"owner_ids"`
	WebhookURL    string  `mapstructure:"webhook_url"`
	WebhookSecret string  `mapstructure:"webhook_secret"`
}

// IsOwner проверяет, входит ли пользователь в список администраторов
func (c TelegramConfig) IsOwner(userID int64) bool {
	return slices.Contains(c.OwnerIDs, userID)
}

type DatabaseConfig struct {
	URL      string `mapstructure:"url"`
	MaxConns int32  `mapstructure:"max_conns"`
	Migrate  bool   `mapstructure:"migrate"`
}

// RedisConfig кэш групп. Пустой Addr отключает кэш
type RedisConfig struct {
	Addr            string        `mapstructure:"addr"`
	Password        string        `mapstructure:"password"`
	DB              int           `mapstructure:"db"`
	MajorsTTL       time.Duration `mapstructure:"majors_ttl"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

// env переменные окружения, перекрывающие значения из файла
var env = map[string]string{
	"app.env":                 "ENV",
	"app.utc_offset_hours":    "UTC_OFFSET_HOURS",
	"telegram.token":          "TELEGRAM_TOKEN",
	"telegram.owner_ids":      "OWNER_IDS",
	"telegram.webhook_url":    "WEBHOOK_URL",
	"telegram.webhook_secret": "WEBHOOK_SECRET",
	"database.url":            "DB_DSN",
	"database.max_conns":      "DB_MAX_CONNS",
	"database.migrate":        "DB_MIGRATE",
	"redis.addr":              "REDIS_ADDR",
	"redis.password":          "REDIS_PASSWORD",
	"redis.db":                "REDIS_DB",
	"http.addr":               "HTTP_ADDR",
}

// Load читает конфигурацию. Приоритет: переменные окружения > файл path > значения по умолчанию.
// Отсутствие файла и .env не считается ошибкой.
func Load(path string) (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err == nil {
		log.Println("Loaded environment from .env file")
	}

	v := viper.New()

	v.SetDefault("app.env", "development")
	v.SetDefault("app.utc_offset_hours", 4)
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.migrate", true)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.majors_ttl", "6h")
	v.SetDefault("redis.refresh_interval", "1h")
	v.SetDefault("http.addr", ":8080")

	for key, name := range env {
		if err := v.BindEnv(key, name); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", name, err)
		}
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	if c.Telegram.Token == "" {
		return errors.New("TELEGRAM_TOKEN is required but not set")
	}
	if c.Database.URL == "" {
		return errors.New("DB_DSN is required but not set")
	}
	if c.App.UTCOffsetHours < -12 || c.App.UTCOffsetHours > 14 {
		return fmt.Errorf("utc_offset_hours out of range: %d", c.App.UTCOffsetHours)
	}
	if c.Database.MaxConns <= 0 {
		return fmt.Errorf("database max_conns must be positive: %d", c.Database.MaxConns)
	}
	if c.Redis.Addr != "" && c.Redis.RefreshInterval <= 0 {
		return fmt.Errorf("redis refresh_interval must be positive: %s", c.Redis.RefreshInterval)
	}
	if c.Telegram.WebhookURL != "" && c.HTTP.Addr == "" {
		return errors.New("http addr is required for webhook mode")
	}
	return nil
}

// IsProduction признак боевого окружения
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}
