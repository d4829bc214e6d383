// Package cache хранит в Redis данные, которые редко меняются
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Freeeeeet/timetable_bot/internal/config"
	"github.com/Freeeeeet/timetable_bot/internal/model"
)

const majorsKey = "timetable:majors"

// Client кэш поверх Redis
type Client struct {
	rdb    goredis.UniversalClient
	ttl    time.Duration
	logger *zap.Logger
}

// NewClient подключается к Redis и проверяет соединение
func NewClient(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	logger.Info("Connected to Redis", zap.String("addr", cfg.Addr))

	return New(rdb, cfg.MajorsTTL, logger), nil
}

// New оборачивает готовый клиент Redis
func New(rdb goredis.UniversalClient, ttl time.Duration, logger *zap.Logger) *Client {
	return &Client{rdb: rdb, ttl: ttl, logger: logger}
}

// Majors читает список групп. ok == false, если ключа нет
func (c *Client) Majors(ctx context.Context) ([]model.Major, bool, error) {
	raw, err := c.rdb.Get(ctx, majorsKey).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get majors: %w", err)
	}

	var majors []model.Major
	if err := json.Unmarshal(raw, &majors); err != nil {
		return nil, false, fmt.Errorf("decode majors: %w", err)
	}

	return majors, true, nil
}

// SetMajors сохраняет список групп на ttl
func (c *Client) SetMajors(ctx context.Context, majors []model.Major) error {
	raw, err := json.Marshal(majors)
	if err != nil {
		return fmt.Errorf("encode majors: %w", err)
	}

	if err := c.rdb.Set(ctx, majorsKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("set majors: %w", err)
	}

	c.logger.Debug("Majors cached", zap.Int("count", len(majors)), zap.Duration("ttl", c.ttl))
	return nil
}

// Ping проверяет соединение
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close закрывает соединение
func (c *Client) Close() error {
	return c.rdb.Close()
}
