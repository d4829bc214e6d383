package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/Freeeeeet/timetable_bot/internal/app"
	"github.com/Freeeeeet/timetable_bot/internal/cache"
	"github.com/Freeeeeet/timetable_bot/internal/calendar"
	"github.com/Freeeeeet/timetable_bot/internal/config"
	"github.com/Freeeeeet/timetable_bot/internal/controller"
	"github.com/Freeeeeet/timetable_bot/internal/repository"
	"github.com/Freeeeeet/timetable_bot/internal/service"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.App.Environment)
	defer logger.Sync()

	logger.Info("Starting timetable bot",
		zap.Int("utc_offset_hours", cfg.App.UTCOffsetHours),
		zap.Int("owners", len(cfg.Telegram.OwnerIDs)),
		zap.Bool("webhook", cfg.Telegram.WebhookURL != ""),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// База данных
	pool, err := newPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer pool.Close()
	logger.Info("Connected to database", zap.Int32("max_conns", cfg.Database.MaxConns))

	if cfg.Database.Migrate {
		if err := migrate(ctx, pool, logger); err != nil {
			logger.Fatal("Failed to apply migrations", zap.Error(err))
		}
	}

	// Redis опционален: без него группы читаются из БД
	var majorCache service.MajorCache
	if cfg.Redis.Addr != "" {
		redisClient, err := cache.NewClient(ctx, cfg.Redis, logger)
		if err != nil {
			logger.Warn("Redis unavailable, majors cache disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
			majorCache = redisClient
		}
	}

	// Repository -> Service
	userRepo := repository.NewUserRepository(pool)
	majorRepo := repository.NewMajorRepository(pool)
	timetableRepo := repository.NewTimetableRepository(pool)

	userService := service.NewUserService(userRepo, majorRepo, logger)
	majorService := service.NewMajorService(majorRepo, majorCache, logger)
	timetableService := service.NewTimetableService(timetableRepo, logger)

	clock := calendar.NewClock(cfg.App.UTCOffsetHours, nil)

	// Бот
	opts := controller.BotOptions(logger)
	if cfg.Telegram.WebhookSecret != "" {
		opts = append(opts, bot.WithWebhookSecretToken(cfg.Telegram.WebhookSecret))
	}

	b, err := bot.New(cfg.Telegram.Token, opts...)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	botController := controller.NewBotController(
		b,
		userService,
		majorService,
		timetableService,
		clock,
		cfg.Telegram.IsOwner,
		logger,
	)

	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Fatal("Failed to register handlers", zap.Error(err))
	}

	// Фоновое обновление кэша групп
	if majorCache != nil {
		scheduler := app.NewScheduler(majorService, cfg.Redis.RefreshInterval, logger)
		scheduler.Start(ctx)
		defer scheduler.Stop()
	}

	// HTTP: healthz и webhook
	var webhook http.Handler
	if cfg.Telegram.WebhookURL != "" {
		webhook = botController.WebhookHandler()
	}
	srv := app.NewHTTPServer(cfg.HTTP.Addr, app.NewRouter(webhook, pool, logger))

	go func() {
		logger.Info("HTTP server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", zap.Error(err))
			stop()
		}
	}()

	// Блокируется до SIGINT/SIGTERM
	if webhook != nil {
		err = botController.StartWebhook(ctx, cfg.Telegram.WebhookURL, cfg.Telegram.WebhookSecret)
	} else {
		err = botController.Start(ctx)
	}
	if err != nil {
		logger.Error("Bot stopped with error", zap.Error(err))
	}

	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
	}
}

// newPool создаёт пул соединений и проверяет доступность БД
func newPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	poolConfig.MaxConns = cfg.MaxConns

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

func migrate(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	migrator, err := app.NewMigrator(pool, logger)
	if err != nil {
		return err
	}
	defer migrator.Close()

	return migrator.Run(ctx)
}
