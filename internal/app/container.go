package app

import (
	"context"
	"fmt"
	"time"

	"skillswap/internal/config"
	"skillswap/internal/database"
	"skillswap/internal/database/migration"
	dbpostgres "skillswap/internal/database/postgres"
	"skillswap/internal/database/seeder"
	"skillswap/internal/infrastructure/cache"
	"skillswap/internal/ws"

	"go.uber.org/zap"
)

type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger, err := NewLogger(cfg.App.Environment)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	runner := migration.Runner{Dir: cfg.Database.MigrationsDir}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	if version, err := runner.Version(ctx, db.SQLDB()); err == nil {
		logger.Info("database migrated", zap.Int64("version", version))
	}

	if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seed catalog: %w", err)
	}

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, logger),
		Hub:    ws.NewHub(logger),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
