package routes

import (
	"skillswap/internal/config"
	"skillswap/internal/database"
	"skillswap/internal/delivery/http/handler"
	v1 "skillswap/internal/delivery/http/routes/v1"
	"skillswap/internal/infrastructure/cache"
	"skillswap/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type Registry struct {
	health *handler.HealthHandler

	cfg    config.Config
	db     database.DB
	cache  *cache.Redis
	hub    *ws.Hub
	logger *zap.Logger
}

func NewRegistry(cfg config.Config, db database.DB, redisCache *cache.Redis, hub *ws.Hub, logger *zap.Logger) *Registry {
	return &Registry{
		health: handler.NewHealthHandler(),
		cfg:    cfg,
		db:     db,
		cache:  redisCache,
		hub:    hub,
		logger: logger,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.cfg, r.db, r.cache, r.hub, r.logger)
}
