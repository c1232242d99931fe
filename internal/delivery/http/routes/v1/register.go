package v1

import (
	"skillswap/internal/config"
	"skillswap/internal/database"
	"skillswap/internal/delivery/http/handler"
	"skillswap/internal/delivery/http/middleware"
	"skillswap/internal/infrastructure/cache"
	"skillswap/internal/pkg/jwt"
	"skillswap/internal/repository"
	"skillswap/internal/usecase"
	"skillswap/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, redisCache *cache.Redis, hub *ws.Hub, logger *zap.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiresIn)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	catalogRepo := repository.NewPostgresCatalogRepository(db)
	offeredRepo := repository.NewPostgresOfferedSkillRepository(db)
	desiredRepo := repository.NewPostgresDesiredSkillRepository(db)
	tutorRepo := repository.NewPostgresTutorRepository(db)
	matchRepo := repository.NewPostgresMatchRepository(db)

	catalogUC := usecase.NewCatalogUsecase(catalogRepo, redisCache)
	offeredUC := usecase.NewOfferedSkillUsecase(offeredRepo, catalogRepo, redisCache)
	desiredUC := usecase.NewDesiredSkillUsecase(desiredRepo, catalogRepo)
	tutorUC := usecase.NewTutorUsecase(tutorRepo, catalogRepo)
	matchUC := usecase.NewMatchUsecase(matchRepo, hub)

	catalogHandler := handler.NewCatalogHandler(catalogUC, tutorUC)
	offeredHandler := handler.NewOfferedSkillHandler(offeredUC)
	desiredHandler := handler.NewDesiredSkillHandler(desiredUC)
	tutorHandler := handler.NewTutorHandler(tutorUC)
	matchHandler := handler.NewMatchHandler(matchUC)
	wsHandler := ws.NewHandler(hub, logger)

	// Visitors see the catalog; a valid token only unlocks the trending
	// block on the browse page.
	public := r.Group("", authMw.Optional())
	catalogHandler.RegisterPublicRoutes(public)

	protected := r.Group("", authMw.Middleware())
	catalogHandler.RegisterProtectedRoutes(protected)
	offeredHandler.RegisterRoutes(protected)
	desiredHandler.RegisterRoutes(protected)
	matchHandler.RegisterRoutes(protected)
	protected.Get("/ws/matches", wsHandler.HandleMatchesWS)

	// Parameterized skill routes go last so the static /skills/ paths
	// above keep winning.
	catalogHandler.RegisterDetailRoutes(public)
	tutorHandler.RegisterRoutes(public)
}
