package v1

import (
	"skill-swap/internal/config"
	"skill-swap/internal/database"
	"skill-swap/internal/delivery/http/handler"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/infrastructure/cache"
	"skill-swap/internal/infrastructure/persistence/postgres"
	"skill-swap/internal/pkg/jwt"
	"skill-swap/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, cache *cache.Redis) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	userRepo := postgres.NewUserRepository(db)
	swapRepo := postgres.NewSwapRequestRepository(db)
	skillRepo := postgres.NewSkillRepository(db)

	authMw := middleware.NewAuthMiddleware(jwtSvc, userRepo)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	userUC := usecase.NewUserUsecase(userRepo)
	matchUC := usecase.NewMatchUsecase(userRepo)
	swapUC := usecase.NewSwapUsecase(swapRepo, userRepo)
	skillUC := usecase.NewSkillUsecase(skillRepo, cache)

	authHandler := handler.NewAuthHandler(authUC)
	userHandler := handler.NewUserHandler(userUC)
	matchHandler := handler.NewMatchHandler(matchUC)
	swapHandler := handler.NewSwapHandler(swapUC)
	skillHandler := handler.NewSkillHandler(skillUC)

	authHandler.RegisterRoutes(r.Group("/auth"))
	skillHandler.RegisterRoutes(r)

	protected := r.Group("", authMw.Middleware())

	userHandler.RegisterRoutes(protected.Group("/users"))
	matchHandler.RegisterRoutes(protected)
	swapHandler.RegisterRoutes(protected)
}
