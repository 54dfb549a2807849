package routes

import (
	"skill-swap/internal/config"
	"skill-swap/internal/database"
	v1 "skill-swap/internal/delivery/http/routes/v1"
	"skill-swap/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, cache *cache.Redis) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, db, cache)
}
