package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"skill-swap/internal/config"
	"skill-swap/internal/database/migration"
	"skill-swap/internal/database/seeder"
	"skill-swap/internal/delivery/http/middleware"
	"skill-swap/internal/delivery/http/routes"
)

type App struct {
	Fiber *fiber.App
}

// Bootstrap wires the whole service: database, migrations, seed data,
// cache and the HTTP stack. The returned cleanup releases every
// connection the container owns.
func Bootstrap(cfg config.Config, logger *zap.Logger) (*App, func() error, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("init container: %w", err)
	}

	if err := runMigrations(c); err != nil {
		_ = c.Close()
		return nil, nil, err
	}
	if err := runSeeders(c); err != nil {
		_ = c.Close()
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	accessLog := middleware.NewAccessLogMiddleware(logger)
	f.Use(accessLog.Middleware())

	errMw := middleware.NewErrorMiddleware(logger)
	f.Use(errMw.Middleware())

	registry := routes.NewRegistry(cfg, c.DB, c.Cache)
	registry.Register(f)

	cleanup := func() error { return c.Close() }
	return &App{Fiber: f}, cleanup, nil
}

func runMigrations(c *Container) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	r := migration.Runner{Dir: c.Config.App.MigrationsDir}
	if err := r.Run(ctx, c.DB.SQLDB()); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	c.Logger.Info("migrations applied")
	return nil
}

func runSeeders(c *Container) error {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	r := seeder.Runner{Seeders: seeder.Defaults()}
	if err := r.Run(ctx, c.DB); err != nil {
		return fmt.Errorf("run seeders: %w", err)
	}
	c.Logger.Info("seed data ensured")
	return nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
