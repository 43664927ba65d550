package app

import (
	"fmt"
	"log"
	"os"
	"strings"

	"job-board/internal/config"
	"job-board/internal/delivery/http/handler"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/delivery/http/routes"
	"job-board/internal/infrastructure/cache"
	"job-board/internal/pkg/jwt"
	"job-board/internal/repository"
	"job-board/internal/usecase"
	"job-board/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	container, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	listingCache := cache.NewRedis(cfg.Redis, logger)

	hub := ws.NewHub(logger)
	go hub.Run()
	ws.SetDefaultHub(hub)

	tokens := jwt.NewHMACService(cfg.JWT.SecretKey, cfg.JWT.ExpiresIn)

	userRepo := repository.NewPostgresUserRepository(container.DB)
	jobRepo := repository.NewPostgresJobRepository(container.DB)

	authUC := usecase.NewAuthService(userRepo, tokens, logger)
	jobUC := usecase.NewJobService(jobRepo, listingCache, logger)

	registry := &routes.Registry{
		Health: handler.NewHealthHandler(),
		Auth:   handler.NewAuthHandler(authUC),
		Jobs:   handler.NewJobsHandler(jobUC),
		Feed:   ws.NewHandler(hub, logger),
		AuthMw: middleware.NewAuthMiddleware(tokens),
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	f.Use(middleware.NewErrorMiddleware(logger).Middleware())
	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	registry.Register(f)

	cleanup := func() error {
		return container.Close()
	}
	return &App{Fiber: f}, cleanup, nil
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
