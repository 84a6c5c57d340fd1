package app

import (
	"fmt"
	"log"
	"os"
	"strings"

	"talent-hub/internal/config"
	"talent-hub/internal/delivery/http/handler"
	"talent-hub/internal/delivery/http/middleware"
	"talent-hub/internal/delivery/http/routes"
	"talent-hub/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	f.Use(middleware.NewErrorMiddleware(logger).Middleware())

	registry := &routes.Registry{
		Health:    handler.NewHealthHandler(c.Store, c.Cache),
		Auth:      handler.NewAuthHandler(c.Auth),
		Scales:    handler.NewScaleHandler(c.Scales),
		Catalog:   handler.NewCatalogHandler(c.Catalog),
		Clients:   handler.NewClientHandler(c.Clients),
		Members:   handler.NewMemberHandler(c.Members),
		Gradings:  handler.NewGradingHandler(c.Gradings),
		Profiles:  handler.NewProfileHandler(c.Profiles),
		Goals:     handler.NewGoalHandler(c.Goals),
		Analytics: handler.NewAnalyticsHandler(c.Analytics),
		AuthGuard: middleware.NewAuthMiddleware(c.JWT),
	}
	registry.Register(f)

	go c.Hub.Run()
	wsHandler := ws.NewHandler(c.Hub, logger)
	f.Get("/ws/changes", wsHandler.HandleChangesWS)

	cleanup := func() error { return c.Close() }
	return &App{Fiber: f, Container: c}, cleanup, nil
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
