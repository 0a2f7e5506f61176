package app

import (
	"fmt"
	"log"
	"strings"

	"career-path/internal/config"
	"career-path/internal/delivery/http/handler"
	"career-path/internal/delivery/http/middleware"
	"career-path/internal/delivery/http/routes"
	v1 "career-path/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(cfg config.Config, logger *log.Logger) (*App, error) {
	container, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, err
	}

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	registerGlobalMiddleware(f, logger)
	registerRoutes(f, container)

	return &App{Fiber: f, Container: container}, nil
}

func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	app, err := New(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return app, app.Container.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.AccessLog(logger))
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil || c == nil {
		return
	}

	health := handler.NewHealthHandler(c.DB, c.Cache)
	registry := routes.NewRegistry(health, v1.Deps{
		JWT:      c.JWT,
		Auth:     c.Auth,
		User:     c.User,
		Jobs:     c.Jobs,
		Salary:   c.Salary,
		SkillGap: c.SkillGap,
	})
	registry.Register(app)

	app.Get("/ws/analyses", c.WS.HandleAnalysesWS)
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
