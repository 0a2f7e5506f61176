package app

import (
	"context"
	"log"
	"time"

	"career-path/internal/config"
	"career-path/internal/database"
	dbpostgres "career-path/internal/database/postgres"
	"career-path/internal/infrastructure/cache"
	"career-path/internal/pkg/jwt"
	"career-path/internal/provider/adzuna"
	"career-path/internal/provider/remotive"
	"career-path/internal/repository"
	"career-path/internal/usecase"
	useruc "career-path/internal/usecase/user"
	"career-path/internal/ws"
)

// Container owns every long-lived dependency: the connection pool, the
// cache, the websocket hub and the wired usecases.
type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis

	Hub *ws.Hub
	WS  *ws.Handler

	JWT      jwt.Service
	Auth     usecase.AuthUsecase
	User     *useruc.Service
	Jobs     usecase.JobsUsecase
	Salary   usecase.SalaryUsecase
	SkillGap usecase.SkillGapUsecase
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := dbpostgres.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)

	hub := ws.NewHub(logger)
	go hub.Run()
	notifier := ws.NewNotifier(hub)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	userRepo := repository.NewPostgresUserRepository(db)
	analysisRepo := repository.NewPostgresAnalysisRepository(db)

	adzunaClient := adzuna.New(adzuna.Config{
		AppID:   cfg.Adzuna.AppID,
		AppKey:  cfg.Adzuna.AppKey,
		Country: cfg.Adzuna.Country,
		BaseURL: cfg.Adzuna.BaseURL,
	})
	remotiveClient := remotive.New("")

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Cache:  redisCache,
		Hub:    hub,
		WS:     ws.NewHandler(hub, logger),
		JWT:    jwtSvc,
		Auth:   usecase.NewAuthUsecase(userRepo, jwtSvc),
		User:   useruc.NewService(userRepo),
		Jobs:   usecase.NewJobsUsecase(adzunaClient, remotiveClient, redisCache, logger),
		Salary: usecase.NewSalaryUsecase(adzunaClient, redisCache, logger),
		SkillGap: usecase.NewSkillGapUsecase(
			userRepo, analysisRepo, adzunaClient, notifier, logger,
		),
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
