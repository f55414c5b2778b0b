package main

import (
	"context"
	"os/signal"
	"syscall"

	"brainagro/cmd/internal/config"
	"brainagro/cmd/internal/domain/conflict"
	"brainagro/cmd/internal/domain/database"
	"brainagro/cmd/internal/domain/database/repository"
	"brainagro/cmd/internal/domain/graph"
	"brainagro/cmd/internal/domain/policy"
	handler2 "brainagro/cmd/internal/http/handler"
	middleware2 "brainagro/cmd/internal/http/middleware"
	"brainagro/cmd/internal/infrastructure/minhareceita"
	"brainagro/cmd/internal/metrics"
	"brainagro/cmd/internal/service"
	"brainagro/cmd/internal/service/jobs"
	"brainagro/cmd/internal/utils/uid"
	"brainagro/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	validate := validator.New()
	validators.Register(validate)

	// Loads env vars depending on environment
	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	uid.Init(cfg.MachineID)

	db, err := database.Init(cfg.Database())
	if err != nil {
		panic(err)
	}

	m := metrics.New(prometheus.DefaultRegisterer)

	// Getting repos
	stateRepo := repository.NewStateRepository(db)
	cityRepo := repository.NewCityRepository(db)
	producerRepo := repository.NewProducerRepository(db)
	cropRepo := repository.NewCropRepository(db)
	seasonRepo := repository.NewSeasonRepository(db)
	farmRepo := repository.NewFarmRepository(db)
	plantingRepo := repository.NewPlantingRepository(db)
	registrationRepo := repository.NewRegistrationRepository(db)

	// Getting services
	classifier := conflict.NewClassifier(log.New("store"), m)
	registry := service.NewRegistry(graph.New(db), classifier, validate, m)

	producerService := service.NewProducerService(producerRepo, registry)
	producerService.Registrations = service.NewRegistrationService(minhareceita.NewClient(cfg.MinhaReceitaURL), registrationRepo)

	routes := &handler2.Routes{
		States:    handler2.NewStateRoute(service.NewStateService(stateRepo, registry)),
		Cities:    handler2.NewCityRoute(service.NewCityService(cityRepo, registry)),
		Producers: handler2.NewProducerRoute(producerService),
		Crops:     handler2.NewCropRoute(service.NewCropService(cropRepo, registry)),
		Seasons:   handler2.NewSeasonRoute(service.NewSeasonService(seasonRepo, registry)),
		Farms:     handler2.NewFarmRoute(service.NewFarmService(farmRepo, policy.NewFarmPolicy(), registry)),
		Plantings: handler2.NewPlantingRoute(service.NewPlantingService(plantingRepo, registry)),
	}

	go jobs.NewRegistrationCacheCleaner(registrationRepo).Start(ctx)

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("1M"))
	e.Use(middleware2.RequestID())
	e.Use(middleware2.RequestContext())
	e.Use(middleware2.Metrics(m))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Infof("%s %s %d %s (%s)", v.Method, v.URI, v.Status, v.Latency, v.RequestID)
			return nil
		},
	}))

	routes.Register(e)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	go func() {
		<-ctx.Done()
		if err := e.Shutdown(context.Background()); err != nil {
			log.Errorf("failed to shut down server: %v", err)
		}
	}()

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Info(err)
	}
}
