package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/nycrides/tripcast/internal/pkg/config"
	"github.com/nycrides/tripcast/internal/pkg/database"
	"github.com/nycrides/tripcast/internal/pkg/health"
	"github.com/nycrides/tripcast/internal/pkg/logger"
	"github.com/nycrides/tripcast/internal/pkg/middleware"
	"github.com/nycrides/tripcast/internal/pkg/models"
	nrpkg "github.com/nycrides/tripcast/internal/pkg/newrelic"
	nsqpkg "github.com/nycrides/tripcast/internal/pkg/nsq"
	"github.com/nycrides/tripcast/internal/pkg/server"
	analyticsHandler "github.com/nycrides/tripcast/services/analytics/handler"
	analyticsRepo "github.com/nycrides/tripcast/services/analytics/repository"
	analyticsUC "github.com/nycrides/tripcast/services/analytics/usecase"
	locationsHandler "github.com/nycrides/tripcast/services/locations/handler"
	locationsRepo "github.com/nycrides/tripcast/services/locations/repository"
	locationsUC "github.com/nycrides/tripcast/services/locations/usecase"
	"github.com/nycrides/tripcast/services/predictions"
	predictionsGateway "github.com/nycrides/tripcast/services/predictions/gateway"
	predictionsHandler "github.com/nycrides/tripcast/services/predictions/handler"
	"github.com/nycrides/tripcast/services/predictions/model"
	predictionsRepo "github.com/nycrides/tripcast/services/predictions/repository"
	predictionsUC "github.com/nycrides/tripcast/services/predictions/usecase"
	"github.com/nycrides/tripcast/services/routes/gateway/ors"
	routesHandler "github.com/nycrides/tripcast/services/routes/handler"
	routesRepo "github.com/nycrides/tripcast/services/routes/repository"
	routesUC "github.com/nycrides/tripcast/services/routes/usecase"
	usersHandler "github.com/nycrides/tripcast/services/users/handler"
	usersRepo "github.com/nycrides/tripcast/services/users/repository"
	usersUC "github.com/nycrides/tripcast/services/users/usecase"
)

const serviceVersion = "1.0.0"

func main() {
	cfg := config.InitConfig(".env")

	nrApp := nrpkg.InitNewRelic(cfg)

	zapLogger, err := logger.NewZapLogger(cfg.Logger, nrApp)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// Postgres backs accounts, trips, routes and saved locations.
	pgClient, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer pgClient.Close()

	// Redis backs rate limiting. The API serves without it, minus limits.
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		zapLogger.Warn("Redis unavailable, rate limiting disabled", logger.Err(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	// NSQ carries prediction events. The API serves without it.
	var nsqProducer *nsqpkg.Producer
	if cfg.NSQ.Address != "" {
		nsqProducer, err = nsqpkg.NewProducer(cfg.NSQ.Address)
		if err != nil {
			zapLogger.Warn("NSQ unavailable, prediction events disabled", logger.Err(err))
			nsqProducer = nil
		} else {
			defer nsqProducer.Stop()
		}
	}

	e := buildServer(cfg, zapLogger, nrApp, pgClient, redisClient, nsqProducer)

	srv := server.NewGracefulServer(e, zapLogger, cfg.Server.Port,
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server exited with error", logger.Err(err))
	}
}

func buildServer(
	cfg *models.Config,
	zapLogger *logger.ZapLogger,
	nrApp *newrelic.Application,
	pgClient *database.PostgresClient,
	redisClient *database.RedisClient,
	nsqProducer *nsqpkg.Producer,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Health endpoints
	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("postgres", health.NewPostgresHealthChecker(pgClient))
	if redisClient != nil {
		healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	}
	if nsqProducer != nil {
		healthService.AddChecker("nsq", health.NewNSQHealthChecker(nsqProducer))
	}
	health.RegisterEndpoints(e, cfg.App.Name, serviceVersion, healthService)

	// Repositories
	userRepo := usersRepo.NewUserRepo(pgClient)
	tripRepo := predictionsRepo.NewTripRepo(pgClient)
	routeRepo := routesRepo.NewRouteRepo(pgClient)
	locationRepo := locationsRepo.NewLocationRepo(pgClient)
	statsRepo := analyticsRepo.NewAnalyticsRepo(pgClient)

	// Gateways
	routeGW := ors.NewClient(cfg.ORS)
	var predictionGW predictions.PredictionGW
	if nsqProducer != nil {
		predictionGW = predictionsGateway.NewPredictionGW(nsqProducer, cfg.NSQ.PredictionsTopic)
	}

	// Usecases
	modelHandle := model.NewHandle(cfg.Model.Path)
	userUC := usersUC.NewUserUC(cfg, userRepo)
	predictionUC := predictionsUC.NewPredictionUC(cfg, modelHandle, tripRepo, predictionGW)
	routeUC := routesUC.NewRouteUC(routeGW, routeRepo)
	locationUC := locationsUC.NewLocationUC(locationRepo)
	statsUC := analyticsUC.NewAnalyticsUC(statsRepo)

	authMW := middleware.JWTAuthMiddleware(cfg.JWT)

	var heavyMWs []echo.MiddlewareFunc
	if cfg.RateLimit.Enabled && redisClient != nil {
		heavyMWs = append(heavyMWs, middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			RedisClient: redisClient.GetClient(),
			Key:         "ratelimit:api",
			Limit:       cfg.RateLimit.Limit,
			Period:      time.Duration(cfg.RateLimit.Period) * time.Second,
		}))
	}

	api := e.Group("/api")
	usersHandler.RegisterRoutes(api, userUC, authMW)
	predictionsHandler.RegisterRoutes(api, predictionUC, authMW, heavyMWs...)
	routesHandler.RegisterRoutes(api, routeUC, authMW, heavyMWs...)
	locationsHandler.RegisterRoutes(api, locationUC, authMW)
	analyticsHandler.RegisterRoutes(api, statsUC, authMW)

	return e
}
