package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nycrides/tripcast/internal/pkg/database"
	"github.com/nycrides/tripcast/internal/pkg/logger"
	nsqpkg "github.com/nycrides/tripcast/internal/pkg/nsq"
)

// HealthChecker defines the interface for health checking dependencies
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// PostgresHealthChecker checks PostgreSQL connection health
type PostgresHealthChecker struct {
	client *database.PostgresClient
}

// NewPostgresHealthChecker creates a new PostgreSQL health checker
func NewPostgresHealthChecker(client *database.PostgresClient) *PostgresHealthChecker {
	return &PostgresHealthChecker{client: client}
}

// CheckHealth checks if PostgreSQL is healthy
func (p *PostgresHealthChecker) CheckHealth(ctx context.Context) error {
	if p.client == nil {
		return nil // Skip if no PostgreSQL client
	}
	return p.client.GetDB().PingContext(ctx)
}

// RedisHealthChecker checks Redis connection health
type RedisHealthChecker struct {
	client *database.RedisClient
}

// NewRedisHealthChecker creates a new Redis health checker
func NewRedisHealthChecker(client *database.RedisClient) *RedisHealthChecker {
	return &RedisHealthChecker{client: client}
}

// CheckHealth checks if Redis is healthy
func (r *RedisHealthChecker) CheckHealth(ctx context.Context) error {
	if r.client == nil {
		return nil // Skip if no Redis client
	}
	return r.client.GetClient().Ping(ctx).Err()
}

// NSQHealthChecker checks NSQ daemon connectivity
type NSQHealthChecker struct {
	producer *nsqpkg.Producer
}

// NewNSQHealthChecker creates a new NSQ health checker
func NewNSQHealthChecker(producer *nsqpkg.Producer) *NSQHealthChecker {
	return &NSQHealthChecker{producer: producer}
}

// CheckHealth checks if the NSQ daemon is reachable
func (n *NSQHealthChecker) CheckHealth(ctx context.Context) error {
	if n.producer == nil {
		return nil // Skip if no NSQ producer
	}
	return n.producer.Ping()
}

// HealthService aggregates dependency checkers
type HealthService struct {
	logger   *logger.ZapLogger
	checkers map[string]HealthChecker
}

// NewHealthService creates a new health service
func NewHealthService(zapLogger *logger.ZapLogger) *HealthService {
	return &HealthService{
		logger:   zapLogger,
		checkers: make(map[string]HealthChecker),
	}
}

// AddChecker registers a dependency checker under a name
func (s *HealthService) AddChecker(name string, checker HealthChecker) {
	s.checkers[name] = checker
}

// Check runs all registered checkers and returns per-dependency status
func (s *HealthService) Check(ctx context.Context) (map[string]interface{}, bool) {
	dependencies := make(map[string]interface{}, len(s.checkers))
	healthy := true

	for name, checker := range s.checkers {
		if err := checker.CheckHealth(ctx); err != nil {
			healthy = false
			dependencies[name] = map[string]string{"status": "unhealthy", "error": err.Error()}
			s.logger.Warn("Health check failed",
				logger.String("dependency", name),
				logger.Err(err))
		} else {
			dependencies[name] = map[string]string{"status": "healthy"}
		}
	}

	return dependencies, healthy
}

// RegisterEndpoints registers the health endpoints on the Echo instance
func RegisterEndpoints(e *echo.Echo, serviceName, version string, service *HealthService) {
	healthGroup := e.Group("/health")

	// Basic health check (for load balancers)
	healthGroup.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "ok",
			"service":   serviceName,
			"timestamp": time.Now(),
		})
	})

	// Detailed health check with dependencies
	healthGroup.GET("/detailed", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		dependencies, healthy := service.Check(ctx)

		status := "healthy"
		statusCode := http.StatusOK
		if !healthy {
			status = "unhealthy"
			statusCode = http.StatusServiceUnavailable
		}

		return c.JSON(statusCode, map[string]interface{}{
			"status":       status,
			"service":      serviceName,
			"version":      version,
			"timestamp":    time.Now(),
			"dependencies": dependencies,
		})
	})

	// Readiness probe (for Kubernetes)
	healthGroup.GET("/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()

		if _, healthy := service.Check(ctx); !healthy {
			return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
				"status":  "not ready",
				"service": serviceName,
			})
		}

		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "ready",
			"service": serviceName,
		})
	})

	// Liveness probe (for Kubernetes)
	healthGroup.GET("/live", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "alive",
			"service": serviceName,
		})
	})
}
