package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/nycrides/tripcast/internal/pkg/logger"
	nrpkg "github.com/nycrides/tripcast/internal/pkg/newrelic"
)

// PanicRecoveryMiddleware creates a middleware that recovers from panics
// and logs them with a stack trace and New Relic error reporting.
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zapLogger)
				}
			}()

			return next(c)
		}
	}
}

// handlePanic handles the panic recovery, logging, and response
func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) {
	stackTrace := string(debug.Stack())

	method := c.Request().Method
	path := c.Request().URL.Path
	clientIP := c.RealIP()

	userID := "anonymous"
	if uid := c.Get("user_id"); uid != nil {
		userID = fmt.Sprintf("%v", uid)
	}

	requestID := c.Response().Header().Get("X-Request-ID")
	if requestID == "" {
		requestID = c.Request().Header.Get("X-Request-ID")
	}

	panicErr := fmt.Errorf("panic recovered: %v", r)

	var txn *newrelic.Transaction
	if t := nrpkg.FromEchoContext(c); t != nil {
		txn = t
		nrpkg.NoticeTransactionError(txn, panicErr)
	}

	zapLogger.WithNewRelicContext(txn).Error("Panic recovered",
		logger.Any("panic_value", r),
		logger.String("stack_trace", stackTrace),
		logger.String("method", method),
		logger.String("path", path),
		logger.String("client_ip", clientIP),
		logger.String("user_id", userID),
		logger.String("request_id", requestID),
	)

	if !c.Response().Committed {
		_ = c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"error":   "Internal server error",
			"code":    http.StatusInternalServerError,
		})
	}
}
