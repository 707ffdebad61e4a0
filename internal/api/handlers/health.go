package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// Pinger is a dependency the health check probes.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheck returns the health check handler. Every named dependency is
// pinged; any failure answers 503.
//
//	@Summary		Health check
//	@Description	Check the service and its stores are reachable
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	map[string]string	"API is healthy"
//	@Failure		503	{object}	map[string]string	"A dependency is unreachable"
//	@Router			/health [get]
func HealthCheck(deps map[string]Pinger, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()

		for name, dep := range deps {
			if err := dep.Ping(ctx); err != nil {
				logger.Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
				c.JSON(http.StatusServiceUnavailable, gin.H{
					"status": "unavailable",
					"error":  name + ": " + err.Error(),
				})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	}
}
