// internal/app/app.go
package app

import (
	"jobboard-api/config"
	"jobboard-api/internal/api/handlers"
	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Application holds core application dependencies.
type Application struct {
	Config    *config.Config
	Logger    *zap.Logger
	JobRepo   storage.JobRepository
	Denylist  middleware.TokenDenylist // nil when Redis is not configured
	Validator *validator.Validate
	Registry  *prometheus.Registry

	// HealthChecks are pinged by GET /health, keyed by dependency name.
	HealthChecks map[string]handlers.Pinger
}
