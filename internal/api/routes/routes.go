// internal/api/routes/routes.go
package routes

import (
	"jobboard-api/internal/api/handlers"
	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/app"
	"jobboard-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	apiV1 := router.Group("/api/v1")

	// Create services and handlers
	jobService := services.NewJobService(app.JobRepo, app.Validator, app.Logger)
	jobHandler := handlers.NewJobHandler(jobService, app.Logger)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(app.Config.JWT.Secret, app.Denylist, app.Logger)

	// --- Register Resource Routes ---
	RegisterJobRoutes(apiV1, jobHandler, authMiddleware)

	// --- Health Check & Metrics ---
	router.GET("/health", handlers.HealthCheck(app.HealthChecks, app.Logger))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(app.Registry, promhttp.HandlerOpts{})))

	// Swagger UI, backed by the spec registered by the docs package.
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
