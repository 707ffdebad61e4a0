package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/api/routes"
	"jobboard-api/internal/app"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

type Server struct {
	router     *gin.Engine
	app        *app.Application // Store the application container
	httpServer *http.Server
}

func NewServer(app *app.Application) *Server {
	router := gin.New()
	router.Use(ginzap.Ginzap(app.Logger, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(app.Logger, true))
	if app.Config.Tracing.Enabled {
		router.Use(otelgin.Middleware(app.Config.Tracing.ServiceName))
	}
	router.Use(middleware.RequestID())
	router.Use(middleware.NewMetrics(app.Registry).Handler())

	// --- Configure and Apply CORS Middleware ---
	app.Logger.Info("Configuring CORS", zap.Strings("origins", app.Config.CORS.AllowedOrigins))
	corsConfig := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			for _, allowed := range app.Config.CORS.AllowedOrigins {
				if allowed == "*" || allowed == origin {
					return true
				}
			}
			return false
		},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true, // The front end sends the token cookie
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))
	// --- End CORS Configuration ---

	router.SetTrustedProxies(nil) // Remove the gin warning about untrusted proxies

	routes.RegisterRoutes(router, app)

	return &Server{
		router: router,
		app:    app,
		httpServer: &http.Server{
			Addr:              app.Config.Server.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Router exposes the configured engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start serves until Shutdown is called. A graceful shutdown is not an error.
func (s *Server) Start() error {
	s.app.Logger.Info("Server starting", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
