package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobboard-api/config"
	"jobboard-api/internal/api/handlers"
	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/app"
	"jobboard-api/internal/mocks"
	"jobboard-api/internal/models"
	"jobboard-api/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "server-test-secret"

func newTestServer(t *testing.T) (*server.Server, *mocks.JobRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repo := new(mocks.JobRepository)
	cfg := &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 0, ShutdownTimeout: time.Second},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
		JWT:    config.JWTConfig{Secret: testSecret},
	}
	application := &app.Application{
		Config:       cfg,
		Logger:       zap.NewNop(),
		JobRepo:      repo,
		Validator:    validator.New(),
		Registry:     prometheus.NewRegistry(),
		HealthChecks: map[string]handlers.Pinger{"store": repo},
	}
	return server.NewServer(application), repo
}

func signToken(t *testing.T, userID string) string {
	t.Helper()
	claims := middleware.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestServer_AuthenticatedJobList(t *testing.T) {
	srv, repo := newTestServer(t)
	repo.On("List", mock.Anything, mock.Anything).Return([]models.Job{{ID: "1", Title: "Go Developer"}}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/job/get?keyword=go", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "user-1"))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	repo.AssertExpectations(t)
}

func TestServer_RejectsAnonymousJobRequests(t *testing.T) {
	srv, repo := newTestServer(t)

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/job/getadminjobs", nil))

	require.Equal(t, http.StatusUnauthorized, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, middleware.MessageNotAuthenticated, body["message"])
	repo.AssertNotCalled(t, "ListByCreator", mock.Anything, mock.Anything)
}

func TestServer_HealthAndMetrics(t *testing.T) {
	srv, repo := newTestServer(t)
	repo.On("Ping", mock.Anything).Return(nil).Once()

	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `jobboard_http_requests_total{code="200",method="GET",route="/health"} 1`)
}

func TestServer_CORS(t *testing.T) {
	srv, _ := newTestServer(t)

	allowed := httptest.NewRequest(http.MethodOptions, "/api/v1/job/get", nil)
	allowed.Header.Set("Origin", "http://localhost:5173")
	allowed.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, allowed)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	denied := httptest.NewRequest(http.MethodOptions, "/api/v1/job/get", nil)
	denied.Header.Set("Origin", "http://evil.example")
	denied.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, denied)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
