package routes_test

import (
	"net/http"
	"testing"

	"jobboard-api/config"
	"jobboard-api/internal/api/handlers"
	"jobboard-api/internal/api/routes"
	"jobboard-api/internal/app"
	"jobboard-api/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockJobHandler is a mock implementation of JobHandlerInterface
type MockJobHandler struct {
	mock.Mock
}

func (m *MockJobHandler) PostJob(c *gin.Context) {
	m.Called(c)
}

func (m *MockJobHandler) GetAllJobs(c *gin.Context) {
	m.Called(c)
}

func (m *MockJobHandler) GetJobByID(c *gin.Context) {
	m.Called(c)
}

func (m *MockJobHandler) GetAdminJobs(c *gin.Context) {
	m.Called(c)
}

// Ensure MockJobHandler implements the interface (compile-time check)
var _ handlers.JobHandlerInterface = (*MockJobHandler)(nil)

type route struct {
	Method string
	Path   string
}

func registeredRoutes(router *gin.Engine) map[route]bool {
	found := make(map[route]bool)
	for _, r := range router.Routes() {
		found[route{r.Method, r.Path}] = true
	}
	return found
}

func TestRegisterJobRoutes(t *testing.T) {
	// Arrange
	gin.SetMode(gin.TestMode)
	mockHandler := new(MockJobHandler)
	router := gin.New()
	testGroup := router.Group("/api/v1")
	dummyAuth := func(c *gin.Context) { c.Next() }

	// Act
	routes.RegisterJobRoutes(testGroup, mockHandler, dummyAuth)

	// Assert
	found := registeredRoutes(router)
	expectedRoutes := []route{
		{http.MethodPost, "/api/v1/job/post"},
		{http.MethodGet, "/api/v1/job/get"},
		{http.MethodGet, "/api/v1/job/get/:id"},
		{http.MethodGet, "/api/v1/job/getadminjobs"},
	}
	for _, expected := range expectedRoutes {
		assert.True(t, found[expected], "Expected route %s %s not registered", expected.Method, expected.Path)
	}
	assert.Len(t, router.Routes(), len(expectedRoutes))
}

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	application := &app.Application{
		Config:       &config.Config{JWT: config.JWTConfig{Secret: "secret"}},
		Logger:       zap.NewNop(),
		JobRepo:      new(mocks.JobRepository),
		Validator:    validator.New(),
		Registry:     prometheus.NewRegistry(),
		HealthChecks: map[string]handlers.Pinger{},
	}

	routes.RegisterRoutes(router, application)

	found := registeredRoutes(router)
	for _, expected := range []route{
		{http.MethodPost, "/api/v1/job/post"},
		{http.MethodGet, "/api/v1/job/get"},
		{http.MethodGet, "/api/v1/job/get/:id"},
		{http.MethodGet, "/api/v1/job/getadminjobs"},
		{http.MethodGet, "/health"},
		{http.MethodGet, "/metrics"},
		{http.MethodGet, "/swagger/*any"},
	} {
		assert.True(t, found[expected], "Expected route %s %s not registered", expected.Method, expected.Path)
	}
}
