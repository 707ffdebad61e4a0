// internal/api/routes/job_routes.go
package routes

import (
	"jobboard-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers all routes related to jobs.
// It applies the provided authentication middleware to all job routes.
func RegisterJobRoutes(
	rg *gin.RouterGroup, // Base group (e.g., /api/v1)
	jobHandler handlers.JobHandlerInterface, // Use interface
	authMiddleware gin.HandlerFunc,
) {
	job := rg.Group("/job")
	job.Use(authMiddleware) // Apply auth middleware to all job routes
	{
		job.POST("/post", jobHandler.PostJob)             // Create a new job posting
		job.GET("/get", jobHandler.GetAllJobs)            // Search jobs by keyword
		job.GET("/get/:id", jobHandler.GetJobByID)        // Get a specific job with its applications
		job.GET("/getadminjobs", jobHandler.GetAdminJobs) // List jobs posted by the caller
	}
}
