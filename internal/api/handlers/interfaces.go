// internal/api/handlers/interfaces.go
package handlers

import "github.com/gin-gonic/gin"

// JobHandlerInterface defines the methods needed by the job routes.
type JobHandlerInterface interface {
	PostJob(c *gin.Context)
	GetAllJobs(c *gin.Context)
	GetJobByID(c *gin.Context)
	GetAdminJobs(c *gin.Context)
}
