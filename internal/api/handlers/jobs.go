// internal/api/handlers/jobs.go
package handlers

import (
	"errors"
	"io"
	"net/http"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/services"
	"jobboard-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Client messages.
const (
	MessageJobCreated      = "New job created successfully."
	MessageNoJobsFound     = "No jobs found."
	MessageJobNotFound     = "Job not found."
	MessageAdminJobsAbsent = "Jobs not found."
	MessageInvalidBody     = "Invalid request body."
)

// JobHandler holds dependencies for job operations.
type JobHandler struct {
	service services.JobService
	logger  *zap.Logger
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service services.JobService, logger *zap.Logger) *JobHandler {
	return &JobHandler{
		service: service,
		logger:  logger.Named("handlers.jobs"),
	}
}

// Compile-time check to ensure JobHandler implements JobHandlerInterface
var _ JobHandlerInterface = (*JobHandler)(nil)

// PostJob godoc
//
//	@Summary		Create a new job posting
//	@Description	Adds a new job. The creator is taken from the auth context. Accepts JSON or form bodies.
//	@Tags			jobs
//	@Accept			json,x-www-form-urlencoded
//	@Produce		json
//	@Param			job	body		dto.CreateJobRequest	true	"Job details"
//	@Success		201	{object}	dto.JobEnvelope			"New job created successfully."
//	@Failure		400	{object}	dto.JobEnvelope			"Missing fields or invalid numbers"
//	@Failure		401	{object}	dto.JobEnvelope			"Unauthorized"
//	@Failure		500	{object}	dto.JobEnvelope			"Internal Server Error"
//	@Router			/job/post [post]
//	@Security		BearerAuth
func (h *JobHandler) PostJob(c *gin.Context) {
	userID, ok := h.callerID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	// An empty body is treated as a request with every field missing.
	if err := c.ShouldBind(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Debug("Invalid create job body", zap.String("request_id", middleware.GetRequestID(c)), zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.Failure(MessageInvalidBody))
		return
	}
	req.UserID = userID

	job, err := h.service.CreateJob(c.Request.Context(), &req)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, dto.Failure(validationErr.Message))
			return
		}
		h.internalError(c, "creating job", err)
		return
	}

	c.JSON(http.StatusCreated, dto.JobCreated(job, MessageJobCreated))
}

// GetAllJobs godoc
//
//	@Summary		Search jobs
//	@Description	Lists jobs whose title or description contains the keyword (case-insensitive), newest first, with the company expanded.
//	@Tags			jobs
//	@Produce		json
//	@Param			keyword	query		string			false	"Search keyword"
//	@Success		200		{object}	dto.JobEnvelope	"Matching jobs"
//	@Failure		401		{object}	dto.JobEnvelope	"Unauthorized"
//	@Failure		404		{object}	dto.JobEnvelope	"No jobs found."
//	@Failure		500		{object}	dto.JobEnvelope	"Internal Server Error"
//	@Router			/job/get [get]
//	@Security		BearerAuth
func (h *JobHandler) GetAllJobs(c *gin.Context) {
	req := dto.ListJobsRequest{Keyword: c.Query("keyword")}

	jobs, err := h.service.ListJobs(c.Request.Context(), &req)
	if err != nil {
		h.internalError(c, "listing jobs", err)
		return
	}
	if len(jobs) == 0 {
		c.JSON(http.StatusNotFound, dto.Failure(MessageNoJobsFound))
		return
	}

	c.JSON(http.StatusOK, dto.JobsFound(jobs))
}

// GetJobByID godoc
//
//	@Summary		Get a job by ID
//	@Description	Retrieves a job with its applications expanded.
//	@Tags			jobs
//	@Produce		json
//	@Param			id	path		string			true	"Job ID"
//	@Success		200	{object}	dto.JobEnvelope	"The job"
//	@Failure		401	{object}	dto.JobEnvelope	"Unauthorized"
//	@Failure		404	{object}	dto.JobEnvelope	"Job not found."
//	@Failure		500	{object}	dto.JobEnvelope	"Internal Server Error"
//	@Router			/job/get/{id} [get]
//	@Security		BearerAuth
func (h *JobHandler) GetJobByID(c *gin.Context) {
	req := dto.GetJobByIDRequest{ID: c.Param("id")}

	job, err := h.service.GetJobByID(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Failure(MessageJobNotFound))
			return
		}
		h.internalError(c, "getting job", err)
		return
	}

	c.JSON(http.StatusOK, dto.JobFound(job))
}

// GetAdminJobs godoc
//
//	@Summary		List the caller's jobs
//	@Description	Lists jobs created by the authenticated user, newest first, with the company expanded.
//	@Tags			jobs
//	@Produce		json
//	@Success		200	{object}	dto.JobEnvelope	"The caller's jobs"
//	@Failure		401	{object}	dto.JobEnvelope	"Unauthorized"
//	@Failure		404	{object}	dto.JobEnvelope	"Jobs not found."
//	@Failure		500	{object}	dto.JobEnvelope	"Internal Server Error"
//	@Router			/job/getadminjobs [get]
//	@Security		BearerAuth
func (h *JobHandler) GetAdminJobs(c *gin.Context) {
	userID, ok := h.callerID(c)
	if !ok {
		return
	}

	req := dto.ListAdminJobsRequest{UserID: userID}
	jobs, err := h.service.ListAdminJobs(c.Request.Context(), &req)
	if err != nil {
		h.internalError(c, "listing admin jobs", err)
		return
	}
	if len(jobs) == 0 {
		c.JSON(http.StatusNotFound, dto.Failure(MessageAdminJobsAbsent))
		return
	}

	c.JSON(http.StatusOK, dto.JobsFound(jobs))
}

func (h *JobHandler) callerID(c *gin.Context) (string, bool) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		h.logger.Warn("Error getting user ID from context", zap.String("request_id", middleware.GetRequestID(c)), zap.Error(err))
		c.JSON(http.StatusUnauthorized, dto.Failure(middleware.MessageNotAuthenticated))
		return "", false
	}
	return userID, true
}

func (h *JobHandler) internalError(c *gin.Context, operation string, err error) {
	h.logger.Error("Error "+operation,
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, dto.InternalFailure(err))
}
