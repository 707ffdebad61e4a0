package services

import (
	"context"

	"jobboard-api/internal/models"
	"jobboard-api/internal/transport/dto"
)

// JobService defines the interface for job-related business logic.
type JobService interface {
	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	ListJobs(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error)
	GetJobByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error)
	ListAdminJobs(ctx context.Context, req *dto.ListAdminJobsRequest) ([]models.Job, error)
}
