package services

import (
	"context"
	"errors"
	"fmt"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type jobService struct {
	jobRepo  storage.JobRepository
	validate *validator.Validate
	logger   *zap.Logger
}

// NewJobService creates a new instance of JobService.
func NewJobService(jobRepo storage.JobRepository, validate *validator.Validate, logger *zap.Logger) JobService {
	return &jobService{jobRepo: jobRepo, validate: validate, logger: logger.Named("jobs")}
}

func (s *jobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	job, err := BuildJob(s.validate, req)
	if err != nil {
		return nil, err
	}

	created, err := s.jobRepo.Create(ctx, job)
	if err != nil {
		return nil, mapRepoError(err, "creating job")
	}
	s.logger.Info("Job created",
		zap.String("job_id", created.ID),
		zap.String("company_id", created.Company.ID),
		zap.String("created_by", created.CreatedBy),
	)
	return created, nil
}

func (s *jobService) ListJobs(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error) {
	jobs, err := s.jobRepo.List(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "listing jobs")
	}
	return jobs, nil
}

func (s *jobService) GetJobByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "getting job by ID")
	}
	return job, nil
}

func (s *jobService) ListAdminJobs(ctx context.Context, req *dto.ListAdminJobsRequest) ([]models.Job, error) {
	// UserID is set in handler from context, never from the query.
	jobs, err := s.jobRepo.ListByCreator(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "listing admin jobs")
	}
	return jobs, nil
}

// mapRepoError maps storage errors to service errors
func mapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrConflict) {
		return fmt.Errorf("%w: %s: %w", ErrConflict, operation, err)
	}
	return fmt.Errorf("internal error %s: %w", operation, err)
}
