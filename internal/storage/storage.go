package storage

import (
	"context"

	"jobboard-api/internal/models"
	"jobboard-api/internal/transport/dto"
)

// JobRepository defines the interface for job data operations. Every method
// is a single round trip to the store.
type JobRepository interface {
	// Create inserts a job and returns it as stored, references unexpanded.
	Create(ctx context.Context, job *models.Job) (*models.Job, error)
	// List returns jobs whose title or description contains the keyword
	// (case-insensitive), company expanded, newest first.
	List(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error)
	// GetByID returns a job with its applications expanded, or ErrNotFound.
	GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error)
	// ListByCreator returns the jobs created by a user, company expanded,
	// newest first.
	ListByCreator(ctx context.Context, req *dto.ListAdminJobsRequest) ([]models.Job, error)
	// Ping checks the store is reachable.
	Ping(ctx context.Context) error
}
