// Package mocks holds testify mocks shared by the package tests.
package mocks

import (
	"context"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/stretchr/testify/mock"
)

// JobRepository is a mock type for the storage.JobRepository interface
type JobRepository struct {
	mock.Mock
}

// Ensure mock implements the interface
var _ storage.JobRepository = (*JobRepository)(nil)

func (m *JobRepository) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	args := m.Called(ctx, job)
	// Handle nil return for pointer type
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *JobRepository) List(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *JobRepository) GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *JobRepository) ListByCreator(ctx context.Context, req *dto.ListAdminJobsRequest) ([]models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *JobRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
