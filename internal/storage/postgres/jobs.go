// internal/storage/postgres/jobs.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn" // For checking specific errors
	"go.uber.org/zap"
)

// JobRepo implements the storage.JobRepository interface using PostgreSQL.
// References are expanded with joins and JSON aggregation so every operation
// stays a single statement.
type JobRepo struct {
	db     Querier
	logger *zap.Logger
}

// NewJobRepo creates a new JobRepo. Pass a *pgxpool.Pool.
func NewJobRepo(db Querier, logger *zap.Logger) *JobRepo {
	return &JobRepo{db: db, logger: logger.Named("postgres.jobs")}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

const jobColumns = `
	j.id::text, j.title, j.description, j.requirements, j.salary, j.location, j.job_type,
	j.experience_level, j.position, j.company_id::text, j.created_by::text,
	COALESCE((SELECT array_agg(a.id::text ORDER BY a.created_at) FROM applications a WHERE a.job_id = j.id), '{}'::text[]),
	j.created_at, j.updated_at`

const companyColumns = `
	c.id::text, c.name, c.description, c.website, c.location, c.logo, c.user_id::text,
	c.created_at, c.updated_at`

const applicationsJSON = `
	COALESCE((
		SELECT json_agg(json_build_object(
			'id', a.id::text,
			'job_id', a.job_id::text,
			'applicant_id', a.applicant_id::text,
			'status', a.status,
			'created_at', a.created_at,
			'updated_at', a.updated_at
		) ORDER BY a.created_at)
		FROM applications a WHERE a.job_id = j.id
	), '[]'::json)`

// Create saves a new job posting.
func (r *JobRepo) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	query := `
		INSERT INTO jobs AS j (id, title, description, requirements, salary, location, job_type,
			experience_level, position, company_id, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::uuid, $11::uuid, NOW(), NOW())
		RETURNING ` + jobColumns

	row := r.db.QueryRow(ctx, query,
		uuid.New(), // Generate ID server-side
		job.Title,
		job.Description,
		job.Requirements,
		job.Salary,
		job.Location,
		job.JobType,
		job.ExperienceLevel,
		job.Position,
		job.Company.ID,
		job.CreatedBy,
	)

	var created jobRow
	if err := row.Scan(created.dest()...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			r.logger.Warn("Error creating job: unknown company", zap.String("company_id", job.Company.ID), zap.Error(err))
			return nil, fmt.Errorf("failed to create job: invalid company ID %s: %w", job.Company.ID, storage.ErrConflict)
		}
		r.logger.Error("Error creating job", zap.Error(err))
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	r.logger.Debug("Job created", zap.String("job_id", created.ID))
	result := created.toModel()
	return &result, nil
}

// List retrieves jobs matching the keyword with their company expanded.
func (r *JobRepo) List(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error) {
	query := `
		SELECT ` + jobColumns + `,` + companyColumns + `
		FROM jobs j
		LEFT JOIN companies c ON c.id = j.company_id
		WHERE j.title ILIKE $1 OR j.description ILIKE $1
		ORDER BY j.created_at DESC, j.id DESC`

	jobs, err := r.queryJobsWithCompany(ctx, query, containsPattern(req.Keyword))
	if err != nil {
		r.logger.Error("Error querying jobs", zap.String("keyword", req.Keyword), zap.Error(err))
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	return jobs, nil
}

// GetByID retrieves a specific job with its applications expanded.
func (r *JobRepo) GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		// No stored job can carry a malformed id.
		return nil, storage.ErrNotFound
	}

	query := `
		SELECT ` + jobColumns + `,` + applicationsJSON + `
		FROM jobs j
		WHERE j.id = $1`

	var (
		row  jobRow
		apps []applicationRow
	)
	dest := append(row.dest(), &apps)
	if err := r.db.QueryRow(ctx, query, id).Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		r.logger.Error("Error scanning job by ID", zap.String("job_id", req.ID), zap.Error(err))
		return nil, fmt.Errorf("failed to get job by ID %s: %w", req.ID, err)
	}

	job := row.toModel()
	job.Applications = make([]models.Ref[models.Application], 0, len(apps))
	for _, a := range apps {
		app := a.toModel()
		job.Applications = append(job.Applications, models.Expanded(app.ID, &app))
	}
	return &job, nil
}

// ListByCreator retrieves the jobs posted by a specific user.
func (r *JobRepo) ListByCreator(ctx context.Context, req *dto.ListAdminJobsRequest) ([]models.Job, error) {
	query := `
		SELECT ` + jobColumns + `,` + companyColumns + `
		FROM jobs j
		LEFT JOIN companies c ON c.id = j.company_id
		WHERE j.created_by = $1::uuid
		ORDER BY j.created_at DESC, j.id DESC`

	jobs, err := r.queryJobsWithCompany(ctx, query, req.UserID)
	if err != nil {
		r.logger.Error("Error querying jobs by creator", zap.String("user_id", req.UserID), zap.Error(err))
		return nil, fmt.Errorf("failed to query jobs by creator %s: %w", req.UserID, err)
	}
	return jobs, nil
}

// Ping checks the database is reachable.
func (r *JobRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func (r *JobRepo) queryJobsWithCompany(ctx context.Context, query string, args ...any) ([]models.Job, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []models.Job{} // Return empty slice, not nil
	for rows.Next() {
		var (
			row     jobRow
			company companyRow
		)
		dest := append(row.dest(), company.dest()...)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		job := row.toModel()
		if company.ID != nil {
			c := company.toModel()
			job.Company = models.Expanded(c.ID, &c)
		} else {
			job.Company = models.Unresolved[models.Company](row.CompanyID)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return jobs, nil
}

type jobRow struct {
	ID              string
	Title           string
	Description     string
	Requirements    []string
	Salary          float64
	Location        string
	JobType         string
	ExperienceLevel float64
	Position        float64
	CompanyID       string
	CreatedBy       string
	ApplicationIDs  []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// dest matches the column order of jobColumns.
func (j *jobRow) dest() []any {
	return []any{
		&j.ID, &j.Title, &j.Description, &j.Requirements, &j.Salary, &j.Location, &j.JobType,
		&j.ExperienceLevel, &j.Position, &j.CompanyID, &j.CreatedBy,
		&j.ApplicationIDs,
		&j.CreatedAt, &j.UpdatedAt,
	}
}

func (j *jobRow) toModel() models.Job {
	requirements := j.Requirements
	if requirements == nil {
		requirements = []string{}
	}
	apps := make([]models.Ref[models.Application], 0, len(j.ApplicationIDs))
	for _, id := range j.ApplicationIDs {
		apps = append(apps, models.RefTo[models.Application](id))
	}
	return models.Job{
		ID:              j.ID,
		Title:           j.Title,
		Description:     j.Description,
		Requirements:    requirements,
		Salary:          j.Salary,
		Location:        j.Location,
		JobType:         j.JobType,
		ExperienceLevel: j.ExperienceLevel,
		Position:        j.Position,
		Company:         models.RefTo[models.Company](j.CompanyID),
		CreatedBy:       j.CreatedBy,
		Applications:    apps,
		CreatedAt:       j.CreatedAt,
		UpdatedAt:       j.UpdatedAt,
	}
}

type companyRow struct {
	ID          *string
	Name        *string
	Description *string
	Website     *string
	Location    *string
	Logo        *string
	UserID      *string
	CreatedAt   *time.Time
	UpdatedAt   *time.Time
}

func (c *companyRow) dest() []any {
	return []any{&c.ID, &c.Name, &c.Description, &c.Website, &c.Location, &c.Logo, &c.UserID, &c.CreatedAt, &c.UpdatedAt}
}

func (c *companyRow) toModel() models.Company {
	return models.Company{
		ID:          deref(c.ID),
		Name:        deref(c.Name),
		Description: deref(c.Description),
		Website:     deref(c.Website),
		Location:    deref(c.Location),
		Logo:        deref(c.Logo),
		UserID:      deref(c.UserID),
		CreatedAt:   derefTime(c.CreatedAt),
		UpdatedAt:   derefTime(c.UpdatedAt),
	}
}

type applicationRow struct {
	ID          string    `json:"id"`
	JobID       string    `json:"job_id"`
	ApplicantID string    `json:"applicant_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (a applicationRow) toModel() models.Application {
	return models.Application{
		ID:          a.ID,
		JobID:       a.JobID,
		ApplicantID: a.ApplicantID,
		Status:      models.ApplicationStatus(a.Status),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
