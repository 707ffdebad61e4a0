package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// getTestPool connects to the database named by TEST_DATABASE_URL, applies
// the schema and empties the job board tables. Tests are skipped when the
// variable is not set.
func getTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping Postgres integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err, "Failed to create test pool")
	t.Cleanup(pool.Close)

	require.NoError(t, pool.Ping(ctx), "Failed to ping test database")
	require.NoError(t, Migrate(ctx, pool))
	_, err = pool.Exec(ctx, `TRUNCATE applications, jobs, companies`)
	require.NoError(t, err, "Failed to clean test tables")
	return pool
}

// Helper function to create a company for tests
func createTestCompany(t *testing.T, ctx context.Context, pool *pgxpool.Pool, name string) string {
	t.Helper()
	id := uuid.New()
	_, err := pool.Exec(ctx, `INSERT INTO companies (id, name, website) VALUES ($1, $2, $3)`, id, name, "https://example.com")
	require.NoError(t, err, "Failed to create test company %s", name)
	return id.String()
}

// Helper function to create a job through the repository for tests
func createTestJob(t *testing.T, ctx context.Context, repo *JobRepo, companyID, creatorID, title, description string) *models.Job {
	t.Helper()
	job, err := repo.Create(ctx, &models.Job{
		Title:           title,
		Description:     description,
		Requirements:    []string{"Go", "SQL"},
		Salary:          120000,
		Location:        "Remote",
		JobType:         "Full-time",
		ExperienceLevel: 3,
		Position:        2,
		Company:         models.RefTo[models.Company](companyID),
		CreatedBy:       creatorID,
	})
	require.NoError(t, err, "Failed to create test job %s", title)
	require.NotNil(t, job)
	return job
}

func setCreatedAt(t *testing.T, ctx context.Context, pool *pgxpool.Pool, jobID string, at time.Time) {
	t.Helper()
	_, err := pool.Exec(ctx, `UPDATE jobs SET created_at = $1 WHERE id = $2::uuid`, at, jobID)
	require.NoError(t, err)
}

func jobTitles(jobs []models.Job) []string {
	titles := make([]string, 0, len(jobs))
	for _, j := range jobs {
		titles = append(titles, j.Title)
	}
	return titles
}

func TestJobRepoIntegration_CreateThenGetByIDWithApplications(t *testing.T) {
	pool := getTestPool(t)
	ctx := context.Background()
	repo := NewJobRepo(pool, zap.NewNop())
	companyID := createTestCompany(t, ctx, pool, "Acme")
	creatorID := uuid.NewString()

	created := createTestJob(t, ctx, repo, companyID, creatorID, "Go Developer", "Build APIs")

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Go Developer", created.Title)
	assert.Equal(t, []string{"Go", "SQL"}, created.Requirements)
	assert.Equal(t, 120000.0, created.Salary)
	assert.Equal(t, 3.0, created.ExperienceLevel)
	assert.Equal(t, 2.0, created.Position)
	assert.Equal(t, companyID, created.Company.ID)
	assert.False(t, created.Company.IsExpanded())
	assert.Equal(t, creatorID, created.CreatedBy)
	assert.Empty(t, created.Applications)
	assert.False(t, created.CreatedAt.IsZero())

	firstApp, secondApp := uuid.New(), uuid.New()
	_, err := pool.Exec(ctx, `
		INSERT INTO applications (id, job_id, applicant_id, status, created_at)
		VALUES ($1, $3::uuid, $4, 'pending', NOW() - INTERVAL '1 hour'),
		       ($2, $3::uuid, $5, 'accepted', NOW())`,
		firstApp, secondApp, created.ID, uuid.New(), uuid.New())
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, &dto.GetJobByIDRequest{ID: created.ID})

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, []string{"Go", "SQL"}, got.Requirements)
	assert.Equal(t, companyID, got.Company.ID)
	require.Len(t, got.Applications, 2)
	assert.Equal(t, firstApp.String(), got.Applications[0].ID)
	require.True(t, got.Applications[0].IsExpanded())
	assert.Equal(t, models.ApplicationStatusPending, got.Applications[0].Value.Status)
	assert.Equal(t, created.ID, got.Applications[0].Value.JobID)
	assert.False(t, got.Applications[0].Value.CreatedAt.IsZero())
	assert.Equal(t, models.ApplicationStatusAccepted, got.Applications[1].Value.Status)
}

func TestJobRepoIntegration_GetByIDUnknown(t *testing.T) {
	pool := getTestPool(t)
	repo := NewJobRepo(pool, zap.NewNop())

	_, err := repo.GetByID(context.Background(), &dto.GetJobByIDRequest{ID: uuid.NewString()})

	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestJobRepoIntegration_CreateUnknownCompany(t *testing.T) {
	pool := getTestPool(t)
	repo := NewJobRepo(pool, zap.NewNop())

	_, err := repo.Create(context.Background(), &models.Job{
		Title:     "Go Developer",
		Company:   models.RefTo[models.Company](uuid.NewString()),
		CreatedBy: uuid.NewString(),
	})

	assert.ErrorIs(t, err, storage.ErrConflict)
}

func TestJobRepoIntegration_ListKeywordNewestFirst(t *testing.T) {
	pool := getTestPool(t)
	ctx := context.Background()
	repo := NewJobRepo(pool, zap.NewNop())
	companyID := createTestCompany(t, ctx, pool, "Acme")
	creatorID := uuid.NewString()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	older := createTestJob(t, ctx, repo, companyID, creatorID, "Senior GOLANG Engineer", "Backend")
	newer := createTestJob(t, ctx, repo, companyID, creatorID, "Platform Engineer", "Mostly golang services")
	other := createTestJob(t, ctx, repo, companyID, creatorID, "Designer", "Figma and 100% pixels")
	setCreatedAt(t, ctx, pool, older.ID, base)
	setCreatedAt(t, ctx, pool, newer.ID, base.Add(time.Hour))
	setCreatedAt(t, ctx, pool, other.ID, base.Add(2*time.Hour))

	t.Run("keyword matches title or description case-insensitively", func(t *testing.T) {
		jobs, err := repo.List(ctx, &dto.ListJobsRequest{Keyword: "GoLang"})

		require.NoError(t, err)
		assert.Equal(t, []string{"Platform Engineer", "Senior GOLANG Engineer"}, jobTitles(jobs))
		require.True(t, jobs[0].Company.IsExpanded())
		assert.Equal(t, "Acme", jobs[0].Company.Value.Name)
		assert.Equal(t, "https://example.com", jobs[0].Company.Value.Website)
	})

	t.Run("empty keyword lists every job newest first", func(t *testing.T) {
		jobs, err := repo.List(ctx, &dto.ListJobsRequest{})

		require.NoError(t, err)
		assert.Equal(t, []string{"Designer", "Platform Engineer", "Senior GOLANG Engineer"}, jobTitles(jobs))
	})

	t.Run("wildcards are matched literally", func(t *testing.T) {
		jobs, err := repo.List(ctx, &dto.ListJobsRequest{Keyword: "100%"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Designer"}, jobTitles(jobs))

		jobs, err = repo.List(ctx, &dto.ListJobsRequest{Keyword: "_"})
		require.NoError(t, err)
		assert.Empty(t, jobs)
	})

	t.Run("no match returns an empty list", func(t *testing.T) {
		jobs, err := repo.List(ctx, &dto.ListJobsRequest{Keyword: "rust"})

		require.NoError(t, err)
		assert.NotNil(t, jobs)
		assert.Empty(t, jobs)
	})
}

func TestJobRepoIntegration_ListByCreator(t *testing.T) {
	pool := getTestPool(t)
	ctx := context.Background()
	repo := NewJobRepo(pool, zap.NewNop())
	companyID := createTestCompany(t, ctx, pool, "Acme")
	admin, someoneElse := uuid.NewString(), uuid.NewString()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	first := createTestJob(t, ctx, repo, companyID, admin, "First", "")
	second := createTestJob(t, ctx, repo, companyID, admin, "Second", "")
	foreign := createTestJob(t, ctx, repo, companyID, someoneElse, "Foreign", "")
	setCreatedAt(t, ctx, pool, first.ID, base)
	setCreatedAt(t, ctx, pool, second.ID, base.Add(time.Minute))
	setCreatedAt(t, ctx, pool, foreign.ID, base.Add(2*time.Minute))

	jobs, err := repo.ListByCreator(ctx, &dto.ListAdminJobsRequest{UserID: admin})

	require.NoError(t, err)
	assert.Equal(t, []string{"Second", "First"}, jobTitles(jobs))
	for _, j := range jobs {
		assert.Equal(t, admin, j.CreatedBy)
		assert.True(t, j.Company.IsExpanded())
	}

	none, err := repo.ListByCreator(ctx, &dto.ListAdminJobsRequest{UserID: uuid.NewString()})
	require.NoError(t, err)
	assert.Empty(t, none)
}
