// internal/storage/mongodb/jobs.go
package mongodb

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"jobboard-api/internal/models"
	"jobboard-api/internal/storage"
	"jobboard-api/internal/transport/dto"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// JobRepo implements the storage.JobRepository interface using MongoDB.
type JobRepo struct {
	db     *mongo.Database
	jobs   *mongo.Collection
	logger *zap.Logger
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *mongo.Database, logger *zap.Logger) *JobRepo {
	return &JobRepo{
		db:     db,
		jobs:   db.Collection(jobsCollection),
		logger: logger.Named("mongo.jobs"),
	}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

// EnsureIndexes creates the indexes backing the list queries.
func (r *JobRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.jobs.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "created_by", Value: 1}, {Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create job indexes: %w", err)
	}
	return nil
}

// Create saves a new job posting.
func (r *JobRepo) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	companyID, err := primitive.ObjectIDFromHex(job.Company.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: invalid company id %q: %w", job.Company.ID, err)
	}
	creatorID, err := primitive.ObjectIDFromHex(job.CreatedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: invalid creator id %q: %w", job.CreatedBy, err)
	}

	now := time.Now().UTC().Truncate(time.Millisecond) // BSON dates are millisecond precision
	doc := jobDocument{
		ID:              primitive.NewObjectID(),
		Title:           job.Title,
		Description:     job.Description,
		Requirements:    job.Requirements,
		Salary:          job.Salary,
		Location:        job.Location,
		JobType:         job.JobType,
		ExperienceLevel: job.ExperienceLevel,
		Position:        job.Position,
		Company:         companyID,
		CreatedBy:       creatorID,
		Applications:    []primitive.ObjectID{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if _, err := r.jobs.InsertOne(ctx, doc); err != nil {
		r.logger.Error("Error inserting job", zap.Error(err))
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	r.logger.Debug("Job created", zap.String("job_id", doc.ID.Hex()))
	created := doc.toModel()
	return &created, nil
}

// List retrieves jobs matching the keyword with their company expanded.
func (r *JobRepo) List(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error) {
	docs, err := r.aggregate(ctx, listPipeline(keywordFilter(req.Keyword)))
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}

	jobs := make([]models.Job, 0, len(docs))
	for i := range docs {
		jobs = append(jobs, docs[i].toModelWithCompany())
	}
	return jobs, nil
}

// GetByID retrieves a specific job with its applications expanded.
func (r *JobRepo) GetByID(ctx context.Context, req *dto.GetJobByIDRequest) (*models.Job, error) {
	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		// No stored job can carry a malformed id.
		return nil, storage.ErrNotFound
	}

	docs, err := r.aggregate(ctx, jobWithApplicationsPipeline(id))
	if err != nil {
		return nil, fmt.Errorf("failed to get job by ID %s: %w", req.ID, err)
	}
	if len(docs) == 0 {
		return nil, storage.ErrNotFound
	}

	job := docs[0].toModelWithApplications()
	return &job, nil
}

// ListByCreator retrieves the jobs posted by a specific user.
func (r *JobRepo) ListByCreator(ctx context.Context, req *dto.ListAdminJobsRequest) ([]models.Job, error) {
	creatorID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs by creator: invalid user id %q: %w", req.UserID, err)
	}

	docs, err := r.aggregate(ctx, listPipeline(bson.M{"created_by": creatorID}))
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs by creator %s: %w", req.UserID, err)
	}

	jobs := make([]models.Job, 0, len(docs))
	for i := range docs {
		jobs = append(jobs, docs[i].toModelWithCompany())
	}
	return jobs, nil
}

// Ping checks the primary is reachable.
func (r *JobRepo) Ping(ctx context.Context) error {
	return r.db.Client().Ping(ctx, readpref.Primary())
}

func (r *JobRepo) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]jobDocument, error) {
	cur, err := r.jobs.Aggregate(ctx, pipeline, options.Aggregate())
	if err != nil {
		r.logger.Error("Error running job aggregation", zap.Error(err))
		return nil, err
	}
	defer cur.Close(ctx)

	docs := make([]jobDocument, 0)
	if err := cur.All(ctx, &docs); err != nil {
		r.logger.Error("Error decoding job aggregation", zap.Error(err))
		return nil, err
	}
	return docs, nil
}

// keywordFilter matches jobs whose title or description contains keyword,
// case-insensitively. The keyword is matched literally; an empty keyword
// matches every job.
func keywordFilter(keyword string) bson.M {
	rx := primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"}
	return bson.M{
		"$or": bson.A{
			bson.M{"title": rx},
			bson.M{"description": rx},
		},
	}
}

// listPipeline filters, sorts newest first and expands the company.
func listPipeline(match bson.M) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: companiesCollection},
			{Key: "localField", Value: "company"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "companyDocs"},
		}}},
	}
}

// jobWithApplicationsPipeline selects one job and expands its applications.
func jobWithApplicationsPipeline(id primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
		{{Key: "$limit", Value: 1}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: applicationsCollection},
			{Key: "localField", Value: "applications"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "applicationDocs"},
		}}},
	}
}
