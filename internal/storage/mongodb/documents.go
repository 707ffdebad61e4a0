package mongodb

import (
	"time"

	"jobboard-api/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names as created by the job board's other services.
const (
	jobsCollection         = "jobs"
	companiesCollection    = "companies"
	applicationsCollection = "applications"
)

type companyDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	Website     string             `bson:"website,omitempty"`
	Location    string             `bson:"location,omitempty"`
	Logo        string             `bson:"logo,omitempty"`
	UserID      primitive.ObjectID `bson:"userId,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

type applicationDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Job       primitive.ObjectID `bson:"job"`
	Applicant primitive.ObjectID `bson:"applicant"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

type jobDocument struct {
	ID              primitive.ObjectID   `bson:"_id"`
	Title           string               `bson:"title"`
	Description     string               `bson:"description"`
	Requirements    []string             `bson:"requirements"`
	Salary          float64              `bson:"salary"`
	Location        string               `bson:"location"`
	JobType         string               `bson:"jobType"`
	ExperienceLevel float64              `bson:"experienceLevel"`
	Position        float64              `bson:"position"`
	Company         primitive.ObjectID   `bson:"company"`
	CreatedBy       primitive.ObjectID   `bson:"created_by"`
	Applications    []primitive.ObjectID `bson:"applications"`
	CreatedAt       time.Time            `bson:"createdAt"`
	UpdatedAt       time.Time            `bson:"updatedAt"`

	// Filled by $lookup stages, never written.
	CompanyDocs     []companyDocument     `bson:"companyDocs,omitempty"`
	ApplicationDocs []applicationDocument `bson:"applicationDocs,omitempty"`
}

func hexOrEmpty(id primitive.ObjectID) string {
	if id.IsZero() {
		return ""
	}
	return id.Hex()
}

func (d *companyDocument) toModel() models.Company {
	return models.Company{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Website:     d.Website,
		Location:    d.Location,
		Logo:        d.Logo,
		UserID:      hexOrEmpty(d.UserID),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (d *applicationDocument) toModel() models.Application {
	return models.Application{
		ID:          d.ID.Hex(),
		JobID:       d.Job.Hex(),
		ApplicantID: d.Applicant.Hex(),
		Status:      models.ApplicationStatus(d.Status),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// toModel maps the stored job with references unexpanded.
func (d *jobDocument) toModel() models.Job {
	requirements := d.Requirements
	if requirements == nil {
		requirements = []string{}
	}
	apps := make([]models.Ref[models.Application], 0, len(d.Applications))
	for _, id := range d.Applications {
		apps = append(apps, models.RefTo[models.Application](id.Hex()))
	}
	return models.Job{
		ID:              d.ID.Hex(),
		Title:           d.Title,
		Description:     d.Description,
		Requirements:    requirements,
		Salary:          d.Salary,
		Location:        d.Location,
		JobType:         d.JobType,
		ExperienceLevel: d.ExperienceLevel,
		Position:        d.Position,
		Company:         models.RefTo[models.Company](hexOrEmpty(d.Company)),
		CreatedBy:       hexOrEmpty(d.CreatedBy),
		Applications:    apps,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// toModelWithCompany maps the job and expands the company from the $lookup
// result. A dangling company reference is unresolved.
func (d *jobDocument) toModelWithCompany() models.Job {
	job := d.toModel()
	if len(d.CompanyDocs) == 0 {
		job.Company = models.Unresolved[models.Company](job.Company.ID)
		return job
	}
	company := d.CompanyDocs[0].toModel()
	job.Company = models.Expanded(company.ID, &company)
	return job
}

// toModelWithApplications maps the job and expands its applications in the
// order the job references them. References without a matching document are
// dropped.
func (d *jobDocument) toModelWithApplications() models.Job {
	job := d.toModel()
	byID := make(map[primitive.ObjectID]*applicationDocument, len(d.ApplicationDocs))
	for i := range d.ApplicationDocs {
		byID[d.ApplicationDocs[i].ID] = &d.ApplicationDocs[i]
	}
	apps := make([]models.Ref[models.Application], 0, len(d.Applications))
	for _, id := range d.Applications {
		doc, ok := byID[id]
		if !ok {
			continue
		}
		app := doc.toModel()
		apps = append(apps, models.Expanded(app.ID, &app))
	}
	job.Applications = apps
	return job
}
