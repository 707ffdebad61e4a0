// internal/transport/dto/job_dto.go
package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"jobboard-api/internal/models"
)

// Text is a form value sent by the job board front end. JSON clients may send
// strings or numbers; zero, false and null decode to the empty string so that
// they fail the required check the same way a missing field does.
type Text string

// UnmarshalJSON accepts strings, numbers, booleans and null.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*t = ""
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case 'n':
		*t = ""
	case 't':
		*t = "true"
	case 'f':
		*t = ""
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("unsupported value %s: %w", data, err)
		}
		if f, err := n.Float64(); err == nil && f == 0 {
			*t = ""
			return nil
		}
		*t = Text(n.String())
	}
	return nil
}

// String returns the raw text.
func (t Text) String() string {
	return string(t)
}

// --- Job Request DTOs ---

// CreateJobRequest defines the structure for creating a new job posting.
// Every field arrives as text; numeric fields are converted after validation.
type CreateJobRequest struct {
	Title        Text `json:"title" form:"title" validate:"required"`
	Description  Text `json:"description" form:"description" validate:"required"`
	Requirements Text `json:"requirements" form:"requirements" validate:"required"` // Comma-separated
	Salary       Text `json:"salary" form:"salary" validate:"required"`
	Location     Text `json:"location" form:"location" validate:"required"`
	JobType      Text `json:"jobType" form:"jobType" validate:"required"`
	Experience   Text `json:"experience" form:"experience" validate:"required"`
	Position     Text `json:"position" form:"position" validate:"required"`
	CompanyID    Text `json:"companyId" form:"companyId" validate:"required"`

	UserID string `json:"-" form:"-"` // Set internally by handler from auth context
}

// ListJobsRequest defines parameters for searching all jobs.
type ListJobsRequest struct {
	Keyword string `form:"keyword"`
}

// GetJobByIDRequest defines the structure for getting a job by ID.
type GetJobByIDRequest struct {
	ID string `json:"-"`
}

// ListAdminJobsRequest defines parameters for listing the jobs a user created.
type ListAdminJobsRequest struct {
	UserID string `json:"-"` // Set internally by handler
}

// --- Response envelope ---

// MessageInternalError is returned with every 500 response.
const MessageInternalError = "An internal server error occurred."

// JobEnvelope is the response body of every job endpoint.
type JobEnvelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Job     *models.Job  `json:"job,omitempty"`
	Jobs    []models.Job `json:"jobs,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// JobCreated is the success envelope for a newly created job.
func JobCreated(job *models.Job, message string) JobEnvelope {
	return JobEnvelope{Success: true, Message: message, Job: job}
}

// JobFound is the success envelope for a single job.
func JobFound(job *models.Job) JobEnvelope {
	return JobEnvelope{Success: true, Job: job}
}

// JobsFound is the success envelope for a job list.
func JobsFound(jobs []models.Job) JobEnvelope {
	return JobEnvelope{Success: true, Jobs: jobs}
}

// Failure is the envelope for client errors (400, 401, 404).
func Failure(message string) JobEnvelope {
	return JobEnvelope{Success: false, Message: message}
}

// InternalFailure is the envelope for unexpected errors. The error text is
// exposed to the caller.
func InternalFailure(err error) JobEnvelope {
	return JobEnvelope{Success: false, Message: MessageInternalError, Error: err.Error()}
}
