package models

import (
	"encoding/json"
	"time"
)

// --- Application Status Enum ---
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// Company is the employer a job posting belongs to.
type Company struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Website     string    `json:"website,omitempty"`
	Location    string    `json:"location,omitempty"`
	Logo        string    `json:"logo,omitempty"`
	UserID      string    `json:"userId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Application is a candidate's application to a job.
type Application struct {
	ID          string            `json:"_id"`
	JobID       string            `json:"job"`
	ApplicantID string            `json:"applicant"`
	Status      ApplicationStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// Ref is a stored reference to another entity. It always carries the
// referenced ID; Value is set only when the store expanded the reference.
// A reference the store tried to expand but found no entity for is
// unresolved and renders as null.
type Ref[T any] struct {
	ID         string
	Value      *T
	unresolved bool
}

// RefTo returns an unexpanded reference.
func RefTo[T any](id string) Ref[T] {
	return Ref[T]{ID: id}
}

// Expanded returns a reference carrying the referenced entity.
func Expanded[T any](id string, value *T) Ref[T] {
	return Ref[T]{ID: id, Value: value}
}

// Unresolved returns a reference whose entity no longer exists.
func Unresolved[T any](id string) Ref[T] {
	return Ref[T]{ID: id, unresolved: true}
}

// IsExpanded reports whether the referenced entity was loaded.
func (r Ref[T]) IsExpanded() bool {
	return r.Value != nil
}

// IsUnresolved reports whether expansion found no entity for the ID.
func (r Ref[T]) IsUnresolved() bool {
	return r.unresolved
}

// MarshalJSON emits the entity when expanded, null when unresolved and the
// bare ID otherwise.
func (r Ref[T]) MarshalJSON() ([]byte, error) {
	switch {
	case r.Value != nil:
		return json.Marshal(r.Value)
	case r.unresolved:
		return []byte("null"), nil
	}
	return json.Marshal(r.ID)
}

// Job represents a job posting.
type Job struct {
	ID              string             `json:"_id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	Requirements    []string           `json:"requirements"`
	Salary          float64            `json:"salary"`
	Location        string             `json:"location"`
	JobType         string             `json:"jobType"`
	ExperienceLevel float64            `json:"experienceLevel"`
	Position        float64            `json:"position"`
	Company         Ref[Company]       `json:"company"`
	CreatedBy       string             `json:"created_by"`
	Applications    []Ref[Application] `json:"applications"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}
