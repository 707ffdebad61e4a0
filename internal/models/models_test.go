package models_test

import (
	"encoding/json"
	"testing"

	"jobboard-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRef_MarshalsIDWhenNotExpanded(t *testing.T) {
	ref := models.RefTo[models.Company]("company-1")

	data, err := json.Marshal(ref)

	require.NoError(t, err)
	assert.JSONEq(t, `"company-1"`, string(data))
}

func TestRef_MarshalsValueWhenExpanded(t *testing.T) {
	company := models.Company{ID: "company-1", Name: "Acme"}
	ref := models.Expanded(company.ID, &company)

	data, err := json.Marshal(ref)

	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "company-1", got["_id"])
	assert.Equal(t, "Acme", got["name"])
}

func TestRef_MarshalsNullWhenUnresolved(t *testing.T) {
	ref := models.Unresolved[models.Company]("company-1")

	data, err := json.Marshal(ref)

	require.NoError(t, err)
	assert.JSONEq(t, `null`, string(data))
	assert.True(t, ref.IsUnresolved())
	assert.False(t, ref.IsExpanded())
	assert.Equal(t, "company-1", ref.ID)
}

func TestJob_JSONShape(t *testing.T) {
	app := models.Application{ID: "app-1", Status: models.ApplicationStatusPending}
	job := models.Job{
		ID:           "job-1",
		Requirements: []string{"Go", ""},
		Company:      models.RefTo[models.Company]("company-1"),
		CreatedBy:    "user-1",
		Applications: []models.Ref[models.Application]{models.Expanded(app.ID, &app), models.RefTo[models.Application]("app-2")},
	}

	data, err := json.Marshal(job)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "job-1", got["_id"])
	assert.Equal(t, "company-1", got["company"])
	assert.Equal(t, "user-1", got["created_by"])
	assert.Equal(t, []any{"Go", ""}, got["requirements"])
	apps := got["applications"].([]any)
	require.Len(t, apps, 2)
	assert.Equal(t, "pending", apps[0].(map[string]any)["status"])
	assert.Equal(t, "app-2", apps[1])
	for _, key := range []string{"title", "description", "salary", "location", "jobType", "experienceLevel", "position", "createdAt", "updatedAt"} {
		assert.Contains(t, got, key)
	}
}
