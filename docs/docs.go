// Package docs registers the OpenAPI description served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/job/post": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Adds a new job. The creator is taken from the auth context. Accepts JSON or form bodies.",
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["jobs"],
                "summary": "Create a new job posting",
                "parameters": [
                    {
                        "description": "Job details",
                        "name": "job",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.CreateJobRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "New job created successfully.", "schema": {"$ref": "#/definitions/dto.JobEnvelope"}},
                    "400": {"description": "Missing fields or invalid numbers", "schema": {"$ref": "#/definitions/dto.JobEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.JobEnvelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.JobEnvelope"}}
                }
            }
        },
        "/job/get": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Lists jobs whose title or description contains the keyword (case-insensitive), newest first, with the company expanded.",
                "produces": ["application/json"],
                "tags": ["jobs"],
                "summary": "Search jobs",
                "parameters": [
                    {"type": "string", "description": "Search keyword", "name": "keyword", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Matching jobs", "schema": {"$ref": "#/definitions/dto.JobEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.JobEnvelope"}},
                    "404": {"description": "No jobs found.", "schema": {"$ref": "#/definitions/dto.JobEnvelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.JobEnvelope"}}
                }
            }
        },
        "/job/get/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Retrieves a job with its applications expanded.",
                "produces": ["application/json"],
                "tags": ["jobs"],
                "summary": "Get a job by ID",
                "parameters": [
                    {"type": "string", "description": "Job ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "The job", "schema": {"$ref": "#/definitions/dto.JobEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.JobEnvelope"}},
                    "404": {"description": "Job not found.", "schema": {"$ref": "#/definitions/dto.JobEnvelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.JobEnvelope"}}
                }
            }
        },
        "/job/getadminjobs": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Lists jobs created by the authenticated user, newest first, with the company expanded.",
                "produces": ["application/json"],
                "tags": ["jobs"],
                "summary": "List the caller's jobs",
                "responses": {
                    "200": {"description": "The caller's jobs", "schema": {"$ref": "#/definitions/dto.JobEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/dto.JobEnvelope"}},
                    "404": {"description": "Jobs not found.", "schema": {"$ref": "#/definitions/dto.JobEnvelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.JobEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "dto.CreateJobRequest": {
            "type": "object",
            "required": ["title", "description", "requirements", "salary", "location", "jobType", "experience", "position", "companyId"],
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "requirements": {"type": "string", "description": "Comma-separated"},
                "salary": {"type": "string"},
                "location": {"type": "string"},
                "jobType": {"type": "string"},
                "experience": {"type": "string"},
                "position": {"type": "string"},
                "companyId": {"type": "string"}
            }
        },
        "dto.JobEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "job": {"$ref": "#/definitions/models.Job"},
                "jobs": {"type": "array", "items": {"$ref": "#/definitions/models.Job"}},
                "error": {"type": "string"}
            }
        },
        "models.Job": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "requirements": {"type": "array", "items": {"type": "string"}},
                "salary": {"type": "number"},
                "location": {"type": "string"},
                "jobType": {"type": "string"},
                "experienceLevel": {"type": "number"},
                "position": {"type": "number"},
                "company": {"description": "Company id, or the company object when expanded"},
                "created_by": {"type": "string"},
                "applications": {"type": "array", "items": {"description": "Application id, or the application object when expanded"}},
                "createdAt": {"type": "string", "format": "date-time"},
                "updatedAt": {"type": "string", "format": "date-time"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Job Board API",
	Description:      "Job postings for the job board: create, search, view and list the caller's own jobs.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
