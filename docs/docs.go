// Package docs registers the OpenAPI document served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/addemp": {
            "post": {
                "description": "Inserts one employee row from the add form. Duplicate IDs are accepted.",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["text/html"],
                "tags": ["Employees"],
                "summary": "Add an employee",
                "parameters": [
                    {"type": "string", "description": "Employee ID", "name": "emp_id", "in": "formData", "required": true},
                    {"type": "string", "description": "First name", "name": "first_name", "in": "formData", "required": true},
                    {"type": "string", "description": "Last name", "name": "last_name", "in": "formData", "required": true},
                    {"type": "string", "description": "Primary skill", "name": "primary_skill", "in": "formData", "required": true},
                    {"type": "string", "description": "Location", "name": "location", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "Confirmation page", "schema": {"type": "string"}},
                    "400": {"description": "Missing form field", "schema": {"type": "string"}},
                    "503": {"description": "Database unavailable", "schema": {"type": "string"}}
                }
            }
        },
        "/fetchdata": {
            "post": {
                "description": "Returns the first employee matching emp_id. Unknown IDs render empty fields.",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["text/html"],
                "tags": ["Employees"],
                "summary": "Look up an employee",
                "parameters": [
                    {"type": "string", "description": "Employee ID", "name": "emp_id", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "Employee page", "schema": {"type": "string"}},
                    "400": {"description": "Missing form field", "schema": {"type": "string"}},
                    "503": {"description": "Database unavailable", "schema": {"type": "string"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Reports service health, including whether the database can be reached",
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "Health check endpoint",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/HealthResponse"}}
                }
            }
        },
        "/metrics": {
            "get": {
                "description": "Returns counters for database connects, liveness failures and schema initialization failures",
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "Get connection metrics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/MetricsResponse"}}
                }
            }
        }
    },
    "definitions": {
        "HealthResponse": {
            "type": "object",
            "properties": {
                "database": {"type": "string", "example": "up"},
                "service": {"type": "string", "example": "employee-directory"},
                "status": {"type": "string", "example": "ok"},
                "version": {"type": "string", "example": "1.0.0"}
            }
        },
        "MetricsResponse": {
            "type": "object",
            "properties": {
                "database": {
                    "type": "object",
                    "properties": {
                        "connected": {"type": "boolean"},
                        "connects": {"type": "integer"},
                        "connect_failures": {"type": "integer"},
                        "liveness_failures": {"type": "integer"},
                        "schema_failures": {"type": "integer"}
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Employee Directory API",
	Description:      "Form-based employee directory backed by a single MySQL table.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
