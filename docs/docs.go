// Package docs registers the OpenAPI document served at /swagger.
// Regenerate with `swag init` after changing handler annotations.
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
        "/v1/contact": {
            "post": {
                "description": "Stores the submission when possible, emails the site owner and sends the submitter a confirmation",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contact"],
                "summary": "Submit the contact form",
                "parameters": [
                    {
                        "description": "Contact form fields",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/types.ContactRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.ContactResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Component health",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.HealthCheck"}}
                }
            }
        },
        "/health/liveness": {
            "get": {
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/health/readiness": {
            "get": {
                "description": "A degraded store still reports ready: submissions are relayed without it.",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.HealthCheck"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/types.HealthCheck"}}
                }
            }
        }
    },
    "definitions": {
        "types.ContactRequest": {
            "type": "object",
            "required": ["email", "firstName", "lastName", "message", "subject"],
            "properties": {
                "email": {"type": "string", "example": "ada@example.com"},
                "firstName": {"type": "string", "example": "Ada"},
                "lastName": {"type": "string", "example": "Lovelace"},
                "message": {"type": "string", "example": "Hi there"},
                "subject": {"type": "string", "example": "Hello"}
            }
        },
        "types.ContactResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Emails sent successfully"},
                "success": {"type": "boolean", "example": true}
            }
        },
        "types.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "All fields are required"}
            }
        },
        "types.HealthCheck": {
            "type": "object",
            "properties": {
                "components": {
                    "type": "object",
                    "additionalProperties": {"$ref": "#/definitions/types.HealthComponent"}
                },
                "status": {"type": "string"},
                "timestamp": {"type": "string"},
                "uptime": {"type": "string"},
                "version": {"type": "string"}
            }
        },
        "types.HealthComponent": {
            "type": "object",
            "properties": {
                "details": {"type": "string"},
                "status": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Portfolio Contact API",
	Description:      "Relays the portfolio contact form: stores each submission and sends the owner notification and submitter confirmation emails.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
