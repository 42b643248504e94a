// Package docs registers the OpenAPI description of the JSON API with swag
// so http-swagger can serve it under /docs/.
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
        "/api/v1/projects": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Projects"],
                "summary": "List projects",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Projects"],
                "summary": "Upload a project",
                "parameters": [
                    {"description": "Project", "name": "project", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.ProjectInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/utils.Payload"}},
                    "400": {"description": "Validation errors", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            }
        },
        "/api/v1/projects/top": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Projects"],
                "summary": "Top rated projects",
                "parameters": [
                    {"type": "integer", "default": 3, "description": "Maximum number of projects", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Payload"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            }
        },
        "/api/v1/projects/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Projects"],
                "summary": "Get a project",
                "parameters": [
                    {"type": "string", "description": "Project ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Payload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Projects"],
                "summary": "Edit a project",
                "parameters": [
                    {"type": "string", "description": "Project ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "project", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.projectPatchRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Payload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Projects"],
                "summary": "Delete a project",
                "parameters": [
                    {"type": "string", "description": "Project ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Payload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            }
        },
        "/api/v1/projects/{id}/feedback": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Projects"],
                "summary": "Rate a project",
                "parameters": [
                    {"type": "string", "description": "Project ID", "name": "id", "in": "path", "required": true},
                    {"description": "Feedback", "name": "feedback", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.FeedbackInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/utils.Payload"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.Payload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            }
        },
        "/api/v1/auth/sign-up": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Create an account",
                "parameters": [
                    {"description": "New account", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.signUpRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/utils.Payload"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.Payload"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            }
        },
        "/api/v1/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Log in",
                "parameters": [
                    {"description": "Credentials", "name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Payload"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            }
        },
        "/api/v1/auth/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Log out",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            }
        },
        "/api/v1/auth/me": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Current session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Payload"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            }
        },
        "/api/v1/auth/google/login": {
            "get": {
                "tags": ["Auth"],
                "summary": "Start Google sign-in",
                "parameters": [
                    {"type": "string", "default": "login", "description": "login or signup", "name": "mode", "in": "query"},
                    {"type": "string", "description": "Local path to open afterwards", "name": "return", "in": "query"}
                ],
                "responses": {
                    "307": {"description": "Temporary Redirect"},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            }
        },
        "/api/v1/auth/google/callback": {
            "get": {
                "tags": ["Auth"],
                "summary": "Finish Google sign-in",
                "parameters": [
                    {"type": "string", "description": "OAuth state", "name": "state", "in": "query", "required": true},
                    {"type": "string", "description": "Authorization code", "name": "code", "in": "query", "required": true}
                ],
                "responses": {
                    "303": {"description": "See Other"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            }
        },
        "/api/v1/images/presign": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Images"],
                "summary": "Presign an image upload",
                "parameters": [
                    {"description": "Image file name", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.presignRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Payload"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.Payload"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/utils.Payload"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.loginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handlers.presignRequest": {
            "type": "object",
            "properties": {
                "filename": {"type": "string"}
            }
        },
        "handlers.projectPatchRequest": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "description": {"type": "string"},
                "image": {"type": "string"},
                "team": {"type": "string"},
                "technologies": {"type": "array", "items": {"type": "string"}},
                "title": {"type": "string"}
            }
        },
        "handlers.signUpRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "models.FeedbackInput": {
            "type": "object",
            "properties": {
                "comment": {"type": "string"},
                "name": {"type": "string"},
                "rating": {"type": "integer"}
            }
        },
        "models.ProjectInput": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "description": {"type": "string"},
                "image": {"type": "string"},
                "team": {"type": "string"},
                "technologies": {"type": "array", "items": {"type": "string"}},
                "title": {"type": "string"}
            }
        },
        "utils.Payload": {
            "type": "object",
            "properties": {
                "data": {},
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "RoboShow API",
	Description:      "Student robotics showcase: projects, ratings and accounts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
