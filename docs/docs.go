// Package docs holds the OpenAPI document served at /swagger and /docs.
// Regenerate with: swag init -g cmd/api/main.go -o docs
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
        "/api/v1/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Sign in with the operator password",
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}
                ],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/v1/auth/google": {
            "get": {"tags": ["Auth"], "summary": "Start Google sign-in", "responses": {"302": {"description": "Found"}}}
        },
        "/api/v1/auth/google/callback": {
            "get": {
                "tags": ["Auth"],
                "summary": "Finish Google sign-in",
                "parameters": [
                    {"type": "string", "name": "state", "in": "query", "required": true},
                    {"type": "string", "name": "code", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}
            }
        },
        "/api/v1/auth/me": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Auth"], "summary": "Current operator", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/events": {
            "post": {
                "tags": ["Tracking"],
                "summary": "Record a client-side funnel event",
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/dto.TrackEventRequest"}}
                ],
                "responses": {"202": {"description": "Accepted"}}
            }
        },
        "/api/v1/admin/categories": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Categories"], "summary": "List categories", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Categories"], "summary": "Create a category", "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}
        },
        "/api/v1/admin/blogs": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Blogs"], "summary": "List blogs", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Blogs"], "summary": "Create a blog", "responses": {"201": {"description": "Created"}}}
        },
        "/api/v1/admin/blogs/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["Blogs"],
                "summary": "Delete a blog and everything under it",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/v1/admin/wizard": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["Wizard"], "summary": "Start a wizard draft", "responses": {"201": {"description": "Created"}}}
        },
        "/api/v1/admin/wizard/{id}/save": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Wizard"],
                "summary": "Save the draft as a content unit",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"201": {"description": "Created"}, "422": {"description": "Unprocessable Entity"}}
            }
        },
        "/api/v1/admin/analytics/summary": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Analytics"], "summary": "Analytics summary", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/admin/exports/{entity}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Analytics"],
                "summary": "Download an entity as CSV",
                "produces": ["text/csv"],
                "parameters": [{"type": "string", "name": "entity", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/health/detailed": {
            "get": {"tags": ["Health"], "summary": "Get detailed system health", "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}
        }
    },
    "definitions": {
        "dto.LoginRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {"password": {"type": "string"}, "username": {"type": "string"}}
        },
        "dto.TrackEventRequest": {
            "type": "object",
            "required": ["eventType"],
            "properties": {
                "eventType": {"type": "string", "enum": ["page_view", "blog_click", "related_search_click", "visit_now_click"]},
                "blogId": {"type": "string"},
                "relatedSearchId": {"type": "string"},
                "webResultId": {"type": "string"}
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
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Search Funnel API",
	Description:      "Content funnel: blogs, related searches, sponsored results, email capture and the admin console.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
