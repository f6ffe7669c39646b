// Package docs holds the generated swagger spec. Regenerate with:
//
//	swag init -g cmd/api/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/export/entries": {
            "post": {
                "tags": ["Export"],
                "summary": "Fetch time entries",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/export/file": {
            "post": {
                "tags": ["Export"],
                "summary": "Export the fetched entries",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/export/workspaces": {
            "get": {
                "tags": ["Export"],
                "summary": "List workspaces",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/key": {
            "get": {
                "tags": ["APIKey"],
                "summary": "Get the saved API key",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["APIKey"],
                "summary": "Save the API key",
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["APIKey"],
                "summary": "Delete the API key",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Clockify Exporter API",
	Description:      "Fetches Clockify time entries and exports them as an XLSX workbook.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
