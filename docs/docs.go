// Package docs registers the Sporthub API description with swag.
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
        "/filters/schema": {
            "get": {
                "description": "JSON Schema and UI schema of the event filter form, localized.",
                "produces": ["application/json"],
                "tags": ["filters"],
                "summary": "Filter form schema",
                "parameters": [
                    {"type": "string", "description": "language, overrides Accept-Language", "name": "lang", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/services.FilterSchemaView"}}}
            }
        },
        "/filters/ui-schema": {
            "get": {
                "produces": ["application/json"],
                "tags": ["filters"],
                "summary": "Filter form widget hints",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/filters/options": {
            "get": {
                "produces": ["application/json"],
                "tags": ["filters"],
                "summary": "Option lists discovered from the event feed",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/events": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "List events matching the filter form",
                "parameters": [
                    {"type": "string", "description": "sport type", "name": "sportType", "in": "query"},
                    {"type": "string", "description": "1month, 3months, 6months or custom", "name": "period", "in": "query"},
                    {"type": "string", "description": "YYYY-MM-DD, custom period only", "name": "dateRange.start", "in": "query"},
                    {"type": "string", "description": "YYYY-MM-DD, custom period only", "name": "dateRange.end", "in": "query"},
                    {"type": "string", "description": "repeat the parameter, or one comma separated value", "name": "countries", "in": "query"},
                    {"type": "string", "description": "repeat the parameter, or one comma separated value", "name": "cities", "in": "query"},
                    {"type": "string", "description": "repeat the parameter, or one comma separated value", "name": "disciplines", "in": "query"},
                    {"type": "string", "description": "min,max", "name": "participantsRange", "in": "query"},
                    {"type": "string", "description": "male, female or mixed", "name": "gender", "in": "query"},
                    {"type": "string", "description": "age group", "name": "ageGroup", "in": "query"},
                    {"type": "string", "description": "regional, national or international", "name": "eventType", "in": "query"},
                    {"type": "string", "description": "draft, published, cancelled or completed", "name": "status", "in": "query"},
                    {"type": "integer", "description": "page size", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "offset", "name": "offset", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/services.EventList"}}}
            }
        },
        "/events/{eventID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Get an event",
                "parameters": [
                    {"type": "integer", "description": "event ID", "name": "eventID", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/branding/logo": {
            "get": {
                "produces": ["text/html"],
                "tags": ["branding"],
                "summary": "Decorative logo markup",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/filters/refresh": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Reload option lists",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}}
            }
        },
        "/admin/filters/publish": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Upload schema snapshots to object storage",
                "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}
            }
        }
    },
    "definitions": {
        "services.FilterSchemaView": {
            "type": "object",
            "properties": {
                "language": {"type": "string"},
                "schema": {"type": "object"},
                "ui_schema": {"type": "object"}
            }
        },
        "services.EventList": {
            "type": "object",
            "properties": {
                "events": {"type": "array", "items": {"type": "object"}},
                "limit": {"type": "integer"},
                "offset": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Sporthub API",
	Description:      "Event filter form descriptors and event listing.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
