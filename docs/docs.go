// Package docs holds the OpenAPI document served under /swagger. It follows
// the layout of `swag init -g cmd/server/main.go`; rerun that after changing
// handler annotations. BasePath is overridden by the router from app.api_prefix.
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
        "/projects/": {
            "get": {
                "security": [{"TokenAuth": []}],
                "description": "List non-deleted projects with filters, search and ordering",
                "produces": ["application/json"],
                "tags": ["project"],
                "summary": "List projects",
                "parameters": [
                    {"enum": ["point", "line", "polygon"], "type": "string", "description": "Geometry type", "name": "geometry_type", "in": "query"},
                    {"type": "boolean", "description": "Active flag", "name": "is_active", "in": "query"},
                    {"type": "integer", "description": "Creator user id", "name": "created_by", "in": "query"},
                    {"type": "string", "description": "Search name, description and mobile_id", "name": "search", "in": "query"},
                    {"type": "string", "description": "created_at, updated_at or name, prefix - for descending", "name": "ordering", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/serializer.Response"}, {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/serializer.ProjectListItem"}}}}]}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/serializer.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/serializer.Response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/serializer.Response"}}
                }
            }
        },
        "/projects/statistics/": {
            "get": {
                "security": [{"TokenAuth": []}],
                "description": "Totals grouped by geometry type and active flag, honouring the list filters",
                "produces": ["application/json"],
                "tags": ["project"],
                "summary": "Project statistics",
                "parameters": [
                    {"enum": ["point", "line", "polygon"], "type": "string", "description": "Geometry type", "name": "geometry_type", "in": "query"},
                    {"type": "boolean", "description": "Active flag", "name": "is_active", "in": "query"},
                    {"type": "integer", "description": "Creator user id", "name": "created_by", "in": "query"},
                    {"type": "string", "description": "Search name, description and mobile_id", "name": "search", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/serializer.Response"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/service.ProjectStatisticsOutput"}}}]}}
                }
            }
        },
        "/projects/{id}/": {
            "get": {
                "security": [{"TokenAuth": []}],
                "produces": ["application/json"],
                "tags": ["project"],
                "summary": "Get project",
                "parameters": [{"type": "integer", "description": "Project ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/serializer.Response"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/serializer.ProjectDetail"}}}]}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/serializer.Response"}}
                }
            }
        },
        "/projects/{id}/geodata/": {
            "get": {
                "security": [{"TokenAuth": []}],
                "produces": ["application/json"],
                "tags": ["project"],
                "summary": "List a project's GeoData",
                "parameters": [{"type": "integer", "description": "Project ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/serializer.Response"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/handler.ProjectGeoDataResp"}}}]}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/serializer.Response"}}
                }
            }
        },
        "/geodata/": {
            "get": {
                "security": [{"TokenAuth": []}],
                "description": "List non-deleted GeoData of non-deleted projects",
                "produces": ["application/json"],
                "tags": ["geodata"],
                "summary": "List GeoData",
                "parameters": [
                    {"type": "string", "description": "Project mobile_id", "name": "project", "in": "query"},
                    {"type": "integer", "description": "Collector user id", "name": "collected_by", "in": "query"},
                    {"type": "string", "description": "Exact device timestamp (RFC 3339)", "name": "created_at", "in": "query"},
                    {"type": "string", "description": "Search mobile_id and project name", "name": "search", "in": "query"},
                    {"type": "string", "description": "created_at or updated_at, prefix - for descending", "name": "ordering", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/serializer.Response"}, {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/serializer.GeoDataListItem"}}}}]}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/serializer.Response"}}
                }
            }
        },
        "/geodata/statistics/": {
            "get": {
                "security": [{"TokenAuth": []}],
                "produces": ["application/json"],
                "tags": ["geodata"],
                "summary": "GeoData statistics",
                "parameters": [
                    {"type": "string", "description": "Project mobile_id", "name": "project", "in": "query"},
                    {"type": "integer", "description": "Collector user id", "name": "collected_by", "in": "query"},
                    {"type": "string", "description": "Search mobile_id and project name", "name": "search", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/serializer.Response"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/service.GeoDataStatisticsOutput"}}}]}}
                }
            }
        },
        "/geodata/export/": {
            "get": {
                "security": [{"TokenAuth": []}],
                "description": "Placeholder: echoes the requested format without producing a file",
                "produces": ["application/json"],
                "tags": ["geodata"],
                "summary": "Export GeoData",
                "parameters": [{"type": "string", "description": "Export format, default csv", "name": "format", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/serializer.Response"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/service.ExportGeoDataOutput"}}}]}}
                }
            }
        },
        "/geodata/{id}/": {
            "get": {
                "security": [{"TokenAuth": []}],
                "produces": ["application/json"],
                "tags": ["geodata"],
                "summary": "Get GeoData",
                "parameters": [{"type": "integer", "description": "GeoData ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/serializer.Response"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/serializer.GeoDataDetail"}}}]}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/serializer.Response"}}
                }
            }
        },
        "/logs/": {
            "get": {
                "security": [{"TokenAuth": []}],
                "produces": ["application/json"],
                "tags": ["log"],
                "summary": "List admin logs",
                "parameters": [
                    {"type": "integer", "description": "Actor user id", "name": "user", "in": "query"},
                    {"enum": ["view", "export", "filter", "search"], "type": "string", "description": "Action", "name": "action", "in": "query"},
                    {"type": "string", "description": "Resource name", "name": "resource", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/serializer.Response"}, {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/serializer.AdminLog"}}}}]}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/serializer.Response"}}
                }
            }
        },
        "/logs/{id}/": {
            "get": {
                "security": [{"TokenAuth": []}],
                "produces": ["application/json"],
                "tags": ["log"],
                "summary": "Get admin log",
                "parameters": [{"type": "integer", "description": "Admin log ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/serializer.Response"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/serializer.AdminLog"}}}]}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/serializer.Response"}}
                }
            }
        }
    },
    "definitions": {
        "serializer.Response": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "data": {},
                "error": {"type": "string"},
                "msg": {"type": "string"}
            }
        },
        "serializer.User": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "username": {"type": "string"},
                "email": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"}
            }
        },
        "serializer.ProjectListItem": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "mobile_id": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "geometry_type": {"type": "string", "enum": ["point", "line", "polygon"]},
                "created_by_username": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"},
                "is_active": {"type": "boolean"},
                "geodata_count": {"type": "integer"}
            }
        },
        "serializer.ProjectDetail": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "mobile_id": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "geometry_type": {"type": "string"},
                "form_fields": {},
                "created_by": {"$ref": "#/definitions/serializer.User"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"},
                "is_active": {"type": "boolean"},
                "is_deleted": {"type": "boolean"}
            }
        },
        "serializer.GeoDataListItem": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "mobile_id": {"type": "string"},
                "project": {"type": "string"},
                "project_name": {"type": "string"},
                "collected_by_username": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "serializer.GeoDataDetail": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "mobile_id": {"type": "string"},
                "project": {"$ref": "#/definitions/serializer.ProjectListItem"},
                "form_data": {},
                "points": {},
                "collected_by": {"$ref": "#/definitions/serializer.User"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"},
                "synced_at": {"type": "string"},
                "is_deleted": {"type": "boolean"}
            }
        },
        "serializer.AdminLog": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "user": {"type": "integer"},
                "user_username": {"type": "string"},
                "action": {"type": "string", "enum": ["view", "export", "filter", "search"]},
                "resource": {"type": "string"},
                "resource_id": {"type": "string"},
                "details": {},
                "ip_address": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "handler.ProjectGeoDataResp": {
            "type": "object",
            "properties": {
                "project": {"$ref": "#/definitions/serializer.ProjectListItem"},
                "geodata": {"type": "array", "items": {"$ref": "#/definitions/serializer.GeoDataListItem"}},
                "total": {"type": "integer"}
            }
        },
        "service.ProjectStatisticsOutput": {
            "type": "object",
            "properties": {
                "total_projects": {"type": "integer"},
                "by_geometry_type": {"type": "array", "items": {"type": "object", "properties": {"geometry_type": {"type": "string"}, "count": {"type": "integer"}}}},
                "by_active_status": {"type": "array", "items": {"type": "object", "properties": {"is_active": {"type": "boolean"}, "count": {"type": "integer"}}}}
            }
        },
        "service.GeoDataStatisticsOutput": {
            "type": "object",
            "properties": {
                "total_geodata": {"type": "integer"},
                "top_10_projects": {"type": "array", "items": {"type": "object", "properties": {"project_mobile_id": {"type": "string"}, "project_name": {"type": "string"}, "project__name": {"type": "string"}, "count": {"type": "integer"}}}}
            }
        },
        "service.ExportGeoDataOutput": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "format": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "TokenAuth": {
            "description": "\"Token <key>\" or \"Bearer <key>\"",
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
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "GeoForm Admin API",
	Description:      "Read-only administration API over GeoForm projects and field data, with an audit trail.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
