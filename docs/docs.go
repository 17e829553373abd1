// Package docs holds the OpenAPI document served by Swagger UI.
// Maintained by hand next to the swag annotations in api/http/handlers.
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
        "/candidates": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["candidates"],
                "summary": "Список кандидатов",
                "parameters": [
                    {"type": "integer", "description": "1..200, по умолчанию 50", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "смещение", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/presenter.DataResponse-candidate_Record"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["candidates"],
                "summary": "Загрузить резюме",
                "parameters": [
                    {"type": "file", "description": "Файл резюме (PDF/DOCX/TXT); поле resume тоже принимается", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/candidate.Record"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/candidates/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["candidates"],
                "summary": "Карточка кандидата",
                "parameters": [
                    {"type": "string", "description": "ID кандидата (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/candidate.Record"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["candidates"],
                "summary": "Удалить кандидата",
                "parameters": [
                    {"type": "string", "description": "ID кандидата (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/candidates/{id}/file": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/octet-stream"],
                "tags": ["candidates"],
                "summary": "Скачать файл резюме",
                "parameters": [
                    {"type": "string", "description": "ID кандидата (UUID)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/screening/filter": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["screening"],
                "summary": "Точный отбор по навыкам",
                "parameters": [
                    {"description": "Текст вакансии", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.filterRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/presenter.DataResponse-screening_Match"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        },
        "/screening/rank": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["screening"],
                "summary": "Ранжирование кандидатов",
                "parameters": [
                    {"description": "Текст вакансии и порог", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.rankRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/presenter.DataResponse-screening_RankedMatch"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "candidate.Record": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "email": {"type": "string"},
                "filename": {"type": "string"},
                "id": {"type": "string"},
                "mimeType": {"type": "string"},
                "name": {"type": "string"},
                "phone": {"type": "string"},
                "sizeBytes": {"type": "integer"},
                "skills": {"type": "array", "items": {"type": "string"}},
                "storageUri": {"type": "string"}
            }
        },
        "handlers.filterRequest": {
            "type": "object",
            "properties": {
                "query": {"type": "string"}
            }
        },
        "handlers.rankRequest": {
            "type": "object",
            "properties": {
                "query": {"type": "string"},
                "threshold": {"type": "number"}
            }
        },
        "presenter.DataResponse-candidate_Record": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/candidate.Record"}},
                "limit": {"type": "integer"},
                "offset": {"type": "integer"}
            }
        },
        "presenter.DataResponse-screening_Match": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/screening.Match"}}
            }
        },
        "presenter.DataResponse-screening_RankedMatch": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/screening.RankedMatch"}}
            }
        },
        "presenter.ErrorResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "screening.Match": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "phone": {"type": "string"},
                "skills": {"type": "array", "items": {"type": "string"}}
            }
        },
        "screening.RankedMatch": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "phone": {"type": "string"},
                "similarity": {"type": "number"},
                "skills": {"type": "array", "items": {"type": "string"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Токен авторизации. Поддерживаются форматы: \"Bearer <JWT>\" или \"<JWT>\".",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "screening API",
	Description:      "Отбор кандидатов: загрузка резюме, точный отбор по навыкам и ранжирование по близости к тексту вакансии.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
