package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Deltanet Helpdesk API",
        "description": "Ticket, hour-registration and activity tracking backend",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Catalog", "description": "Areas, services and lookup types"},
        {"name": "Activities", "description": "Per-person activity log"},
        {"name": "HourRecords", "description": "Hour registration"},
        {"name": "Projects", "description": "Ticket workflows"},
        {"name": "Auth", "description": "Access tokens"},
        {"name": "Observability", "description": "Probes and metrics"}
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Observability"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/ready": {
            "get": {
                "tags": ["Observability"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Database unreachable"}
                }
            }
        },
        "/metrics": {
            "get": {
                "tags": ["Observability"],
                "summary": "Prometheus metrics",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Authenticate and obtain an access token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/catalog/services": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List catalog services",
                "parameters": [
                    {"name": "area", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown area"}
                }
            }
        },
        "/areas": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List areas",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/user-types": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List user types",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/record-types": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List record types",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/activities": {
            "get": {
                "tags": ["Activities"],
                "summary": "List activity logs for a person, type and date",
                "parameters": [
                    {"name": "person", "in": "query", "required": true, "type": "integer"},
                    {"name": "activityType", "in": "query", "required": true, "type": "integer"},
                    {"name": "date", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Activities"],
                "summary": "Create an activity log",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateActivityRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "put": {
                "tags": ["Activities"],
                "summary": "Update an activity log",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateActivityRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/hour-records": {
            "get": {
                "tags": ["HourRecords"],
                "summary": "List hour records for a person, status and day range",
                "parameters": [
                    {"name": "person", "in": "query", "required": true, "type": "integer"},
                    {"name": "status", "in": "query", "required": true, "type": "integer"},
                    {"name": "dayStart", "in": "query", "required": true, "type": "string"},
                    {"name": "dayEnd", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["HourRecords"],
                "summary": "Register a batch of hour records",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateHourRecordsRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "put": {
                "tags": ["HourRecords"],
                "summary": "Update an hour record",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateHourRecordRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            },
            "delete": {
                "tags": ["HourRecords"],
                "summary": "Delete an hour record",
                "parameters": [
                    {"name": "id", "in": "query", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/hour-records/activate": {
            "post": {
                "tags": ["HourRecords"],
                "summary": "Re-activate hour records",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ActivateRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/projects": {
            "get": {
                "tags": ["Projects"],
                "summary": "List projects",
                "parameters": [
                    {"name": "person", "in": "query", "type": "integer"},
                    {"name": "status", "in": "query", "type": "integer"},
                    {"name": "description", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Projects"],
                "summary": "Create a project",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateProjectRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Duplicate code for owner"}
                }
            },
            "delete": {
                "tags": ["Projects"],
                "summary": "Delete a project and its hour records",
                "parameters": [
                    {"name": "id", "in": "query", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/projects/activate": {
            "post": {
                "tags": ["Projects"],
                "summary": "Re-activate a set of projects",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ActivateRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/projects/export": {
            "get": {
                "tags": ["Projects"],
                "summary": "Export the filtered project list as CSV or PDF",
                "parameters": [
                    {"name": "format", "in": "query", "required": true, "type": "string"},
                    {"name": "person", "in": "query", "type": "integer"},
                    {"name": "status", "in": "query", "type": "integer"},
                    {"name": "description", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "File"}}
            }
        },
        "/projects/{id}": {
            "put": {
                "tags": ["Projects"],
                "summary": "Update a project",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateProjectRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/projects/{id}/ticket": {
            "put": {
                "tags": ["Projects"],
                "summary": "Update a project as a ticket",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TicketUpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/projects/{id}/advance-status": {
            "post": {
                "tags": ["Projects"],
                "summary": "Advance the status one step in the cycle",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Stored status not numeric"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/projects/{id}/reassign-owner": {
            "post": {
                "tags": ["Projects"],
                "summary": "Reassign a project to another owner",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ReassignOwnerRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/projects/{id}/reassign-area": {
            "post": {
                "tags": ["Projects"],
                "summary": "Reassign a project to another area and service",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ReassignAreaRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/projects/{id}/reopen": {
            "post": {
                "tags": ["Projects"],
                "summary": "Reopen a ticket",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ReopenProjectRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        }
    },
    "definitions": {
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"type": "object"},
                "meta": {"type": "object"}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "CreateActivityRequest": {
            "type": "object",
            "required": ["personId", "activityTypeId", "date", "time", "createdBy"],
            "properties": {
                "personId": {"type": "integer"},
                "activityTypeId": {"type": "integer"},
                "date": {"type": "string"},
                "time": {"type": "string"},
                "detail": {"type": "string"},
                "createdBy": {"type": "string"}
            }
        },
        "UpdateActivityRequest": {
            "type": "object",
            "required": ["id", "date", "detail", "updatedBy"],
            "properties": {
                "id": {"type": "integer"},
                "date": {"type": "string"},
                "detail": {"type": "string"},
                "updatedBy": {"type": "string"}
            }
        },
        "CreateHourRecordsRequest": {
            "type": "object",
            "required": ["projectId", "personId", "day", "entries", "createdBy"],
            "properties": {
                "projectId": {"type": "integer"},
                "personId": {"type": "integer"},
                "day": {"type": "string"},
                "entries": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "activity": {"type": "string"},
                            "hours": {"type": "string"}
                        }
                    }
                },
                "createdBy": {"type": "string"}
            }
        },
        "UpdateHourRecordRequest": {
            "type": "object",
            "required": ["id", "activity", "hours", "updatedBy"],
            "properties": {
                "id": {"type": "integer"},
                "activity": {"type": "string"},
                "hours": {"type": "string"},
                "updatedBy": {"type": "string"}
            }
        },
        "ActivateRequest": {
            "type": "object",
            "required": ["ids", "updatedBy"],
            "properties": {
                "ids": {"type": "array", "items": {"type": "integer"}},
                "updatedBy": {"type": "string"}
            }
        },
        "CreateProjectRequest": {
            "type": "object",
            "required": ["personId", "code", "description", "createdBy"],
            "properties": {
                "personId": {"type": "integer"},
                "code": {"type": "string"},
                "description": {"type": "string"},
                "createdBy": {"type": "string"}
            }
        },
        "UpdateProjectRequest": {
            "type": "object",
            "required": ["personId", "description", "updatedBy"],
            "properties": {
                "personId": {"type": "integer"},
                "description": {"type": "string"},
                "updatedBy": {"type": "string"}
            }
        },
        "TicketUpdateRequest": {
            "type": "object",
            "required": ["description", "updatedBy"],
            "properties": {
                "status": {"type": "integer"},
                "state": {"type": "integer"},
                "description": {"type": "string"},
                "updatedBy": {"type": "string"}
            }
        },
        "ReassignOwnerRequest": {
            "type": "object",
            "required": ["personId", "updatedBy"],
            "properties": {
                "personId": {"type": "integer"},
                "updatedBy": {"type": "string"}
            }
        },
        "ReassignAreaRequest": {
            "type": "object",
            "required": ["areaId", "serviceId", "updatedBy"],
            "properties": {
                "areaId": {"type": "integer"},
                "serviceId": {"type": "integer"},
                "updatedBy": {"type": "string"}
            }
        },
        "ReopenProjectRequest": {
            "type": "object",
            "required": ["ticketId", "statusId", "description", "updatedBy"],
            "properties": {
                "ticketId": {"type": "integer"},
                "statusId": {"type": "integer"},
                "description": {"type": "string"},
                "updatedBy": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Deltanet Helpdesk API",
	Description:      "Ticket, hour-registration and activity tracking backend",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
