package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Schedule Optimizer API",
        "description": "Scores class sections against student preferences and finds conflict-free schedule combinations",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Optimizer", "description": "Section scoring and schedule search"},
        {"name": "Catalog", "description": "Course catalog passthrough"},
        {"name": "Export", "description": "Timetable downloads"}
    ],
    "paths": {
        "/sections/analyze": {
            "post": {
                "tags": ["Optimizer"],
                "summary": "Score candidate sections against scheduling preferences",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AnalyzeSectionsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/sections/filter": {
            "post": {
                "tags": ["Optimizer"],
                "summary": "Filter sections by preferred meeting days",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FilterSectionsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedules/combinations": {
            "post": {
                "tags": ["Optimizer"],
                "summary": "Find conflict-free schedule combinations across courses",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CombinationsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedules/export": {
            "post": {
                "tags": ["Export"],
                "summary": "Download a schedule as CSV or PDF",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ExportScheduleRequest"}}
                ],
                "responses": {
                    "200": {"description": "Rendered timetable file"},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/semesters": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List available semesters",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "502": {"description": "Catalog unavailable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List courses for a semester",
                "parameters": [
                    {"name": "semester", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "502": {"description": "Catalog unavailable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/catalog/cache": {
            "delete": {
                "tags": ["Catalog"],
                "summary": "Drop cached catalog data",
                "responses": {
                    "204": {"description": "Cache cleared"}
                }
            }
        },
        "/sections": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List sections for a course",
                "parameters": [
                    {"name": "semester", "in": "query", "type": "string", "required": true},
                    {"name": "course", "in": "query", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "502": {"description": "Catalog unavailable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "Meeting": {
            "type": "object",
            "properties": {
                "days": {"type": "string", "example": "TR"},
                "time": {"type": "string", "example": "10:00 AM - 11:15 AM"},
                "instructor": {"type": "string"}
            }
        },
        "Section": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "subject": {"type": "string"},
                "course_code": {"type": "string"},
                "section": {"type": "string"},
                "schedule": {"type": "array", "items": {"$ref": "#/definitions/Meeting"}},
                "seats": {"type": "integer"},
                "waitlist": {"type": "integer"}
            }
        },
        "TimeRange": {
            "type": "object",
            "properties": {
                "start": {"type": "string", "example": "12:00"},
                "end": {"type": "string", "example": "13:00"}
            }
        },
        "Preferences": {
            "type": "object",
            "properties": {
                "preferred_days": {"type": "array", "items": {"type": "string", "enum": ["M", "T", "W", "R", "F"]}},
                "earliest_start": {"type": "string", "example": "08:00"},
                "latest_end": {"type": "string", "example": "18:00"},
                "avoid_ranges": {"type": "array", "items": {"$ref": "#/definitions/TimeRange"}},
                "max_gap_minutes": {"type": "integer"},
                "prefer_compact": {"type": "boolean"}
            }
        },
        "AnalyzeSectionsRequest": {
            "type": "object",
            "required": ["sections"],
            "properties": {
                "sections": {"type": "array", "items": {"$ref": "#/definitions/Section"}},
                "preferences": {"$ref": "#/definitions/Preferences"}
            }
        },
        "FilterSectionsRequest": {
            "type": "object",
            "required": ["sections"],
            "properties": {
                "sections": {"type": "array", "items": {"$ref": "#/definitions/Section"}},
                "preferences": {"$ref": "#/definitions/Preferences"}
            }
        },
        "CourseSections": {
            "type": "object",
            "required": ["course_code", "sections"],
            "properties": {
                "course_code": {"type": "string"},
                "sections": {"type": "array", "items": {"$ref": "#/definitions/Section"}}
            }
        },
        "CombinationsRequest": {
            "type": "object",
            "required": ["courses"],
            "properties": {
                "courses": {"type": "array", "items": {"$ref": "#/definitions/CourseSections"}},
                "preferences": {"$ref": "#/definitions/Preferences"},
                "max_combinations": {"type": "integer"}
            }
        },
        "ExportScheduleRequest": {
            "type": "object",
            "required": ["format", "sections"],
            "properties": {
                "format": {"type": "string", "enum": ["csv", "pdf"]},
                "title": {"type": "string"},
                "sections": {"type": "array", "items": {"$ref": "#/definitions/Section"}},
                "preferences": {"$ref": "#/definitions/Preferences"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
