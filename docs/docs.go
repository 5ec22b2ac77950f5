// Package docs holds the OpenAPI document served under /swagger.
// It follows the layout swag init produces from the controller annotations,
// so running `swag init -g cmd/api/main.go` replaces it in place.
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
        "/electives": {
            "get": {
                "description": "Lists electives filtered by category, department and search term. Defaults to lowest cutoff first.",
                "produces": ["application/json"],
                "tags": ["electives"],
                "summary": "List electives",
                "parameters": [
                    {"type": "string", "description": "Category code (OE, PE I, PE II) or all", "name": "category", "in": "query"},
                    {"type": "string", "description": "Department code or all", "name": "department", "in": "query"},
                    {"type": "string", "description": "Case-insensitive match on title, code or department", "name": "search", "in": "query"},
                    {"enum": ["name", "cutoff", "students", "difficulty"], "type": "string", "description": "Sort key", "name": "sort", "in": "query"},
                    {"enum": ["asc", "desc"], "type": "string", "description": "Sort order", "name": "order", "in": "query"},
                    {"type": "integer", "description": "Page number (1-based)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (max 200)", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Electives retrieved successfully", "schema": {"$ref": "#/definitions/dto.ElectiveListEnvelope"}},
                    "400": {"description": "Invalid filter or sort parameter", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/electives/quick-search": {
            "get": {
                "description": "Returns the first matches for a search term in dataset order, or the first electives when the term is empty",
                "produces": ["application/json"],
                "tags": ["electives"],
                "summary": "Quick search electives",
                "parameters": [
                    {"type": "string", "description": "Search term", "name": "q", "in": "query"},
                    {"type": "integer", "description": "Maximum results (1-50, default 8)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Matches retrieved successfully", "schema": {"$ref": "#/definitions/dto.ElectiveSliceEnvelope"}},
                    "400": {"description": "Invalid limit", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/electives/{category}/{code}": {
            "get": {
                "description": "Looks up one elective by its category and course code. The same code may appear in several categories.",
                "produces": ["application/json"],
                "tags": ["electives"],
                "summary": "Get an elective",
                "parameters": [
                    {"type": "string", "description": "Category code (OE, PE I, PE II)", "name": "category", "in": "path", "required": true},
                    {"type": "string", "description": "Course code, e.g. ICT 4401", "name": "code", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Elective retrieved successfully", "schema": {"$ref": "#/definitions/dto.ElectiveEnvelope"}},
                    "400": {"description": "Unknown or missing category", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Elective not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/departments": {
            "get": {
                "produces": ["application/json"],
                "tags": ["electives"],
                "summary": "List departments",
                "responses": {
                    "200": {"description": "Departments retrieved successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["electives"],
                "summary": "List categories",
                "responses": {
                    "200": {"description": "Categories retrieved successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        },
        "/stats": {
            "get": {
                "description": "Aggregates over the whole dataset regardless of any filter",
                "produces": ["application/json"],
                "tags": ["electives"],
                "summary": "Elective statistics",
                "responses": {
                    "200": {"description": "Statistics retrieved successfully", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "503": {"description": "No electives loaded", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/difficulty": {
            "get": {
                "produces": ["application/json"],
                "tags": ["electives"],
                "summary": "Classify a cutoff",
                "parameters": [
                    {"type": "number", "description": "CGPA cutoff between 0 and 10", "name": "cutoff", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "Difficulty band", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "400": {"description": "Missing or out of range cutoff", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/course-links": {
            "get": {
                "produces": ["application/json"],
                "tags": ["electives"],
                "summary": "Resolve a course page",
                "parameters": [
                    {"type": "string", "description": "Course code, e.g. AAE 4311. Omit to list every linked code.", "name": "code", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Course page, or the linked codes when code is omitted", "schema": {"$ref": "#/definitions/dto.APIResponse"}},
                    "404": {"description": "No page for this code", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/faq": {
            "get": {
                "produces": ["application/json"],
                "tags": ["electives"],
                "summary": "Frequently asked questions",
                "responses": {
                    "200": {"description": "FAQ entries", "schema": {"$ref": "#/definitions/dto.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.APIResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "data": {},
                "timestamp": {"type": "string", "example": "2025-04-23T12:01:05.123Z"}
            }
        },
        "dto.DifficultyResponse": {
            "type": "object",
            "properties": {
                "level": {"type": "string", "example": "Hard"},
                "color": {"type": "string", "example": "orange"}
            }
        },
        "dto.ElectiveResponse": {
            "type": "object",
            "properties": {
                "category": {"type": "string", "example": "PE I"},
                "categoryLabel": {"type": "string", "example": "Program Elective I (PE I)"},
                "code": {"type": "string", "example": "ICT 4401"},
                "title": {"type": "string", "example": "Artificial Intelligence"},
                "department": {"type": "string", "example": "ICT"},
                "lowestCgpa": {"type": "number", "example": 3.67},
                "highestCgpa": {"type": "number", "example": 9.48},
                "spread": {"type": "number", "example": 5.81},
                "students": {"type": "integer", "example": 101},
                "difficulty": {"$ref": "#/definitions/dto.DifficultyResponse"},
                "coursePageUrl": {"type": "string", "example": "https://courses.coolstuff.work/course/ICT%204401"},
                "anchorId": {"type": "string", "example": "elective-ICT 4401-PE I"}
            }
        },
        "dto.PaginationInfo": {
            "type": "object",
            "properties": {
                "currentPage": {"type": "integer"},
                "totalPages": {"type": "integer"},
                "pageSize": {"type": "integer"},
                "totalItems": {"type": "integer"}
            }
        },
        "dto.ElectiveListResponse": {
            "type": "object",
            "properties": {
                "electives": {"type": "array", "items": {"$ref": "#/definitions/dto.ElectiveResponse"}},
                "pagination": {"$ref": "#/definitions/dto.PaginationInfo"}
            }
        },
        "dto.ElectiveEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "data": {"$ref": "#/definitions/dto.ElectiveResponse"},
                "timestamp": {"type": "string"}
            }
        },
        "dto.ElectiveSliceEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "data": {"type": "array", "items": {"$ref": "#/definitions/dto.ElectiveResponse"}},
                "timestamp": {"type": "string"}
            }
        },
        "dto.ElectiveListEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": true},
                "data": {"$ref": "#/definitions/dto.ElectiveListResponse"},
                "timestamp": {"type": "string"}
            }
        },
        "dto.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "VAL_001"},
                "message": {"type": "string", "example": "unknown category \"PE III\""},
                "field": {"type": "string", "example": "category"},
                "severity": {"type": "string", "example": "ERROR"},
                "details": {}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": false},
                "error": {"$ref": "#/definitions/dto.ErrorDetail"},
                "timestamp": {"type": "string", "example": "2025-04-23T12:01:05.123Z"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Elective Cutoffs API",
	Description:      "Browse, filter and search elective courses by their historical CGPA allocation cutoffs.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
