package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "S2S Online School API",
        "description": "Backend for the S2S online-school marketing site",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Users", "description": "User registration and lookup"},
        {"name": "Courses", "description": "Static course catalog"},
        {"name": "Teachers", "description": "Static teacher catalog"},
        {"name": "Applications", "description": "Course applications"},
        {"name": "ContactForms", "description": "Contact-form intake"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/api/users": {
            "get": {
                "tags": ["Users"],
                "summary": "List users",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Users"],
                "summary": "Register user",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Username taken or invalid payload"}
                }
            }
        },
        "/api/users/{id}": {
            "get": {
                "tags": ["Users"],
                "summary": "Get user by id",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/api/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "List courses",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/courses/{id}": {
            "get": {
                "tags": ["Courses"],
                "summary": "Get course by id",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/api/courses/category/{category}": {
            "get": {
                "tags": ["Courses"],
                "summary": "List courses by category",
                "parameters": [{"name": "category", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/courses/subject/{subject}": {
            "get": {
                "tags": ["Courses"],
                "summary": "List courses by subject",
                "parameters": [{"name": "subject", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/teachers": {
            "get": {
                "tags": ["Teachers"],
                "summary": "List teachers",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/teachers/{id}": {
            "get": {
                "tags": ["Teachers"],
                "summary": "Get teacher by id",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/api/applications": {
            "get": {
                "tags": ["Applications"],
                "summary": "List applications",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Applications"],
                "summary": "Submit application",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "User or course does not exist"}
                }
            }
        },
        "/api/applications/{id}": {
            "get": {
                "tags": ["Applications"],
                "summary": "Get application by id",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/api/contact_form": {
            "get": {
                "tags": ["ContactForms"],
                "summary": "List contact forms",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["ContactForms"],
                "summary": "Submit contact form",
                "responses": {
                    "201": {"description": "Created"},
                    "500": {"description": "Persistence failure"}
                }
            }
        }
    },
    "definitions": {
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/APIError"}
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
