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
        "/createtask": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Create a new task",
                "responses": {
                    "200": {"description": "message and task_id"},
                    "400": {"description": "validation failure"}
                }
            }
        },
        "/updatetask/{task_id}": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Apply a partial update to a task",
                "parameters": [
                    {"type": "integer", "name": "task_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "message"},
                    "400": {"description": "validation failure"},
                    "404": {"description": "unknown task"}
                }
            }
        },
        "/updatetaskstatus/{task_id}": {
            "patch": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Update only the status of a task",
                "parameters": [
                    {"type": "integer", "name": "task_id", "in": "path", "required": true},
                    {"type": "string", "name": "status", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "message"},
                    "400": {"description": "invalid status"},
                    "404": {"description": "unknown task"}
                }
            }
        },
        "/deletetask/{task_id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Delete a task",
                "parameters": [
                    {"type": "integer", "name": "task_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "message"},
                    "404": {"description": "unknown task"}
                }
            }
        },
        "/gettasks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "List every owner's tasks (admin token required)",
                "responses": {
                    "200": {"description": "task records"},
                    "403": {"description": "missing or wrong admin token"}
                }
            }
        },
        "/gettasks/{user_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "List one owner's tasks",
                "parameters": [
                    {"type": "integer", "name": "user_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "task records"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Task Bot API",
	Description:      "API for creating, updating, listing and deleting user-scoped tasks.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
