// Package docs holds the Swagger document served under /swagger.
// Regenerate with: swag init -g internal/handlers/swagger.go
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
        "/api/hello": {
            "get": {
                "description": "Returns the main greeting",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "messages"
                ],
                "summary": "Hello",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.MessageResponse"
                        }
                    }
                }
            }
        },
        "/api/hello2": {
            "get": {
                "description": "Returns placeholder text",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "messages"
                ],
                "summary": "Hello2",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.MessageResponse"
                        }
                    }
                }
            }
        },
        "/api/hello3": {
            "get": {
                "description": "Returns placeholder text",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "messages"
                ],
                "summary": "Hello3",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.MessageResponse"
                        }
                    }
                }
            }
        },
        "/api/hello2alt": {
            "get": {
                "description": "Returns the alternative greeting",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "messages"
                ],
                "summary": "Alternative hello",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.MessageResponse"
                        }
                    }
                }
            }
        },
        "/api/goodby": {
            "get": {
                "description": "Says goodbye to the given name",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "messages"
                ],
                "summary": "Goodbye",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.MessageResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "default": "Gast",
                        "description": "Name to say goodbye to",
                        "name": "name",
                        "in": "query"
                    }
                ]
            }
        },
        "/api/goodnight": {
            "get": {
                "description": "Returns the good night message",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "messages"
                ],
                "summary": "Good night",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.MessageResponse"
                        }
                    }
                }
            }
        },
        "/api/nature-image": {
            "get": {
                "description": "Returns an image URL for a nature keyword",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "images"
                ],
                "summary": "Nature image",
                "parameters": [
                    {
                        "type": "string",
                        "default": "nature",
                        "description": "Keyword such as tree, river or mountain",
                        "name": "keyword",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.NatureImageResponse"
                        }
                    }
                }
            }
        },
        "/api/fibonacci": {
            "get": {
                "description": "Computes the n-th Fibonacci number for 0 <= n <= 92",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "math"
                ],
                "summary": "Fibonacci",
                "parameters": [
                    {
                        "maximum": 92,
                        "minimum": 0,
                        "type": "integer",
                        "default": 0,
                        "description": "Index in the Fibonacci sequence",
                        "name": "number",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.FibonacciResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "system"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.HealthResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "request_id": {
                    "type": "string"
                },
                "timestamp": {
                    "type": "string"
                },
                "validation_errors": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.ValidationError"
                    }
                }
            }
        },
        "models.FibonacciResponse": {
            "type": "object",
            "properties": {
                "fibonacci": {
                    "type": "integer",
                    "example": 55
                },
                "number": {
                    "type": "integer",
                    "example": 10
                }
            }
        },
        "models.HealthResponse": {
            "type": "object",
            "properties": {
                "service": {
                    "type": "string",
                    "example": "hackathon-demo-api"
                },
                "status": {
                    "type": "string",
                    "example": "healthy"
                },
                "timestamp": {
                    "type": "string"
                },
                "version": {
                    "type": "string",
                    "example": "1.0.0"
                }
            }
        },
        "models.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "Hello again and again from REST API for Hackathon 2025!"
                }
            }
        },
        "models.NatureImageResponse": {
            "type": "object",
            "properties": {
                "imageUrl": {
                    "type": "string",
                    "example": "https://picsum.photos/id/1056/600/400"
                },
                "keyword": {
                    "type": "string",
                    "example": "river"
                }
            }
        },
        "models.ValidationError": {
            "type": "object",
            "properties": {
                "field": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "tag": {
                    "type": "string"
                },
                "value": {
                    "type": "string"
                }
            }
        }
    },
    "tags": [
        {
            "description": "Greeting endpoints",
            "name": "messages"
        },
        {
            "description": "Nature image lookup",
            "name": "images"
        },
        {
            "description": "Fibonacci numbers",
            "name": "math"
        },
        {
            "description": "Health checks",
            "name": "system"
        }
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Hackathon 2025 Demo API",
	Description:      "Small stateless REST endpoints behind the Hackathon 2025 demo page",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
