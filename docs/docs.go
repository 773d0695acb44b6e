// Package docs registers the OpenAPI document served under /swagger/.
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
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/products": {
            "get": {
                "description": "List the catalog filtered by optional criteria. Text filters are case-insensitive substrings; malformed numbers are ignored.",
                "produces": ["application/json"],
                "tags": ["Products"],
                "summary": "List products",
                "parameters": [
                    {"type": "string", "description": "Category substring", "name": "category", "in": "query"},
                    {"type": "string", "description": "Company substring", "name": "company", "in": "query"},
                    {"type": "number", "description": "Minimum rating", "name": "rating", "in": "query"},
                    {"type": "number", "description": "Minimum rating (alias of rating)", "name": "minRating", "in": "query"},
                    {"type": "number", "description": "Minimum price (inclusive)", "name": "minPrice", "in": "query"},
                    {"type": "number", "description": "Maximum price (inclusive)", "name": "maxPrice", "in": "query"},
                    {"type": "string", "description": "Availability substring", "name": "availability", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/listResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/api/products/stats": {
            "get": {
                "description": "Totals, price range and distinct categories, companies and availability values",
                "produces": ["application/json"],
                "tags": ["Products"],
                "summary": "Get catalog statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/statsResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/api/products/{id}": {
            "get": {
                "description": "Get a specific product by its exact ID",
                "produces": ["application/json"],
                "tags": ["Products"],
                "summary": "Get product by ID",
                "parameters": [
                    {"type": "string", "description": "Product ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/productResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check service health and catalog source connectivity",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "product": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "productName": {"type": "string"},
                "company": {"type": "string"},
                "category": {"type": "string"},
                "price": {"type": "number"},
                "rating": {"type": "number"},
                "discountPercent": {"type": "number"},
                "availability": {"type": "string"}
            }
        },
        "listResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {
                    "type": "object",
                    "properties": {
                        "products": {"type": "array", "items": {"$ref": "#/definitions/product"}},
                        "total": {"type": "integer"},
                        "matched": {"type": "integer"}
                    }
                }
            }
        },
        "productResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"$ref": "#/definitions/product"}
            }
        },
        "statsResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {
                    "type": "object",
                    "properties": {
                        "total_products": {"type": "integer"},
                        "available_products": {"type": "integer"},
                        "average_price": {"type": "number"},
                        "min_price": {"type": "number"},
                        "max_price": {"type": "number"},
                        "categories": {"type": "array", "items": {"type": "string"}},
                        "companies": {"type": "array", "items": {"type": "string"}},
                        "availability": {"type": "array", "items": {"type": "string"}}
                    }
                }
            }
        },
        "errorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "error": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8081",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Product Catalog API",
	Description:      "Read-only product catalog with filtering and detail lookup",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
