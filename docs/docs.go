// Package docs holds the OpenAPI document served under /swagger/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {
			"name": "API Support",
			"email": "support@example.com"
		},
		"license": {
			"name": "MIT",
			"url": "https://opensource.org/licenses/MIT"
		},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/health": {
			"get": {
				"tags": [
					"health"
				],
				"summary": "Health check",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"503": {
						"description": "Service Unavailable"
					}
				}
			}
		},
		"/api/users/sync": {
			"post": {
				"tags": [
					"users"
				],
				"summary": "Sync the signed-in user",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.User"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					}
				}
			}
		},
		"/api/me": {
			"get": {
				"tags": [
					"users"
				],
				"summary": "Current user",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.User"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					}
				}
			}
		},
		"/api/accounts": {
			"post": {
				"tags": [
					"accounts"
				],
				"summary": "Create an account",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/model.AccountRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/model.Account"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					}
				}
			},
			"get": {
				"tags": [
					"accounts"
				],
				"summary": "List accounts",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/model.Account"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					}
				}
			}
		},
		"/api/accounts/{id}": {
			"get": {
				"tags": [
					"accounts"
				],
				"summary": "Account with transactions",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"description": "Resource ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.AccountDetail"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					}
				}
			},
			"put": {
				"tags": [
					"accounts"
				],
				"summary": "Update an account",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"description": "Resource ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/model.AccountRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.Account"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					}
				}
			},
			"delete": {
				"tags": [
					"accounts"
				],
				"summary": "Delete an account",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"description": "Resource ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					}
				}
			}
		},
		"/api/accounts/{id}/summary": {
			"get": {
				"tags": [
					"dashboard"
				],
				"summary": "Account summary",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"description": "Resource ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.AccountSummary"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					}
				}
			}
		},
		"/api/accounts/{id}/chart": {
			"get": {
				"tags": [
					"dashboard"
				],
				"summary": "Daily income and expense chart",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"description": "Resource ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"enum": [
							"7D",
							"1M",
							"3M",
							"6M",
							"ALL"
						],
						"type": "string",
						"name": "range",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.ChartData"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					}
				}
			}
		},
		"/api/transactions": {
			"post": {
				"tags": [
					"transactions"
				],
				"summary": "Create a transaction",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/model.TransactionRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/model.Transaction"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					}
				}
			}
		},
		"/api/transactions/bulk-delete": {
			"post": {
				"tags": [
					"transactions"
				],
				"summary": "Delete transactions in one batch",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/model.BulkDeleteRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.BulkDeleteResult"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					}
				}
			}
		},
		"/api/transactions/{id}": {
			"get": {
				"tags": [
					"transactions"
				],
				"summary": "Get a transaction",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"description": "Resource ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.Transaction"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					}
				}
			},
			"put": {
				"tags": [
					"transactions"
				],
				"summary": "Update a transaction",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"description": "Resource ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/model.TransactionRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.Transaction"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					}
				}
			},
			"delete": {
				"tags": [
					"transactions"
				],
				"summary": "Delete a transaction",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"description": "Resource ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					}
				}
			}
		},
		"/api/dashboard": {
			"get": {
				"tags": [
					"dashboard"
				],
				"summary": "Dashboard overview",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.DashboardOverview"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					}
				}
			}
		},
		"/api/dashboard/expenses": {
			"get": {
				"tags": [
					"dashboard"
				],
				"summary": "Expenses by category",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/model.CategoryExpense"
							}
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					}
				}
			}
		},
		"/api/budget": {
			"get": {
				"tags": [
					"budget"
				],
				"summary": "Budget status for the current month",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.BudgetStatus"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					}
				}
			},
			"put": {
				"tags": [
					"budget"
				],
				"summary": "Set the monthly budget",
				"produces": [
					"application/json"
				],
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/model.BudgetRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.Budget"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/common.AppError"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"common.AppError": {
			"type": "object",
			"properties": {
				"code": {
					"type": "integer"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"model.User": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"external_id": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"image_url": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"model.Account": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"user_id": {
					"type": "string",
					"format": "uuid"
				},
				"name": {
					"type": "string"
				},
				"type": {
					"type": "string",
					"enum": [
						"CURRENT",
						"SAVINGS"
					]
				},
				"balance": {
					"type": "string",
					"example": "0.00"
				},
				"is_default": {
					"type": "boolean"
				},
				"transaction_count": {
					"type": "integer"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"model.AccountDetail": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"name": {
					"type": "string"
				},
				"balance": {
					"type": "string",
					"example": "0.00"
				},
				"transactions": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/model.Transaction"
					}
				}
			}
		},
		"model.AccountRequest": {
			"type": "object",
			"required": [
				"name",
				"type",
				"balance"
			],
			"properties": {
				"name": {
					"type": "string"
				},
				"type": {
					"type": "string",
					"enum": [
						"CURRENT",
						"SAVINGS"
					]
				},
				"balance": {
					"type": "string",
					"example": "0.00"
				},
				"is_default": {
					"type": "boolean"
				}
			}
		},
		"model.Transaction": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"user_id": {
					"type": "string",
					"format": "uuid"
				},
				"account_id": {
					"type": "string",
					"format": "uuid"
				},
				"type": {
					"type": "string",
					"enum": [
						"INCOME",
						"EXPENSE"
					]
				},
				"amount": {
					"type": "string",
					"example": "0.00"
				},
				"description": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"date": {
					"type": "string",
					"format": "date-time"
				},
				"is_recurring": {
					"type": "boolean"
				},
				"recurring_interval": {
					"type": "string",
					"enum": [
						"DAILY",
						"WEEKLY",
						"MONTHLY",
						"YEARLY"
					]
				},
				"next_recurring_date": {
					"type": "string",
					"format": "date-time"
				},
				"status": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"model.TransactionRequest": {
			"type": "object",
			"required": [
				"account_id",
				"type",
				"amount",
				"date"
			],
			"properties": {
				"account_id": {
					"type": "string",
					"format": "uuid"
				},
				"type": {
					"type": "string",
					"enum": [
						"INCOME",
						"EXPENSE"
					]
				},
				"amount": {
					"type": "string",
					"example": "0.00"
				},
				"description": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"date": {
					"type": "string",
					"format": "date-time"
				},
				"is_recurring": {
					"type": "boolean"
				},
				"recurring_interval": {
					"type": "string",
					"enum": [
						"DAILY",
						"WEEKLY",
						"MONTHLY",
						"YEARLY"
					]
				}
			}
		},
		"model.BulkDeleteRequest": {
			"type": "object",
			"properties": {
				"transaction_ids": {
					"type": "array",
					"items": {
						"type": "string",
						"format": "uuid"
					}
				}
			}
		},
		"model.BulkDeleteResult": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"deletedCount": {
					"type": "integer"
				},
				"requestedCount": {
					"type": "integer"
				},
				"message": {
					"type": "string"
				},
				"error": {
					"type": "string"
				}
			}
		},
		"model.Budget": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"format": "uuid"
				},
				"user_id": {
					"type": "string",
					"format": "uuid"
				},
				"amount": {
					"type": "string",
					"example": "0.00"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"model.BudgetRequest": {
			"type": "object",
			"properties": {
				"amount": {
					"type": "string",
					"example": "0.00"
				}
			}
		},
		"model.BudgetStatus": {
			"type": "object",
			"properties": {
				"budget": {
					"$ref": "#/definitions/model.Budget"
				},
				"current_expenses": {
					"type": "string",
					"example": "0.00"
				},
				"remaining": {
					"type": "string",
					"example": "0.00"
				},
				"spent_percentage": {
					"type": "string",
					"example": "0.00"
				},
				"state": {
					"type": "string",
					"enum": [
						"HEALTHY",
						"NEAR_LIMIT",
						"OVER_BUDGET"
					]
				}
			}
		},
		"model.AccountSummary": {
			"type": "object",
			"properties": {
				"account_id": {
					"type": "string",
					"format": "uuid"
				},
				"name": {
					"type": "string"
				},
				"balance": {
					"type": "string",
					"example": "0.00"
				},
				"total_income": {
					"type": "string",
					"example": "0.00"
				},
				"total_expenses": {
					"type": "string",
					"example": "0.00"
				},
				"savings_rate": {
					"type": "string",
					"example": "0.00"
				}
			}
		},
		"model.CategoryExpense": {
			"type": "object",
			"properties": {
				"category": {
					"type": "string"
				},
				"amount": {
					"type": "string",
					"example": "0.00"
				},
				"color": {
					"type": "string"
				}
			}
		},
		"model.ChartPoint": {
			"type": "object",
			"properties": {
				"date": {
					"type": "string",
					"format": "date-time"
				},
				"label": {
					"type": "string"
				},
				"income": {
					"type": "string",
					"example": "0.00"
				},
				"expense": {
					"type": "string",
					"example": "0.00"
				}
			}
		},
		"model.ChartData": {
			"type": "object",
			"properties": {
				"range": {
					"type": "string"
				},
				"start": {
					"type": "string",
					"format": "date-time"
				},
				"end": {
					"type": "string",
					"format": "date-time"
				},
				"points": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/model.ChartPoint"
					}
				},
				"total_income": {
					"type": "string",
					"example": "0.00"
				},
				"total_expense": {
					"type": "string",
					"example": "0.00"
				},
				"net": {
					"type": "string",
					"example": "0.00"
				}
			}
		},
		"model.DashboardOverview": {
			"type": "object",
			"properties": {
				"accounts": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/model.Account"
					}
				},
				"expenses": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/model.CategoryExpense"
					}
				},
				"budget": {
					"$ref": "#/definitions/model.BudgetStatus"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
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
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Go-Finance API",
	Description:      "Personal finance API: accounts, transactions, budgets and dashboards.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
