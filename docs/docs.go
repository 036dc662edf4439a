// Package docs registers the generated swagger spec. Regenerate with
// `swag init -g cmd/server/main.go` after changing handler annotations.
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
        "/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new account",
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Email already registered"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/accounts/me/balance": {
            "get": {
                "tags": ["accounts"],
                "summary": "Get the authenticated account's balance",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/games": {
            "get": {
                "tags": ["games"],
                "summary": "List playable games",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/games/sessions": {
            "post": {
                "tags": ["games"],
                "summary": "Start a game session",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Insufficient balance or bad bet"}
                }
            },
            "get": {
                "tags": ["games"],
                "summary": "List the authenticated user's game sessions",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/games/sessions/{id}": {
            "get": {
                "tags": ["games"],
                "summary": "Get one game session",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Session not found"}
                }
            }
        },
        "/games/sessions/complete": {
            "post": {
                "tags": ["games"],
                "summary": "Complete a game session",
                "responses": {
                    "200": {"description": "OK"},
                    "409": {"description": "Session already cancelled"}
                }
            }
        },
        "/payments/deposit": {
            "post": {
                "tags": ["payments"],
                "summary": "Initiate a deposit",
                "responses": {
                    "201": {"description": "Created"},
                    "403": {"description": "Verification required"}
                }
            }
        },
        "/payments/ipn": {
            "post": {
                "tags": ["payments"],
                "summary": "Gateway instant payment notification",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Invalid signature"}
                }
            }
        },
        "/transactions": {
            "get": {
                "tags": ["transactions"],
                "summary": "List the authenticated user's ledger entries",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/transactions/{id}/reverse": {
            "post": {
                "tags": ["transactions"],
                "summary": "Reverse a reversible transaction",
                "responses": {
                    "200": {"description": "OK"},
                    "409": {"description": "Not reversible"}
                }
            }
        },
        "/transactions/{id}/retry": {
            "post": {
                "tags": ["transactions"],
                "summary": "Re-queue a failed deposit",
                "responses": {
                    "200": {"description": "OK"},
                    "409": {"description": "Max retries exceeded"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Casino Ledger API",
	Description:      "Transaction settlement core for casino gaming: ledger, sessions and payment reconciliation",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
