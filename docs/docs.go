// Package docs is generated by swag from the annotations in cmd/api.
// Regenerate with: swag init -g cmd/api/main.go
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
        "/ping": {
            "get": {"tags": ["health"], "summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}
        },
        "/challenges": {
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["challenges"],
                "summary": "Post a challenge (corporate)",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/request.PostChallengeRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.ChallengeResponse"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            }
        },
        "/challenges/{challenge_id}": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["challenges"],
                "summary": "Get a challenge",
                "parameters": [{"type": "string", "name": "challenge_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ChallengeResponse"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            }
        },
        "/challenges/{challenge_id}/cancel": {
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["challenges"],
                "summary": "Cancel an open challenge (owner)",
                "parameters": [{"type": "string", "name": "challenge_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.ChallengeResponse"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            }
        },
        "/challenges/{challenge_id}/proposals": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["proposals"],
                "summary": "List proposals of a challenge",
                "parameters": [{"type": "string", "name": "challenge_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/response.ProposalResponse"}}}}
            },
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["proposals"],
                "summary": "Submit a proposal (student)",
                "parameters": [{"type": "string", "name": "challenge_id", "in": "path", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/request.SubmitProposalRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.ProposalResponse"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            }
        },
        "/challenges/{challenge_id}/proposals/{proposal_id}/select": {
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["escrow"],
                "summary": "Select a proposal and open the escrow checkout",
                "parameters": [{"type": "string", "name": "challenge_id", "in": "path", "required": true}, {"type": "string", "name": "proposal_id", "in": "path", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/request.SelectProposalRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.PaymentOrderResponse"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}, "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            }
        },
        "/payments/{order_ref}": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["escrow"],
                "summary": "Get a payment order",
                "parameters": [{"type": "string", "name": "order_ref", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.PaymentOrderResponse"}}}
            }
        },
        "/payments/{order_ref}/cancel": {
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["escrow"],
                "summary": "Abandon checkout; the proposal returns to pending",
                "parameters": [{"type": "string", "name": "order_ref", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.PaymentOrderResponse"}}}
            }
        },
        "/payments/{order_ref}/webhook": {
            "post": {
                "tags": ["escrow"],
                "summary": "Payment gateway notification (signed with x-signature)",
                "parameters": [{"type": "string", "name": "order_ref", "in": "path", "required": true}, {"type": "string", "name": "x-signature", "in": "header"}, {"type": "string", "name": "x-request-id", "in": "header"}],
                "responses": {"200": {"description": "OK; room on confirmation, {\"status\":\"ignored\"} for notifications without a signed payment", "schema": {"$ref": "#/definitions/response.RoomResponse"}}, "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            }
        },
        "/rooms/{room_id}": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["rooms"],
                "summary": "Room with online and typing users",
                "parameters": [{"type": "string", "name": "room_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.RoomViewResponse"}}}
            }
        },
        "/rooms/{room_id}/messages": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["rooms"],
                "summary": "Replay persisted messages",
                "parameters": [{"type": "string", "name": "room_id", "in": "path", "required": true}, {"type": "string", "name": "since", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/response.MessageResponse"}}}}
            },
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["rooms"],
                "summary": "Send a message",
                "parameters": [{"type": "string", "name": "room_id", "in": "path", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/request.SendMessageRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.MessageResponse"}}, "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            }
        },
        "/rooms/{room_id}/release": {
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["escrow"],
                "summary": "Release escrowed funds (corporate)",
                "parameters": [{"type": "string", "name": "room_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.RoomResponse"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            }
        },
        "/rooms/{room_id}/dispute": {
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["escrow"],
                "summary": "Dispute escrowed funds (corporate)",
                "parameters": [{"type": "string", "name": "room_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.RoomResponse"}}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            }
        }
    },
    "definitions": {
        "pkg.HTTPError": {"type": "object", "properties": {"code": {"type": "string"}, "message": {"type": "string"}}},
        "request.PostChallengeRequest": {"type": "object", "required": ["title", "price", "deadline"], "properties": {"title": {"type": "string"}, "description": {"type": "string"}, "price": {"type": "integer"}, "currency": {"type": "string"}, "deadline": {"type": "string", "format": "date-time"}}},
        "request.SubmitProposalRequest": {"type": "object", "required": ["cover_letter"], "properties": {"cover_letter": {"type": "string"}}},
        "request.SelectProposalRequest": {"type": "object", "required": ["amount"], "properties": {"amount": {"type": "integer"}}},
        "request.SendMessageRequest": {"type": "object", "properties": {"id": {"type": "string"}, "type": {"type": "string"}, "content": {"type": "string"}, "attachment": {"type": "object", "properties": {"url": {"type": "string"}, "name": {"type": "string"}}}}},
        "response.ChallengeResponse": {"type": "object", "properties": {"id": {"type": "string"}, "corporate_id": {"type": "string"}, "title": {"type": "string"}, "description": {"type": "string"}, "price": {"type": "integer"}, "currency": {"type": "string"}, "status": {"type": "string"}, "deadline": {"type": "string"}, "proposal_count": {"type": "integer"}, "selection_state": {"type": "string"}, "created_at": {"type": "string"}, "updated_at": {"type": "string"}}},
        "response.ProposalResponse": {"type": "object", "properties": {"id": {"type": "string"}, "challenge_id": {"type": "string"}, "student_id": {"type": "string"}, "cover_letter": {"type": "string"}, "status": {"type": "string"}, "created_at": {"type": "string"}, "updated_at": {"type": "string"}}},
        "response.PaymentOrderResponse": {"type": "object", "properties": {"order_ref": {"type": "string"}, "challenge_id": {"type": "string"}, "proposal_id": {"type": "string"}, "amount": {"type": "integer"}, "currency": {"type": "string"}, "status": {"type": "string"}, "checkout_url": {"type": "string"}, "room_id": {"type": "string"}, "failure_reason": {"type": "string"}, "created_at": {"type": "string"}, "updated_at": {"type": "string"}}},
        "response.RoomResponse": {"type": "object", "properties": {"id": {"type": "string"}, "challenge_id": {"type": "string"}, "proposal_id": {"type": "string"}, "student_id": {"type": "string"}, "corporate_id": {"type": "string"}, "escrow_amount": {"type": "integer"}, "currency": {"type": "string"}, "escrow_status": {"type": "string"}, "status": {"type": "string"}, "created_at": {"type": "string"}, "completed_at": {"type": "string"}}},
        "response.RoomViewResponse": {"type": "object", "properties": {"room": {"$ref": "#/definitions/response.RoomResponse"}, "role": {"type": "string"}, "online_users": {"type": "array", "items": {"type": "string"}}, "typing_users": {"type": "array", "items": {"type": "string"}}}},
        "response.MessageResponse": {"type": "object", "properties": {"id": {"type": "string"}, "room_id": {"type": "string"}, "sender_id": {"type": "string"}, "sender_role": {"type": "string"}, "type": {"type": "string"}, "content": {"type": "string"}, "attachment": {"type": "object", "properties": {"url": {"type": "string"}, "name": {"type": "string"}}}, "created_at": {"type": "string"}}}
    },
    "securityDefinitions": {
        "Bearer": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
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
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Fellowship Escrow API",
	Description:      "Challenge marketplace with escrow-backed selection and project rooms.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
