package server

import "encoding/json"

// MessageType tags every frame exchanged on /ws.
type MessageType string

const (
	MessageTypeGenerate MessageType = "generate"
	MessageTypeLoad     MessageType = "load"
	MessageTypeList     MessageType = "list"
	MessageTypeLevel    MessageType = "level"
	MessageTypeLevels   MessageType = "levels"
	MessageTypeError    MessageType = "error"
)

// Error codes carried by ErrorMessage.
const (
	CodeBadMessage       = "BAD_MESSAGE"
	CodeUnknownType      = "UNKNOWN_MESSAGE_TYPE"
	CodeInvalidParams    = "INVALID_PARAMS"
	CodeGenerationFailed = "GENERATION_FAILED"
	CodeInvalidName      = "INVALID_NAME"
	CodeNotFound         = "NOT_FOUND"
	CodeNoStore          = "STORE_UNAVAILABLE"
	CodeStoreFailed      = "STORE_ERROR"
)

// BaseMessage is the envelope sent to clients.
type BaseMessage struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// inbound is the envelope read from clients; the payload is decoded once the
// type is known.
type inbound struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// GenerateMessage requests a new level. Params holds overrides applied on top
// of the server defaults; omitting "seed" derives a fresh one.
type GenerateMessage struct {
	Name   string          `json:"name,omitempty"`
	Save   bool            `json:"save,omitempty"`
	Params json.RawMessage `json:"params,omitempty"`
}

// LoadMessage requests a stored level.
type LoadMessage struct {
	Name string `json:"name"`
}

// LevelsMessage answers a list request.
type LevelsMessage struct {
	Names []string `json:"names"`
}

// ErrorMessage reports a failed request.
type ErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
