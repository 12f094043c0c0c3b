package domain

import (
	"context"
	"encoding/json"
	"time"
)

// Names of the structured-output shapes the model is asked to produce.
// The model adapter is free to ignore them; agents parse the raw JSON
// themselves and treat unparseable output as a hard failure.
const (
	SchemaPlannerReply = "planner_reply"
	SchemaAgentReply   = "agent_reply"
)

// ModelRequest is one model invocation: a system instruction, a sampling
// temperature, the desired structured-output schema, the conversation
// history so far, and the current user message.
type ModelRequest struct {
	Instructions string
	Temperature  float32
	Schema       string
	History      []Turn
	Message      string
}

// ModelClient defines how agents invoke the LLM service. The returned
// payload is expected to be a single JSON object conforming to the
// requested schema.
type ModelClient interface {
	Complete(ctx context.Context, req ModelRequest) (json.RawMessage, error)
}

// ToolHeaders carry the correlation ids every tool connection is opened with.
type ToolHeaders struct {
	MessageID      MessageID
	ConversationID ConversationID
}

// ToolConn is one open connection to an external domain-data service.
// Connections are scoped to a single agent call: acquired at the start,
// closed at the end, on success and failure paths alike.
type ToolConn interface {
	Query(ctx context.Context, operation string, args map[string]any) (json.RawMessage, error)
	Close() error
}

// ToolDialer opens tool connections for specialist agents.
type ToolDialer interface {
	Dial(ctx context.Context, endpoint string, headers ToolHeaders) (ToolConn, error)
}

// MessageStore is the authoritative record of message lifecycle state.
type MessageStore interface {
	Submit(content string) (*Message, error)
	MarkInProgress(id MessageID) error
	MarkTerminal(id MessageID, status MessageStatus, processedAt time.Time) error
	Get(id MessageID) (*Message, error)
	ListAll() []*Message
}

// UpdateLog records the append-only processing history per message.
// Register marks a message id as known; List on an unregistered id fails
// with ErrNotFound, while a registered message with no updates yet returns
// an empty slice.
type UpdateLog interface {
	Register(id MessageID)
	Append(id MessageID, status MessageStatus, result, agentName string)
	List(id MessageID) ([]Update, error)
}

// ThreadRegistry keeps the single dialogue-context object per conversation.
// Lock serializes processing cycles on the same conversation; the release
// func must be called when the cycle ends.
type ThreadRegistry interface {
	GetOrCreate(id ConversationID) *Thread
	Put(id ConversationID, thread *Thread)
	Lock(id ConversationID) (release func())
}
