package domain

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SenderType identifies who authored a message.
type SenderType string

const (
	SenderType_User      SenderType = "user"
	SenderType_Assistant SenderType = "assistant"
	SenderType_System    SenderType = "system"
)

// MessageType classifies the content of a message.
type MessageType string

const (
	MessageType_Text     MessageType = "text"
	MessageType_ToolCall MessageType = "tool_call"
)

// Message is a single append-only entry of a conversation.
type Message struct {
	ID             uuid.UUID
	ConversationID uuid.UUID
	SenderType     SenderType
	Content        string
	MessageType    MessageType
	ToolUsed       string
	ToolParameters json.RawMessage
	ToolResult     json.RawMessage
	CreatedAt      time.Time
}

// MessageRepository defines the interface for persisting conversation messages.
type MessageRepository interface {
	// CreateMessage appends a message to its conversation.
	CreateMessage(ctx context.Context, message Message) error
	// ListMessages returns the latest messages of a conversation ordered by timestamp.
	// A limit of zero returns every message.
	ListMessages(ctx context.Context, conversationID uuid.UUID, limit int) ([]Message, error)
}
