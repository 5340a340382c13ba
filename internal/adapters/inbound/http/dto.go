package http

import (
	"encoding/json"
	"time"
)

// ErrorCode classifies an error response.
type ErrorCode string

const (
	BADREQUEST    ErrorCode = "BAD_REQUEST"
	UNAUTHORIZED  ErrorCode = "UNAUTHORIZED"
	FORBIDDEN     ErrorCode = "FORBIDDEN"
	NOTFOUND      ErrorCode = "NOT_FOUND"
	CONFLICT      ErrorCode = "CONFLICT"
	INTERNALERROR ErrorCode = "INTERNAL_ERROR"
)

// Error is the detail of an error response.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResp is the body of every non-2xx JSON response.
type ErrorResp struct {
	Error Error `json:"error"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResp struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type AuthResp struct {
	User        User      `json:"user"`
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type User struct {
	Id        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Task struct {
	Id          int64     `json:"id"`
	UserId      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	DueDate     *string   `json:"due_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	DueDate     *string `json:"due_date"`
}

// UpdateTaskRequest is a partial update. An empty due_date clears it.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	DueDate     *string `json:"due_date"`
}

type TaskStatusRequest struct {
	Status string `json:"status"`
}

type ListTasksResp struct {
	Items []Task `json:"items"`
}

type ChatRequest struct {
	Message        string `json:"message"`
	ConversationId string `json:"conversation_id"`
}

type ToolCall struct {
	Name   string          `json:"name"`
	Args   json.RawMessage `json:"args"`
	Result json.RawMessage `json:"result"`
}

type ChatResp struct {
	ConversationId string     `json:"conversation_id"`
	MessageId      string     `json:"message_id"`
	Response       string     `json:"response"`
	ToolCalls      []ToolCall `json:"tool_calls"`
	ActionsTaken   []string   `json:"actions_taken"`
	Strategy       string     `json:"strategy"`
}

type Conversation struct {
	Id        string         `json:"id"`
	UserId    int64          `json:"user_id"`
	Title     string         `json:"title"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type ConversationListResp struct {
	Conversations []Conversation `json:"conversations"`
}

type Message struct {
	Id             string          `json:"id"`
	ConversationId string          `json:"conversation_id"`
	SenderType     string          `json:"sender_type"`
	Content        string          `json:"content"`
	MessageType    string          `json:"message_type"`
	ToolUsed       *string         `json:"tool_used,omitempty"`
	ToolParameters json.RawMessage `json:"tool_parameters,omitempty"`
	ToolResult     json.RawMessage `json:"tool_result,omitempty"`
	Timestamp      time.Time       `json:"timestamp"`
}

type ConversationDetailResp struct {
	Conversation
	Messages []Message `json:"messages"`
}

type HealthResp struct {
	Status string `json:"status"`
}
