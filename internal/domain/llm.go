package domain

import "context"

// LLMRole is the role of a message exchanged with a language model.
type LLMRole string

const (
	LLMRole_System    LLMRole = "system"
	LLMRole_User      LLMRole = "user"
	LLMRole_Assistant LLMRole = "assistant"
	LLMRole_Tool      LLMRole = "tool"
)

// LLMToolCall is a function call requested by the model.
type LLMToolCall struct {
	ID        string
	Name      string
	Arguments string
}

// LLMMessage is a single message of a model conversation.
type LLMMessage struct {
	Role       LLMRole       `yaml:"role"`
	Content    string        `yaml:"content"`
	ToolCalls  []LLMToolCall `yaml:"-"`
	ToolCallID string        `yaml:"-"`
}

// LLMRequest is a chat completion request with optional tools.
type LLMRequest struct {
	Model       string
	Messages    []LLMMessage
	Tools       []ToolDefinition
	Temperature float32
	MaxTokens   int
}

// LLMResponse is the model's answer to an LLMRequest.
type LLMResponse struct {
	Message          LLMMessage
	PromptTokens     int
	CompletionTokens int
}

// LLMClient talks to a function-calling capable language model.
type LLMClient interface {
	Chat(ctx context.Context, req LLMRequest) (LLMResponse, error)
}
