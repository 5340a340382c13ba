package domain

import (
	"context"
	"encoding/json"
)

// AgentStrategy names a chat agent implementation.
type AgentStrategy string

const (
	AgentStrategy_RuleBased AgentStrategy = "rules"
	AgentStrategy_Model     AgentStrategy = "model"
)

// Turn is one prior exchange entry passed to an agent.
type Turn struct {
	Role    SenderType
	Content string
}

// AgentRequest carries everything an agent needs to run a single turn.
type AgentRequest struct {
	UserID  int64
	Message string
	History []Turn
}

// ToolCallRecord records one tool invocation made during a turn.
type ToolCallRecord struct {
	Name   string          `json:"name"`
	Args   json.RawMessage `json:"args"`
	Result ToolResult      `json:"result"`
}

// AgentReply is the outcome of a turn.
type AgentReply struct {
	Response     string
	ToolCalls    []ToolCallRecord
	ActionsTaken []string
}

// RecordToolCall appends a tool call and its human-readable action to the reply.
// Arguments that are not valid JSON are kept as a JSON string so the record can
// always be persisted and encoded.
func (r *AgentReply) RecordToolCall(name string, args json.RawMessage, result ToolResult) {
	switch {
	case len(args) == 0:
		args = json.RawMessage(`{}`)
	case !json.Valid(args):
		quoted, _ := json.Marshal(string(args)) // marshaling a string cannot fail
		args = quoted
	}
	r.ToolCalls = append(r.ToolCalls, ToolCallRecord{Name: name, Args: args, Result: result})
	r.ActionsTaken = append(r.ActionsTaken, name+": "+result.Message)
}

// ChatAgent runs one conversational turn. Implementations never fail: problems
// are reported through the reply text.
type ChatAgent interface {
	// Strategy returns the name of the agent implementation.
	Strategy() AgentStrategy
	// ProcessRequest runs a turn and returns the reply.
	ProcessRequest(ctx context.Context, req AgentRequest) AgentReply
}
