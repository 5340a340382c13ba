package assistant

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont-taskchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont-taskchat/internal/usecases"
	"github.com/toon-format/toon-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.yaml.in/yaml/v3"
)

//go:embed prompts/chat.yml
var chatPrompt embed.FS

const (
	// UnavailableMessage is returned by a model agent built without credentials.
	UnavailableMessage = "The assistant is currently unavailable. Please try again later."
	// ApologyMessage is returned when the model call fails.
	ApologyMessage = "I'm sorry, I couldn't process your request right now. Please try again later."

	modelTemperature = 0.7
)

// ModelAgentConfig holds the settings of the model-delegated agent.
type ModelAgentConfig struct {
	Model         string
	MaxTokens     int
	MaxToolRounds int
	Timeout       time.Duration
}

// ModelAgent delegates tool selection and the final reply to an LLM.
type ModelAgent struct {
	client       domain.LLMClient
	registry     domain.ToolRegistry
	timeProvider domain.CurrentTimeProvider
	logger       *zap.Logger
	cfg          ModelAgentConfig
	prompt       []domain.LLMMessage
	disabled     bool
}

// NewModelAgent creates a model agent. The agent is disabled, and only answers with
// UnavailableMessage, when no model or no API key is configured.
func NewModelAgent(
	client domain.LLMClient,
	registry domain.ToolRegistry,
	timeProvider domain.CurrentTimeProvider,
	logger *zap.Logger,
	cfg ModelAgentConfig,
	apiKey string,
) (ModelAgent, error) {
	prompt, err := loadChatPrompt()
	if err != nil {
		return ModelAgent{}, err
	}
	if cfg.MaxToolRounds < 0 {
		cfg.MaxToolRounds = 0
	}

	return ModelAgent{
		client:       client,
		registry:     registry,
		timeProvider: timeProvider,
		logger:       logger,
		cfg:          cfg,
		prompt:       prompt,
		disabled:     !isConfigured(apiKey) || strings.TrimSpace(cfg.Model) == "",
	}, nil
}

// Strategy implements domain.ChatAgent.
func (a ModelAgent) Strategy() domain.AgentStrategy {
	return domain.AgentStrategy_Model
}

// ProcessRequest implements domain.ChatAgent. Tool rounds stop after MaxToolRounds, then
// one last request without tools asks the model for its answer.
func (a ModelAgent) ProcessRequest(ctx context.Context, req domain.AgentRequest) domain.AgentReply {
	reply := domain.AgentReply{
		ToolCalls:    []domain.ToolCallRecord{},
		ActionsTaken: []string{},
	}
	if a.disabled {
		reply.Response = UnavailableMessage
		return reply
	}

	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("model", a.cfg.Model),
		telemetry.UserID(req.UserID),
	))
	defer span.End()

	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		spanCtx, cancel = context.WithTimeout(spanCtx, a.cfg.Timeout)
		defer cancel()
	}

	messages := a.buildMessages(req)
	for round := 0; round <= a.cfg.MaxToolRounds; round++ {
		llmReq := domain.LLMRequest{
			Model:       a.cfg.Model,
			Messages:    messages,
			Temperature: modelTemperature,
			MaxTokens:   a.cfg.MaxTokens,
		}
		withTools := round < a.cfg.MaxToolRounds
		if withTools {
			llmReq.Tools = a.registry.Definitions()
		}

		resp, err := a.client.Chat(spanCtx, llmReq)
		if err != nil {
			telemetry.RecordErrorAndStatus(span, err)
			a.logger.Error("model call failed",
				zap.Error(err),
				zap.Int64("user_id", req.UserID),
				zap.Int("round", round),
			)
			reply.Response = ApologyMessage
			return reply
		}
		usecases.RecordLLMTokensUsed(spanCtx, resp.PromptTokens, resp.CompletionTokens)

		if !withTools || len(resp.Message.ToolCalls) == 0 {
			reply.Response = finalResponse(resp.Message.Content, reply)
			return reply
		}

		messages = append(messages, domain.LLMMessage{
			Role:      domain.LLMRole_Assistant,
			Content:   resp.Message.Content,
			ToolCalls: resp.Message.ToolCalls,
		})
		for _, call := range resp.Message.ToolCalls {
			args := json.RawMessage(call.Arguments)
			result := a.registry.Execute(spanCtx, call.Name, req.UserID, args)
			reply.RecordToolCall(string(domain.CanonicalToolName(call.Name)), args, result)
			messages = append(messages, domain.LLMMessage{
				Role:       domain.LLMRole_Tool,
				Content:    encodeToolResult(result),
				ToolCallID: call.ID,
			})
		}
	}

	reply.Response = finalResponse("", reply)
	return reply
}

func (a ModelAgent) buildMessages(req domain.AgentRequest) []domain.LLMMessage {
	today := a.timeProvider.Now().Format(time.DateOnly)

	messages := make([]domain.LLMMessage, 0, len(a.prompt)+len(req.History)+1)
	for _, m := range a.prompt {
		if m.Role == domain.LLMRole_System {
			m.Content = fmt.Sprintf(m.Content, today)
		}
		messages = append(messages, m)
	}
	for _, turn := range req.History {
		role := domain.LLMRole_User
		if turn.Role == domain.SenderType_Assistant {
			role = domain.LLMRole_Assistant
		}
		messages = append(messages, domain.LLMMessage{Role: role, Content: turn.Content})
	}
	return append(messages, domain.LLMMessage{Role: domain.LLMRole_User, Content: req.Message})
}

// finalResponse falls back to the recorded actions when the model returns no text.
func finalResponse(content string, reply domain.AgentReply) string {
	if text := strings.TrimSpace(content); text != "" {
		return text
	}
	if len(reply.ActionsTaken) > 0 {
		return "Done. " + strings.Join(reply.ActionsTaken, "; ")
	}
	return ApologyMessage
}

// encodeToolResult renders a tool result for the model, as TOON when possible.
func encodeToolResult(result domain.ToolResult) string {
	encoded, err := toon.MarshalString(result, toon.WithLengthMarkers(true))
	if err == nil {
		return encoded
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Sprintf(`{"success":%t,"message":%q}`, result.Success, result.Message)
	}
	return string(raw)
}

func loadChatPrompt() ([]domain.LLMMessage, error) {
	file, err := chatPrompt.Open("prompts/chat.yml")
	if err != nil {
		return nil, fmt.Errorf("failed to open chat prompt: %w", err)
	}
	defer file.Close() //nolint:errcheck

	messages := []domain.LLMMessage{}
	if err := yaml.NewDecoder(file).Decode(&messages); err != nil {
		return nil, fmt.Errorf("failed to decode chat prompt: %w", err)
	}
	return messages, nil
}

func isConfigured(value string) bool {
	v := strings.TrimSpace(value)
	return v != "" && v != "-"
}
