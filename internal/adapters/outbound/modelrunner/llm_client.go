// Package modelrunner adapts an OpenAI-compatible chat completions API to domain.LLMClient.
package modelrunner

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont-taskchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ChatCompleter is the subset of the go-openai client used by LLMClient.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// LLMClient adapts the go-openai client to the domain.LLMClient interface.
type LLMClient struct {
	client ChatCompleter
}

// NewLLMClient creates a new LLMClient.
func NewLLMClient(client ChatCompleter) LLMClient {
	return LLMClient{client: client}
}

// NewOpenAIClient builds a go-openai client for baseURL using httpClient as transport.
func NewOpenAIClient(baseURL, apiKey string, httpClient *http.Client) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	return openai.NewClientWithConfig(cfg)
}

// Chat implements domain.LLMClient.Chat
func (c LLMClient) Chat(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("llm.model", req.Model),
		attribute.Int("llm.tools", len(req.Tools)),
	))
	defer span.End()

	resp, err := c.client.CreateChatCompletion(spanCtx, toChatCompletionRequest(req))
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.LLMResponse{}, fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		err := errors.New("no choices in response")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.LLMResponse{}, err
	}

	return domain.LLMResponse{
		Message:          fromChatCompletionMessage(resp.Choices[0].Message),
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
	}, nil
}

func toChatCompletionRequest(req domain.LLMRequest) openai.ChatCompletionRequest {
	out := openai.ChatCompletionRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]openai.ChatCompletionMessage, 0, len(req.Messages)),
	}

	for _, msg := range req.Messages {
		m := openai.ChatCompletionMessage{
			Role:       string(msg.Role),
			Content:    msg.Content,
			ToolCallID: msg.ToolCallID,
		}
		for _, tc := range msg.ToolCalls {
			m.ToolCalls = append(m.ToolCalls, openai.ToolCall{
				ID:   tc.ID,
				Type: openai.ToolTypeFunction,
				Function: openai.FunctionCall{
					Name:      tc.Name,
					Arguments: tc.Arguments,
				},
			})
		}
		out.Messages = append(out.Messages, m)
	}

	for _, def := range req.Tools {
		out.Tools = append(out.Tools, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        def.Function.Name,
				Description: def.Function.Description,
				Parameters:  def.Function.Parameters,
			},
		})
	}

	return out
}

func fromChatCompletionMessage(msg openai.ChatCompletionMessage) domain.LLMMessage {
	out := domain.LLMMessage{
		Role:    domain.LLMRole(msg.Role),
		Content: msg.Content,
	}
	for _, tc := range msg.ToolCalls {
		out.ToolCalls = append(out.ToolCalls, domain.LLMToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		})
	}
	return out
}

// InitLLMClient initializes the LLMClient dependency
type InitLLMClient struct {
	HttpClient *http.Client `resolve:""`
	BaseURL    string       `config:"LLM_BASE_URL" default:"https://api.openai.com/v1"`
	APIKey     string       `config:"LLM_API_KEY" default:"-"`
}

// Initialize registers the LLMClient
func (i InitLLMClient) Initialize(ctx context.Context) (context.Context, error) {
	apiKey := i.APIKey
	if apiKey == "-" {
		apiKey = ""
	}
	depend.Register[domain.LLMClient](NewLLMClient(
		NewOpenAIClient(i.BaseURL, apiKey, i.HttpClient),
	))
	return ctx, nil
}
