package assistant

import (
	"context"
	"fmt"
	"time"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"go.uber.org/zap"
)

// InitChatAgent registers the chat agent selected by CHAT_AGENT_STRATEGY.
type InitChatAgent struct {
	Registry      domain.ToolRegistry        `resolve:""`
	LLMClient     domain.LLMClient           `resolve:""`
	TimeProvider  domain.CurrentTimeProvider `resolve:""`
	Logger        *zap.Logger                `resolve:""`
	Strategy      string                     `config:"CHAT_AGENT_STRATEGY" default:"model"`
	Model         string                     `config:"LLM_MODEL" default:"gpt-4o-mini"`
	APIKey        string                     `config:"LLM_API_KEY" default:"-"`
	MaxTokens     int                        `config:"LLM_MAX_TOKENS" default:"1000"`
	MaxToolRounds int                        `config:"LLM_MAX_TOOL_ROUNDS" default:"3"`
	Timeout       time.Duration              `config:"LLM_TIMEOUT" default:"30s"`
}

// Initialize builds the agent and registers it as domain.ChatAgent.
func (i InitChatAgent) Initialize(ctx context.Context) (context.Context, error) {
	switch domain.AgentStrategy(i.Strategy) {
	case domain.AgentStrategy_RuleBased:
		depend.Register[domain.ChatAgent](NewRuleBasedAgent(i.Registry))
	case domain.AgentStrategy_Model:
		agent, err := NewModelAgent(i.LLMClient, i.Registry, i.TimeProvider, i.Logger, ModelAgentConfig{
			Model:         i.Model,
			MaxTokens:     i.MaxTokens,
			MaxToolRounds: i.MaxToolRounds,
			Timeout:       i.Timeout,
		}, i.APIKey)
		if err != nil {
			return ctx, err
		}
		if agent.disabled {
			i.Logger.Warn("model agent has no credentials, chat replies will report the assistant as unavailable")
		}
		depend.Register[domain.ChatAgent](agent)
	default:
		return ctx, fmt.Errorf("unknown chat agent strategy %q: must be %q or %q",
			i.Strategy, domain.AgentStrategy_Model, domain.AgentStrategy_RuleBased)
	}

	i.Logger.Info("chat agent ready", zap.String("strategy", i.Strategy))
	return ctx, nil
}
