package usecases

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter          = otel.Meter("usecases")
	LLMTokensUsed  metric.Int64Counter
	ToolExecutions metric.Int64Counter
	ChatTurns      metric.Int64Counter
)

func init() {
	var err error
	// Tokens consumed by LLM (input + output)
	LLMTokensUsed, err = meter.Int64Counter(
		"llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		panic(err)
	}

	ToolExecutions, err = meter.Int64Counter(
		"tool_executions_total",
		metric.WithDescription("Total task tool executions"),
	)
	if err != nil {
		panic(err)
	}

	ChatTurns, err = meter.Int64Counter(
		"chat_turns_total",
		metric.WithDescription("Total chat turns answered by an agent"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordLLMTokensUsed records the number of tokens used in an LLM chat operation.
func RecordLLMTokensUsed(ctx context.Context, promptTokens, completionTokens int) {
	LLMTokensUsed.Add(ctx, int64(promptTokens), metric.WithAttributes(
		attribute.String("token_type", "prompt"),
	))
	LLMTokensUsed.Add(ctx, int64(completionTokens), metric.WithAttributes(
		attribute.String("token_type", "completion"),
	))
}

// RecordToolExecution counts one tool run and whether it succeeded.
func RecordToolExecution(ctx context.Context, tool string, success bool) {
	ToolExecutions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tool", tool),
		attribute.Bool("success", success),
	))
}

// RecordChatTurn counts one answered chat message per agent strategy.
func RecordChatTurn(ctx context.Context, strategy string) {
	ChatTurns.Add(ctx, 1, metric.WithAttributes(
		attribute.String("strategy", strategy),
	))
}
