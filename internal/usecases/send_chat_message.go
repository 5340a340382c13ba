package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont-taskchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// ForeignConversationMessage is reported when a user addresses a conversation owned by somebody else.
const ForeignConversationMessage = "Unauthorized: You can only access your own conversations"

// SendChatMessageInput holds a chat request.
type SendChatMessageInput struct {
	UserID         int64
	Message        string
	ConversationID string
}

// ChatTurnResult is the outcome of one answered chat message.
type ChatTurnResult struct {
	ConversationID uuid.UUID
	MessageID      uuid.UUID
	Response       string
	ToolCalls      []domain.ToolCallRecord
	ActionsTaken   []string
	Strategy       domain.AgentStrategy
}

// SendChatMessage defines the interface for the SendChatMessage use case.
type SendChatMessage interface {
	Execute(ctx context.Context, input SendChatMessageInput) (ChatTurnResult, error)
}

// SendChatMessageImpl is the implementation of the SendChatMessage use case.
type SendChatMessageImpl struct {
	uow          domain.UnitOfWork
	agent        domain.ChatAgent
	timeProvider domain.CurrentTimeProvider
	logger       *zap.Logger
	historyLimit int
}

// NewSendChatMessageImpl creates a new instance of SendChatMessageImpl.
func NewSendChatMessageImpl(
	uow domain.UnitOfWork,
	agent domain.ChatAgent,
	timeProvider domain.CurrentTimeProvider,
	logger *zap.Logger,
	historyLimit int,
) SendChatMessageImpl {
	return SendChatMessageImpl{
		uow:          uow,
		agent:        agent,
		timeProvider: timeProvider,
		logger:       logger,
		historyLimit: historyLimit,
	}
}

// Execute runs one chat turn. Every write commits on its own and no transaction is
// open while the agent works.
func (sci SendChatMessageImpl) Execute(ctx context.Context, input SendChatMessageInput) (ChatTurnResult, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		telemetry.UserID(input.UserID),
		attribute.String("strategy", string(sci.agent.Strategy())),
	))
	defer span.End()

	text := strings.TrimSpace(input.Message)
	if text == "" {
		err := domain.NewValidationErr("message cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return ChatTurnResult{}, err
	}

	conversation, history, err := sci.resolveConversation(spanCtx, input.UserID, input.ConversationID, text)
	if telemetry.RecordErrorAndStatus(span, err) {
		return ChatTurnResult{}, err
	}

	userMessage := domain.Message{
		ID:             newMessageID(),
		ConversationID: conversation.ID,
		SenderType:     domain.SenderType_User,
		Content:        text,
		MessageType:    domain.MessageType_Text,
		CreatedAt:      sci.timeProvider.Now(),
	}
	err = sci.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		return uow.Message().CreateMessage(spanCtx, userMessage)
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return ChatTurnResult{}, err
	}

	reply := sci.agent.ProcessRequest(spanCtx, domain.AgentRequest{
		UserID:  input.UserID,
		Message: text,
		History: history,
	})

	assistantMessage, err := newAssistantMessage(conversation.ID, reply, sci.timeProvider.Now())
	if telemetry.RecordErrorAndStatus(span, err) {
		return ChatTurnResult{}, err
	}
	err = sci.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		return uow.Message().CreateMessage(spanCtx, assistantMessage)
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return ChatTurnResult{}, err
	}

	err = sci.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		return uow.Conversation().TouchConversation(spanCtx, conversation.ID, assistantMessage.CreatedAt)
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return ChatTurnResult{}, err
	}

	RecordChatTurn(spanCtx, string(sci.agent.Strategy()))
	sci.logger.Info("chat turn completed",
		zap.Int64("user_id", input.UserID),
		zap.String("conversation_id", conversation.ID.String()),
		zap.Int("tool_calls", len(reply.ToolCalls)),
	)

	toolCalls := reply.ToolCalls
	if toolCalls == nil {
		toolCalls = []domain.ToolCallRecord{}
	}
	actions := reply.ActionsTaken
	if actions == nil {
		actions = []string{}
	}

	return ChatTurnResult{
		ConversationID: conversation.ID,
		MessageID:      assistantMessage.ID,
		Response:       reply.Response,
		ToolCalls:      toolCalls,
		ActionsTaken:   actions,
		Strategy:       sci.agent.Strategy(),
	}, nil
}

// resolveConversation returns the addressed conversation with its recent history, or a
// freshly created one when rawID is empty, malformed or unknown.
func (sci SendChatMessageImpl) resolveConversation(ctx context.Context, userID int64, rawID, text string) (domain.Conversation, []domain.Turn, error) {
	if id, err := uuid.Parse(strings.TrimSpace(rawID)); err == nil {
		conversation, found, err := sci.uow.Conversation().GetConversation(ctx, id)
		if err != nil {
			return domain.Conversation{}, nil, err
		}
		if found {
			if !conversation.IsOwnedBy(userID) {
				return domain.Conversation{}, nil, domain.NewForbiddenErr(ForeignConversationMessage)
			}
			messages, err := sci.uow.Message().ListMessages(ctx, conversation.ID, sci.historyLimit)
			if err != nil {
				return domain.Conversation{}, nil, err
			}
			return conversation, toTurns(messages), nil
		}
	}

	now := sci.timeProvider.Now()
	conversation := domain.Conversation{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     domain.GenerateAutoConversationTitle(text),
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := sci.uow.Execute(ctx, func(uow domain.UnitOfWork) error {
		return uow.Conversation().CreateConversation(ctx, conversation)
	})
	if err != nil {
		return domain.Conversation{}, nil, err
	}
	return conversation, []domain.Turn{}, nil
}

// toTurns keeps the user and assistant messages as agent history.
func toTurns(messages []domain.Message) []domain.Turn {
	turns := make([]domain.Turn, 0, len(messages))
	for _, m := range messages {
		if m.SenderType != domain.SenderType_User && m.SenderType != domain.SenderType_Assistant {
			continue
		}
		turns = append(turns, domain.Turn{Role: m.SenderType, Content: m.Content})
	}
	return turns
}

// newMessageID returns a time-ordered UUIDv7, so messages stored with the same
// created_at still sort in insertion order.
func newMessageID() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// newAssistantMessage builds the reply row. Only the first tool call is recorded on it.
func newAssistantMessage(conversationID uuid.UUID, reply domain.AgentReply, now time.Time) (domain.Message, error) {
	msg := domain.Message{
		ID:             newMessageID(),
		ConversationID: conversationID,
		SenderType:     domain.SenderType_Assistant,
		Content:        reply.Response,
		MessageType:    domain.MessageType_Text,
		CreatedAt:      now,
	}
	if len(reply.ToolCalls) == 0 {
		return msg, nil
	}

	first := reply.ToolCalls[0]
	result, err := json.Marshal(first.Result)
	if err != nil {
		return domain.Message{}, fmt.Errorf("encode tool result: %w", err)
	}
	msg.MessageType = domain.MessageType_ToolCall
	msg.ToolUsed = first.Name
	msg.ToolParameters = first.Args
	msg.ToolResult = result
	return msg, nil
}

// InitSendChatMessage initializes the SendChatMessage use case.
type InitSendChatMessage struct {
	Uow          domain.UnitOfWork          `resolve:""`
	Agent        domain.ChatAgent           `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *zap.Logger                `resolve:""`
	HistoryLimit int                        `config:"CHAT_HISTORY_LIMIT" default:"20"`
}

// Initialize registers the SendChatMessage use case.
func (i InitSendChatMessage) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[SendChatMessage](NewSendChatMessageImpl(i.Uow, i.Agent, i.TimeProvider, i.Logger, i.HistoryLimit))
	return ctx, nil
}
