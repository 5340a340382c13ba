package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont-taskchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// ConversationWithMessages is a conversation together with its messages in timestamp order.
type ConversationWithMessages struct {
	Conversation domain.Conversation
	Messages     []domain.Message
}

// GetConversation defines the interface for the GetConversation use case.
type GetConversation interface {
	Query(ctx context.Context, userID int64, conversationID uuid.UUID) (ConversationWithMessages, error)
}

// GetConversationImpl is the implementation of the GetConversation use case.
type GetConversationImpl struct {
	conversationRepo domain.ConversationRepository
	messageRepo      domain.MessageRepository
}

// NewGetConversationImpl creates a new instance of GetConversationImpl.
func NewGetConversationImpl(conversationRepo domain.ConversationRepository, messageRepo domain.MessageRepository) GetConversationImpl {
	return GetConversationImpl{
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
	}
}

// Query returns the conversation and all of its messages. Conversations owned by other
// users are reported as missing.
func (gci GetConversationImpl) Query(ctx context.Context, userID int64, conversationID uuid.UUID) (ConversationWithMessages, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	conversation, found, err := gci.conversationRepo.GetConversation(spanCtx, conversationID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return ConversationWithMessages{}, err
	}
	if !found || !conversation.IsOwnedBy(userID) {
		err := domain.NewNotFoundErr(fmt.Sprintf("Conversation %s not found", conversationID))
		telemetry.RecordErrorAndStatus(span, err)
		return ConversationWithMessages{}, err
	}

	messages, err := gci.messageRepo.ListMessages(spanCtx, conversationID, 0)
	if telemetry.RecordErrorAndStatus(span, err) {
		return ConversationWithMessages{}, err
	}

	return ConversationWithMessages{
		Conversation: conversation,
		Messages:     messages,
	}, nil
}

// InitGetConversation initializes the GetConversation use case.
type InitGetConversation struct {
	ConversationRepo domain.ConversationRepository `resolve:""`
	MessageRepo      domain.MessageRepository      `resolve:""`
}

// Initialize registers the GetConversation use case.
func (i InitGetConversation) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetConversation](NewGetConversationImpl(i.ConversationRepo, i.MessageRepo))
	return ctx, nil
}
