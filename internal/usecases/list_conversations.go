package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont-taskchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// ListConversations defines the interface for the ListConversations use case
type ListConversations interface {
	// Query returns the user's conversations, most recently updated first.
	Query(ctx context.Context, userID int64) ([]domain.Conversation, error)
}

// ListConversationsImpl is the implementation of the ListConversations use case
type ListConversationsImpl struct {
	conversationRepo domain.ConversationRepository
}

// NewListConversationsImpl creates a new instance of ListConversationsImpl
func NewListConversationsImpl(conversationRepo domain.ConversationRepository) *ListConversationsImpl {
	return &ListConversationsImpl{
		conversationRepo: conversationRepo,
	}
}

// Query returns the user's conversations, most recently updated first.
func (uc *ListConversationsImpl) Query(ctx context.Context, userID int64) ([]domain.Conversation, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	conversations, err := uc.conversationRepo.ListConversations(spanCtx, userID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return conversations, nil
}

// InitListConversations initializes the ListConversations use case and registers it in the dependency container.
type InitListConversations struct {
	ConversationRepo domain.ConversationRepository `resolve:""`
}

// Initialize initializes the ListConversationsImpl use case.
func (init InitListConversations) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListConversations](NewListConversationsImpl(init.ConversationRepo))
	return ctx, nil
}
