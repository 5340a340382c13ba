package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetConversationImpl_Query(t *testing.T) {
	conversationID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	conversation := domain.Conversation{ID: conversationID, UserID: 7, Title: "Groceries"}
	messages := []domain.Message{
		{ConversationID: conversationID, SenderType: domain.SenderType_User, Content: "hi"},
		{ConversationID: conversationID, SenderType: domain.SenderType_Assistant, Content: "hello"},
	}

	tests := map[string]struct {
		userID          int64
		setExpectations func(convRepo *domain.MockConversationRepository, msgRepo *domain.MockMessageRepository)
		expected        ConversationWithMessages
		expectedErr     error
	}{
		"success": {
			userID: 7,
			setExpectations: func(convRepo *domain.MockConversationRepository, msgRepo *domain.MockMessageRepository) {
				convRepo.EXPECT().GetConversation(mock.Anything, conversationID).Return(conversation, true, nil)
				msgRepo.EXPECT().ListMessages(mock.Anything, conversationID, 0).Return(messages, nil)
			},
			expected: ConversationWithMessages{Conversation: conversation, Messages: messages},
		},
		"missing": {
			userID: 7,
			setExpectations: func(convRepo *domain.MockConversationRepository, msgRepo *domain.MockMessageRepository) {
				convRepo.EXPECT().GetConversation(mock.Anything, conversationID).Return(domain.Conversation{}, false, nil)
			},
			expectedErr: domain.NewNotFoundErr("Conversation 123e4567-e89b-12d3-a456-426614174000 not found"),
		},
		"not-owned": {
			userID: 8,
			setExpectations: func(convRepo *domain.MockConversationRepository, msgRepo *domain.MockMessageRepository) {
				convRepo.EXPECT().GetConversation(mock.Anything, conversationID).Return(conversation, true, nil)
			},
			expectedErr: domain.NewNotFoundErr("Conversation 123e4567-e89b-12d3-a456-426614174000 not found"),
		},
		"messages-error": {
			userID: 7,
			setExpectations: func(convRepo *domain.MockConversationRepository, msgRepo *domain.MockMessageRepository) {
				convRepo.EXPECT().GetConversation(mock.Anything, conversationID).Return(conversation, true, nil)
				msgRepo.EXPECT().ListMessages(mock.Anything, conversationID, 0).Return(nil, errors.New("db down"))
			},
			expectedErr: errors.New("db down"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			convRepo := domain.NewMockConversationRepository(t)
			msgRepo := domain.NewMockMessageRepository(t)
			tt.setExpectations(convRepo, msgRepo)

			got, err := NewGetConversationImpl(convRepo, msgRepo).Query(context.Background(), tt.userID, conversationID)

			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInitGetConversation_Initialize(t *testing.T) {
	i := InitGetConversation{
		ConversationRepo: domain.NewMockConversationRepository(t),
		MessageRepo:      domain.NewMockMessageRepository(t),
	}

	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	r, err := depend.Resolve[GetConversation]()
	assert.NoError(t, err)
	assert.NotNil(t, r)
}
