package domain

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Conversation represents an ordered, persisted sequence of chat turns owned by one user.
type Conversation struct {
	ID        uuid.UUID
	UserID    int64
	Title     string
	Metadata  map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy reports whether the conversation belongs to the given user.
func (c Conversation) IsOwnedBy(userID int64) bool {
	return c.UserID == userID
}

// ConversationRepository defines the interface for managing conversations.
type ConversationRepository interface {
	// CreateConversation stores a new conversation.
	CreateConversation(ctx context.Context, conversation Conversation) error
	// GetConversation returns the conversation with the given ID and whether it was found.
	GetConversation(ctx context.Context, id uuid.UUID) (Conversation, bool, error)
	// TouchConversation bumps the conversation updated_at to the given time.
	TouchConversation(ctx context.Context, id uuid.UUID, updatedAt time.Time) error
	// ListConversations returns the user's conversations, most recently updated first.
	ListConversations(ctx context.Context, userID int64) ([]Conversation, error)
}

// GenerateAutoConversationTitle generates a conversation title based on the user's initial message.
func GenerateAutoConversationTitle(userMessage string) string {
	words := strings.Fields(userMessage)
	if len(words) == 0 {
		return "New Conversation"
	}
	if len(words) <= 5 {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:5], " ") + "..."
}
