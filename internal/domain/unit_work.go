package domain

import "context"

// UnitOfWork represents a unit of work for managing repositories and transactions.
type UnitOfWork interface {
	// User returns the repository for managing users.
	User() UserRepository
	// Task returns the repository for managing tasks.
	Task() TaskRepository
	// Conversation returns the repository for managing conversations.
	Conversation() ConversationRepository
	// Message returns the repository for managing conversation messages.
	Message() MessageRepository
	// Execute runs a function within the context of a unit of work.
	Execute(ctx context.Context, fn func(uow UnitOfWork) error) error
}
