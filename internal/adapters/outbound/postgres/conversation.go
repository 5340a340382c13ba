package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont-taskchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var conversationFields = []string{
	"id",
	"user_id",
	"title",
	"metadata",
	"created_at",
	"updated_at",
}

// ConversationRepository is a PostgreSQL implementation of domain.ConversationRepository.
type ConversationRepository struct {
	sb squirrel.StatementBuilderType
}

// NewConversationRepository creates a new instance of ConversationRepository.
func NewConversationRepository(br squirrel.BaseRunner) ConversationRepository {
	return ConversationRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// CreateConversation inserts a conversation.
func (r ConversationRepository) CreateConversation(ctx context.Context, conversation domain.Conversation) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("conversation_id", conversation.ID.String()),
	))
	defer span.End()

	metadata, err := marshalMetadata(conversation.Metadata)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	_, err = r.sb.
		Insert("conversations").
		Columns(conversationFields...).
		Values(
			conversation.ID,
			conversation.UserID,
			conversation.Title,
			metadata,
			conversation.CreatedAt,
			conversation.UpdatedAt,
		).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	return nil
}

// GetConversation retrieves a conversation by ID.
func (r ConversationRepository) GetConversation(ctx context.Context, id uuid.UUID) (domain.Conversation, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("conversation_id", id.String()),
	))
	defer span.End()

	conversation, err := scanConversation(r.sb.
		Select(conversationFields...).
		From("conversations").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		QueryRowContext(spanCtx))
	if errors.Is(err, sql.ErrNoRows) {
		telemetry.RecordErrorAndStatus(span, nil)
		return domain.Conversation{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Conversation{}, false, err
	}

	return conversation, true, nil
}

// TouchConversation sets the conversation updated_at.
func (r ConversationRepository) TouchConversation(ctx context.Context, id uuid.UUID, updatedAt time.Time) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("conversation_id", id.String()),
	))
	defer span.End()

	_, err := r.sb.
		Update("conversations").
		Set("updated_at", updatedAt).
		Where(squirrel.Eq{"id": id}).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// ListConversations lists the user's conversations ordered by last update.
func (r ConversationRepository) ListConversations(ctx context.Context, userID int64) ([]domain.Conversation, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		telemetry.UserID(userID),
	))
	defer span.End()

	rows, err := r.sb.
		Select(conversationFields...).
		From("conversations").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("updated_at DESC").
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	conversations := []domain.Conversation{}
	for rows.Next() {
		conversation, err := scanConversation(rows)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		conversations = append(conversations, conversation)
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return conversations, nil
}

func scanConversation(row squirrel.RowScanner) (domain.Conversation, error) {
	var (
		conversation domain.Conversation
		metadata     []byte
	)
	err := row.Scan(
		&conversation.ID,
		&conversation.UserID,
		&conversation.Title,
		&metadata,
		&conversation.CreatedAt,
		&conversation.UpdatedAt,
	)
	if err != nil {
		return domain.Conversation{}, err
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &conversation.Metadata); err != nil {
			return domain.Conversation{}, fmt.Errorf("decode conversation metadata: %w", err)
		}
	}
	return conversation, nil
}

func marshalMetadata(metadata map[string]any) ([]byte, error) {
	if metadata == nil {
		return []byte("{}"), nil
	}
	b, err := json.Marshal(metadata)
	if err != nil {
		return nil, fmt.Errorf("encode conversation metadata: %w", err)
	}
	return b, nil
}

// InitConversationRepository is a Symbiont initializer for ConversationRepository.
type InitConversationRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the ConversationRepository in the dependency container.
func (i InitConversationRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.ConversationRepository](NewConversationRepository(i.DB))
	return ctx, nil
}
