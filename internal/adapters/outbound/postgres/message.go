package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"slices"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont-taskchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var messageFields = []string{
	"id",
	"conversation_id",
	"sender_type",
	"content",
	"message_type",
	"tool_used",
	"tool_parameters",
	"tool_result",
	"created_at",
}

// MessageRepository is a PostgreSQL implementation of domain.MessageRepository.
type MessageRepository struct {
	sb squirrel.StatementBuilderType
}

// NewMessageRepository creates a new instance of MessageRepository.
func NewMessageRepository(br squirrel.BaseRunner) MessageRepository {
	return MessageRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// CreateMessage appends a message to its conversation.
func (r MessageRepository) CreateMessage(ctx context.Context, message domain.Message) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("conversation_id", message.ConversationID.String()),
		attribute.String("sender_type", string(message.SenderType)),
	))
	defer span.End()

	_, err := r.sb.
		Insert("messages").
		Columns(messageFields...).
		Values(
			message.ID,
			message.ConversationID,
			message.SenderType,
			message.Content,
			message.MessageType,
			nullableString(message.ToolUsed),
			nullableJSON(message.ToolParameters),
			nullableJSON(message.ToolResult),
			message.CreatedAt,
		).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// ListMessages returns the latest messages of a conversation in chronological order.
func (r MessageRepository) ListMessages(ctx context.Context, conversationID uuid.UUID, limit int) ([]domain.Message, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("conversation_id", conversationID.String()),
		attribute.Int("limit", limit),
	))
	defer span.End()

	qry := r.sb.
		Select(messageFields...).
		From("messages").
		Where(squirrel.Eq{"conversation_id": conversationID}).
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		qry = qry.Limit(uint64(limit))
	}

	rows, err := qry.QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	messages := []domain.Message{}
	for rows.Next() {
		var (
			msg            domain.Message
			toolUsed       sql.NullString
			toolParameters []byte
			toolResult     []byte
		)
		err := rows.Scan(
			&msg.ID,
			&msg.ConversationID,
			&msg.SenderType,
			&msg.Content,
			&msg.MessageType,
			&toolUsed,
			&toolParameters,
			&toolResult,
			&msg.CreatedAt,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		msg.ToolUsed = toolUsed.String
		if len(toolParameters) > 0 {
			msg.ToolParameters = json.RawMessage(toolParameters)
		}
		if len(toolResult) > 0 {
			msg.ToolResult = json.RawMessage(toolResult)
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	slices.Reverse(messages)
	return messages, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullableJSON(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return []byte(raw)
}

// InitMessageRepository is a Symbiont initializer for MessageRepository.
type InitMessageRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the MessageRepository in the dependency container.
func (i InitMessageRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.MessageRepository](NewMessageRepository(i.DB))
	return ctx, nil
}
