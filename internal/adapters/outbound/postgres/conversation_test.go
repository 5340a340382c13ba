package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const conversationColumns = "id, user_id, title, metadata, created_at, updated_at"

func fixtureConversation() domain.Conversation {
	fixedTime := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return domain.Conversation{
		ID:        uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
		UserID:    7,
		Title:     "Groceries",
		Metadata:  map[string]any{"source": "web"},
		CreatedAt: fixedTime,
		UpdatedAt: fixedTime,
	}
}

func TestConversationRepository_CreateConversation(t *testing.T) {
	conversation := fixtureConversation()
	const insertSQL = "INSERT INTO conversations (id,user_id,title,metadata,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6)"

	tests := map[string]struct {
		conversation    domain.Conversation
		setExpectations func(mock sqlmock.Sqlmock)
		expectedErr     error
	}{
		"success": {
			conversation: conversation,
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(insertSQL).
					WithArgs(conversation.ID, conversation.UserID, conversation.Title, []byte(`{"source":"web"}`), conversation.CreatedAt, conversation.UpdatedAt).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		"nil-metadata-stored-as-empty-object": {
			conversation: func() domain.Conversation {
				c := conversation
				c.Metadata = nil
				return c
			}(),
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(insertSQL).
					WithArgs(conversation.ID, conversation.UserID, conversation.Title, []byte(`{}`), conversation.CreatedAt, conversation.UpdatedAt).
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
		},
		"database-error": {
			conversation: conversation,
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(insertSQL).
					WithArgs(conversation.ID, conversation.UserID, conversation.Title, []byte(`{"source":"web"}`), conversation.CreatedAt, conversation.UpdatedAt).
					WillReturnError(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.setExpectations(mock)

			gotErr := NewConversationRepository(db).CreateConversation(context.Background(), tt.conversation)
			assert.Equal(t, tt.expectedErr, gotErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestConversationRepository_GetConversation(t *testing.T) {
	conversation := fixtureConversation()
	const selectSQL = "SELECT " + conversationColumns + " FROM conversations WHERE id = $1 LIMIT 1"

	tests := map[string]struct {
		setExpectations      func(mock sqlmock.Sqlmock)
		expectedConversation domain.Conversation
		expectedFound        bool
		expectErr            bool
	}{
		"success": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectSQL).
					WithArgs(conversation.ID).
					WillReturnRows(sqlmock.NewRows(conversationFields).AddRow(
						conversation.ID.String(),
						conversation.UserID,
						conversation.Title,
						[]byte(`{"source":"web"}`),
						conversation.CreatedAt,
						conversation.UpdatedAt,
					))
			},
			expectedConversation: conversation,
			expectedFound:        true,
		},
		"not-found": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectSQL).WithArgs(conversation.ID).WillReturnError(sql.ErrNoRows)
			},
		},
		"invalid-metadata": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectSQL).
					WithArgs(conversation.ID).
					WillReturnRows(sqlmock.NewRows(conversationFields).AddRow(
						conversation.ID.String(),
						conversation.UserID,
						conversation.Title,
						[]byte(`not-json`),
						conversation.CreatedAt,
						conversation.UpdatedAt,
					))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.setExpectations(mock)

			got, found, gotErr := NewConversationRepository(db).GetConversation(context.Background(), conversation.ID)
			if tt.expectErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
			}
			assert.Equal(t, tt.expectedFound, found)
			assert.Equal(t, tt.expectedConversation, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestConversationRepository_TouchConversation(t *testing.T) {
	id := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	touchedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	mock.ExpectExec("UPDATE conversations SET updated_at = $1 WHERE id = $2").
		WithArgs(touchedAt, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = NewConversationRepository(db).TouchConversation(context.Background(), id, touchedAt)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConversationRepository_ListConversations(t *testing.T) {
	conversation := fixtureConversation()
	const listSQL = "SELECT " + conversationColumns + " FROM conversations WHERE user_id = $1 ORDER BY updated_at DESC"

	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		expected        []domain.Conversation
		expectErr       bool
	}{
		"success": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(listSQL).
					WithArgs(int64(7)).
					WillReturnRows(sqlmock.NewRows(conversationFields).AddRow(
						conversation.ID.String(),
						conversation.UserID,
						conversation.Title,
						[]byte(`{"source":"web"}`),
						conversation.CreatedAt,
						conversation.UpdatedAt,
					))
			},
			expected: []domain.Conversation{conversation},
		},
		"empty": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(listSQL).WithArgs(int64(7)).WillReturnRows(sqlmock.NewRows(conversationFields))
			},
			expected: []domain.Conversation{},
		},
		"database-error": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(listSQL).WithArgs(int64(7)).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.setExpectations(mock)

			got, gotErr := NewConversationRepository(db).ListConversations(context.Background(), 7)
			if tt.expectErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
			}
			assert.Equal(t, tt.expected, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInitConversationRepository_Initialize(t *testing.T) {
	_, err := InitConversationRepository{DB: &sql.DB{}}.Initialize(context.Background())
	assert.NoError(t, err)

	_, err = depend.Resolve[domain.ConversationRepository]()
	assert.NoError(t, err)
}
