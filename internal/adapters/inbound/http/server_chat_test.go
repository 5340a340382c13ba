package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont-taskchat/internal/usecases"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTaskChatServer_Chat(t *testing.T) {
	conversationID := uuid.MustParse("6f1c2b9e-3d4a-4e5f-8a7b-1c2d3e4f5a6b")
	messageID := uuid.MustParse("0b7d4c1e-8f9a-4b2c-9d3e-5f6a7b8c9d0e")
	taskID := int64(12)
	created := domain.ToolResult{Success: true, Message: "Task 'buy milk' created successfully", TaskID: &taskID}

	tests := map[string]struct {
		target         string
		requestBody    []byte
		setupMocks     func(m *usecases.MockSendChatMessage)
		expectedStatus int
		assertBody     func(t *testing.T, body []byte)
	}{
		"turn-with-tool-call": {
			target:      "/api/v1/users/7/chat",
			requestBody: serializeJSON(t, ChatRequest{Message: "Create a task to buy milk"}),
			setupMocks: func(m *usecases.MockSendChatMessage) {
				m.EXPECT().
					Execute(mock.Anything, usecases.SendChatMessageInput{UserID: 7, Message: "Create a task to buy milk"}).
					Return(usecases.ChatTurnResult{
						ConversationID: conversationID,
						MessageID:      messageID,
						Response:       "Task 'buy milk' created successfully",
						ToolCalls: []domain.ToolCallRecord{
							{Name: "add_task", Args: json.RawMessage(`{"title":"buy milk"}`), Result: created},
						},
						ActionsTaken: []string{"add_task: Task 'buy milk' created successfully"},
						Strategy:     domain.AgentStrategy_RuleBased,
					}, nil).
					Once()
			},
			expectedStatus: http.StatusOK,
			assertBody: func(t *testing.T, body []byte) {
				assert.JSONEq(t, `{
					"conversation_id": "6f1c2b9e-3d4a-4e5f-8a7b-1c2d3e4f5a6b",
					"message_id": "0b7d4c1e-8f9a-4b2c-9d3e-5f6a7b8c9d0e",
					"response": "Task 'buy milk' created successfully",
					"tool_calls": [{
						"name": "add_task",
						"args": {"title": "buy milk"},
						"result": {"success": true, "message": "Task 'buy milk' created successfully", "task_id": 12}
					}],
					"actions_taken": ["add_task: Task 'buy milk' created successfully"],
					"strategy": "rules"
				}`, string(body))
			},
		},
		"plain-reply-has-empty-lists": {
			target:      "/api/v1/users/7/chat",
			requestBody: serializeJSON(t, ChatRequest{Message: "Just saying hi", ConversationId: conversationID.String()}),
			setupMocks: func(m *usecases.MockSendChatMessage) {
				m.EXPECT().
					Execute(mock.Anything, usecases.SendChatMessageInput{
						UserID:         7,
						Message:        "Just saying hi",
						ConversationID: conversationID.String(),
					}).
					Return(usecases.ChatTurnResult{
						ConversationID: conversationID,
						MessageID:      messageID,
						Response:       "Hello!",
						Strategy:       domain.AgentStrategy_Model,
					}, nil).
					Once()
			},
			expectedStatus: http.StatusOK,
			assertBody: func(t *testing.T, body []byte) {
				var got ChatResp
				require.NoError(t, json.Unmarshal(body, &got))
				assert.Equal(t, "Hello!", got.Response)
				assert.NotNil(t, got.ToolCalls)
				assert.Empty(t, got.ToolCalls)
				assert.NotNil(t, got.ActionsTaken)
				assert.Empty(t, got.ActionsTaken)
			},
		},
		"other-user-path": {
			target:         "/api/v1/users/8/chat",
			requestBody:    serializeJSON(t, ChatRequest{Message: "hi"}),
			setupMocks:     func(m *usecases.MockSendChatMessage) {},
			expectedStatus: http.StatusForbidden,
		},
		"empty-message": {
			target:      "/api/v1/users/7/chat",
			requestBody: serializeJSON(t, ChatRequest{Message: ""}),
			setupMocks: func(m *usecases.MockSendChatMessage) {
				m.EXPECT().
					Execute(mock.Anything, usecases.SendChatMessageInput{UserID: 7}).
					Return(usecases.ChatTurnResult{}, domain.NewValidationErr("message cannot be empty")).
					Once()
			},
			expectedStatus: http.StatusBadRequest,
		},
		"foreign-conversation": {
			target:      "/api/v1/users/7/chat",
			requestBody: serializeJSON(t, ChatRequest{Message: "hi", ConversationId: conversationID.String()}),
			setupMocks: func(m *usecases.MockSendChatMessage) {
				m.EXPECT().
					Execute(mock.Anything, mock.Anything).
					Return(usecases.ChatTurnResult{}, domain.NewForbiddenErr(usecases.ForeignConversationMessage)).
					Once()
			},
			expectedStatus: http.StatusForbidden,
		},
		"persistence-failure": {
			target:      "/api/v1/users/7/chat",
			requestBody: serializeJSON(t, ChatRequest{Message: "hi"}),
			setupMocks: func(m *usecases.MockSendChatMessage) {
				m.EXPECT().
					Execute(mock.Anything, mock.Anything).
					Return(usecases.ChatTurnResult{}, errors.New("database error")).
					Once()
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			sendChat := usecases.NewMockSendChatMessage(t)
			tt.setupMocks(sendChat)
			server := TaskChatServer{
				Logger:                   zap.NewNop(),
				AuthenticateTokenUseCase: authenticatedAs(t, testUser),
				SendChatMessageUseCase:   sendChat,
			}

			w := doRequest(server.Handler(), http.MethodPost, tt.target, tt.requestBody)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.assertBody != nil {
				tt.assertBody(t, w.Body.Bytes())
			}
		})
	}
}

func TestToChatResp_MalformedToolArguments(t *testing.T) {
	var reply domain.AgentReply
	reply.RecordToolCall("add_task", json.RawMessage(`{"title": "buy`), domain.ToolFailure("Invalid arguments: unexpected EOF"))

	resp := toChatResp(usecases.ChatTurnResult{
		ConversationID: uuid.MustParse("6f1c2b9e-3d4a-4e5f-8a7b-1c2d3e4f5a6b"),
		MessageID:      uuid.MustParse("0b7d4c1e-8f9a-4b2c-9d3e-5f6a7b8c9d0e"),
		Response:       "Sorry, that failed.",
		ToolCalls:      reply.ToolCalls,
		ActionsTaken:   reply.ActionsTaken,
	})

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded struct {
		ToolCalls []struct {
			Args string `json:"args"`
		} `json:"tool_calls"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Len(t, decoded.ToolCalls, 1)
	assert.Equal(t, `{"title": "buy`, decoded.ToolCalls[0].Args)
}
