package http

import (
	"net/http"

	"github.com/cleitonmarx/symbiont-taskchat/internal/usecases"
	"go.uber.org/zap"
)

// Send a chat message to the assistant
// (POST /api/v1/users/{user_id}/chat)
func (api TaskChatServer) Chat(w http.ResponseWriter, r *http.Request) {
	user, ok := pathUser(w, r)
	if !ok {
		return
	}
	var req ChatRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := api.SendChatMessageUseCase.Execute(r.Context(), usecases.SendChatMessageInput{
		UserID:         user.ID,
		Message:        req.Message,
		ConversationID: req.ConversationId,
	})
	if err != nil {
		api.Logger.Error("chat turn failed", zap.Error(err), zap.Int64("user_id", user.ID))
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toChatResp(result))
}
