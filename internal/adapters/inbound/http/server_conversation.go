package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont-taskchat/internal/usecases"
	"github.com/google/uuid"
)

// List conversations for the user
// (GET /api/v1/users/{user_id}/conversations)
func (api TaskChatServer) ListConversations(w http.ResponseWriter, r *http.Request) {
	user, ok := pathUser(w, r)
	if !ok {
		return
	}

	conversations, err := api.ListConversationsUseCase.Query(r.Context(), user.ID)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	resp := ConversationListResp{
		Conversations: make([]Conversation, len(conversations)),
	}
	for i, c := range conversations {
		resp.Conversations[i] = toConversation(c)
	}

	respondJSON(w, http.StatusOK, resp)
}

// Get a conversation with its messages
// (GET /api/v1/users/{user_id}/conversations/{conversation_id})
func (api TaskChatServer) GetConversation(w http.ResponseWriter, r *http.Request) {
	user, ok := pathUser(w, r)
	if !ok {
		return
	}
	rawID := r.PathValue("conversation_id")
	conversationID, err := uuid.Parse(rawID)
	if err != nil {
		respondError(w, newErrorResp(NOTFOUND, fmt.Sprintf("Conversation %s not found", rawID)))
		return
	}

	found, err := api.GetConversationUseCase.Query(r.Context(), user.ID, conversationID)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	resp := ConversationDetailResp{
		Conversation: toConversation(found.Conversation),
		Messages:     make([]Message, len(found.Messages)),
	}
	for i, m := range found.Messages {
		resp.Messages[i] = toMessage(m)
	}

	respondJSON(w, http.StatusOK, resp)
}

// pathUser returns the authenticated user after checking it is the one named by {user_id}.
func pathUser(w http.ResponseWriter, r *http.Request) (domain.User, bool) {
	user := currentUser(r.Context())
	raw := r.PathValue("user_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respondError(w, newErrorResp(BADREQUEST, fmt.Sprintf("invalid user_id '%s'", raw)))
		return domain.User{}, false
	}
	if id != user.ID {
		respondError(w, newErrorResp(FORBIDDEN, usecases.ForeignConversationMessage))
		return domain.User{}, false
	}
	return user, true
}
