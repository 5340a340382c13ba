package http

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont-taskchat/internal/usecases"
)

func toError(err error) ErrorResp {
	var (
		validationErr   *domain.ValidationErr
		unauthorizedErr *domain.UnauthorizedErr
		forbiddenErr    *domain.ForbiddenErr
		notFoundErr     *domain.NotFoundErr
		conflictErr     *domain.ConflictErr
	)
	switch {
	case errors.As(err, &validationErr):
		return newErrorResp(BADREQUEST, validationErr.Error())
	case errors.As(err, &unauthorizedErr):
		return newErrorResp(UNAUTHORIZED, unauthorizedErr.Error())
	case errors.As(err, &forbiddenErr):
		return newErrorResp(FORBIDDEN, forbiddenErr.Error())
	case errors.As(err, &notFoundErr):
		return newErrorResp(NOTFOUND, notFoundErr.Error())
	case errors.As(err, &conflictErr):
		return newErrorResp(CONFLICT, conflictErr.Error())
	default:
		return newErrorResp(INTERNALERROR, "internal server error")
	}
}

func toUser(u domain.User) User {
	return User{
		Id:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toTask(t domain.Task) Task {
	task := Task{
		Id:          t.ID,
		UserId:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.DueDate != nil {
		d := t.DueDate.Format(time.DateOnly)
		task.DueDate = &d
	}
	return task
}

func toConversation(c domain.Conversation) Conversation {
	return Conversation{
		Id:        c.ID.String(),
		UserId:    c.UserID,
		Title:     c.Title,
		Metadata:  c.Metadata,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toMessage(m domain.Message) Message {
	msg := Message{
		Id:             m.ID.String(),
		ConversationId: m.ConversationID.String(),
		SenderType:     string(m.SenderType),
		Content:        m.Content,
		MessageType:    string(m.MessageType),
		ToolParameters: m.ToolParameters,
		ToolResult:     m.ToolResult,
		Timestamp:      m.CreatedAt,
	}
	if m.ToolUsed != "" {
		msg.ToolUsed = &m.ToolUsed
	}
	return msg
}

func toChatResp(result usecases.ChatTurnResult) ChatResp {
	resp := ChatResp{
		ConversationId: result.ConversationID.String(),
		MessageId:      result.MessageID.String(),
		Response:       result.Response,
		ToolCalls:      make([]ToolCall, 0, len(result.ToolCalls)),
		ActionsTaken:   result.ActionsTaken,
		Strategy:       string(result.Strategy),
	}
	if resp.ActionsTaken == nil {
		resp.ActionsTaken = []string{}
	}
	for _, call := range result.ToolCalls {
		raw, _ := json.Marshal(call.Result) // ToolResult holds only plain fields
		resp.ToolCalls = append(resp.ToolCalls, ToolCall{
			Name:   call.Name,
			Args:   call.Args,
			Result: raw,
		})
	}
	return resp
}
