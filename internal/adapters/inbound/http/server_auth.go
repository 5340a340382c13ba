package http

import (
	"net/http"

	"github.com/cleitonmarx/symbiont-taskchat/internal/usecases"
	"go.uber.org/zap"
)

// Register a new user
// (POST /api/v1/auth/register)
func (api TaskChatServer) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := api.RegisterUserUseCase.Execute(r.Context(), usecases.RegisterUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		api.Logger.Debug("register failed", zap.Error(err))
		respondError(w, toError(err))
		return
	}

	token, err := api.TokenIssuer.Issue(user)
	if err != nil {
		api.Logger.Error("issuing token after registration failed", zap.Error(err), zap.Int64("user_id", user.ID))
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusCreated, AuthResp{
		User:        toUser(user),
		AccessToken: token.Token,
		TokenType:   "bearer",
		ExpiresAt:   token.ExpiresAt,
	})
}

// Log in and obtain a bearer token
// (POST /api/v1/auth/login)
func (api TaskChatServer) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	token, err := api.LoginUserUseCase.Execute(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, TokenResp{
		AccessToken: token.Token,
		TokenType:   "bearer",
		ExpiresAt:   token.ExpiresAt,
	})
}

// Revoke the current token
// (POST /api/v1/auth/logout)
func (api TaskChatServer) Logout(w http.ResponseWriter, r *http.Request) {
	token, _ := bearerToken(r)
	if err := api.LogoutUserUseCase.Execute(r.Context(), token); err != nil {
		api.Logger.Error("logout failed", zap.Error(err), zap.Int64("user_id", currentUser(r.Context()).ID))
		respondError(w, toError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Current user
// (GET /api/v1/auth/me)
func (api TaskChatServer) Me(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, toUser(currentUser(r.Context())))
}
