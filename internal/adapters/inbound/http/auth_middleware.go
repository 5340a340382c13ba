package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
)

type userContextKey struct{}

// requireAuth resolves the bearer token of the request into the current user.
// Requests without a valid token never reach next.
func (api TaskChatServer) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			w.Header().Set("WWW-Authenticate", "Bearer")
			respondError(w, newErrorResp(UNAUTHORIZED, "not authenticated"))
			return
		}

		user, err := api.AuthenticateTokenUseCase.Query(r.Context(), token)
		if err != nil {
			w.Header().Set("WWW-Authenticate", "Bearer")
			respondError(w, toError(err))
			return
		}

		next(w, r.WithContext(withUser(r.Context(), user)))
	}
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func withUser(ctx context.Context, user domain.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

func currentUser(ctx context.Context) domain.User {
	user, _ := ctx.Value(userContextKey{}).(domain.User)
	return user
}
