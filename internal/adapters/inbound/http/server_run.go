package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-taskchat/internal/adapters/inbound/mcp"
	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont-taskchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont-taskchat/internal/usecases"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// TaskChatServer is the REST, chat and MCP HTTP server of the TaskChat application.
type TaskChatServer struct {
	Port                     int                        `config:"HTTP_PORT" default:"8080"`
	Logger                   *zap.Logger                `resolve:""`
	TimeProvider             domain.CurrentTimeProvider `resolve:""`
	TokenIssuer              domain.TokenIssuer         `resolve:""`
	ToolRegistry             domain.ToolRegistry        `resolve:""`
	RegisterUserUseCase      usecases.RegisterUser      `resolve:""`
	LoginUserUseCase         usecases.LoginUser         `resolve:""`
	LogoutUserUseCase        usecases.LogoutUser        `resolve:""`
	AuthenticateTokenUseCase usecases.AuthenticateToken `resolve:""`
	CreateTaskUseCase        usecases.CreateTask        `resolve:""`
	ListTasksUseCase         usecases.ListTasks         `resolve:""`
	GetTaskUseCase           usecases.GetTask           `resolve:""`
	UpdateTaskUseCase        usecases.UpdateTask        `resolve:""`
	DeleteTaskUseCase        usecases.DeleteTask        `resolve:""`
	SendChatMessageUseCase   usecases.SendChatMessage   `resolve:""`
	ListConversationsUseCase usecases.ListConversations `resolve:""`
	GetConversationUseCase   usecases.GetConversation   `resolve:""`
}

// Handler returns the routed handler with telemetry and CORS applied.
func (api TaskChatServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", Healthz)
	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("GET /introspect", IntrospectHandler)

	mux.HandleFunc("POST /api/v1/auth/register", api.Register)
	mux.HandleFunc("POST /api/v1/auth/login", api.Login)
	mux.HandleFunc("POST /api/v1/auth/logout", api.requireAuth(api.Logout))
	mux.HandleFunc("GET /api/v1/auth/me", api.requireAuth(api.Me))

	mux.HandleFunc("GET /api/v1/tasks", api.requireAuth(api.ListTasks))
	mux.HandleFunc("POST /api/v1/tasks", api.requireAuth(api.CreateTask))
	mux.HandleFunc("GET /api/v1/tasks/{task_id}", api.requireAuth(api.GetTask))
	mux.HandleFunc("PUT /api/v1/tasks/{task_id}", api.requireAuth(api.UpdateTask))
	mux.HandleFunc("DELETE /api/v1/tasks/{task_id}", api.requireAuth(api.DeleteTask))
	mux.HandleFunc("PATCH /api/v1/tasks/{task_id}/status", api.requireAuth(api.SetTaskStatus))
	mux.HandleFunc("PATCH /api/v1/tasks/{task_id}/complete", api.requireAuth(api.CompleteTask))
	mux.HandleFunc("PATCH /api/v1/tasks/{task_id}/pending", api.requireAuth(api.MarkTaskPending))

	mux.HandleFunc("POST /api/v1/users/{user_id}/chat", api.requireAuth(api.Chat))
	mux.HandleFunc("GET /api/v1/users/{user_id}/conversations", api.requireAuth(api.ListConversations))
	mux.HandleFunc("GET /api/v1/users/{user_id}/conversations/{conversation_id}", api.requireAuth(api.GetConversation))

	if api.ToolRegistry != nil {
		mux.Handle("/mcp", mcp.NewHandler(api.ToolRegistry, api.AuthenticateTokenUseCase, api.TokenIssuer, api.Logger))
	}

	h := telemetry.Middleware("taskchat-api")(mux)

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(h)
}

// Run starts the HTTP server for the TaskChatServer.
func (api TaskChatServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler:           api.Handler(),
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Info("TaskChatServer: listening", zap.Int("port", api.Port))
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Error("TaskChatServer: error during shutdown", zap.Error(err))
		} else {
			api.Logger.Info("TaskChatServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the TaskChatServer is ready by performing a health check.
func (api TaskChatServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://localhost:%d/healthz", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

// Healthz reports liveness.
func Healthz(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, HealthResp{Status: "ok"})
}
