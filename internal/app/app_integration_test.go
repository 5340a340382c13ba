//go:build integration

package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const integrationPort = 18080

var baseURL = fmt.Sprintf("http://localhost:%d", integrationPort)

func TestMain(m *testing.M) {
	taskChatApp := NewTaskChatApp(
		&initPostgresContainer{},
		&initEnvVars{
			envVars: map[string]string{
				"HTTP_PORT":           strconv.Itoa(integrationPort),
				"DB_NAME":             "taskchat",
				"JWT_SECRET":          "integration-secret",
				"CHAT_AGENT_STRATEGY": "rules",
				"LOG_LEVEL":           "warn",
			},
		},
	)

	cancelCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownCh := taskChatApp.RunAsync(cancelCtx)

	err := taskChatApp.WaitForReadiness(cancelCtx, 5*time.Minute)
	if err != nil {
		cancel()
		log.Fatalf("TaskChat app failed to become ready: %v", err)
	}

	code := m.Run()

	cancel()
	select {
	case <-time.After(1 * time.Minute):
		log.Fatalf("TaskChat app did not shut down in time")
	case err = <-shutdownCh:
		if err != nil {
			log.Fatalf("TaskChat app shutdown with error: %v", err)
		}
	}

	os.Exit(code)
}

func TestTaskChat_Integration(t *testing.T) {
	var token string
	var userID int64

	t.Run("register-and-login", func(t *testing.T) {
		status, body := call(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
			"username": "alice",
			"email":    "alice@example.com",
			"password": "s3cret-pass",
		})
		require.Equal(t, http.StatusCreated, status, string(body))
		var registered struct {
			AccessToken string `json:"access_token"`
			TokenType   string `json:"token_type"`
		}
		require.NoError(t, json.Unmarshal(body, &registered))
		assert.NotEmpty(t, registered.AccessToken)
		assert.Equal(t, "bearer", registered.TokenType)

		status, body = call(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
			"username": "alice",
			"password": "s3cret-pass",
		})
		require.Equal(t, http.StatusOK, status, string(body))
		var login struct {
			AccessToken string `json:"access_token"`
		}
		require.NoError(t, json.Unmarshal(body, &login))
		token = login.AccessToken

		status, body = call(t, http.MethodGet, "/api/v1/auth/me", token, nil)
		require.Equal(t, http.StatusOK, status)
		var me struct {
			ID int64 `json:"id"`
		}
		require.NoError(t, json.Unmarshal(body, &me))
		userID = me.ID
	})

	var conversationID string
	t.Run("chat-creates-task", func(t *testing.T) {
		status, body := call(t, http.MethodPost, fmt.Sprintf("/api/v1/users/%d/chat", userID), token, map[string]string{
			"message": "Create a task to buy milk",
		})
		require.Equal(t, http.StatusOK, status, string(body))

		var resp struct {
			ConversationID string `json:"conversation_id"`
			ToolCalls      []struct {
				Name string `json:"name"`
			} `json:"tool_calls"`
		}
		require.NoError(t, json.Unmarshal(body, &resp))
		require.Len(t, resp.ToolCalls, 1)
		assert.Equal(t, "add_task", resp.ToolCalls[0].Name)
		conversationID = resp.ConversationID
	})

	t.Run("task-is-listed", func(t *testing.T) {
		status, body := call(t, http.MethodGet, "/api/v1/tasks", token, nil)
		require.Equal(t, http.StatusOK, status)

		var resp struct {
			Items []struct {
				ID     int64  `json:"id"`
				Title  string `json:"title"`
				Status string `json:"status"`
			} `json:"items"`
		}
		require.NoError(t, json.Unmarshal(body, &resp))
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "buy milk", resp.Items[0].Title)
		assert.Equal(t, "pending", resp.Items[0].Status)

		status, _ = call(t, http.MethodPatch, fmt.Sprintf("/api/v1/tasks/%d/complete", resp.Items[0].ID), token, nil)
		assert.Equal(t, http.StatusOK, status)
	})

	t.Run("conversation-has-both-turns", func(t *testing.T) {
		status, body := call(t, http.MethodGet,
			fmt.Sprintf("/api/v1/users/%d/conversations/%s", userID, conversationID), token, nil)
		require.Equal(t, http.StatusOK, status)

		var resp struct {
			Messages []struct {
				SenderType string `json:"sender_type"`
			} `json:"messages"`
		}
		require.NoError(t, json.Unmarshal(body, &resp))
		require.Len(t, resp.Messages, 2)
		assert.Equal(t, "user", resp.Messages[0].SenderType)
		assert.Equal(t, "assistant", resp.Messages[1].SenderType)
	})

	t.Run("logout-revokes-token", func(t *testing.T) {
		status, _ := call(t, http.MethodPost, "/api/v1/auth/logout", token, nil)
		require.Equal(t, http.StatusNoContent, status)

		status, _ = call(t, http.MethodGet, "/api/v1/auth/me", token, nil)
		assert.Equal(t, http.StatusUnauthorized, status)
	})
}

func call(t *testing.T, method, path, token string, payload any) (int, []byte) {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req, err := http.NewRequestWithContext(t.Context(), method, baseURL+path, &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck

	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out.Bytes()
}

// initPostgresContainer starts a throwaway postgres and points DB_HOST/DB_PORT at it.
type initPostgresContainer struct {
	container testcontainers.Container
}

func (i *initPostgresContainer) Initialize(ctx context.Context) (context.Context, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_DB":       "taskchat",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return ctx, err
	}
	i.container = container

	host, err := container.Host(ctx)
	if err != nil {
		return ctx, err
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return ctx, err
	}
	os.Setenv("DB_HOST", host)        //nolint:errcheck
	os.Setenv("DB_PORT", port.Port()) //nolint:errcheck
	return ctx, nil
}

func (i *initPostgresContainer) Close() {
	if i.container != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		if err := i.container.Terminate(ctx); err != nil {
			log.Printf("failed to stop postgres container: %v", err)
		}
	}
}

type initEnvVars struct {
	envVars map[string]string
}

func (i *initEnvVars) Initialize(ctx context.Context) (context.Context, error) {
	for key, value := range i.envVars {
		os.Setenv(key, value) //nolint:errcheck
	}
	return ctx, nil
}

func (i *initEnvVars) Close() {
	for key := range i.envVars {
		os.Unsetenv(key) //nolint:errcheck
	}
}
