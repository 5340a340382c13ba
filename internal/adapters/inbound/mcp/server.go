// Package mcp exposes the tool registry to Model Context Protocol clients.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont-taskchat/internal/usecases"
	"github.com/modelcontextprotocol/go-sdk/auth"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

const (
	serverName    = "taskchat"
	serverVersion = "1.0.0"
	userIDKey     = "user_id"
)

// NewServer builds an MCP server with one tool per registry definition.
func NewServer(registry domain.ToolRegistry, logger *zap.Logger) *sdk.Server {
	server := sdk.NewServer(&sdk.Implementation{Name: serverName, Version: serverVersion}, nil)
	for _, def := range registry.Definitions() {
		server.AddTool(&sdk.Tool{
			Name:        def.Function.Name,
			Description: def.Function.Description,
			InputSchema: def.Function.Parameters,
		}, toolHandler(registry, def.Function.Name, logger))
	}
	return server
}

// NewHandler serves server over streamable HTTP. Every request must carry a bearer
// token accepted by AuthenticateToken; the tools run on behalf of its user.
func NewHandler(
	registry domain.ToolRegistry,
	authenticate usecases.AuthenticateToken,
	issuer domain.TokenIssuer,
	logger *zap.Logger,
) http.Handler {
	server := NewServer(registry, logger)
	handler := sdk.NewStreamableHTTPHandler(func(*http.Request) *sdk.Server {
		return server
	}, nil)
	return auth.RequireBearerToken(verifyToken(authenticate, issuer), nil)(handler)
}

func verifyToken(authenticate usecases.AuthenticateToken, issuer domain.TokenIssuer) auth.TokenVerifier {
	return func(ctx context.Context, token string, _ *http.Request) (*auth.TokenInfo, error) {
		claims, err := issuer.Verify(token)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
		}
		user, err := authenticate.Query(ctx, token)
		if err != nil {
			var unauthorized *domain.UnauthorizedErr
			if errors.As(err, &unauthorized) {
				return nil, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
			}
			return nil, err
		}
		return &auth.TokenInfo{
			Expiration: claims.ExpiresAt,
			Extra:      map[string]any{userIDKey: user.ID},
		}, nil
	}
}

func toolHandler(registry domain.ToolRegistry, name string, logger *zap.Logger) sdk.ToolHandler {
	return func(ctx context.Context, req *sdk.CallToolRequest) (*sdk.CallToolResult, error) {
		userID, ok := requestUserID(req)
		if !ok {
			return toCallToolResult(domain.ToolFailure("Unauthorized: missing user identity")), nil
		}

		var args json.RawMessage
		if req.Params != nil {
			args = req.Params.Arguments
		}
		result := registry.Execute(ctx, name, userID, args)
		logger.Debug("mcp tool call",
			zap.String("tool", name),
			zap.Int64("user_id", userID),
			zap.Bool("success", result.Success),
		)
		return toCallToolResult(result), nil
	}
}

func requestUserID(req *sdk.CallToolRequest) (int64, bool) {
	if req == nil || req.Extra == nil || req.Extra.TokenInfo == nil {
		return 0, false
	}
	userID, ok := req.Extra.TokenInfo.Extra[userIDKey].(int64)
	return userID, ok && userID > 0
}

// toCallToolResult returns the JSON encoded ToolResult as the only text content.
func toCallToolResult(result domain.ToolResult) *sdk.CallToolResult {
	raw, err := json.Marshal(result)
	if err != nil {
		raw = []byte(fmt.Sprintf(`{"success":false,"message":%q}`, err.Error()))
	}
	return &sdk.CallToolResult{
		Content: []sdk.Content{&sdk.TextContent{Text: string(raw)}},
		IsError: !result.Success,
	}
}
