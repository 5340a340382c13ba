package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont-taskchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// LogoutUser defines the interface for the LogoutUser use case.
type LogoutUser interface {
	Execute(ctx context.Context, token string) error
}

// LogoutUserImpl is the implementation of the LogoutUser use case.
type LogoutUserImpl struct {
	issuer       domain.TokenIssuer
	revocations  domain.TokenRevocationStore
	timeProvider domain.CurrentTimeProvider
}

// NewLogoutUserImpl creates a new instance of LogoutUserImpl.
func NewLogoutUserImpl(issuer domain.TokenIssuer, revocations domain.TokenRevocationStore, timeProvider domain.CurrentTimeProvider) LogoutUserImpl {
	return LogoutUserImpl{
		issuer:       issuer,
		revocations:  revocations,
		timeProvider: timeProvider,
	}
}

// Execute revokes the token for the rest of its lifetime.
func (lui LogoutUserImpl) Execute(ctx context.Context, token string) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	claims, err := lui.issuer.Verify(token)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	ttl := claims.ExpiresAt.Sub(lui.timeProvider.Now())
	if ttl <= 0 {
		return nil
	}

	err = lui.revocations.Revoke(spanCtx, token, ttl)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// InitLogoutUser initializes the LogoutUser use case.
type InitLogoutUser struct {
	Issuer       domain.TokenIssuer          `resolve:""`
	Revocations  domain.TokenRevocationStore `resolve:""`
	TimeProvider domain.CurrentTimeProvider  `resolve:""`
}

// Initialize registers the LogoutUser use case.
func (i InitLogoutUser) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[LogoutUser](NewLogoutUserImpl(i.Issuer, i.Revocations, i.TimeProvider))
	return ctx, nil
}
