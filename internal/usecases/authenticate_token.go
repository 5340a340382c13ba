package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont-taskchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// AuthenticateToken defines the interface for resolving a bearer token into its user.
type AuthenticateToken interface {
	Query(ctx context.Context, token string) (domain.User, error)
}

// AuthenticateTokenImpl is the implementation of the AuthenticateToken use case.
type AuthenticateTokenImpl struct {
	issuer      domain.TokenIssuer
	revocations domain.TokenRevocationStore
	userRepo    domain.UserRepository
}

// NewAuthenticateTokenImpl creates a new instance of AuthenticateTokenImpl.
func NewAuthenticateTokenImpl(issuer domain.TokenIssuer, revocations domain.TokenRevocationStore, userRepo domain.UserRepository) AuthenticateTokenImpl {
	return AuthenticateTokenImpl{
		issuer:      issuer,
		revocations: revocations,
		userRepo:    userRepo,
	}
}

// Query verifies the token, rejects revoked ones and loads the active user it names.
func (ati AuthenticateTokenImpl) Query(ctx context.Context, token string) (domain.User, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	claims, err := ati.issuer.Verify(token)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.User{}, err
	}

	revoked, err := ati.revocations.IsRevoked(spanCtx, token)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.User{}, err
	}
	if revoked {
		err := domain.NewUnauthorizedErr("token has been revoked")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.User{}, err
	}

	user, found, err := ati.userRepo.GetUser(spanCtx, claims.UserID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.User{}, err
	}
	if !found {
		err := domain.NewUnauthorizedErr("could not validate credentials")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.User{}, err
	}
	if !user.IsActive {
		err := domain.NewUnauthorizedErr(inactiveUserMessage)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.User{}, err
	}

	return user, nil
}

// InitAuthenticateToken initializes the AuthenticateToken use case.
type InitAuthenticateToken struct {
	Issuer      domain.TokenIssuer          `resolve:""`
	Revocations domain.TokenRevocationStore `resolve:""`
	UserRepo    domain.UserRepository       `resolve:""`
}

// Initialize registers the AuthenticateToken use case.
func (i InitAuthenticateToken) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[AuthenticateToken](NewAuthenticateTokenImpl(i.Issuer, i.Revocations, i.UserRepo))
	return ctx, nil
}
