package usecases

import (
	"context"
	"strings"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont-taskchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

const (
	incorrectCredentialsMessage = "incorrect username or password"
	inactiveUserMessage         = "inactive user"
)

// LoginUser defines the interface for the LoginUser use case.
type LoginUser interface {
	Execute(ctx context.Context, username, password string) (domain.AccessToken, error)
}

// LoginUserImpl is the implementation of the LoginUser use case.
type LoginUserImpl struct {
	userRepo domain.UserRepository
	hasher   domain.PasswordHasher
	issuer   domain.TokenIssuer
}

// NewLoginUserImpl creates a new instance of LoginUserImpl.
func NewLoginUserImpl(userRepo domain.UserRepository, hasher domain.PasswordHasher, issuer domain.TokenIssuer) LoginUserImpl {
	return LoginUserImpl{
		userRepo: userRepo,
		hasher:   hasher,
		issuer:   issuer,
	}
}

// Execute checks the credentials and issues a bearer token.
func (lui LoginUserImpl) Execute(ctx context.Context, username, password string) (domain.AccessToken, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	user, found, err := lui.userRepo.GetUserByUsername(spanCtx, strings.TrimSpace(username))
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.AccessToken{}, err
	}
	if !found || !lui.hasher.Compare(user.HashedPassword, password) {
		err := domain.NewUnauthorizedErr(incorrectCredentialsMessage)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.AccessToken{}, err
	}
	if !user.IsActive {
		err := domain.NewUnauthorizedErr(inactiveUserMessage)
		telemetry.RecordErrorAndStatus(span, err)
		return domain.AccessToken{}, err
	}

	token, err := lui.issuer.Issue(user)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.AccessToken{}, err
	}
	return token, nil
}

// InitLoginUser initializes the LoginUser use case.
type InitLoginUser struct {
	UserRepo domain.UserRepository `resolve:""`
	Hasher   domain.PasswordHasher `resolve:""`
	Issuer   domain.TokenIssuer    `resolve:""`
}

// Initialize registers the LoginUser use case.
func (i InitLoginUser) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[LoginUser](NewLoginUserImpl(i.UserRepo, i.Hasher, i.Issuer))
	return ctx, nil
}
