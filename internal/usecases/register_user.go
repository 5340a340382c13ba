package usecases

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont-taskchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 8

// RegisterUserInput holds the registration form.
type RegisterUserInput struct {
	Username string
	Email    string
	Password string
}

// RegisterUser defines the interface for the RegisterUser use case.
type RegisterUser interface {
	Execute(ctx context.Context, input RegisterUserInput) (domain.User, error)
}

// RegisterUserImpl is the implementation of the RegisterUser use case.
type RegisterUserImpl struct {
	uow          domain.UnitOfWork
	hasher       domain.PasswordHasher
	timeProvider domain.CurrentTimeProvider
}

// NewRegisterUserImpl creates a new instance of RegisterUserImpl.
func NewRegisterUserImpl(uow domain.UnitOfWork, hasher domain.PasswordHasher, timeProvider domain.CurrentTimeProvider) RegisterUserImpl {
	return RegisterUserImpl{
		uow:          uow,
		hasher:       hasher,
		timeProvider: timeProvider,
	}
}

// Execute validates the form, hashes the password and stores an active user.
func (rui RegisterUserImpl) Execute(ctx context.Context, input RegisterUserInput) (domain.User, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if utf8.RuneCountInString(input.Password) < MinPasswordLength {
		err := domain.NewValidationErr(fmt.Sprintf("password must be at least %d characters", MinPasswordLength))
		telemetry.RecordErrorAndStatus(span, err)
		return domain.User{}, err
	}

	hashed, err := rui.hasher.Hash(input.Password)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.User{}, err
	}

	now := rui.timeProvider.Now()
	user := domain.User{
		Username:       strings.TrimSpace(input.Username),
		Email:          strings.TrimSpace(input.Email),
		HashedPassword: hashed,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := user.Validate(); err != nil {
		telemetry.RecordErrorAndStatus(span, err)
		return domain.User{}, err
	}

	err = rui.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		exists, err := uow.User().UserExists(spanCtx, user.Username, user.Email)
		if err != nil {
			return err
		}
		if exists {
			return domain.NewConflictErr("username or email already registered")
		}
		created, err := uow.User().CreateUser(spanCtx, user)
		if err != nil {
			return err
		}
		user = created
		return nil
	})
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.User{}, err
	}

	return user, nil
}

// InitRegisterUser initializes the RegisterUser use case.
type InitRegisterUser struct {
	Uow          domain.UnitOfWork          `resolve:""`
	Hasher       domain.PasswordHasher      `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize registers the RegisterUser use case.
func (i InitRegisterUser) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RegisterUser](NewRegisterUserImpl(i.Uow, i.Hasher, i.TimeProvider))
	return ctx, nil
}
