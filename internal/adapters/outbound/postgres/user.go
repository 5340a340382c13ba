package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont-taskchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/trace"
)

var userFields = []string{
	"id",
	"username",
	"email",
	"hashed_password",
	"is_active",
	"created_at",
	"updated_at",
}

// UserRepository implements the domain.UserRepository interface using PostgreSQL.
type UserRepository struct {
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(br squirrel.BaseRunner) UserRepository {
	return UserRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// CreateUser inserts a user and returns it with the generated ID.
func (r UserRepository) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	err := r.sb.
		Insert("users").
		Columns(userFields[1:]...).
		Values(
			user.Username,
			user.Email,
			user.HashedPassword,
			user.IsActive,
			user.CreatedAt,
			user.UpdatedAt,
		).
		Suffix("RETURNING id").
		QueryRowContext(spanCtx).
		Scan(&user.ID)
	if isUniqueViolation(err) {
		err = domain.NewConflictErr("username or email already registered")
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.User{}, err
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (r UserRepository) GetUser(ctx context.Context, id int64) (domain.User, bool, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		telemetry.UserID(id),
	))
	defer span.End()

	user, found, err := r.getUserBy(spanCtx, squirrel.Eq{"id": id})
	telemetry.RecordErrorAndStatus(span, err)
	return user, found, err
}

// GetUserByUsername retrieves a user by username.
func (r UserRepository) GetUserByUsername(ctx context.Context, username string) (domain.User, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	user, found, err := r.getUserBy(spanCtx, squirrel.Eq{"username": username})
	telemetry.RecordErrorAndStatus(span, err)
	return user, found, err
}

func (r UserRepository) getUserBy(ctx context.Context, pred squirrel.Eq) (domain.User, bool, error) {
	var user domain.User
	err := r.sb.
		Select(userFields...).
		From("users").
		Where(pred).
		Limit(1).
		QueryRowContext(ctx).
		Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.HashedPassword,
			&user.IsActive,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, false, nil
	}
	if err != nil {
		return domain.User{}, false, err
	}
	return user, true, nil
}

// UserExists reports whether a user with the given username or email exists.
func (r UserRepository) UserExists(ctx context.Context, username, email string) (bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var one int
	err := r.sb.
		Select("1").
		From("users").
		Where(squirrel.Or{
			squirrel.Eq{"username": username},
			squirrel.Eq{"email": email},
		}).
		Limit(1).
		QueryRowContext(spanCtx).
		Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		telemetry.RecordErrorAndStatus(span, nil)
		return false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}
	return true, nil
}

// InitUserRepository is a Symbiont initializer for UserRepository.
type InitUserRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the UserRepository in the dependency container.
func (i InitUserRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.UserRepository](NewUserRepository(i.DB))
	return ctx, nil
}
