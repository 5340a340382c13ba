package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestUserRepository_CreateUser(t *testing.T) {
	fixedTime := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	user := domain.User{
		Username:       "alice",
		Email:          "alice@example.com",
		HashedPassword: "$2a$10$hash",
		IsActive:       true,
		CreatedAt:      fixedTime,
		UpdatedAt:      fixedTime,
	}
	const insertSQL = "INSERT INTO users (username,email,hashed_password,is_active,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6) RETURNING id"

	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		expectedUser    domain.User
		expectedErr     error
	}{
		"success": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(insertSQL).
					WithArgs(user.Username, user.Email, user.HashedPassword, user.IsActive, user.CreatedAt, user.UpdatedAt).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
			},
			expectedUser: func() domain.User {
				u := user
				u.ID = 7
				return u
			}(),
		},
		"unique-violation": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(insertSQL).
					WithArgs(user.Username, user.Email, user.HashedPassword, user.IsActive, user.CreatedAt, user.UpdatedAt).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectedErr: domain.NewConflictErr("username or email already registered"),
		},
		"database-error": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(insertSQL).
					WithArgs(user.Username, user.Email, user.HashedPassword, user.IsActive, user.CreatedAt, user.UpdatedAt).
					WillReturnError(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.setExpectations(mock)

			repo := NewUserRepository(db)
			got, gotErr := repo.CreateUser(context.Background(), user)
			assert.Equal(t, tt.expectedErr, gotErr)
			assert.Equal(t, tt.expectedUser, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetUser(t *testing.T) {
	fixedTime := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	user := domain.User{
		ID:             7,
		Username:       "alice",
		Email:          "alice@example.com",
		HashedPassword: "$2a$10$hash",
		IsActive:       true,
		CreatedAt:      fixedTime,
		UpdatedAt:      fixedTime,
	}
	const selectSQL = "SELECT id, username, email, hashed_password, is_active, created_at, updated_at FROM users WHERE id = $1 LIMIT 1"

	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		expectedUser    domain.User
		expectedFound   bool
		expectErr       bool
	}{
		"success": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectSQL).
					WithArgs(user.ID).
					WillReturnRows(sqlmock.NewRows(userFields).AddRow(
						user.ID, user.Username, user.Email, user.HashedPassword, user.IsActive, user.CreatedAt, user.UpdatedAt,
					))
			},
			expectedUser:  user,
			expectedFound: true,
		},
		"not-found": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectSQL).
					WithArgs(user.ID).
					WillReturnError(sql.ErrNoRows)
			},
		},
		"database-error": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectSQL).
					WithArgs(user.ID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.setExpectations(mock)

			repo := NewUserRepository(db)
			got, found, gotErr := repo.GetUser(context.Background(), user.ID)
			if tt.expectErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
			}
			assert.Equal(t, tt.expectedFound, found)
			assert.Equal(t, tt.expectedUser, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetUserByUsername(t *testing.T) {
	fixedTime := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	mock.ExpectQuery("SELECT id, username, email, hashed_password, is_active, created_at, updated_at FROM users WHERE username = $1 LIMIT 1").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userFields).AddRow(
			int64(7), "alice", "alice@example.com", "$2a$10$hash", true, fixedTime, fixedTime,
		))

	got, found, err := NewUserRepository(db).GetUserByUsername(context.Background(), "alice")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UserExists(t *testing.T) {
	const existsSQL = "SELECT 1 FROM users WHERE (username = $1 OR email = $2) LIMIT 1"

	tests := map[string]struct {
		setExpectations func(mock sqlmock.Sqlmock)
		expected        bool
		expectErr       bool
	}{
		"exists": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(existsSQL).
					WithArgs("alice", "alice@example.com").
					WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
			},
			expected: true,
		},
		"does-not-exist": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(existsSQL).
					WithArgs("alice", "alice@example.com").
					WillReturnRows(sqlmock.NewRows([]string{"?column?"}))
			},
		},
		"database-error": {
			setExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(existsSQL).
					WithArgs("alice", "alice@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.setExpectations(mock)

			got, gotErr := NewUserRepository(db).UserExists(context.Background(), "alice", "alice@example.com")
			if tt.expectErr {
				assert.Error(t, gotErr)
			} else {
				assert.NoError(t, gotErr)
			}
			assert.Equal(t, tt.expected, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInitUserRepository_Initialize(t *testing.T) {
	_, err := InitUserRepository{DB: &sql.DB{}}.Initialize(context.Background())
	assert.NoError(t, err)

	_, err = depend.Resolve[domain.UserRepository]()
	assert.NoError(t, err)
}
