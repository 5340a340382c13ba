package domain

import (
	"context"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"
)

// User represents a registered account that owns tasks and conversations.
type User struct {
	ID             int64
	Username       string
	Email          string
	HashedPassword string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate checks the user fields required at registration.
func (u User) Validate() error {
	username := strings.TrimSpace(u.Username)
	if username == "" {
		return NewValidationErr("username cannot be empty")
	}
	if n := utf8.RuneCountInString(username); n < 3 || n > 50 {
		return NewValidationErr("username must be between 3 and 50 characters")
	}
	if strings.ContainsAny(username, " \t\n") {
		return NewValidationErr("username cannot contain whitespace")
	}
	if u.Email == "" {
		return NewValidationErr("email cannot be empty")
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return NewValidationErr("email is not valid")
	}
	if u.HashedPassword == "" {
		return NewValidationErr("password hash cannot be empty")
	}
	return nil
}

// UserRepository defines the interface for interacting with users in the data store.
type UserRepository interface {
	// CreateUser stores a new user and returns it with the generated ID.
	CreateUser(ctx context.Context, user User) (User, error)
	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, id int64) (User, bool, error)
	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (User, bool, error)
	// UserExists reports whether the username or the email is already taken.
	UserExists(ctx context.Context, username, email string) (bool, error)
}
