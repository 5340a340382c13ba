package domain

import (
	"context"
	"time"
)

// TokenClaims are the identity facts carried by an access token.
type TokenClaims struct {
	UserID    int64
	Username  string
	ExpiresAt time.Time
}

// AccessToken is an issued bearer token.
type AccessToken struct {
	Token     string
	ExpiresAt time.Time
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) bool
}

// TokenIssuer issues and verifies bearer tokens.
type TokenIssuer interface {
	Issue(user User) (AccessToken, error)
	Verify(token string) (TokenClaims, error)
}

// TokenRevocationStore keeps track of tokens invalidated before they expire.
type TokenRevocationStore interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
