package security

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher hashes passwords with bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a BcryptHasher. Out of range costs fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return BcryptHasher{cost: cost}
}

// Hash returns the bcrypt hash of password.
func (h BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Compare reports whether password matches the hash.
func (h BcryptHasher) Compare(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

// InitBcryptHasher registers the BcryptHasher as the domain.PasswordHasher.
type InitBcryptHasher struct {
	Cost int `config:"BCRYPT_COST" default:"10"`
}

// Initialize registers the password hasher in the dependency container.
func (i InitBcryptHasher) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.PasswordHasher](NewBcryptHasher(i.Cost))
	return ctx, nil
}
