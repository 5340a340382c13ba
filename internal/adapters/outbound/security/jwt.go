package security

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TaskChatClaims are the JWT claims issued for authenticated users.
type TaskChatClaims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTIssuer issues and verifies HS256 signed access tokens.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	issuer string
	clock  domain.CurrentTimeProvider
}

// NewJWTIssuer creates a new JWTIssuer.
func NewJWTIssuer(secret string, ttl time.Duration, issuer string, clock domain.CurrentTimeProvider) (JWTIssuer, error) {
	if secret == "" {
		return JWTIssuer{}, errors.New("jwt secret is required")
	}
	if ttl <= 0 {
		return JWTIssuer{}, errors.New("jwt ttl must be positive")
	}
	return JWTIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
		clock:  clock,
	}, nil
}

// Issue signs a new access token for the user.
func (j JWTIssuer) Issue(user domain.User) (domain.AccessToken, error) {
	now := j.clock.Now()
	expiresAt := now.Add(j.ttl)
	claims := TaskChatClaims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    j.issuer,
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return domain.AccessToken{}, fmt.Errorf("sign token: %w", err)
	}
	return domain.AccessToken{Token: signed, ExpiresAt: expiresAt}, nil
}

// Verify parses and validates the token. Any failure is reported as an UnauthorizedErr.
func (j JWTIssuer) Verify(token string) (domain.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &TaskChatClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return j.secret, nil
	},
		jwt.WithIssuer(j.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.clock.Now),
	)
	if err != nil {
		return domain.TokenClaims{}, domain.NewUnauthorizedErr("invalid or expired token")
	}

	claims, ok := parsed.Claims.(*TaskChatClaims)
	if !ok || !parsed.Valid || claims.UserID <= 0 {
		return domain.TokenClaims{}, domain.NewUnauthorizedErr("invalid or expired token")
	}

	return domain.TokenClaims{
		UserID:    claims.UserID,
		Username:  claims.Username,
		ExpiresAt: claims.ExpiresAt.Time.UTC(),
	}, nil
}

// InitJWTIssuer registers the JWTIssuer as the domain.TokenIssuer.
type InitJWTIssuer struct {
	Clock  domain.CurrentTimeProvider `resolve:""`
	Secret string                     `config:"JWT_SECRET"`
	TTL    time.Duration              `config:"JWT_TTL" default:"30m"`
	Issuer string                     `config:"JWT_ISSUER" default:"taskchat"`
}

// Initialize registers the token issuer in the dependency container.
func (i InitJWTIssuer) Initialize(ctx context.Context) (context.Context, error) {
	issuer, err := NewJWTIssuer(i.Secret, i.TTL, i.Issuer, i.Clock)
	if err != nil {
		return ctx, err
	}
	depend.Register[domain.TokenIssuer](issuer)
	return ctx, nil
}
