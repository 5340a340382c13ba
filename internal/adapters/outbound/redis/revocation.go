package redis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cleitonmarx/symbiont-taskchat/internal/domain"
	"github.com/cleitonmarx/symbiont-taskchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const revokedKeyPrefix = "blacklist:"

// RevocationStore records revoked tokens in Redis until they would have expired anyway.
type RevocationStore struct {
	client *goredis.Client
}

// NewRevocationStore creates a new RevocationStore.
func NewRevocationStore(client *goredis.Client) RevocationStore {
	return RevocationStore{client: client}
}

// Revoke marks the token as revoked for ttl.
func (s RevocationStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if ttl <= 0 {
		telemetry.RecordErrorAndStatus(span, nil)
		return nil
	}

	err := s.client.Set(spanCtx, revokedKeyPrefix+token, "true", ttl).Err()
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token was revoked.
func (s RevocationStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := s.client.Get(spanCtx, revokedKeyPrefix+token).Result()
	if errors.Is(err, goredis.Nil) {
		telemetry.RecordErrorAndStatus(span, nil)
		return false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, fmt.Errorf("check token revocation: %w", err)
	}
	return true, nil
}

// MemoryRevocationStore keeps revoked tokens in process memory.
// Used when no Redis server is configured; revocations do not survive restarts.
type MemoryRevocationStore struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	clock   domain.CurrentTimeProvider
}

// NewMemoryRevocationStore creates an empty MemoryRevocationStore.
func NewMemoryRevocationStore(clock domain.CurrentTimeProvider) *MemoryRevocationStore {
	return &MemoryRevocationStore{
		revoked: map[string]time.Time{},
		clock:   clock,
	}
}

// Revoke marks the token as revoked for ttl.
func (s *MemoryRevocationStore) Revoke(_ context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	for t, exp := range s.revoked {
		if !now.Before(exp) {
			delete(s.revoked, t)
		}
	}
	s.revoked[token] = now.Add(ttl)
	return nil
}

// IsRevoked reports whether the token was revoked and has not yet expired.
func (s *MemoryRevocationStore) IsRevoked(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exp, ok := s.revoked[token]
	if !ok {
		return false, nil
	}
	if !s.clock.Now().Before(exp) {
		delete(s.revoked, token)
		return false, nil
	}
	return true, nil
}

// InitRevocationStore registers the domain.TokenRevocationStore.
// REDIS_ADDR "-" selects the in-memory store.
type InitRevocationStore struct {
	Logger   *zap.Logger                `resolve:""`
	Clock    domain.CurrentTimeProvider `resolve:""`
	Addr     string                     `config:"REDIS_ADDR" default:"-"`
	Password string                     `config:"REDIS_PASSWORD" default:"-"`
	DB       int                        `config:"REDIS_DB" default:"0"`
	client   *goredis.Client
}

// Initialize connects to Redis when configured and registers the store.
func (i *InitRevocationStore) Initialize(ctx context.Context) (context.Context, error) {
	if i.Addr == "-" || i.Addr == "" {
		i.Logger.Info("redis not configured, token revocations kept in memory")
		depend.Register[domain.TokenRevocationStore](NewMemoryRevocationStore(i.Clock))
		return ctx, nil
	}

	password := i.Password
	if password == "-" {
		password = ""
	}
	client := goredis.NewClient(&goredis.Options{
		Addr:     i.Addr,
		Password: password,
		DB:       i.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return ctx, fmt.Errorf("failed to connect to redis at %s: %w", i.Addr, err)
	}

	i.client = client
	depend.Register[domain.TokenRevocationStore](NewRevocationStore(client))
	return ctx, nil
}

// Close closes the Redis connection.
func (i *InitRevocationStore) Close() {
	if i.client != nil {
		if err := i.client.Close(); err != nil {
			i.Logger.Error("closing redis client", zap.Error(err))
		}
	}
}
