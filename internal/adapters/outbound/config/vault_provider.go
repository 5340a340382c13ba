package config

import (
	"context"
	"fmt"
	"sync"

	"github.com/cleitonmarx/symbiont/config"
	"github.com/hashicorp/vault/api"
)

// VaultProvider serves secrets such as JWT_SECRET or LLM_API_KEY from a
// single HashiCorp Vault KV v2 secret. The secret is read once and cached.
type VaultProvider struct {
	client     *api.Client
	mountPath  string
	secretPath string
	cache      *secretCache
}

type secretCache struct {
	mu     sync.Mutex
	values map[string]any
}

// NewVaultProvider creates a VaultProvider for the secret at mountPath/secretPath
// on the Vault server at the given address.
func NewVaultProvider(server, token, mountPath, secretPath string) (VaultProvider, error) {
	switch {
	case server == "":
		return VaultProvider{}, fmt.Errorf("server is required")
	case token == "":
		return VaultProvider{}, fmt.Errorf("token is required")
	case mountPath == "":
		return VaultProvider{}, fmt.Errorf("mountPath is required")
	case secretPath == "":
		return VaultProvider{}, fmt.Errorf("secretPath is required")
	}

	cfg := api.DefaultConfig()
	cfg.Address = server
	client, err := api.NewClient(cfg)
	if err != nil {
		return VaultProvider{}, fmt.Errorf("failed to create vault client: %w", err)
	}
	client.SetToken(token)

	return VaultProvider{
		client:     client,
		mountPath:  mountPath,
		secretPath: secretPath,
		cache:      &secretCache{},
	}, nil
}

// Get returns the string stored under key in the configured secret.
func (vp VaultProvider) Get(ctx context.Context, key string) (string, error) {
	values, err := vp.load(ctx)
	if err != nil {
		return "", err
	}

	value, ok := values[key]
	if !ok {
		return "", fmt.Errorf("vault secret %s does not contain key %s", vp.secretPath, key)
	}
	str, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("vault secret %s is not a string", key)
	}
	return str, nil
}

// load fetches the secret on first use. Failed reads are retried on the next call.
func (vp VaultProvider) load(ctx context.Context) (map[string]any, error) {
	vp.cache.mu.Lock()
	defer vp.cache.mu.Unlock()

	if vp.cache.values != nil {
		return vp.cache.values, nil
	}

	secret, err := vp.client.KVv2(vp.mountPath).Get(ctx, vp.secretPath)
	if err != nil {
		return nil, err
	}
	if secret == nil || secret.Data == nil {
		return nil, fmt.Errorf("vault secret %s not found", vp.secretPath)
	}
	vp.cache.values = secret.Data
	return vp.cache.values, nil
}

var _ config.Provider = (*VaultProvider)(nil)
