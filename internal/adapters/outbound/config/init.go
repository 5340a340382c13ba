package config

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont/config"
)

// InitConfigProviders assembles the global configuration chain.
// Environment variables always win, then the optional config file, then the optional Vault secret.
// A "-" value disables the corresponding source.
type InitConfigProviders struct {
	ConfigFile      string `config:"CONFIG_FILE" default:"-"`
	VaultServer     string `config:"VAULT_ADDR" default:"-"`
	VaultToken      string `config:"VAULT_TOKEN" default:"-"`
	VaultMountPath  string `config:"VAULT_MOUNT_PATH" default:"secret"`
	VaultSecretPath string `config:"VAULT_SECRET_PATH" default:"taskchat"`
}

// Initialize builds the provider chain and sets it as the global config provider.
func (i InitConfigProviders) Initialize(ctx context.Context) (context.Context, error) {
	providers, err := i.providers()
	if err != nil {
		return ctx, err
	}
	config.SetGlobalProvider(config.NewCompositeProvider(providers...))
	return ctx, nil
}

func (i InitConfigProviders) providers() ([]config.Provider, error) {
	providers := []config.Provider{config.EnvVarProvider{}}

	if i.ConfigFile != "-" && i.ConfigFile != "" {
		vp, err := NewViperProvider(i.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize config file provider: %w", err)
		}
		providers = append(providers, vp)
	}

	if i.VaultServer != "-" && i.VaultServer != "" {
		vp, err := NewVaultProvider(i.VaultServer, i.VaultToken, i.VaultMountPath, i.VaultSecretPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Vault provider: %w", err)
		}
		providers = append(providers, vp)
	}

	return providers, nil
}
