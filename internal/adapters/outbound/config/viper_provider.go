package config

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont/config"
	"github.com/spf13/viper"
)

// ViperProvider serves configuration keys from a config file loaded with viper.
// Keys use the same names as the environment variables (HTTP_PORT, DB_HOST, ...).
type ViperProvider struct {
	v *viper.Viper
}

// NewViperProvider loads the config file at path. The format is inferred from
// the file extension (yaml, json, toml, env).
func NewViperProvider(path string) (ViperProvider, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return ViperProvider{}, fmt.Errorf("read config file %s: %w", path, err)
	}
	return ViperProvider{v: v}, nil
}

// Get returns the value for key, or an error when the file does not set it.
func (vp ViperProvider) Get(_ context.Context, key string) (string, error) {
	if !vp.v.IsSet(key) {
		return "", fmt.Errorf("config file does not contain key %s", key)
	}
	return vp.v.GetString(key), nil
}

var _ config.Provider = ViperProvider{}
