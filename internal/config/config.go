// Package config wraps viper behind a small nil-safe accessor type and owns
// config file discovery and environment overrides.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is a nil-safe wrapper around a viper instance. All accessors
// return zero values when the underlying viper is nil or the key is unset.
type Config struct {
	v *viper.Viper
}

// New wraps an existing viper instance. A nil viper yields a Config whose
// accessors return zero values.
func New(v *viper.Viper) *Config {
	return &Config{v: v}
}

// Load reads configuration from the given file path (optional), falling
// back to launchdex.yaml in the working directory, with LAUNCHDEX_*
// environment variables overriding file values.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.rate_limit", 50)
	v.SetDefault("data_dir", ".")
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("LAUNCHDEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
	} else {
		v.SetConfigName("launchdex")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/launchdex")
		if err := v.ReadInConfig(); err != nil {
			// A missing default config file is fine; env and defaults apply.
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return New(v), nil
}

// GetString returns the string value for key.
func (c *Config) GetString(key string) string {
	if c == nil || c.v == nil {
		return ""
	}
	return c.v.GetString(key)
}

// GetInt returns the int value for key.
func (c *Config) GetInt(key string) int {
	if c == nil || c.v == nil {
		return 0
	}
	return c.v.GetInt(key)
}

// GetFloat64 returns the float value for key.
func (c *Config) GetFloat64(key string) float64 {
	if c == nil || c.v == nil {
		return 0
	}
	return c.v.GetFloat64(key)
}

// GetBool returns the bool value for key.
func (c *Config) GetBool(key string) bool {
	if c == nil || c.v == nil {
		return false
	}
	return c.v.GetBool(key)
}

// GetDuration returns the duration value for key.
func (c *Config) GetDuration(key string) time.Duration {
	if c == nil || c.v == nil {
		return 0
	}
	return c.v.GetDuration(key)
}

// IsSet reports whether key has a value.
func (c *Config) IsSet(key string) bool {
	if c == nil || c.v == nil {
		return false
	}
	return c.v.IsSet(key)
}

// Sub returns the Config subtree rooted at key. Never returns nil; a
// missing subtree yields an empty Config.
func (c *Config) Sub(key string) *Config {
	if c == nil || c.v == nil {
		return New(nil)
	}
	return New(c.v.Sub(key))
}

// Unmarshal decodes the configuration into target via mapstructure tags.
func (c *Config) Unmarshal(target any) error {
	if c == nil || c.v == nil {
		return nil
	}
	return c.v.Unmarshal(target)
}
