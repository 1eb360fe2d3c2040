package config

import (
	"sync"
	"time"

	"github.com/spf13/viper"
)

// AuthConfiguration defines the session token settings
type AuthConfiguration struct {
	Secret          string
	SessionLifespan time.Duration
}

var (
	authConfigOnce sync.Once
	authConfig     *AuthConfiguration
)

// AuthConfig returns the session token configurations.
// The config is initialized once and cached to avoid concurrent map writes.
func AuthConfig() *AuthConfiguration {
	authConfigOnce.Do(func() {
		viper.SetDefault("SESSION_LIFESPAN", 1440) // 24 hours

		authConfig = &AuthConfiguration{
			Secret:          viper.GetString("SECRET"),
			SessionLifespan: time.Duration(viper.GetInt("SESSION_LIFESPAN")) * time.Minute,
		}
	})
	return authConfig
}
