package config

import (
	"fmt"
	"sync"

	"github.com/spf13/viper"
)

// ServerConfiguration defines the HTTP server settings
type ServerConfiguration struct {
	Debug                    bool
	Host                     string
	Port                     string
	Timezone                 string
	Environment              string
	SentryDSN                string
	AllowedHosts             string
	RateLimitUnauthenticated int
	RateLimitAuthenticated   int
}

var (
	serverConfigOnce sync.Once
	serverConfig     *ServerConfiguration
)

// ServerConfig returns the server configurations
func ServerConfig() *ServerConfiguration {
	serverConfigOnce.Do(func() {
		viper.SetDefault("DEBUG", false)
		viper.SetDefault("SERVER_HOST", "0.0.0.0")
		viper.SetDefault("SERVER_PORT", "8000")
		viper.SetDefault("SERVER_TIMEZONE", "UTC")
		viper.SetDefault("ENVIRONMENT", "local")
		viper.SetDefault("ALLOWED_HOSTS", "*")
		viper.SetDefault("RATE_LIMIT_UNAUTHENTICATED", 5)
		viper.SetDefault("RATE_LIMIT_AUTHENTICATED", 50)

		serverConfig = &ServerConfiguration{
			Debug:                    viper.GetBool("DEBUG"),
			Host:                     viper.GetString("SERVER_HOST"),
			Port:                     viper.GetString("SERVER_PORT"),
			Timezone:                 viper.GetString("SERVER_TIMEZONE"),
			Environment:              viper.GetString("ENVIRONMENT"),
			SentryDSN:                viper.GetString("SENTRY_DSN"),
			AllowedHosts:             viper.GetString("ALLOWED_HOSTS"),
			RateLimitUnauthenticated: viper.GetInt("RATE_LIMIT_UNAUTHENTICATED"),
			RateLimitAuthenticated:   viper.GetInt("RATE_LIMIT_AUTHENTICATED"),
		}
	})
	return serverConfig
}

func init() {
	if err := SetupConfig(); err != nil {
		panic(fmt.Sprintf("config SetupConfig() error: %s", err))
	}
}
