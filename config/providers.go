package config

import (
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// ProviderConfiguration defines the outbound verification provider settings
type ProviderConfiguration struct {
	Enabled []string
	Timeout time.Duration

	BridgeBaseURL string
	BridgeAPIKey  string

	AveniaBaseURL string
	AveniaAPIKey  string

	BorderlessBaseURL string
	BorderlessAPIKey  string

	NoahBaseURL string
	NoahAPIKey  string

	YellowCardBaseURL string
	YellowCardAPIKey  string
}

var (
	providerConfigOnce sync.Once
	providerConfig     *ProviderConfiguration
)

// ProviderConfig returns the verification provider configurations
func ProviderConfig() *ProviderConfiguration {
	providerConfigOnce.Do(func() {
		viper.SetDefault("PROVIDERS_ENABLED", "bridge")
		viper.SetDefault("PROVIDER_TIMEOUT", 30)
		viper.SetDefault("BRIDGE_BASE_URL", "https://api.bridge.xyz")
		viper.SetDefault("AVENIA_BASE_URL", "https://api.avenia.io")
		viper.SetDefault("BORDERLESS_BASE_URL", "https://api.getborderless.com")
		viper.SetDefault("NOAH_BASE_URL", "https://api.noah.com")
		viper.SetDefault("YELLOWCARD_BASE_URL", "https://api.yellowcard.io")

		providerConfig = &ProviderConfiguration{
			Enabled:           splitList(viper.GetString("PROVIDERS_ENABLED")),
			Timeout:           time.Duration(viper.GetInt("PROVIDER_TIMEOUT")) * time.Second,
			BridgeBaseURL:     viper.GetString("BRIDGE_BASE_URL"),
			BridgeAPIKey:      viper.GetString("BRIDGE_API_KEY"),
			AveniaBaseURL:     viper.GetString("AVENIA_BASE_URL"),
			AveniaAPIKey:      viper.GetString("AVENIA_API_KEY"),
			BorderlessBaseURL: viper.GetString("BORDERLESS_BASE_URL"),
			BorderlessAPIKey:  viper.GetString("BORDERLESS_API_KEY"),
			NoahBaseURL:       viper.GetString("NOAH_BASE_URL"),
			NoahAPIKey:        viper.GetString("NOAH_API_KEY"),
			YellowCardBaseURL: viper.GetString("YELLOWCARD_BASE_URL"),
			YellowCardAPIKey:  viper.GetString("YELLOWCARD_API_KEY"),
		}
	})
	return providerConfig
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
